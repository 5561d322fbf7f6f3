package routing

import "sort"

// Adjacency builds the corridor connectivity graph. Two corridors are
// adjacent when their rectangles, each expanded by half the tolerance,
// share area. The result maps corridor ID to sorted neighbor IDs and is
// guaranteed bidirectional; downstream checks use it to flag corridors
// with at most one neighbor as possible dead ends.
func Adjacency(corridors []Corridor, tolerance float64) map[string][]string {
	half := tolerance / 2

	conn := make(map[string]map[string]bool, len(corridors))
	for i := range corridors {
		a := corridors[i]
		for j := i + 1; j < len(corridors); j++ {
			b := corridors[j]
			if !a.Rect().Expand(half).Overlaps(b.Rect().Expand(half)) {
				continue
			}
			if conn[a.ID] == nil {
				conn[a.ID] = make(map[string]bool)
			}
			if conn[b.ID] == nil {
				conn[b.ID] = make(map[string]bool)
			}
			conn[a.ID][b.ID] = true
			conn[b.ID][a.ID] = true
		}
	}

	out := make(map[string][]string, len(corridors))
	for _, c := range corridors {
		ids := make([]string, 0, len(conn[c.ID]))
		for id := range conn[c.ID] {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		out[c.ID] = ids
	}
	return out
}

// Connected reports whether the corridor network forms a single connected
// component. An empty network counts as connected.
func Connected(corridors []Corridor, tolerance float64) bool {
	if len(corridors) <= 1 {
		return true
	}
	adj := Adjacency(corridors, tolerance)

	seen := map[string]bool{corridors[0].ID: true}
	stack := []string{corridors[0].ID}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range adj[cur] {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return len(seen) == len(corridors)
}
