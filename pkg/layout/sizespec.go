package layout

// SizeSpec selects how unit sizes are driven: an explicit per-type unit mix
// (priority mode) or a weighted distribution over size categories (legacy
// mode). It is a closed union resolved once at the placer entry point.
type SizeSpec interface {
	isSizeSpec()
}

// Target is one unit-mix entry. Count takes precedence when set; otherwise
// the target is an area in m2 to fill with units of this type.
type Target struct {
	Type  string  `json:"type"`
	Count int     `json:"count,omitempty"`
	Area  float64 `json:"area,omitempty"`
}

// UnitMix requests explicit per-type targets, fulfilled in catalog order.
type UnitMix struct {
	Targets []Target `json:"targets"`
}

func (UnitMix) isSizeSpec() {}

// Distribution weights size categories for random draws. Weights need not
// sum to one; they are normalized at resolution time.
type Distribution map[string]float64

func (Distribution) isSizeSpec() {}
