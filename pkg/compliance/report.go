package compliance

import "fmt"

// Severity indicates how critical a violation is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Violation is a single rule finding against a layout or a plan.
type Violation struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Element  string   `json:"element,omitempty"`
}

// Summary aggregates violation counts.
type Summary struct {
	Total      int            `json:"total"`
	ByType     map[string]int `json:"by_type"`
	BySeverity map[string]int `json:"by_severity"`
	Text       string         `json:"text"`
}

// Report is the complete compliance output. Passed is true iff no violation
// of any severity was recorded.
type Report struct {
	Passed     bool        `json:"passed"`
	Violations []Violation `json:"violations"`
	Summary    Summary     `json:"summary"`
}

// NewReport creates an empty passing report.
func NewReport() *Report {
	return &Report{
		Passed:     true,
		Violations: []Violation{},
		Summary: Summary{
			ByType:     map[string]int{},
			BySeverity: map[string]int{},
		},
	}
}

// AddError records an error violation and fails the report.
func (r *Report) AddError(v Violation) {
	v.Severity = SeverityError
	r.add(v)
}

// AddWarning records a warning violation and fails the report.
func (r *Report) AddWarning(v Violation) {
	v.Severity = SeverityWarning
	r.add(v)
}

func (r *Report) add(v Violation) {
	r.Violations = append(r.Violations, v)
	r.Passed = false
	r.Summary.Total++
	r.Summary.ByType[v.Type]++
	r.Summary.BySeverity[string(v.Severity)]++
	r.updateSummary()
}

// Merge combines another report into this one.
func (r *Report) Merge(other *Report) {
	for _, v := range other.Violations {
		r.Violations = append(r.Violations, v)
		r.Summary.Total++
		r.Summary.ByType[v.Type]++
		r.Summary.BySeverity[string(v.Severity)]++
	}
	if !other.Passed {
		r.Passed = false
	}
	r.updateSummary()
}

// Errors returns the count of error-severity violations.
func (r *Report) Errors() int {
	return r.Summary.BySeverity[string(SeverityError)]
}

// Warnings returns the count of warning-severity violations.
func (r *Report) Warnings() int {
	return r.Summary.BySeverity[string(SeverityWarning)]
}

func (r *Report) updateSummary() {
	r.Summary.Text = fmt.Sprintf("%d errors, %d warnings", r.Errors(), r.Warnings())
}
