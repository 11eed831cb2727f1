package validation

import "github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"

// Severity of a finding. Errors make the circuit invalid; warnings are
// usability or safety notes the caller may surface but ignore.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Finding is one validation result. Components lists the implicated
// component IDs when the finding is about specific elements.
type Finding struct {
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Components []string `json:"components,omitempty"`
}

// Rule is a single topology check. Rules are pure readers of the
// circuit; they never mutate solved state.
type Rule interface {
	Name() string
	Check(c *domain.Circuit) []Finding
}
