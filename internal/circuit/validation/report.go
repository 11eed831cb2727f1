package validation

import (
	"fmt"
	"strings"
)

// Report is the ordered outcome of a validation pass.
type Report struct {
	Errors   []string  `json:"errors"`
	Warnings []string  `json:"warnings"`
	Findings []Finding `json:"findings"`
}

// IsValid reports whether the circuit passed every error-level check.
func (r *Report) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *Report) add(f Finding) {
	r.Findings = append(r.Findings, f)
	switch f.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, f.Message)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, f.Message)
	}
}

// Summary renders a human-readable report: counts first, then errors,
// then warnings, as bullet lists.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "validation: %d error(s), %d warning(s)\n", len(r.Errors), len(r.Warnings))
	if len(r.Errors) > 0 {
		b.WriteString("errors:\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}
	if len(r.Warnings) > 0 {
		b.WriteString("warnings:\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}
	return b.String()
}
