package validation

import (
	"fmt"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
)

type sourcePresence struct{}

func (sourcePresence) Name() string { return "source_presence" }

// Check requires exactly one power source. Zero sources is an error;
// more than one is only a warning because the solver uses the first and
// ignores the rest.
func (sourcePresence) Check(c *domain.Circuit) []Finding {
	sources := c.Sources()
	switch {
	case len(sources) == 0:
		return []Finding{{
			Severity: SeverityError,
			Message:  "circuit must contain a power source",
		}}
	case len(sources) > 1:
		ids := make([]string, 0, len(sources))
		for _, s := range sources {
			ids = append(ids, s.ID)
		}
		return []Finding{{
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("circuit has %d power sources; only the first (%s) is solved", len(sources), sources[0].ID),
			Components: ids,
		}}
	}
	return nil
}

type loadPresence struct{}

func (loadPresence) Name() string { return "load_presence" }

// Check warns when nothing in the circuit has a finite positive
// resistance, since an ideal source with no load draws unbounded
// current.
func (loadPresence) Check(c *domain.Circuit) []Finding {
	for _, comp := range c.Components {
		ohms, conducting := comp.Resistance()
		if conducting && ohms > 0 {
			return nil
		}
	}
	return []Finding{{
		Severity: SeverityWarning,
		Message:  "no resistive components; risk of unbounded current",
	}}
}
