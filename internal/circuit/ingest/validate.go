package ingest

import (
	"fmt"
	"strings"
)

// Validate checks a CircuitSpec for structural problems before it is
// mapped to a domain circuit. These are builder contract violations
// (bad ids, unknown kinds, self-loops), not electrical problems; the
// topology validator handles those after mapping.
func Validate(spec *CircuitSpec) error {
	if spec == nil {
		return fmt.Errorf("ingest: spec is nil")
	}
	if len(spec.Components) == 0 {
		return fmt.Errorf("ingest: circuit has no components")
	}

	seen := map[string]bool{}
	for i, cs := range spec.Components {
		id := strings.TrimSpace(cs.ID)
		if id == "" {
			return fmt.Errorf("ingest: component %d has an empty id", i)
		}
		key := strings.ToLower(id)
		if seen[key] {
			return fmt.Errorf("ingest: duplicate component id %q", id)
		}
		seen[key] = true

		if strings.TrimSpace(cs.From) == "" || strings.TrimSpace(cs.To) == "" {
			return fmt.Errorf("ingest: component %q has an empty terminal", id)
		}
		// Node ids are case-sensitive, matching the circuit's node map.
		if cs.From == cs.To {
			return fmt.Errorf("ingest: component %q connects a node to itself", id)
		}

		switch strings.ToLower(cs.Kind) {
		case "source":
			if cs.EMF <= 0 {
				return fmt.Errorf("ingest: source %q must have a positive emf", id)
			}
		case "resistor", "lamp":
			if cs.Ohms <= 0 {
				return fmt.Errorf("ingest: %s %q must have a positive resistance", strings.ToLower(cs.Kind), id)
			}
		case "wire", "switch":
		default:
			return fmt.Errorf("ingest: component %q has unknown kind %q", id, cs.Kind)
		}
	}
	return nil
}
