package ingest

import (
	"fmt"
	"strings"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
)

// ToCircuit builds a domain circuit from a validated spec. Node ids are
// taken as-is; components sharing a terminal id share the node.
func ToCircuit(spec *CircuitSpec) (*domain.Circuit, error) {
	if err := Validate(spec); err != nil {
		return nil, err
	}

	c := domain.NewCircuit()
	for _, cs := range spec.Components {
		var err error
		switch strings.ToLower(cs.Kind) {
		case "source":
			_, err = c.AddSource(cs.ID, cs.From, cs.To, cs.EMF)
		case "resistor":
			_, err = c.AddResistor(cs.ID, cs.From, cs.To, cs.Ohms)
		case "lamp":
			_, err = c.AddLamp(cs.ID, cs.From, cs.To, cs.Ohms)
		case "wire":
			_, err = c.AddWire(cs.ID, cs.From, cs.To)
		case "switch":
			_, err = c.AddSwitch(cs.ID, cs.From, cs.To, cs.Closed)
		default:
			err = fmt.Errorf("unknown kind %q", cs.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: component %q: %w", cs.ID, err)
		}
	}
	return c, nil
}
