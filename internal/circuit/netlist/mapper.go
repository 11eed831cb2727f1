package netlist

import (
	"fmt"
	"strings"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/ingest"
)

// ToSpec converts a parsed netlist into the same CircuitSpec the HTTP
// API consumes, so both inputs share one mapping into the domain.
func ToSpec(f *File) (*ingest.CircuitSpec, error) {
	if f == nil {
		return nil, fmt.Errorf("netlist: file is nil")
	}
	spec := &ingest.CircuitSpec{}
	for _, st := range f.Statements {
		cs := ingest.ComponentSpec{ID: st.ID, From: st.From, To: st.To}
		switch strings.ToUpper(st.ID[:1]) {
		case "V", "B":
			if st.Value == nil {
				return nil, fmt.Errorf("netlist: source %s needs an EMF value", st.ID)
			}
			cs.Kind = "source"
			cs.EMF = *st.Value
		case "R":
			if st.Value == nil {
				return nil, fmt.Errorf("netlist: resistor %s needs a resistance value", st.ID)
			}
			cs.Kind = "resistor"
			cs.Ohms = *st.Value
		case "L":
			if st.Value == nil {
				return nil, fmt.Errorf("netlist: lamp %s needs a resistance value", st.ID)
			}
			cs.Kind = "lamp"
			cs.Ohms = *st.Value
		case "W":
			cs.Kind = "wire"
		case "S":
			cs.Kind = "switch"
			if st.State != nil {
				switch strings.ToLower(*st.State) {
				case "closed":
					cs.Closed = true
				case "open":
					cs.Closed = false
				default:
					return nil, fmt.Errorf("netlist: switch %s has unknown state %q", st.ID, *st.State)
				}
			}
		default:
			return nil, fmt.Errorf("netlist: component %s: cannot infer kind from name", st.ID)
		}
		spec.Components = append(spec.Components, cs)
	}
	return spec, nil
}
