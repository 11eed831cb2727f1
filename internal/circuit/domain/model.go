package domain

import "math"

// Node is an electrical junction. Every component terminal attached to
// the same node shares its voltage. Nodes are compared by ID, never by
// structure; the ID is the unique handle handed out by the circuit.
type Node struct {
	ID string `json:"id"`
	// Voltage is NaN until the first solve pass writes it.
	Voltage float64 `json:"voltage"`
	// Current is the aggregate current at the node, written by the solver.
	Current float64 `json:"current"`

	// Components incident to this node, in attachment order. A component
	// appears here exactly when this node is one of its two terminals.
	Components []*Component `json:"-"`
}

// Solved reports whether the node carries a voltage from a solve pass.
func (n *Node) Solved() bool {
	return !math.IsNaN(n.Voltage)
}

// Degree is the number of components attached to the node.
func (n *Node) Degree() int {
	return len(n.Components)
}

func (n *Node) attach(c *Component) {
	for _, have := range n.Components {
		if have == c {
			return
		}
	}
	n.Components = append(n.Components, c)
}

// Component is a two-terminal element. A and B are shared node
// references; for a Source, A is the positive terminal and B the
// negative one. Current and VoltageDrop are derived state owned by the
// solver; everything else reads them between solves.
type Component struct {
	ID   string        `json:"id"`
	Kind ComponentKind `json:"kind"`
	A    *Node         `json:"-"`
	B    *Node         `json:"-"`

	// EMF is the electromotive force in volts. Sources only.
	EMF float64 `json:"emf,omitempty"`
	// Ohms is the configured resistance. Resistors and lamps only.
	Ohms float64 `json:"ohms,omitempty"`
	// Closed is the switch position. Switches only.
	Closed bool `json:"closed,omitempty"`

	Current     float64 `json:"current"`
	VoltageDrop float64 `json:"voltage_drop"`
}

// Resistance maps the component variant to its electrical resistance.
// conducting=false means an open circuit (an open switch); callers must
// not divide by the returned ohms in that case. The mapping is
// exhaustive over ComponentKind.
func (c *Component) Resistance() (ohms float64, conducting bool) {
	switch c.Kind {
	case KindSource, KindWire:
		return 0, true
	case KindResistor, KindLamp:
		return c.Ohms, true
	case KindSwitch:
		return 0, c.Closed
	}
	return 0, false
}

// Other returns the terminal opposite to n, or nil when n is not a
// terminal of the component.
func (c *Component) Other(n *Node) *Node {
	switch n {
	case c.A:
		return c.B
	case c.B:
		return c.A
	}
	return nil
}

// Touches reports whether n is one of the component's terminals.
func (c *Component) Touches(n *Node) bool {
	return n == c.A || n == c.B
}
