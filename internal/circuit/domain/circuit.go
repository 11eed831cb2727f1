package domain

import (
	"fmt"
	"math"
)

// Circuit owns the node and component graph for one user-authored
// topology. It is rebuilt wholesale whenever the topology changes; the
// solver mutates voltages and currents in place on each pass. A circuit
// must not be solved from more than one goroutine at a time.
type Circuit struct {
	Nodes      map[string]*Node `json:"nodes"`
	Components []*Component     `json:"components"`

	// order keeps nodes in insertion order so solver iteration is
	// deterministic; map iteration order is not.
	order []*Node
}

// NewCircuit creates an empty circuit.
func NewCircuit() *Circuit {
	return &Circuit{Nodes: map[string]*Node{}}
}

// Node returns the node with the given id, creating it on first use.
// Voltage starts as NaN, meaning "never solved".
func (c *Circuit) Node(id string) *Node {
	if n, ok := c.Nodes[id]; ok {
		return n
	}
	n := &Node{ID: id, Voltage: math.NaN()}
	c.Nodes[id] = n
	c.order = append(c.order, n)
	return n
}

// NodeOrder returns nodes in insertion order.
func (c *Circuit) NodeOrder() []*Node {
	return c.order
}

// Attach wires a pre-built component to both of its terminal nodes and
// adds it to the circuit. Attaching twice is a no-op on the incident
// sets. The two terminals must be distinct, resistance must not be
// negative, and both terminals must belong to this circuit.
func (c *Circuit) Attach(comp *Component) error {
	if comp.A == nil || comp.B == nil {
		return fmt.Errorf("component %q: both terminals must be set", comp.ID)
	}
	if comp.A == comp.B {
		return fmt.Errorf("component %q: terminals must be distinct nodes", comp.ID)
	}
	if comp.Ohms < 0 {
		return fmt.Errorf("component %q: negative resistance %.3f", comp.ID, comp.Ohms)
	}
	if c.Nodes[comp.A.ID] != comp.A || c.Nodes[comp.B.ID] != comp.B {
		return fmt.Errorf("component %q: terminals do not belong to this circuit", comp.ID)
	}
	if !KnownKind(comp.Kind) {
		return fmt.Errorf("component %q: unknown kind %q", comp.ID, comp.Kind)
	}
	comp.A.attach(comp)
	comp.B.attach(comp)
	for _, have := range c.Components {
		if have == comp {
			return nil
		}
	}
	c.Components = append(c.Components, comp)
	return nil
}

// AddSource adds a battery with the given EMF. a is the positive
// terminal, b the negative one.
func (c *Circuit) AddSource(id, a, b string, emf float64) (*Component, error) {
	comp := &Component{ID: id, Kind: KindSource, A: c.Node(a), B: c.Node(b), EMF: emf}
	return comp, c.Attach(comp)
}

// AddResistor adds a resistor with the given resistance in ohms.
func (c *Circuit) AddResistor(id, a, b string, ohms float64) (*Component, error) {
	comp := &Component{ID: id, Kind: KindResistor, A: c.Node(a), B: c.Node(b), Ohms: ohms}
	return comp, c.Attach(comp)
}

// AddLamp adds a lamp. Electrically it is a resistor; the kind is kept
// so display layers can render an illumination affordance.
func (c *Circuit) AddLamp(id, a, b string, ohms float64) (*Component, error) {
	comp := &Component{ID: id, Kind: KindLamp, A: c.Node(a), B: c.Node(b), Ohms: ohms}
	return comp, c.Attach(comp)
}

// AddWire adds an ideal zero-resistance wire.
func (c *Circuit) AddWire(id, a, b string) (*Component, error) {
	comp := &Component{ID: id, Kind: KindWire, A: c.Node(a), B: c.Node(b)}
	return comp, c.Attach(comp)
}

// AddSwitch adds a switch in the given position.
func (c *Circuit) AddSwitch(id, a, b string, closed bool) (*Component, error) {
	comp := &Component{ID: id, Kind: KindSwitch, A: c.Node(a), B: c.Node(b), Closed: closed}
	return comp, c.Attach(comp)
}

// FirstSource returns the first source component in attachment order,
// or nil when the circuit has none. Additional sources are ignored by
// the solver; the validator warns about them.
func (c *Circuit) FirstSource() *Component {
	for _, comp := range c.Components {
		if comp.Kind == KindSource {
			return comp
		}
	}
	return nil
}

// Sources returns all source components in attachment order.
func (c *Circuit) Sources() []*Component {
	var out []*Component
	for _, comp := range c.Components {
		if comp.Kind == KindSource {
			out = append(out, comp)
		}
	}
	return out
}
