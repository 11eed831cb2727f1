package solver

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
)

const (
	// DefaultMaxIterations caps the relaxation passes. This is a budget,
	// not a timeout; after it runs out the best-effort voltages stand.
	DefaultMaxIterations = 100
	// DefaultTolerance is the max per-pass voltage change under which the
	// relaxation is considered converged.
	DefaultTolerance = 1e-6
	// ConservationTolerance bounds the acceptable mismatch between the
	// current leaving the source's positive terminal and the current
	// entering its negative terminal.
	ConservationTolerance = 1e-2
)

// Solver computes steady-state node voltages and per-component currents
// for a DC resistive circuit by Gauss-Seidel relaxation. It is the only
// writer of the derived fields on nodes and components; callers must
// serialize solves on the same circuit.
type Solver struct {
	MaxIterations int
	Tolerance     float64

	log *slog.Logger
}

// New creates a Solver with default iteration budget and tolerance.
// logger may be nil; diagnostics are then kept only on the Solution.
func New(logger *slog.Logger) *Solver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Solver{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		log:           logger,
	}
}

// Solution describes the outcome of one solve pass. The solved values
// themselves live on the circuit; Diagnostics carries human-readable
// notes about soft conditions (missing source, non-convergence,
// conservation mismatch) in the order they were found.
type Solution struct {
	Converged   bool     `json:"converged"`
	Iterations  int      `json:"iterations"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

func (s *Solver) note(sol *Solution, msg string) {
	sol.Diagnostics = append(sol.Diagnostics, msg)
	s.log.Warn(msg)
}

// Solve mutates the circuit in place: node voltages first, then
// per-component currents and voltage drops, then the source current.
// A missing source is a soft abort, not an error: all outputs are
// zeroed and a diagnostic is recorded. The only hard error is a nil
// circuit.
func (s *Solver) Solve(c *domain.Circuit) (*Solution, error) {
	if c == nil {
		return nil, fmt.Errorf("solver: circuit is nil")
	}

	sol := &Solution{}

	src := c.FirstSource()
	if src == nil {
		zeroOutputs(c)
		s.note(sol, "circuit has no power source; all outputs zeroed")
		return sol, nil
	}

	// Boundary conditions: the source's negative terminal is the ground
	// reference, the positive terminal sits at the EMF. Neither node is
	// updated by the relaxation.
	pos, neg := src.A, src.B
	zeroOutputs(c)
	pos.Voltage = src.EMF
	neg.Voltage = 0

	lastDelta := s.relax(c, sol, pos, neg)
	if !sol.Converged {
		s.note(sol, fmt.Sprintf(
			"relaxation did not converge after %d passes (last max delta %.3g); voltages are best-effort",
			sol.Iterations, lastDelta))
	}

	s.deriveComponents(c, src)
	s.deriveSourceCurrent(c, sol, src)
	aggregateNodeCurrents(c)

	return sol, nil
}

// relax runs Gauss-Seidel passes over all nodes in the circuit's fixed
// enumeration order. Each free node is set to the conductance-weighted
// average of its neighbors across finite positive resistances; open
// switches and zero-resistance components do not propagate voltage.
func (s *Solver) relax(c *domain.Circuit, sol *Solution, pos, neg *domain.Node) float64 {
	var maxDelta float64
	for pass := 0; pass < s.MaxIterations; pass++ {
		maxDelta = 0
		for _, n := range c.NodeOrder() {
			if n == pos || n == neg {
				continue
			}
			var weight, sum float64
			for _, comp := range n.Components {
				ohms, conducting := comp.Resistance()
				if !conducting || ohms <= 0 {
					continue
				}
				g := 1 / ohms
				weight += g
				sum += g * comp.Other(n).Voltage
			}
			if weight == 0 {
				// No finite-resistance neighbor; nothing can drive this
				// node, its voltage stays where it is.
				continue
			}
			next := sum / weight
			if d := math.Abs(next - n.Voltage); d > maxDelta {
				maxDelta = d
			}
			n.Voltage = next
		}
		sol.Iterations = pass + 1
		if maxDelta < s.Tolerance {
			sol.Converged = true
			break
		}
	}
	return maxDelta
}

// deriveComponents fills Current and VoltageDrop for every component.
// Finite resistances go first so that the zero-resistance pass can
// borrow an already-computed neighbor current.
func (s *Solver) deriveComponents(c *domain.Circuit, src *domain.Component) {
	for _, comp := range c.Components {
		if comp == src {
			comp.VoltageDrop = src.EMF
			continue
		}
		ohms, conducting := comp.Resistance()
		switch {
		case !conducting:
			comp.Current = 0
			comp.VoltageDrop = 0
		case ohms > 0:
			comp.VoltageDrop = math.Abs(comp.A.Voltage - comp.B.Voltage)
			comp.Current = comp.VoltageDrop / ohms
		}
	}
	for _, comp := range c.Components {
		if comp == src {
			continue
		}
		ohms, conducting := comp.Resistance()
		if !conducting || ohms > 0 {
			continue
		}
		// Wire or closed switch: 0 ohms means Ohm's law is 0/0 here.
		// Approximate by copying the current of the first finite-
		// resistance component sharing a terminal. Wrong at junctions
		// where distinct branches carry different currents.
		comp.VoltageDrop = 0
		comp.Current = borrowCurrent(comp)
	}
}

func borrowCurrent(comp *domain.Component) float64 {
	for _, n := range []*domain.Node{comp.A, comp.B} {
		for _, other := range n.Components {
			if other == comp {
				continue
			}
			ohms, conducting := other.Resistance()
			if conducting && ohms > 0 {
				return other.Current
			}
		}
	}
	return 0
}

// deriveSourceCurrent sums the branch currents at the source's positive
// terminal; the same sum at the negative terminal must agree within
// ConservationTolerance or a diagnostic is recorded.
func (s *Solver) deriveSourceCurrent(c *domain.Circuit, sol *Solution, src *domain.Component) {
	var posSum, negSum float64
	for _, comp := range src.A.Components {
		if comp != src {
			posSum += comp.Current
		}
	}
	for _, comp := range src.B.Components {
		if comp != src {
			negSum += comp.Current
		}
	}
	src.Current = posSum
	if math.Abs(posSum-negSum) > ConservationTolerance {
		s.note(sol, fmt.Sprintf(
			"current conservation mismatch at source %q: %.4fA out vs %.4fA in",
			src.ID, posSum, negSum))
	}
}

func aggregateNodeCurrents(c *domain.Circuit) {
	for _, n := range c.NodeOrder() {
		var sum float64
		for _, comp := range n.Components {
			sum += comp.Current
		}
		n.Current = sum
	}
}

func zeroOutputs(c *domain.Circuit) {
	for _, n := range c.NodeOrder() {
		n.Voltage = 0
		n.Current = 0
	}
	for _, comp := range c.Components {
		comp.Current = 0
		comp.VoltageDrop = 0
	}
}
