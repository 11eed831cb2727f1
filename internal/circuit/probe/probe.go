// Package probe is the multimeter: thin read-only accessors over solved
// circuit state.
package probe

import (
	"log/slog"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
)

// Probe reads solved values off a circuit. It never mutates anything.
type Probe struct {
	log *slog.Logger
}

// New creates a Probe. logger may be nil.
func New(logger *slog.Logger) *Probe {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Probe{log: logger}
}

// MeasureVoltage returns V(a) - V(b). If either node has never been
// solved the reading is 0 and a diagnostic is logged instead of
// propagating an undefined value.
func (p *Probe) MeasureVoltage(a, b *domain.Node) float64 {
	if a == nil || b == nil {
		p.log.Warn("voltage probe on missing node")
		return 0
	}
	if !a.Solved() || !b.Solved() {
		p.log.Warn("voltage probe on unsolved node", "a", a.ID, "b", b.ID)
		return 0
	}
	return a.Voltage - b.Voltage
}

// MeasureCurrent returns the component's last solved current.
func (p *Probe) MeasureCurrent(c *domain.Component) float64 {
	if c == nil {
		p.log.Warn("current probe on missing component")
		return 0
	}
	return c.Current
}
