package validation

import (
	"fmt"
	"log/slog"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
)

// Validator runs topology checks over a circuit and assembles a Report.
// It does not require the circuit to have been solved and shares no
// state with the solver.
type Validator struct {
	rules []Rule
	log   *slog.Logger
}

// New creates a Validator with the full rule set in report order.
// logger may be nil.
func New(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Validator{
		// Check order is part of the report contract; keep it explicit
		// rather than registry-sorted.
		rules: []Rule{
			sourcePresence{},
			loadPresence{},
			completeness{},
			floatingComponents{},
			shortCircuit{},
			scaleHeuristics{},
		},
		log: logger,
	}
}

// Validate runs every rule in order and returns the combined report.
// The only hard error is a nil circuit.
func (v *Validator) Validate(c *domain.Circuit) (*Report, error) {
	if c == nil {
		return nil, fmt.Errorf("validation: circuit is nil")
	}
	report := &Report{}
	for _, rule := range v.rules {
		for _, f := range rule.Check(c) {
			report.add(f)
			v.log.Debug("validation finding",
				"rule", rule.Name(),
				"severity", string(f.Severity),
				"message", f.Message)
		}
	}
	return report, nil
}
