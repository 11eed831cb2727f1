package service

import (
	"context"
	"log/slog"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/ingest"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/probe"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/repository"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/solver"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/validation"
)

// CircuitService sequences the engine for callers: build the circuit
// from a spec, validate, solve, read values back, and record the run.
// Validation and solving stay independent steps; the service is just
// the typical caller that runs them in order.
type CircuitService struct {
	validator *validation.Validator
	solver    *solver.Solver
	probe     *probe.Probe
	runRepo   *repository.RunRepository
	log       *slog.Logger
}

// NewCircuitService creates a CircuitService. runRepo may be nil (the
// CLI runs without run bookkeeping); logger may be nil.
func NewCircuitService(runRepo *repository.RunRepository, logger *slog.Logger) *CircuitService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CircuitService{
		validator: validation.New(logger),
		solver:    solver.New(logger),
		probe:     probe.New(logger),
		runRepo:   runRepo,
		log:       logger,
	}
}

// TuneSolver overrides the solver's iteration budget and tolerance.
// Zero values leave the corresponding default in place.
func (s *CircuitService) TuneSolver(maxIterations int, tolerance float64) {
	if maxIterations > 0 {
		s.solver.MaxIterations = maxIterations
	}
	if tolerance > 0 {
		s.solver.Tolerance = tolerance
	}
}

// NodeReading is one solved node voltage.
type NodeReading struct {
	ID      string  `json:"id"`
	Voltage float64 `json:"voltage"`
}

// ComponentReading is one solved component state.
type ComponentReading struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Current     float64 `json:"current"`
	VoltageDrop float64 `json:"voltage_drop"`
}

// AnalyzeResult is the combined validation and solve outcome for one
// circuit spec.
type AnalyzeResult struct {
	RunID      string             `json:"run_id,omitempty"`
	Status     string             `json:"status"`
	Report     *validation.Report `json:"report"`
	Summary    string             `json:"summary"`
	Solution   *solver.Solution   `json:"solution,omitempty"`
	Nodes      []NodeReading      `json:"nodes,omitempty"`
	Components []ComponentReading `json:"components,omitempty"`
}

// Validate builds the circuit and runs only the topology checks.
func (s *CircuitService) Validate(spec *ingest.CircuitSpec) (*validation.Report, error) {
	c, err := ingest.ToCircuit(spec)
	if err != nil {
		return nil, err
	}
	return s.validator.Validate(c)
}

// Analyze validates and solves a circuit spec. With gate set, an
// invalid circuit is reported but not solved; otherwise the solver runs
// regardless, matching the engine contract that the two steps are
// composable but independent. A run record is written when a repository
// is configured.
func (s *CircuitService) Analyze(ctx context.Context, spec *ingest.CircuitSpec, userID string, gate bool) (*AnalyzeResult, error) {
	c, err := ingest.ToCircuit(spec)
	if err != nil {
		return nil, err
	}

	report, err := s.validator.Validate(c)
	if err != nil {
		return nil, err
	}

	result := &AnalyzeResult{
		Status:  domain.StatusCompleted,
		Report:  report,
		Summary: report.Summary(),
	}

	if gate && !report.IsValid() {
		result.Status = domain.StatusInvalid
		s.record(ctx, result, c, userID)
		return result, nil
	}

	sol, err := s.solver.Solve(c)
	if err != nil {
		return nil, err
	}
	result.Solution = sol
	result.Nodes, result.Components = readings(c)

	s.record(ctx, result, c, userID)
	return result, nil
}

// Measure solves the circuit and probes a voltage between two nodes
// and/or a component current, multimeter style.
func (s *CircuitService) Measure(spec *ingest.CircuitSpec, nodeA, nodeB, componentID string) (voltage, current float64, err error) {
	c, err := ingest.ToCircuit(spec)
	if err != nil {
		return 0, 0, err
	}
	if _, err := s.solver.Solve(c); err != nil {
		return 0, 0, err
	}

	if nodeA != "" || nodeB != "" {
		a, okA := c.Nodes[nodeA]
		b, okB := c.Nodes[nodeB]
		if !okA || !okB {
			return 0, 0, domain.ErrNodeNotFound
		}
		voltage = s.probe.MeasureVoltage(a, b)
	}
	if componentID != "" {
		var comp *domain.Component
		for _, have := range c.Components {
			if have.ID == componentID {
				comp = have
				break
			}
		}
		current = s.probe.MeasureCurrent(comp)
	}
	return voltage, current, nil
}

// GetRun retrieves a recorded run. Without a repository no runs exist.
func (s *CircuitService) GetRun(ctx context.Context, runID string) (*domain.SolveRun, error) {
	if s.runRepo == nil {
		return nil, domain.ErrRunNotFound
	}
	return s.runRepo.GetByRunID(ctx, runID)
}

// ListRunsByUser lists a user's recorded run IDs.
func (s *CircuitService) ListRunsByUser(ctx context.Context, userID string) ([]string, error) {
	if s.runRepo == nil {
		return nil, nil
	}
	return s.runRepo.ListByUserID(ctx, userID)
}

// DeleteRun removes a recorded run.
func (s *CircuitService) DeleteRun(ctx context.Context, runID string) error {
	if s.runRepo == nil {
		return domain.ErrRunNotFound
	}
	return s.runRepo.Delete(ctx, runID)
}

func (s *CircuitService) record(ctx context.Context, result *AnalyzeResult, c *domain.Circuit, userID string) {
	if s.runRepo == nil {
		return
	}
	run := &domain.SolveRun{
		UserID:       userID,
		Status:       result.Status,
		ErrorCount:   len(result.Report.Errors),
		WarningCount: len(result.Report.Warnings),
	}
	if result.Solution != nil {
		run.Converged = result.Solution.Converged
		run.Iterations = result.Solution.Iterations
	}
	if src := c.FirstSource(); src != nil {
		run.SourceAmps = src.Current
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		// Run bookkeeping must not fail the analysis itself.
		s.log.Error("record solve run", "error", err)
		return
	}
	result.RunID = run.RunID
}

func readings(c *domain.Circuit) ([]NodeReading, []ComponentReading) {
	nodes := make([]NodeReading, 0, len(c.Nodes))
	for _, n := range c.NodeOrder() {
		nodes = append(nodes, NodeReading{ID: n.ID, Voltage: n.Voltage})
	}
	comps := make([]ComponentReading, 0, len(c.Components))
	for _, comp := range c.Components {
		comps = append(comps, ComponentReading{
			ID:          comp.ID,
			Kind:        string(comp.Kind),
			Current:     comp.Current,
			VoltageDrop: comp.VoltageDrop,
		})
	}
	return nodes, comps
}
