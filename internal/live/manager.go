// Package live keeps in-memory live sessions: circuits registered for
// periodic re-solving, with readings fanned out over Redis Pub/Sub.
// The engine itself has no scheduling; this is the caller-side loop.
package live

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/ingest"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/repository"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/service"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/solver"
	"github.com/google/uuid"
)

// DefaultSessionTTL is how long a session stays alive without being
// refreshed by a Get.
const DefaultSessionTTL = 10 * time.Minute

// Session is the metadata of one registered live circuit. Callers get
// value snapshots; the authoritative copy lives inside the manager and
// is only touched under its lock, so a snapshot can be marshalled while
// the re-solve tick runs.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastSolvedAt time.Time `json:"last_solved_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// liveCircuit pairs the session metadata with the circuit it re-solves.
type liveCircuit struct {
	meta    Session
	circuit *domain.Circuit
}

// Reading is the payload published after each re-solve.
type Reading struct {
	SessionID  string                     `json:"session_id"`
	SolvedAt   time.Time                  `json:"solved_at"`
	Converged  bool                       `json:"converged"`
	Nodes      []service.NodeReading      `json:"nodes"`
	Components []service.ComponentReading `json:"components"`
}

// Manager owns the session table. All circuit solves go through the
// manager's lock, so at most one solve runs per circuit at a time.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*liveCircuit

	solver  *solver.Solver
	runRepo *repository.RunRepository
	ttl     time.Duration
	log     *slog.Logger
}

// NewManager creates a Manager. runRepo may be nil, in which case
// readings are solved but not published anywhere.
func NewManager(runRepo *repository.RunRepository, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		sessions: map[string]*liveCircuit{},
		solver:   solver.New(logger),
		runRepo:  runRepo,
		ttl:      DefaultSessionTTL,
		log:      logger,
	}
}

// TuneSolver overrides the solver's iteration budget and tolerance.
// Zero values leave the corresponding default in place.
func (m *Manager) TuneSolver(maxIterations int, tolerance float64) {
	if maxIterations > 0 {
		m.solver.MaxIterations = maxIterations
	}
	if tolerance > 0 {
		m.solver.Tolerance = tolerance
	}
}

// Create registers a circuit spec as a live session and returns a
// snapshot of its metadata.
func (m *Manager) Create(spec *ingest.CircuitSpec, userID string) (Session, error) {
	c, err := ingest.ToCircuit(spec)
	if err != nil {
		return Session{}, err
	}
	now := time.Now()
	meta := Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	m.mu.Lock()
	m.sessions[meta.ID] = &liveCircuit{meta: meta, circuit: c}
	m.mu.Unlock()
	return meta, nil
}

// Get returns a snapshot of a session and extends its lifetime.
func (m *Manager) Get(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, domain.ErrSessionNotFound
	}
	s.meta.ExpiresAt = time.Now().Add(m.ttl)
	return s.meta, nil
}

// Delete removes a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// SolveAll re-solves every live circuit, publishes the readings, and
// drops expired sessions. Called from the scheduler tick.
func (m *Manager) SolveAll(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, s := range m.sessions {
		if now.After(s.meta.ExpiresAt) {
			delete(m.sessions, id)
			m.log.Info("live session expired", "session", id)
			continue
		}
		sol, err := m.solver.Solve(s.circuit)
		if err != nil {
			m.log.Error("live re-solve failed", "session", id, "error", err)
			continue
		}
		s.meta.LastSolvedAt = now

		if m.runRepo == nil {
			continue
		}
		nodes, comps := readings(s.circuit)
		reading := Reading{
			SessionID:  id,
			SolvedAt:   now,
			Converged:  sol.Converged,
			Nodes:      nodes,
			Components: comps,
		}
		if err := m.runRepo.PublishReading(ctx, id, reading); err != nil {
			m.log.Error("publish live reading", "session", id, "error", err)
		}
	}
}

func readings(c *domain.Circuit) ([]service.NodeReading, []service.ComponentReading) {
	nodes := make([]service.NodeReading, 0, len(c.Nodes))
	for _, n := range c.NodeOrder() {
		nodes = append(nodes, service.NodeReading{ID: n.ID, Voltage: n.Voltage})
	}
	comps := make([]service.ComponentReading, 0, len(c.Components))
	for _, comp := range c.Components {
		comps = append(comps, service.ComponentReading{
			ID:          comp.ID,
			Kind:        string(comp.Kind),
			Current:     comp.Current,
			VoltageDrop: comp.VoltageDrop,
		})
	}
	return nodes, comps
}
