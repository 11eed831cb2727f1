package domain

import "time"

// SolveRun is the bookkeeping record of one analyze call: who asked,
// whether the solve converged, and how the validation came out. The
// circuit itself is not stored anywhere; only this derived summary is.
type SolveRun struct {
	RunID        string         `json:"run_id"`
	UserID       string         `json:"user_id"`
	Status       string         `json:"status"`
	Converged    bool           `json:"converged"`
	Iterations   int            `json:"iterations"`
	ErrorCount   int            `json:"error_count"`
	WarningCount int            `json:"warning_count"`
	SourceAmps   float64        `json:"source_amps"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// Run status constants.
const (
	StatusCompleted = "completed"
	StatusInvalid   = "invalid"
	StatusFailed    = "failed"
)
