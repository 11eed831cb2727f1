package http

import (
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/ingest"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/service"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/live"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for circuit analysis.
type Handler struct {
	svc  *service.CircuitService
	live *live.Manager
}

// New creates a new Handler.
func New(svc *service.CircuitService, liveManager *live.Manager) *Handler {
	return &Handler{svc: svc, live: liveManager}
}

// circuitRequest is the common request body: a circuit spec, optionally
// with probe targets for /measure.
type circuitRequest struct {
	Circuit   *ingest.CircuitSpec `json:"circuit"`
	NodeA     string              `json:"node_a,omitempty"`
	NodeB     string              `json:"node_b,omitempty"`
	Component string              `json:"component,omitempty"`
}

func userID(c *gin.Context) string {
	if uid := c.GetHeader("X-User-Id"); uid != "" {
		return uid
	}
	return "anonymous"
}
