package http

import (
	"errors"
	"net/http"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
	"github.com/gin-gonic/gin"
)

// ValidateCircuit runs only the topology checks and returns the report.
func (h *Handler) ValidateCircuit(c *gin.Context) {
	var body circuitRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, err := h.svc.Validate(body.Circuit)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":   report.IsValid(),
		"report":  report,
		"summary": report.Summary(),
	})
}

// SolveCircuit validates and solves a circuit. With ?gate=strict an
// invalid circuit is reported without being solved.
func (h *Handler) SolveCircuit(c *gin.Context) {
	var body circuitRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	gate := c.Query("gate") == "strict"
	result, err := h.svc.Analyze(c.Request.Context(), body.Circuit, userID(c), gate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// MeasureCircuit solves the circuit and returns multimeter readings for
// the requested node pair and/or component.
func (h *Handler) MeasureCircuit(c *gin.Context) {
	var body circuitRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if body.NodeA == "" && body.NodeB == "" && body.Component == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to measure: supply node_a/node_b or component"})
		return
	}

	voltage, current, err := h.svc.Measure(body.Circuit, body.NodeA, body.NodeB, body.Component)
	if err != nil {
		if errors.Is(err, domain.ErrNodeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "node not found in circuit"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"voltage": voltage, "current": current})
}

// GetRun retrieves a recorded solve run by ID.
func (h *Handler) GetRun(c *gin.Context) {
	runID := c.Param("id")
	if runID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "run ID is required"})
		return
	}

	run, err := h.svc.GetRun(c.Request.Context(), runID)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get run"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"run": run})
}

// ListRuns lists the caller's recorded run IDs.
func (h *Handler) ListRuns(c *gin.Context) {
	ids, err := h.svc.ListRunsByUser(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_ids": ids})
}

// DeleteRun removes a recorded run.
func (h *Handler) DeleteRun(c *gin.Context) {
	runID := c.Param("id")
	if runID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "run ID is required"})
		return
	}

	if err := h.svc.DeleteRun(c.Request.Context(), runID); err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete run"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": runID})
}
