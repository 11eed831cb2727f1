package http

import (
	"errors"
	"net/http"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
	"github.com/gin-gonic/gin"
)

// CreateSession registers a circuit for periodic live re-solving.
// Readings are published on the session's Redis channel.
func (h *Handler) CreateSession(c *gin.Context) {
	var body circuitRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := h.live.Create(body.Circuit, userID(c))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetSession returns a live session and extends its lifetime.
func (h *Handler) GetSession(c *gin.Context) {
	session, err := h.live.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// DeleteSession stops live re-solving for a session.
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.live.Delete(c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
