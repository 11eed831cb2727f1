package http

import "github.com/gin-gonic/gin"

// Register registers the circuit routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/circuits/validate", h.ValidateCircuit)
	rg.POST("/circuits/solve", h.SolveCircuit)
	rg.POST("/circuits/measure", h.MeasureCircuit)

	rg.POST("/live", h.CreateSession)
	rg.GET("/live/:id", h.GetSession)
	rg.DELETE("/live/:id", h.DeleteSession)

	rg.GET("/runs", h.ListRuns)
	rg.GET("/runs/:id", h.GetRun)
	rg.DELETE("/runs/:id", h.DeleteRun)
}
