package handlers

import (
	"net/http"

	"github.com/cottington/wealth-calculator/internal/api/models"
	"github.com/cottington/wealth-calculator/internal/calculation"
	"github.com/cottington/wealth-calculator/internal/output"
	"github.com/gin-gonic/gin"
)

// CalculatorHandler serves the stateless projection and goal endpoints.
type CalculatorHandler struct {
	engine   *calculation.CalculationEngine
	currency string
}

// NewCalculatorHandler creates a new calculator handler
func NewCalculatorHandler(engine *calculation.CalculationEngine, currency string) *CalculatorHandler {
	return &CalculatorHandler{engine: engine, currency: currency}
}

// Project handles POST /api/v1/projection
func (h *CalculatorHandler) Project(c *gin.Context) {
	var req models.ProjectionRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.engine.RunProjection(c.Request.Context(), req.ToParameters())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectionResponse("", res, h.currency))
}

// Goal handles POST /api/v1/goal
func (h *CalculatorHandler) Goal(c *gin.Context) {
	var req models.GoalRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.engine.RunGoal(c.Request.Context(), req.ToParameters())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.GoalResponse{Result: res})
}

// Formats handles GET /api/v1/formats
func (h *CalculatorHandler) Formats(c *gin.Context) {
	c.JSON(http.StatusOK, models.FormatsResponse{
		Formats: output.AvailableFormatterNames(),
		Aliases: output.AvailableFormatAliases(),
	})
}
