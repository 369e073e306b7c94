package handlers

import (
	"errors"
	"net/http"

	"github.com/cottington/wealth-calculator/internal/api/models"
	"github.com/cottington/wealth-calculator/internal/calculation"
	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/cottington/wealth-calculator/internal/output"
	"github.com/cottington/wealth-calculator/internal/session"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to its HTTP status and error code.
func respondError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	var details map[string]interface{}

	switch {
	case errors.Is(err, domain.ErrInvalidParameter):
		status, code = http.StatusBadRequest, "INVALID_PARAMETER"
		var pe *domain.ParameterError
		if errors.As(err, &pe) {
			details = map[string]interface{}{"field": pe.Field}
		}
	case errors.Is(err, calculation.ErrUnsolvableGoal):
		status, code = http.StatusUnprocessableEntity, "UNSOLVABLE_GOAL"
	case errors.Is(err, session.ErrSessionNotFound):
		status, code = http.StatusNotFound, "SESSION_NOT_FOUND"
	case errors.Is(err, output.ErrNoResult):
		status, code = http.StatusConflict, "NO_RESULT"
	case errors.Is(err, output.ErrUnsupportedFormat):
		status, code = http.StatusBadRequest, "UNSUPPORTED_FORMAT"
	}

	_ = c.Error(err)
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
			Details: details,
		},
	})
}

// bindJSON decodes the request body. Malformed frequencies and timings
// surface as INVALID_PARAMETER, anything else as INVALID_REQUEST.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, domain.ErrInvalidParameter) {
			respondError(c, err)
			return false
		}
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return false
	}
	return true
}
