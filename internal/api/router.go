// Package api exposes the calculator over HTTP.
package api

import (
	"net/http"

	"github.com/cottington/wealth-calculator/internal/api/handlers"
	"github.com/cottington/wealth-calculator/internal/api/middleware"
	"github.com/cottington/wealth-calculator/internal/api/models"
	"github.com/cottington/wealth-calculator/internal/calculation"
	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/cottington/wealth-calculator/internal/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the collaborators of the HTTP layer.
type Deps struct {
	Engine         *calculation.CalculationEngine
	Sessions       *session.Store
	Logger         *zap.Logger
	AllowedOrigins []string
	Currency       string
}

// NewRouter wires middleware, handlers and routes.
func NewRouter(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Currency == "" {
		d.Currency = domain.DefaultCurrency
	}
	if len(d.AllowedOrigins) == 0 {
		d.AllowedOrigins = []string{"*"}
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(d.Logger))
	router.Use(middleware.Logger(d.Logger))
	router.Use(middleware.CORS(d.AllowedOrigins))

	calculator := handlers.NewCalculatorHandler(d.Engine, d.Currency)
	sessions := handlers.NewSessionHandler(d.Engine, d.Sessions, d.Currency)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		body := gin.H{"status": "ok"}
		if d.Sessions != nil {
			body["sessions"] = d.Sessions.Len()
		}
		c.JSON(http.StatusOK, body)
	})

	api := router.Group("/api/v1")
	{
		api.POST("/projection", calculator.Project)
		api.POST("/goal", calculator.Goal)
		api.GET("/formats", calculator.Formats)

		api.GET("/sessions", sessions.List)
		api.POST("/sessions", sessions.Create)
		api.GET("/sessions/:id", sessions.Get)
		api.PATCH("/sessions/:id", sessions.Update)
		api.DELETE("/sessions/:id", sessions.Delete)
		api.POST("/sessions/:id/projection", sessions.Project)
		api.POST("/sessions/:id/goal", sessions.Goal)
		api.GET("/sessions/:id/report", sessions.Report)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "Not found"},
		})
	})
	return router
}
