package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cottington/wealth-calculator/internal/api/models"
	"github.com/cottington/wealth-calculator/internal/calculation"
	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/cottington/wealth-calculator/internal/output"
	"github.com/cottington/wealth-calculator/internal/session"
	"github.com/cottington/wealth-calculator/pkg/money"
	"github.com/gin-gonic/gin"
)

// SessionHandler serves the stateful endpoints. Each session keeps its last
// result, and reports are rendered from it without recomputing.
type SessionHandler struct {
	engine   *calculation.CalculationEngine
	store    *session.Store
	currency string
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(engine *calculation.CalculationEngine, store *session.Store, currency string) *SessionHandler {
	return &SessionHandler{engine: engine, store: store, currency: currency}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	var req models.SessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
			_ = c.Error(err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
			})
			return
		}
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = h.currency
	}
	if !money.ValidCurrency(currency) {
		respondError(c, domain.InvalidParameter("currency", "unknown currency code %q", req.Currency))
		return
	}
	sess := h.store.Create(strings.TrimSpace(req.ClientName), currency)
	c.JSON(http.StatusCreated, sessionResponse(sess))
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(c *gin.Context) {
	sessions := h.store.List()
	resp := models.SessionListResponse{Sessions: make([]models.SessionResponse, 0, len(sessions))}
	for _, sess := range sessions {
		item := sessionResponse(sess)
		item.Analysis = nil
		resp.Sessions = append(resp.Sessions, item)
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// Update handles PATCH /api/v1/sessions/:id. Only the client name can change;
// the currency is fixed when the session is opened.
func (h *SessionHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.store.Get(id); err != nil {
		respondError(c, err)
		return
	}
	var req models.SessionRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Currency != "" {
		respondError(c, domain.InvalidParameter("currency", "cannot be changed after the session is opened"))
		return
	}
	client := strings.TrimSpace(req.ClientName)
	if client == "" {
		respondError(c, domain.InvalidParameter("client_name", "must not be empty"))
		return
	}
	if _, err := h.store.Rename(id, client); err != nil {
		respondError(c, err)
		return
	}
	sess, err := h.store.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// Delete handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Project handles POST /api/v1/sessions/:id/projection
func (h *SessionHandler) Project(c *gin.Context) {
	id := c.Param("id")
	sess, err := h.store.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	var req models.ProjectionRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.engine.RunProjection(c.Request.Context(), req.ToParameters())
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := h.store.SaveProjection(id, res); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectionResponse(id, res, sess.Currency))
}

// Goal handles POST /api/v1/sessions/:id/goal
func (h *SessionHandler) Goal(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.store.Get(id); err != nil {
		respondError(c, err)
		return
	}
	var req models.GoalRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.engine.RunGoal(c.Request.Context(), req.ToParameters())
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := h.store.SaveGoal(id, res); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.GoalResponse{SessionID: id, Result: res})
}

// Report handles GET /api/v1/sessions/:id/report?format=html&client=...&schedule_rows=N
func (h *SessionHandler) Report(c *gin.Context) {
	id := c.Param("id")
	sess, err := h.store.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	analysis := sess.Analysis
	if client := strings.TrimSpace(c.Query("client")); client != "" && analysis != nil {
		renamed := *analysis
		renamed.ClientName = client
		analysis = &renamed
	}

	opts := output.Options{}
	if raw := c.Query("schedule_rows"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, domain.InvalidParameter("schedule_rows", "must be a non-negative integer, got %q", raw))
			return
		}
		opts.ScheduleRows = n
	}

	data, f, err := output.Render(analysis, c.DefaultQuery("format", "html"), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	filename := output.ReportFilename(analysis.ClientName, f.Extension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType(f.Extension()), data)
}

func contentType(ext string) string {
	switch ext {
	case "html":
		return "text/html; charset=utf-8"
	case "json":
		return "application/json; charset=utf-8"
	case "csv":
		return "text/csv; charset=utf-8"
	case "md":
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func sessionResponse(s session.Session) models.SessionResponse {
	return models.SessionResponse{
		SessionID:  s.ID,
		ClientName: s.ClientName,
		Currency:   s.Currency,
		CreatedAt:  s.CreatedAt,
		LastActive: s.LastActive,
		Analysis:   s.Analysis,
	}
}

func projectionResponse(id string, res *domain.ProjectionResult, currency string) models.ProjectionResponse {
	adv := output.AnalyzeProjection(res, currency)
	return models.ProjectionResponse{
		SessionID: id,
		Result:    res,
		Summary: models.ProjectionSummary{
			Warning:         adv.Warning,
			Advice:          adv.Advice,
			ShieldedOutcome: adv.ShieldedOutcome,
		},
	}
}
