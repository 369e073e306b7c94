package models

import (
	"time"

	"github.com/cottington/wealth-calculator/internal/domain"
)

// ProjectionResponse wraps a projection with its advisory text.
type ProjectionResponse struct {
	SessionID string                   `json:"session_id,omitempty"`
	Result    *domain.ProjectionResult `json:"result"`
	Summary   ProjectionSummary        `json:"summary"`
}

// ProjectionSummary carries the sentences shown next to the figures.
type ProjectionSummary struct {
	Warning         string `json:"warning"`
	Advice          string `json:"advice"`
	ShieldedOutcome string `json:"shielded_outcome"`
}

// GoalResponse wraps a goal result.
type GoalResponse struct {
	SessionID string             `json:"session_id,omitempty"`
	Result    *domain.GoalResult `json:"result"`
}

// SessionResponse describes a session.
type SessionResponse struct {
	SessionID  string           `json:"session_id"`
	ClientName string           `json:"client_name"`
	Currency   string           `json:"currency"`
	CreatedAt  time.Time        `json:"created_at"`
	LastActive time.Time        `json:"last_active"`
	Analysis   *domain.Analysis `json:"analysis,omitempty"`
}

// SessionListResponse lists the live sessions, oldest first.
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// FormatsResponse lists the report formats.
type FormatsResponse struct {
	Formats []string `json:"formats"`
	Aliases []string `json:"aliases"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
