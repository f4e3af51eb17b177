package dto

import (
	"time"

	"workmatch/internal/usecase"

	"github.com/google/uuid"
)

type SessionResponse struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	AccessToken string    `json:"access_token"`
	CSRFToken   string    `json:"csrf_token"`
	ExpiresAt   string    `json:"expires_at"`
}

func NewSessionResponse(s usecase.Session) SessionResponse {
	return SessionResponse{
		ID:          s.ID,
		Role:        s.Role,
		Name:        s.Name,
		Email:       s.Email,
		AccessToken: s.AccessToken,
		CSRFToken:   s.CSRFToken,
		ExpiresAt:   formatTime(s.ExpiresAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := formatTime(*t)
	return &s
}
