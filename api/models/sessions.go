package models

import (
	"time"

	"github.com/bhumika0029/polling-app/storage"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateSessionRequest opens a viewer session. Leaving AccessToken empty
// creates an anonymous session that can browse but not vote.
type CreateSessionRequest struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	AccessToken string `json:"accessToken"`
}

type SessionResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username,omitempty"`
	Name          string    `json:"name,omitempty"`
	Authenticated bool      `json:"authenticated"`
	CreatedAt     time.Time `json:"createdAt"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

func TransformSessionFromStorage(s *storage.Session) SessionResponse {
	return SessionResponse{
		ID:            s.ID,
		Username:      s.Username,
		Name:          s.Name,
		Authenticated: s.AccessToken != "",
		CreatedAt:     s.CreatedAt,
	}
}
