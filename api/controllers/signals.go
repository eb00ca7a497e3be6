package controllers

import (
	"context"

	"github.com/bhumika0029/polling-app/api/models"
	"github.com/bhumika0029/polling-app/api/transport"
	"github.com/bhumika0029/polling-app/logging"
	"github.com/bhumika0029/polling-app/polls"
	"github.com/bhumika0029/polling-app/storage"
	"github.com/gin-gonic/gin"
)

// requestSignals collects the notices and redirect raised while serving one
// request so they can be returned with the response.
type requestSignals struct {
	ctx       context.Context
	sessions  storage.SessionStorage
	registry  *FeedRegistry
	sessionID string

	notices  []models.Notice
	redirect *models.Redirect
}

func newRequestSignals(g *gin.Context, sessions storage.SessionStorage, registry *FeedRegistry) *requestSignals {
	return &requestSignals{
		ctx:       g.Request.Context(),
		sessions:  sessions,
		registry:  registry,
		sessionID: g.GetHeader(transport.SessionHeader),
	}
}

func (s *requestSignals) LoginRequired(redirectTo, message string) {
	s.redirect = &models.Redirect{To: redirectTo, Reason: "login_required", Message: message}
	s.Notify(polls.NoticeInfo, message)
}

// SessionExpired logs the viewer out: the stored session and its feeds are
// dropped before the client is redirected.
func (s *requestSignals) SessionExpired(redirectTo, message string) {
	if s.sessionID != "" {
		if err := s.sessions.Delete(s.ctx, s.sessionID); err != nil {
			logging.Log.Errorf("SESSION: failed to drop expired session: %v", err)
		}
		s.registry.RemoveOwnedBy(s.sessionID)
	}
	s.redirect = &models.Redirect{To: redirectTo, Reason: "session_expired", Message: message}
	s.Notify(polls.NoticeError, message)
}

func (s *requestSignals) Notify(kind polls.NoticeKind, message string) {
	s.notices = append(s.notices, models.Notice{Kind: string(kind), Message: message})
}
