package controllers

import (
	"errors"
	"net/http"

	"github.com/bhumika0029/polling-app/api/models"
	"github.com/bhumika0029/polling-app/api/transport"
	"github.com/bhumika0029/polling-app/logging"
	"github.com/bhumika0029/polling-app/storage"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const sessionIDLength = 24

type SessionController struct {
	sessions storage.SessionStorage
	registry *FeedRegistry
}

func NewSessionController(s storage.SessionStorage, registry *FeedRegistry) *SessionController {
	return &SessionController{
		sessions: s,
		registry: registry,
	}
}

func (c *SessionController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/sessions")

	group.POST("", c.create)
	group.GET("/:id", c.get)
	group.DELETE("/:id", c.logout)
}

// create godoc
// @Summary Create a viewer session
// @Description Stores the viewer's identity and upstream access token; without a token the session is anonymous
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body models.CreateSessionRequest true "Viewer"
// @Success 201 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/sessions [post]
func (c *SessionController) create(g *gin.Context) {
	var req models.CreateSessionRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.AccessToken != "" && req.Username == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "username is required with an access token"})
		return
	}

	id, err := gonanoid.New(sessionIDLength)
	if err != nil {
		logging.Log.Errorf("SESSION: failed to generate id: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create session"})
		return
	}

	session := &storage.Session{
		ID:          id,
		Username:    req.Username,
		Name:        req.Name,
		AccessToken: req.AccessToken,
	}
	if err := c.sessions.Create(g.Request.Context(), session); err != nil {
		if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
			g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "session already exists"})
			return
		}
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create session"})
		return
	}

	logging.Log.Infof("SESSION: created session for %q", req.Username)
	g.JSON(http.StatusCreated, models.TransformSessionFromStorage(session))
}

// get godoc
// @Summary Get a viewer session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.SessionResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/sessions/{id} [get]
func (c *SessionController) get(g *gin.Context) {
	s, err := c.sessions.Get(g.Request.Context(), g.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "session not found"})
			return
		}
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load session"})
		return
	}
	g.JSON(http.StatusOK, models.TransformSessionFromStorage(s))
}

// logout godoc
// @Summary Log out
// @Description Deletes the session and closes every feed it opened
// @Tags sessions
// @Produce json
// @Param x-session-id header string true "Viewer session, must match id"
// @Param id path string true "Session ID"
// @Success 200 {object} models.LogoutResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/sessions/{id} [delete]
func (c *SessionController) logout(g *gin.Context) {
	id := g.Param("id")
	if g.GetHeader(transport.SessionHeader) != id {
		g.JSON(http.StatusForbidden, &models.ErrorResponse{Error: "can only log out of your own session"})
		return
	}
	if err := c.sessions.Delete(g.Request.Context(), id); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete session"})
		return
	}

	closed := c.registry.RemoveOwnedBy(id)
	logging.Log.Infof("SESSION: logged out, closed %d feeds", closed)
	g.JSON(http.StatusOK, &models.LogoutResponse{Message: "You're successfully logged out."})
}
