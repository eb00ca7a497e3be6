package controllers

import (
	"errors"
	"net/http"

	"github.com/bhumika0029/polling-app/api/models"
	"github.com/bhumika0029/polling-app/api/transport"
	"github.com/bhumika0029/polling-app/polls"
	"github.com/bhumika0029/polling-app/storage"
	"github.com/gin-gonic/gin"
)

type PollController struct {
	creator    polls.PollCreator
	sessions   storage.SessionStorage
	registry   *FeedRegistry
	maxChoices int
}

func NewPollController(creator polls.PollCreator, sessions storage.SessionStorage, registry *FeedRegistry, maxChoices int) *PollController {
	return &PollController{
		creator:    creator,
		sessions:   sessions,
		registry:   registry,
		maxChoices: maxChoices,
	}
}

func (c *PollController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/polls", transport.SessionMiddleware(c.sessions))

	group.POST("", c.create)
}

// create godoc
// @Summary Create a poll
// @Description Validates the poll and forwards it to the polls API; requires a signed in session
// @Tags polls
// @Accept json
// @Produce json
// @Param x-session-id header string true "Viewer session"
// @Param poll body models.CreatePollRequest true "Poll"
// @Success 201 {object} models.CreatePollResponse
// @Failure 400 {object} models.ErrorResponse "Invalid poll"
// @Failure 401 {object} models.CreatePollResponse "Login required or session expired"
// @Failure 502 {object} models.CreatePollResponse "Poll rejected upstream"
// @Router /api/polls [post]
func (c *PollController) create(g *gin.Context) {
	var req models.CreatePollRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	signals := newRequestSignals(g, c.sessions, c.registry)
	author := polls.NewAuthor(c.creator, signals, signals, c.maxChoices)

	res, err := author.CreatePoll(g.Request.Context(), transport.CurrentSession(g), req.ToNewPoll())
	switch {
	case err == nil:
		g.JSON(http.StatusCreated, &models.CreatePollResponse{
			Success: res.Success,
			Message: res.Message,
			Notices: signals.notices,
		})
	case errors.Is(err, polls.ErrInvalidPoll):
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, polls.ErrLoginRequired), errors.Is(err, polls.ErrUnauthorized):
		g.JSON(http.StatusUnauthorized, &models.CreatePollResponse{Notices: signals.notices, Redirect: signals.redirect})
	default:
		g.JSON(http.StatusBadGateway, &models.CreatePollResponse{Notices: signals.notices})
	}
}
