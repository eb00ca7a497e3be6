package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bhumika0029/polling-app/api/models"
	"github.com/bhumika0029/polling-app/api/transport"
	"github.com/bhumika0029/polling-app/logging"
	"github.com/bhumika0029/polling-app/polls"
	"github.com/bhumika0029/polling-app/storage"
	"github.com/gin-gonic/gin"
)

type FeedController struct {
	source   polls.PollSource
	votes    polls.VoteSubmitter
	sessions storage.SessionStorage
	registry *FeedRegistry
	options  polls.FeedOptions
	resolver polls.Resolver
	now      func() time.Time
}

func NewFeedController(source polls.PollSource, votes polls.VoteSubmitter, sessions storage.SessionStorage, registry *FeedRegistry, options polls.FeedOptions, resolver polls.Resolver) *FeedController {
	return &FeedController{
		source:   source,
		votes:    votes,
		sessions: sessions,
		registry: registry,
		options:  options,
		resolver: resolver,
		now:      time.Now,
	}
}

func (c *FeedController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/feeds", transport.SessionMiddleware(c.sessions))

	group.POST("", c.open)
	group.GET("/:id", c.get)
	group.POST("/:id/more", c.loadMore)
	group.POST("/:id/refresh", c.refresh)
	group.DELETE("/:id", c.closeFeed)
	group.PUT("/:id/selections/:index", c.selectChoice)
	group.POST("/:id/votes/:index", c.submitVote)
}

// open godoc
// @Summary Open a poll feed
// @Description Opens a feed for a scope (global, created or voted) and loads its first page
// @Tags feeds
// @Accept json
// @Produce json
// @Param x-session-id header string false "Viewer session"
// @Param feed body models.OpenFeedRequest true "Feed scope"
// @Success 201 {object} models.FeedResponse
// @Failure 400 {object} models.ErrorResponse "Invalid scope"
// @Failure 401 {object} models.ErrorResponse "Unknown session"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/feeds [post]
func (c *FeedController) open(g *gin.Context) {
	var req models.OpenFeedRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	scope := polls.Scope{Kind: polls.ScopeKind(req.Scope), Username: req.Username}
	if req.Scope == "" {
		scope.Kind = polls.ScopeGlobal
	}

	feed, err := polls.NewFeed(c.source, scope, c.options)
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
		return
	}

	owner := g.GetHeader(transport.SessionHeader)
	id, err := c.registry.Add(owner, feed)
	if err != nil {
		logging.Log.Errorf("FEED: failed to register feed: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not open feed"})
		return
	}

	feed.Load(g.Request.Context(), transport.CurrentSession(g), 0)
	g.JSON(http.StatusCreated, c.view(id, feed, nil))
}

// get godoc
// @Summary Get a feed
// @Description Renders the feed with each poll in active or results mode
// @Tags feeds
// @Produce json
// @Param x-session-id header string false "Viewer session"
// @Param id path string true "Feed ID"
// @Success 200 {object} models.FeedResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/feeds/{id} [get]
func (c *FeedController) get(g *gin.Context) {
	id, feed, ok := c.lookup(g)
	if !ok {
		return
	}
	g.JSON(http.StatusOK, c.view(id, feed, nil))
}

// loadMore godoc
// @Summary Load the next page
// @Description Appends the next page of polls; does nothing on the last page or while loading
// @Tags feeds
// @Produce json
// @Param x-session-id header string false "Viewer session"
// @Param id path string true "Feed ID"
// @Success 200 {object} models.FeedResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/feeds/{id}/more [post]
func (c *FeedController) loadMore(g *gin.Context) {
	id, feed, ok := c.lookup(g)
	if !ok {
		return
	}
	feed.LoadMore(g.Request.Context(), transport.CurrentSession(g))
	g.JSON(http.StatusOK, c.view(id, feed, nil))
}

// refresh godoc
// @Summary Refresh a feed
// @Description Drops all polls and tentative selections and reloads the first page
// @Tags feeds
// @Produce json
// @Param x-session-id header string false "Viewer session"
// @Param id path string true "Feed ID"
// @Success 200 {object} models.FeedResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/feeds/{id}/refresh [post]
func (c *FeedController) refresh(g *gin.Context) {
	id, feed, ok := c.lookup(g)
	if !ok {
		return
	}
	feed.Refresh(g.Request.Context(), transport.CurrentSession(g))
	g.JSON(http.StatusOK, c.view(id, feed, nil))
}

// closeFeed godoc
// @Summary Close a feed
// @Tags feeds
// @Param x-session-id header string false "Viewer session"
// @Param id path string true "Feed ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/feeds/{id} [delete]
func (c *FeedController) closeFeed(g *gin.Context) {
	if !c.registry.Remove(g.GetHeader(transport.SessionHeader), g.Param("id")) {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "feed not found"})
		return
	}
	g.Status(http.StatusNoContent)
}

// selectChoice godoc
// @Summary Pick a choice
// @Description Stores the viewer's tentative choice for the poll at index; nothing is sent upstream
// @Tags feeds
// @Accept json
// @Produce json
// @Param x-session-id header string false "Viewer session"
// @Param id path string true "Feed ID"
// @Param index path int true "Poll position in the feed"
// @Param choice body models.SelectChoiceRequest true "Choice"
// @Success 200 {object} models.FeedResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/feeds/{id}/selections/{index} [put]
func (c *FeedController) selectChoice(g *gin.Context) {
	id, feed, ok := c.lookup(g)
	if !ok {
		return
	}
	index, ok := parseIndex(g)
	if !ok {
		return
	}

	var req models.SelectChoiceRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.ChoiceID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "choiceId is required"})
		return
	}

	if err := feed.Select(index, req.ChoiceID); err != nil {
		c.writeFeedError(g, err)
		return
	}
	g.JSON(http.StatusOK, c.view(id, feed, nil))
}

// submitVote godoc
// @Summary Vote
// @Description Casts the tentative choice for the poll at index and replaces that poll with the server's copy
// @Tags feeds
// @Produce json
// @Param x-session-id header string false "Viewer session"
// @Param id path string true "Feed ID"
// @Param index path int true "Poll position in the feed"
// @Success 200 {object} models.FeedResponse
// @Failure 400 {object} models.ErrorResponse "No choice selected"
// @Failure 401 {object} models.FeedResponse "Login required or session expired"
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.FeedResponse "Vote rejected upstream"
// @Router /api/feeds/{id}/votes/{index} [post]
func (c *FeedController) submitVote(g *gin.Context) {
	id, feed, ok := c.lookup(g)
	if !ok {
		return
	}
	index, ok := parseIndex(g)
	if !ok {
		return
	}

	signals := newRequestSignals(g, c.sessions, c.registry)
	voter := polls.NewVoter(c.votes, signals, signals, c.options.MaxChoices)

	err := voter.SubmitVote(g.Request.Context(), transport.CurrentSession(g), feed, index)
	switch {
	case err == nil:
		g.JSON(http.StatusOK, c.view(id, feed, signals))
	case errors.Is(err, polls.ErrLoginRequired), errors.Is(err, polls.ErrUnauthorized):
		g.JSON(http.StatusUnauthorized, c.view(id, feed, signals))
	case errors.Is(err, polls.ErrNoSelection), errors.Is(err, polls.ErrIndexOutOfRange), errors.Is(err, polls.ErrFeedClosed):
		c.writeFeedError(g, err)
	default:
		g.JSON(http.StatusBadGateway, c.view(id, feed, signals))
	}
}

func (c *FeedController) lookup(g *gin.Context) (string, *polls.Feed, bool) {
	id := g.Param("id")
	feed, ok := c.registry.Get(g.GetHeader(transport.SessionHeader), id)
	if !ok {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "feed not found"})
		return "", nil, false
	}
	return id, feed, true
}

func (c *FeedController) view(id string, feed *polls.Feed, signals *requestSignals) models.FeedResponse {
	res := models.TransformFeedState(id, feed.Snapshot(), c.resolver, c.now())
	if signals != nil {
		res.Notices = signals.notices
		res.Redirect = signals.redirect
	}
	return res
}

func (c *FeedController) writeFeedError(g *gin.Context, err error) {
	switch {
	case errors.Is(err, polls.ErrNoSelection):
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, polls.ErrIndexOutOfRange), errors.Is(err, polls.ErrFeedClosed):
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: err.Error()})
	default:
		logging.Log.Errorf("FEED: unexpected error: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "unexpected error"})
	}
}

func parseIndex(g *gin.Context) (int, bool) {
	index, err := strconv.Atoi(g.Param("index"))
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "index must be a number"})
		return 0, false
	}
	return index, true
}
