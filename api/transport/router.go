package transport

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/bhumika0029/polling-app/logging"
	"github.com/bhumika0029/polling-app/polls"
	"github.com/bhumika0029/polling-app/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	SessionHeader   = "x-session-id"
	RequestIDHeader = "x-request-id"

	contextSession = "session"
)

func NewRouter(ginMode string) *gin.Engine {
	gin.SetMode(ginMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(), CORSMiddleware())

	//Bypass swagger for non-local
	if os.Getenv("APP_ENV") == "local" {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.NoRoute(NoRouteHandler())

	return engine
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+SessionHeader+", "+RequestIDHeader)

		if c.Request.Method == "OPTIONS" {
			logging.Log.Infof("OPTIONS request received:%s", c.Request.URL.Path)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestLogger tags every request with an id and logs it once it is done.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()

		logging.Log.WithFields(logrus.Fields{
			"request_id": id,
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"latency":    time.Since(start).String(),
		}).Info("request")
	}
}

func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logging.Log.Infof("No routed request received for:%s", c.Request.URL.Path)
		c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
	}
}

// SessionMiddleware resolves the x-session-id header into a polls.Session.
// Requests without the header browse anonymously; an unknown or expired id
// is rejected so the client can sign in again.
func SessionMiddleware(sessions storage.SessionStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			c.Set(contextSession, polls.Session{})
			c.Next()
			return
		}

		s, err := sessions.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrSessionNotFound) {
				logging.Log.Warnf("SESSION: unknown session on %s", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			logging.Log.Errorf("SESSION: failed to load session: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not load session"})
			return
		}

		c.Set(contextSession, polls.Session{Username: s.Username, Name: s.Name, AccessToken: s.AccessToken})
		c.Next()
	}
}

// CurrentSession returns the session stored by SessionMiddleware.
func CurrentSession(c *gin.Context) polls.Session {
	if v, ok := c.Get(contextSession); ok {
		if s, ok := v.(polls.Session); ok {
			return s
		}
	}
	return polls.Session{}
}
