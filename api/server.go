package api

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/bhumika0029/polling-app/api/controllers"
	"github.com/bhumika0029/polling-app/api/transport"
	"github.com/bhumika0029/polling-app/logging"
	"github.com/bhumika0029/polling-app/polls"
	"github.com/bhumika0029/polling-app/storage"
	"github.com/bhumika0029/polling-app/upstream"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Create storage
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	sessionStorage := &storage.DynamoSessionStorage{
		Client:    dynamodb.NewFromConfig(cfg),
		TableName: s.config.TableNameSessions,
		TTL:       s.config.SessionTTL,
	}

	pollsAPI, err := upstream.NewClient(s.config.BaseURL, s.config.Timeout)
	if err != nil {
		logging.Log.Errorf("invalid polls api address: %v", err)
		panic("invalid polls api address")
	}

	registry := controllers.NewFeedRegistry(s.config.IdleTimeout)
	options := polls.FeedOptions{
		PageSize:   s.config.PageSize,
		MaxChoices: s.config.MaxChoices,
	}
	resolver := polls.Resolver{WinnerBeforeExpiry: s.config.WinnerBeforeExpiry}

	//Register controllers
	feedController := controllers.NewFeedController(pollsAPI, pollsAPI, sessionStorage, registry, options, resolver)
	feedController.RegisterRoutes(r)
	sessionController := controllers.NewSessionController(sessionStorage, registry)
	sessionController.RegisterRoutes(r)
	pollController := controllers.NewPollController(pollsAPI, sessionStorage, registry, s.config.MaxChoices)
	pollController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a plain HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Infof("Starting server on http://localhost:%d", port)

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
