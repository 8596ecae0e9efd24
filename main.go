package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"sitelog/client"
	"sitelog/config"
	"sitelog/routes"
	"sitelog/session"
	"sitelog/utils"
	"sitelog/views"
)

func main() {
	// Initialize logger
	logger := log.New(os.Stdout, "SITELOG: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	utils.SetupLogger(config.AppConfig.Environment)

	if dsn := config.AppConfig.SentryDSN; dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: config.AppConfig.Environment,
		}); err != nil {
			logger.Fatalf("Failed to initialize Sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Pick the session store: Redis survives restarts and is shared across
	// replicas, the in-memory store covers local development.
	var store session.Store
	if config.AppConfig.Redis.Enabled {
		redisStore := session.NewRedisStore(config.AppConfig.Redis, config.AppConfig.SessionTTL)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisStore.Ping(ctx); err != nil {
			cancel()
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		cancel()
		defer redisStore.Close()
		store = redisStore
	} else {
		store = session.NewMemoryStore(config.AppConfig.SessionTTL)
	}

	// API client shares the teams cache with the session store so team
	// names stay available when the backend is briefly unreachable.
	api := client.New(config.AppConfig.APIBaseURL, config.AppConfig.APITimeout, store)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:   views.Engine(),
		AppName: "sitelog",
	})

	// Health check endpoint
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "running",
			"version": "1.0.0",
		})
	})

	// Setup routes
	routes.SetupRoutes(app, api, store)

	// Start server
	logger.Printf("🚀 Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
