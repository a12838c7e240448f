package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/tanzeemhub/reports-go/internal/api/handlers"
	"github.com/tanzeemhub/reports-go/internal/api/middleware"
	"github.com/tanzeemhub/reports-go/internal/api/routes"
	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/internal/config"
	"github.com/tanzeemhub/reports-go/internal/config/db"
	"github.com/tanzeemhub/reports-go/internal/cron"
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/internal/seed"
	"github.com/tanzeemhub/reports-go/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repos := repository.New(db.DB)

	if err := seed.HierarchyFromFile(repos, config.HierarchySeedPath); err != nil {
		log.Fatalf("Failed to seed hierarchy: %v", err)
	}

	blobs, err := storage.NewMinioStore()
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	hub := notify.NewHub()
	dispatcher := notify.Multi{notify.LogDispatcher{}, hub}

	services := application.New(repos, dispatcher, blobs)

	// Start background tasks
	cron.StartCleanupTask(services.Audit, config.AuditRetentionDays)

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	h := handlers.New(services, repos, hub, router)
	routes.RegisterRoutes(h)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
