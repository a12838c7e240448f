package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/internal/config"
	"github.com/tanzeemhub/reports-go/internal/config/db"
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/reminder"
	"github.com/tanzeemhub/reports-go/internal/repository"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize database connection
	db.Init()

	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repos := repository.New(db.DB)
	dispatcher := notify.LogDispatcher{}
	windows := application.NewWindowService(repos, dispatcher)

	interval := time.Hour
	if v := os.Getenv("REMINDER_INTERVAL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			interval = time.Duration(minutes) * time.Minute
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan
		log.Println("Shutdown signal")
		cancel()
	}()

	r := reminder.New(windows, repos, dispatcher, interval)
	if err := r.Start(ctx); err != nil && err != context.Canceled {
		log.Printf("Reminder error: %v", err)
	}
}
