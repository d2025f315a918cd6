package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sageplan/sage-backend/internal/api"
	"github.com/sageplan/sage-backend/internal/config"
	"github.com/sageplan/sage-backend/internal/database"
	"github.com/sageplan/sage-backend/internal/jobs"
	"github.com/sageplan/sage-backend/internal/projection"
	"github.com/sageplan/sage-backend/internal/repository"
	"github.com/sageplan/sage-backend/internal/service"
	"github.com/sageplan/sage-backend/internal/sharetoken"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create repositories
	profileRepo := repository.NewProfileRepository(db)
	scenarioRepo := repository.NewScenarioRepository(db)
	shareRepo := repository.NewShareRepository(db)

	// Select the projection client for the process lifetime
	var projectionClient projection.Client
	if cfg.Projection.DemoMode {
		log.Println("Projection mode: demo (local deterministic projector)")
		projectionClient = projection.NewDemoClient()
	} else {
		log.Printf("Projection mode: live (%s)", cfg.Projection.BaseURL)
		projectionClient = projection.NewHTTPClient(cfg.Projection.BaseURL, cfg.Projection.APIKey)
	}

	// Share tokens are optional; without a key, consent records still
	// persist but no tokens are issued
	var issuer *sharetoken.Issuer
	if cfg.Share.TokenKey != "" {
		issuer, err = sharetoken.NewIssuer(cfg.Share.TokenKey, 7*24*time.Hour)
		if err != nil {
			log.Fatalf("Failed to initialize share token issuer: %v", err)
		}
	}

	// Create services
	systemService := service.NewSystemService(db)
	portfolioService := service.NewPortfolioService(profileRepo)
	scenarioService := service.NewScenarioService(
		profileRepo,
		scenarioRepo,
		shareRepo,
		projectionClient,
		projection.NewSequencer(),
		issuer,
	)

	// Background jobs
	scheduler, err := jobs.NewScheduler(shareRepo, cfg.Jobs.PruneSchedule, cfg.Jobs.PruneAfterDays)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(systemService, portfolioService, scenarioService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // projections can be slow in live mode
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
