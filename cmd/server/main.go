package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"allocation-engine-backend/internal/api/handlers"
	"allocation-engine-backend/internal/api/routes"
	"allocation-engine-backend/internal/client"
	"allocation-engine-backend/internal/config"
	"allocation-engine-backend/internal/database"
	"allocation-engine-backend/internal/events"
	"allocation-engine-backend/internal/logger"
	"allocation-engine-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	_ "allocation-engine-backend/docs" // This is needed for swag
)

//	@title			Allocation Engine API
//	@version		1.0
//	@description	Allocates test cases to releases and releases' test cases to QA engineers, and assigns developers to modules.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel, os.Stdout)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, cleanup, err := buildDependencies(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize dependencies: ", err)
	}
	defer cleanup()

	router := routes.SetupRoutes(db, cfg, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithField("backend", cfg.AllocationBackend).Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Error("Failed to start server: ", err)
			stop()
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server shutdown failed: ", err)
	}
}

// buildDependencies creates the allocation backend, event publisher and
// metrics collector selected by cfg
func buildDependencies(cfg *config.Config) (routes.Dependencies, func(), error) {
	deps := routes.Dependencies{Checks: make(map[string]handlers.Checker)}

	if cfg.AllocationBackend == config.BackendRemote {
		allocationClient, err := client.NewAllocationClient(cfg.AllocationServiceURL, &http.Client{
			Timeout: cfg.RequestTimeout() + 5*time.Second,
		})
		if err != nil {
			return deps, nil, err
		}
		deps.Backend = allocationClient
	}

	deps.Publisher = events.NopPublisher{}
	if cfg.EventsEnabled() {
		publisher, err := events.Connect(cfg.NATSURL, cfg.NATSSubjectPrefix)
		if err != nil {
			return deps, nil, err
		}
		deps.Publisher = publisher
		deps.Checks["events"] = publisher.Ping
	}

	if cfg.MetricsEnabled {
		deps.Metrics = metrics.NewPrometheus(prometheus.DefaultRegisterer, metrics.DefaultNamespace)
		deps.Gatherer = prometheus.DefaultGatherer
	} else {
		deps.Metrics = metrics.NewNop()
	}

	return deps, deps.Publisher.Close, nil
}
