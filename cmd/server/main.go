package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reptrack/reptrack/internal/api"
	"reptrack/reptrack/internal/catalog"
	"reptrack/reptrack/internal/config"
	"reptrack/reptrack/internal/logging"
	"reptrack/reptrack/internal/service"
	"reptrack/reptrack/internal/storage"
	"reptrack/reptrack/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// @title RepTrack API
// @version 1.0
// @description Local-first fitness tracking: workout plans, weekly schedules, logged sessions and progress views.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("FATAL: Could not load config: %v", err)
	}

	// --- Logging ---
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Logging.FileName,
		LogToStdout:   cfg.Logging.LogToStdout,
		LogLevel:      cfg.Logging.Level,
		LogFormatJSON: cfg.Logging.FormatJSON,
		Environment:   cfg.Logging.Environment,
		SentryDSN:     cfg.Logging.SentryDSN,
	})
	logrus.Info("Starting RepTrack server...")

	// --- Durable storage backend ---
	kv, closeStorage, err := openStorage(cfg)
	if err != nil {
		logrus.Fatalf("FATAL: Could not open %q storage: %v", cfg.Storage.Driver, err)
	}
	defer func() {
		if closeStorage == nil {
			return
		}
		if err := closeStorage(); err != nil {
			logrus.Errorf("Failed to close storage: %v", err)
		}
	}()
	logrus.Infof("Durable storage ready (driver: %s)", cfg.Storage.Driver)

	// --- Entity stores ---
	stores := api.Stores{
		Plans:     store.NewPlanStore(kv),
		Schedules: store.NewScheduleStore(kv),
		Workouts:  store.NewWorkoutStore(kv),
	}

	// Hydrate once at startup; until this completes reads are empty, which
	// is a valid transient state.
	hydrateCtx, cancelHydrate := context.WithTimeout(context.Background(), 30*time.Second)
	stores.Plans.Hydrate(hydrateCtx)
	stores.Schedules.Hydrate(hydrateCtx)
	stores.Workouts.Hydrate(hydrateCtx)
	cancelHydrate()
	logrus.Infof("Hydrated %d plans, %d schedules, %d workouts",
		len(stores.Plans.Items()), len(stores.Schedules.Items()), len(stores.Workouts.Items()))

	// --- Services ---
	jwtSecret := cfg.JWT.Secret
	if cfg.Auth.Enabled && jwtSecret == "" {
		logrus.Fatal("FATAL: auth is enabled but jwt.secret is not set")
	}
	if jwtSecret == "" {
		// Local-only run: sessions do not survive a restart, which is fine
		// since auth is disabled anyway.
		jwtSecret = uuid.NewString()
	}
	authService := service.NewAuthService(service.LogCodeSender{}, jwtSecret, cfg.JWT.Expiration, cfg.Auth.OTPTTL)
	authService.OnSessionChange(func(s *service.Session) {
		if s == nil {
			logrus.Info("Signed out")
		} else {
			logrus.Infof("Signed in as %s", s.Email)
		}
	})
	planService := service.NewPlanService(stores.Plans, stores.Schedules)

	// --- HTTP surface ---
	if !cfg.Logging.LogToStdout {
		gin.DefaultWriter = io.Discard
	}
	router := gin.Default() // Includes Logger and Recovery middleware
	api.SetupRoutes(router, cfg.Auth.Enabled, authService, planService, stores, catalog.Default())

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.Infof("Server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("FATAL: ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	// Let in-flight best-effort persists finish before the storage handle
	// closes.
	stores.Plans.Flush()
	stores.Schedules.Flush()
	stores.Workouts.Flush()

	logrus.Info("Server exiting.")
}

// openStorage builds the configured durable key-value backend. The returned
// close func may be nil for backends with nothing to release.
func openStorage(cfg config.Config) (storage.KeyValueStore, func() error, error) {
	switch cfg.Storage.Driver {
	case "sqlite", "":
		s, err := storage.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "mongo":
		s, err := storage.NewMongoStore(cfg.Mongo.URI, cfg.Mongo.Name)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "s3":
		s, err := storage.NewS3Store(cfg.S3)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case "memory":
		return storage.NewMemoryStore(), nil, nil
	default:
		return nil, nil, errors.New("unknown storage driver: " + cfg.Storage.Driver)
	}
}
