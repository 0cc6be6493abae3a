package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/der-api/internal/config"
	"github.com/stemsi/der-api/internal/database"
	"github.com/stemsi/der-api/internal/handler"
	"github.com/stemsi/der-api/internal/logger"
	"github.com/stemsi/der-api/internal/middleware"
	"github.com/stemsi/der-api/internal/migrations"
	"github.com/stemsi/der-api/internal/repository"
	"github.com/stemsi/der-api/internal/router"
	"github.com/stemsi/der-api/internal/service"
	"github.com/stemsi/der-api/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	var rotation *logger.Rotation
	if cfg.LogFile != "" {
		rotation = &logger.Rotation{
			Filename:   cfg.LogFile,
			MaxSizeMB:  cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAgeDays: cfg.LogMaxAgeDays,
		}
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, rotation)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting DER API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Apply Migrations ──────────────────────────────────────────────
	if cfg.AutoMigrate {
		if err := migrations.Up(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
		log.Info().Msg("Migrations applied")
	}

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Rate Limiter ──────────────────────────────────────────────────
	var limiter middleware.LimitStore
	if cfg.RateLimitRequests > 0 {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		if rdb != nil {
			defer rdb.Close()
			limiter = middleware.NewRedisStore(rdb, cfg.RateLimitRequests, cfg.RateLimitWindow)
		} else {
			limiter = middleware.NewMemoryStore(ctx, cfg.RateLimitRequests, cfg.RateLimitWindow)
		}
		log.Info().
			Int("requests", cfg.RateLimitRequests).
			Dur("window", cfg.RateLimitWindow).
			Bool("redis", rdb != nil).
			Msg("Rate limiting enabled")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	studentRepo := repository.NewStudentRepository(pool)
	institutionRepo := repository.NewInstitutionRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	disciplineRepo := repository.NewDisciplineRepository(pool)
	professorRepo := repository.NewProfessorRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	studentService := service.NewStudentService(studentRepo, log)
	institutionService := service.NewInstitutionService(institutionRepo, log)
	courseService := service.NewCourseService(courseRepo, log)
	disciplineService := service.NewDisciplineService(disciplineRepo, log)
	professorService := service.NewProfessorService(professorRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Student:     handler.NewStudentHandler(studentService),
		Institution: handler.NewInstitutionHandler(institutionService),
		Course:      handler.NewCourseHandler(courseService),
		Discipline:  handler.NewDisciplineHandler(disciplineService),
		Professor:   handler.NewProfessorHandler(professorService),
		Health:      handler.NewHealthHandler(pool),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg, limiter, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
