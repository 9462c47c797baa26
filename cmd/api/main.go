package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/accessihire/backend/internal/ai"
	"github.com/accessihire/backend/internal/api"
	"github.com/accessihire/backend/internal/api/handlers"
	"github.com/accessihire/backend/internal/api/validators"
	"github.com/accessihire/backend/internal/auth"
	"github.com/accessihire/backend/internal/repository"
	"github.com/accessihire/backend/internal/services"
	"github.com/accessihire/backend/internal/taxonomy"
	"github.com/accessihire/backend/pkg/config"
	"github.com/accessihire/backend/pkg/database"
	"github.com/accessihire/backend/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting AccessiHire API",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, cfg.AppEnv)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	userRepo := repository.NewUserRepository(db)
	resumeRepo := repository.NewResumeRepository(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	generator := ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
	taxonomyClient := taxonomy.NewClient(cfg.TaxonomyBaseURL, cfg.TaxonomyTimeout)

	authService := services.NewAuthService(userRepo, tokens)
	resumeService := services.NewResumeService(resumeRepo, generator)

	v := validators.New()
	router := api.NewRouter(api.Dependencies{
		Tokens:          tokens,
		Users:           userRepo,
		HealthHandler:   handlers.NewHealthHandler(cfg.AppEnv),
		AuthHandler:     handlers.NewAuthHandler(authService, v, cfg.AppEnv),
		ResumeHandler:   handlers.NewResumeHandler(resumeService, v, cfg.AppEnv),
		TaxonomyHandler: handlers.NewTaxonomyHandler(taxonomyClient, cfg.AppEnv),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
