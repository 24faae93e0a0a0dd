package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-resume-backend/config"
	_ "go-resume-backend/docs" // Important for Swagger
	v1 "go-resume-backend/internal/delivery/http/v1"
	"go-resume-backend/internal/parser"
	"go-resume-backend/internal/repository/memory"
	"go-resume-backend/internal/repository/postgres"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/auth"
	"go-resume-backend/pkg/database"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/redis"
	"go-resume-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           Resume Builder API
// @version         1.0
// @description     Backend for the resume building app: guided interview, resume storage and file uploads.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	resumeRepo := postgres.NewResumeRepository(dbPool)
	onboardingRepo := postgres.NewOnboardingRepository(dbPool)
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.SessionTTLMinutes) * time.Minute)

	// 6. Setup Storage & Parser
	storageClient := storage.NewClient(cfg.SupabaseUrl, cfg.SupabaseKey, cfg.StorageBucket)
	if !storageClient.Configured() {
		logger.Log.Warn("Supabase storage not configured - uploaded files will not be persisted")
	}
	resumeParser := parser.NewUploadParser()

	// 7. Setup UseCases
	validate := validator.New()
	interviewUC := usecase.NewInterviewUsecase(sessionRepo, resumeRepo, onboardingRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, onboardingRepo, storageClient, resumeParser, validate, int64(cfg.MaxUploadSizeBytes))
	onboardingUC := usecase.NewOnboardingUsecase(onboardingRepo)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		InterviewUC:  interviewUC,
		ResumeUC:     resumeUC,
		OnboardingUC: onboardingUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
