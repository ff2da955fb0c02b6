package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobportal-backend/config"
	v1 "jobportal-backend/internal/delivery/http/v1"
	"jobportal-backend/internal/repository/postgres"
	"jobportal-backend/internal/seed"
	"jobportal-backend/internal/usecase"
	"jobportal-backend/pkg/auth"
	"jobportal-backend/pkg/database"
	"jobportal-backend/pkg/logger"
	"jobportal-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	store := postgres.NewStore(dbPool)
	if err := store.EnsureSchema(context.Background()); err != nil {
		logger.Log.Error("Failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (rate limiting; the API degrades gracefully without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(store)
	roleRepo := postgres.NewRoleRepository(store)
	companyRepo := postgres.NewCompanyRepository(store)
	candidateRepo := postgres.NewCandidateRepository(store)
	categoryRepo := postgres.NewCategoryRepository(store)
	jobRepo := postgres.NewJobRepository(store)
	cvRepo := postgres.NewCVRepository(store)
	applicationRepo := postgres.NewApplicationRepository(store)
	savedJobRepo := postgres.NewSavedJobRepository(store)

	// 6. Setup auth primitives
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHour)*time.Hour)

	// 7. Seed reference data
	seeder := seed.NewSeeder(roleRepo, userRepo, companyRepo, candidateRepo, categoryRepo, jobRepo, store, hasher, cfg)
	if err := seeder.Run(context.Background()); err != nil {
		logger.Log.Error("Failed to seed reference data", "error", err)
		os.Exit(1)
	}

	// 8. Setup UseCases
	validate := validator.New()
	guard := usecase.NewGuard(userRepo, companyRepo, candidateRepo, jobRepo)
	authUC := usecase.NewAuthUsecase(userRepo, roleRepo, companyRepo, candidateRepo, store, hasher, tokens, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, categoryRepo, guard)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, cvRepo, store, guard)
	cvUC := usecase.NewCVUsecase(cvRepo, guard)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, jobRepo, guard)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo, guard)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		CVUC:          cvUC,
		SavedJobUC:    savedJobUC,
		CategoryUC:    categoryUC,
		CompanyUC:     companyUC,
		Tokens:        tokens,
		Config:        cfg,
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

	logger.Log.Info("Server exited")
}
