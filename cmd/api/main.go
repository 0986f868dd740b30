package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study-planner-backend/config"
	_ "study-planner-backend/docs" // Important for Swagger
	v1 "study-planner-backend/internal/delivery/http/v1"
	"study-planner-backend/internal/domain"
	"study-planner-backend/internal/repository/deepseek"
	"study-planner-backend/internal/repository/memory"
	"study-planner-backend/internal/repository/postgres"
	"study-planner-backend/internal/usecase"
	"study-planner-backend/pkg/auth"
	"study-planner-backend/pkg/database"
	"study-planner-backend/pkg/llm"
	"study-planner-backend/pkg/logger"
	"study-planner-backend/pkg/redis"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Study Planner API
// @version         1.0
// @description     Backend for the BNBU study-abroad planner: match tiers, GPA simulator and advisor chat.
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
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting study planner backend", "port", cfg.Port)

	ctx := context.Background()

	// 3. Optional Database (reference catalog)
	var dbPool *pgxpool.Pool
	if cfg.DBUrl != "" {
		dbPool, err = database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Warn("Database unavailable, using embedded catalog", "error", err)
			dbPool = nil
		} else {
			defer dbPool.Close()
		}
	}

	// 4. Optional Redis (rate limiting)
	var redisClient *goredis.Client
	if cfg.UpstashRedisURL != "" {
		redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting in memory", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// 5. Setup Repositories
	delays := memory.Latency{}
	if cfg.SimulateLatency {
		delays = memory.DefaultLatency()
	}
	catalog, err := memory.NewCatalogRepository(delays)
	if err != nil {
		logger.Log.Error("Failed to load embedded catalog", "error", err)
		os.Exit(1)
	}

	var universityRepo domain.UniversityRepository = catalog
	var courseRepo domain.CourseRepository = catalog
	if dbPool != nil {
		pgCatalog := postgres.NewCatalogRepository(dbPool)
		universityRepo = pgCatalog
		courseRepo = pgCatalog
	}

	// 6. Setup Chat Client
	llmClient := llm.NewClient(llm.Config{
		APIKey:  cfg.DeepSeekAPIKey,
		BaseURL: cfg.DeepSeekBaseURL,
		Model:   cfg.DeepSeekModel,
	})

	// 7. Setup UseCases
	validate := usecase.NewValidator()
	issuer := auth.NewIssuer(cfg.SessionSecret, cfg.SessionTTL())
	if cfg.SessionSecret == "" {
		logger.Log.Warn("SESSION_SECRET not set - sessions will not survive a restart")
	}

	loginDelay := time.Duration(0)
	if cfg.SimulateLatency {
		loginDelay = usecase.LoginDelay
	}

	consultantUC := usecase.NewConsultantUsecase(universityRepo, validate)
	plannerUC := usecase.NewPlannerUsecase(courseRepo, validate)
	chatUC := usecase.NewChatUsecase(deepseek.NewCompleter(llmClient), domain.ChatOptions{
		Model:       cfg.DeepSeekModel,
		Temperature: float32(cfg.ChatTemperature),
		MaxTokens:   cfg.ChatMaxTokens,
	})

	probes := map[string]usecase.HealthProbe{}
	if dbPool != nil {
		probes["database"] = dbPool.Ping
	}
	if redisClient != nil {
		probes["redis"] = func(ctx context.Context) error { return redis.HealthCheck(ctx, redisClient) }
	}

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       usecase.NewAuthUsecase(issuer, loginDelay),
		BootstrapUC:  usecase.NewBootstrapUsecase(consultantUC, plannerUC),
		ConsultantUC: consultantUC,
		ProfileUC:    usecase.NewProfileUsecase(catalog, validate),
		PlannerUC:    plannerUC,
		ChatUC:       chatUC,
		HealthUC:     usecase.NewHealthUsecase(probes),
		Sessions:     issuer,
		Redis:        redisClient,
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
