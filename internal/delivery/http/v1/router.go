package v1

import (
	"study-planner-backend/config"
	"study-planner-backend/internal/delivery/http/middleware"
	"study-planner-backend/internal/domain"
	"study-planner-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	BootstrapUC  domain.BootstrapUsecase
	ConsultantUC domain.ConsultantUsecase
	ProfileUC    domain.ProfileUsecase
	PlannerUC    domain.PlannerUsecase
	ChatUC       domain.ChatUsecase
	HealthUC     usecase.HealthUsecase
	Sessions     middleware.SessionParser
	Redis        *goredis.Client // nil means in-memory rate limiting
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(deps.Redis, middleware.DefaultRateLimitConfig()))

	v1 := r.Group("/v1")
	v1.Use(middleware.OptionalSession(deps.Sessions))

	NewHealthHandler(v1, deps.HealthUC)
	NewAuthHandler(v1, deps.AuthUC, gin.Mode() == gin.ReleaseMode)
	NewBootstrapHandler(v1, deps.BootstrapUC)
	NewConsultantHandler(v1, deps.ConsultantUC)
	NewProfileHandler(v1, deps.ProfileUC)
	NewPlannerHandler(v1, deps.PlannerUC)
	NewGradesHandler(v1)

	chatLimit := middleware.ChatRateLimitConfig(deps.Config.ChatRateLimit, deps.Config.RateLimitWindow())
	NewChatHandler(v1, deps.ChatUC, middleware.RateLimitMiddleware(deps.Redis, chatLimit))

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
