package bootstrap

import (
	"database/sql"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	httpapi "github.com/GoSim-25-26J-441/planner-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/planner-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/planner-backend/internal/auth"
	"github.com/GoSim-25-26J-441/planner-backend/internal/breakdown"
	"github.com/GoSim-25-26J-441/planner-backend/internal/metrics"
	plannerhttp "github.com/GoSim-25-26J-441/planner-backend/internal/planner/http"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/repository"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/service"
	"github.com/GoSim-25-26J-441/planner-backend/internal/users"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	DevUserID      string

	DB        *sql.DB
	Redis     *redis.Client
	Generator breakdown.Generator
	Verifier  auth.TokenVerifier
	Logger    *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id", "X-User-Id", "X-User-Email", "X-User-Name"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(metrics.Middleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	apps := repository.NewApplicationRepository(dep.DB)
	features := repository.NewFeatureRepository(dep.DB)
	stories := repository.NewStoryRepository(dep.DB)
	actions := repository.NewActionLogRepository(dep.DB)
	tx := service.NewSQLTransactor(dep.DB)

	handler := plannerhttp.NewHandler(
		service.NewApplicationService(apps, tx, dep.Generator, actions),
		service.NewFeatureService(apps, features, tx, dep.Generator, actions),
		service.NewStoryService(features, stories),
	)

	api := r.Group("/api/core")
	api.Use(auth.Identity(dep.Verifier, users.NewRepo(dep.DB), dep.DevUserID))
	handler.Register(api)

	return r
}
