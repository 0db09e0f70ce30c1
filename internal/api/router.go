package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/planwise/scheduling-api/docs"
	"github.com/planwise/scheduling-api/internal/api/handler"
	"github.com/planwise/scheduling-api/internal/api/middleware"
	"github.com/planwise/scheduling-api/internal/core/auth"
	"github.com/planwise/scheduling-api/internal/core/domain"
	"github.com/planwise/scheduling-api/internal/core/ports"
	"github.com/planwise/scheduling-api/internal/core/service"
	mongodb "github.com/planwise/scheduling-api/internal/infrastructure/db/mongo"
	redisdb "github.com/planwise/scheduling-api/internal/infrastructure/db/redis"
)

// Dependencies carries everything the router needs; all handles are
// constructed in cmd/api and injected, never pulled from package state.
type Dependencies struct {
	DB           *mongo.Database
	Redis        *goredis.Client
	TokenCodec   *auth.TokenCodec
	Hasher       *auth.Hasher
	Audit        ports.AuditSink
	RoleCacheTTL time.Duration
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("scheduling"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	companyRepo := mongodb.NewCompanyRepository(deps.DB)
	planningRepo := mongodb.NewPlanningRepository(deps.DB)
	activityRepo := mongodb.NewActivityRepository(deps.DB)

	// --- Auth core ---
	// Role source re-fetches from the user store through a short-lived
	// Redis cache, so role changes apply without re-login.
	roleCache := redisdb.NewRoleCache(deps.Redis, deps.RoleCacheTTL)
	roleSource := redisdb.NewCachedRoleSource(userRepo, roleCache)
	policy := auth.NewPolicy(deps.TokenCodec, roleSource)

	// --- Services & handlers ---
	authService := service.NewAuthService(userRepo, deps.Hasher, deps.TokenCodec, deps.Audit, deps.Log)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo, deps.Hasher, roleCache, deps.Log))
	companyHandler := handler.NewCompanyHandler(service.NewCompanyService(companyRepo, deps.Log))
	planningHandler := handler.NewPlanningHandler(service.NewPlanningService(planningRepo, companyRepo, deps.Log))
	activityHandler := handler.NewActivityHandler(service.NewActivityService(activityRepo, deps.Log))

	authRequired := middleware.Auth(policy)
	adminOnly := middleware.RBAC(policy, deps.Audit, domain.RoleAdmin, domain.RoleSuperAdmin)
	superAdminOnly := middleware.RBAC(policy, deps.Audit, domain.RoleSuperAdmin)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Protected routes ---
	v1 := e.Group("/v1", authRequired)

	v1.GET("/me", authHandler.Me)

	v1.GET("/users", userHandler.List)
	v1.GET("/users/:id", userHandler.Get)
	v1.PUT("/users/:id", userHandler.Update, adminOnly)
	v1.DELETE("/users/:id", userHandler.Delete, adminOnly)

	v1.GET("/companies", companyHandler.List)
	v1.GET("/companies/:id", companyHandler.Get)
	v1.POST("/companies", companyHandler.Create, superAdminOnly)
	v1.PUT("/companies/:id", companyHandler.Update, superAdminOnly)
	v1.DELETE("/companies/:id", companyHandler.Delete, superAdminOnly)
	v1.POST("/companies/:id/users/:user_id", companyHandler.AddUser, adminOnly)
	v1.DELETE("/companies/:id/users/:user_id", companyHandler.RemoveUser, adminOnly)
	v1.POST("/companies/:id/activities/:activity_id", companyHandler.AddActivity, adminOnly)
	v1.DELETE("/companies/:id/activities/:activity_id", companyHandler.RemoveActivity, adminOnly)

	v1.GET("/plannings", planningHandler.List)
	v1.GET("/plannings/:id", planningHandler.Get)
	v1.POST("/plannings", planningHandler.Create, adminOnly)
	v1.PUT("/plannings/:id", planningHandler.Update, adminOnly)
	v1.DELETE("/plannings/:id", planningHandler.Delete, adminOnly)
	v1.POST("/plannings/:id/activities/:activity_id", planningHandler.AddActivity, adminOnly)
	v1.DELETE("/plannings/:id/activities/:activity_id", planningHandler.RemoveActivity, adminOnly)

	v1.GET("/activities", activityHandler.List)
	v1.GET("/activities/:id", activityHandler.Get)
	v1.POST("/activities", activityHandler.Create, adminOnly)
	v1.PUT("/activities/:id", activityHandler.Update, adminOnly)
	v1.DELETE("/activities/:id", activityHandler.Delete, adminOnly)

	return e
}
