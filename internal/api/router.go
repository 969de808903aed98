package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskforge/projecthub/internal/api/handler"
	"github.com/taskforge/projecthub/internal/api/middleware"
	"github.com/taskforge/projecthub/internal/core/domain"
	"github.com/taskforge/projecthub/internal/core/ports"
	"github.com/taskforge/projecthub/internal/core/service"
	mongodb "github.com/taskforge/projecthub/internal/infrastructure/db/mongo"
	redisdb "github.com/taskforge/projecthub/internal/infrastructure/db/redis"
)

// RouterDeps carries everything NewRouter needs to wire the application.
type RouterDeps struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	Recorder  ports.AuditRecorder
	JWTSecret string
	TokenTTL  time.Duration
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("projecthub"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	projectRepo := mongodb.NewProjectRepository(deps.Mongo)
	auditRepo := mongodb.NewAuditRepository(deps.Mongo)

	limiter := redisdb.NewLoginLimiter(deps.Redis)

	authService := service.NewAuthService(userRepo, limiter, deps.JWTSecret, deps.TokenTTL, deps.Log)
	userService := service.NewUserService(userRepo, deps.Log)
	projectService := service.NewProjectService(projectRepo, userRepo, deps.Log)
	auditService := service.NewAuditService(auditRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	auditHandler := handler.NewAuditHandler(auditService)

	auth := middleware.Auth(deps.JWTSecret, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	adminOrManager := middleware.RBAC(domain.RoleAdmin, domain.RoleManager)
	audit := middleware.Audit(deps.Recorder)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register, auth, adminOnly, audit)

	// --- User routes ---
	users := e.Group("/users", auth)
	users.GET("", userHandler.List, adminOrManager, audit)
	users.GET("/:id", userHandler.Get, audit)
	users.PUT("/:id", userHandler.Update, adminOnly, audit)
	users.DELETE("/:id", userHandler.SoftDelete, adminOnly, audit)
	users.DELETE("/permanent/:id", userHandler.PermanentDelete, adminOnly, audit)
	users.PATCH("/restore/:id", userHandler.Restore, adminOnly, audit)
	users.POST("/:id/assign-role", userHandler.AssignRole, adminOnly, audit)
	users.POST("/:id/revoke-role", userHandler.RevokeRole, adminOnly, audit)

	// --- Project routes ---
	projects := e.Group("/projects", auth)
	projects.POST("", projectHandler.Create, adminOnly, audit)
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update, adminOnly, audit)
	projects.DELETE("/:id", projectHandler.SoftDelete, adminOnly, audit)
	projects.DELETE("/permanent/:id", projectHandler.PermanentDelete, adminOnly, audit)
	projects.PATCH("/restore/:id", projectHandler.Restore, adminOnly, audit)

	// --- Audit trail ---
	e.GET("/audit-logs", auditHandler.List, auth, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
