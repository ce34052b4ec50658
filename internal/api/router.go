package api

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/feedbackhub/feedback-portal/internal/api/handler"
	"github.com/feedbackhub/feedback-portal/internal/api/middleware"
	"github.com/feedbackhub/feedback-portal/internal/core/service"
	mongodb "github.com/feedbackhub/feedback-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/feedbackhub/feedback-portal/internal/infrastructure/db/redis"
	"github.com/feedbackhub/feedback-portal/internal/infrastructure/http/handlers"
	"github.com/feedbackhub/feedback-portal/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = handler.NewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("feedback"))

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.Env == "production",
	}
	e.Use(session.Middleware(store))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	feedbackRepo := mongodb.NewFeedbackRepository(db)

	authService := service.NewAuthService(userRepo, cfg.BcryptCost, log)
	userService := service.NewUserService(userRepo, feedbackRepo, log)
	feedbackService := service.NewFeedbackService(feedbackRepo, log)

	throttle := redisdb.NewLoginThrottle(rdb)

	authHandler := handler.NewAuthHandler(authService, throttle, log)
	userHandler := handler.NewUserHandler(userService, log)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, log)

	// --- Auth routes ---
	e.GET("/", authHandler.Home)
	e.GET("/register", authHandler.ShowRegister)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- User routes ---
	// Profile view redirects anonymous callers to login; every other
	// gated route denies them outright.
	e.GET("/users/:username", userHandler.Show, middleware.RequireLogin)
	e.POST("/users/:username/delete", userHandler.Delete)

	// --- Feedback routes ---
	e.GET("/users/:username/feedback/add", feedbackHandler.ShowAdd)
	e.POST("/users/:username/feedback/add", feedbackHandler.Add)
	e.GET("/feedback/:id/update", feedbackHandler.ShowUpdate)
	e.POST("/feedback/:id/update", feedbackHandler.Update)
	e.POST("/feedback/:id/delete", feedbackHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
