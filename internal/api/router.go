package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/api/handler"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/api/middleware"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/ports"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/service"
	mongodb "github.com/GustavoTiagoSilva/simplified-twitter/internal/infrastructure/db/mongo"
	redisdb "github.com/GustavoTiagoSilva/simplified-twitter/internal/infrastructure/db/redis"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/pkg/password"
)

// RouterConfig is the configuration surface the core consumes, injected at
// composition time: issuer name, signing key, token lifetime.
type RouterConfig struct {
	TokenIssuer string
	SigningKey  []byte
	TokenTTL    time.Duration
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditRecorder, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("twitter"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := redisdb.NewRoleCache(rdb, mongodb.NewRoleRepository(db))
	tweetRepo := mongodb.NewTweetRepository(db)
	hasher := password.NewBcryptHasher(0)

	loginService := service.NewLoginService(userRepo, hasher, audit, cfg.TokenIssuer, cfg.SigningKey, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, roleRepo, hasher, audit, log)
	tweetService := service.NewTweetService(tweetRepo, userRepo, audit, log)

	loginHandler := handler.NewLoginHandler(loginService)
	userHandler := handler.NewUserHandler(userService)
	tweetHandler := handler.NewTweetHandler(tweetService)

	authRequired := middleware.Auth(cfg.SigningKey, cfg.TokenIssuer)

	// --- Public routes ---
	e.POST("/login", loginHandler.Login)
	e.POST("/users", userHandler.Create)

	// --- Protected routes ---
	e.GET("/users", userHandler.List, authRequired, middleware.RequireScope(domain.RoleAdmin))
	e.POST("/tweets", tweetHandler.Create, authRequired)
	e.DELETE("/tweets/:id", tweetHandler.Delete, authRequired)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
