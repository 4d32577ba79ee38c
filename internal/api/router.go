package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dscommerce/commerce-api/internal/api/handler"
	"github.com/dscommerce/commerce-api/internal/api/middleware"
	"github.com/dscommerce/commerce-api/internal/core/service"
	mongodb "github.com/dscommerce/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/dscommerce/commerce-api/internal/infrastructure/db/redis"
	"github.com/dscommerce/commerce-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	productCache := redisdb.NewProductCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, categoryRepo, productCache, log)
	orderService := service.NewOrderService(orderRepo, productRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)

	authMW := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Catalog routes (reads are public; role checks for writes live in
	// the authorization engine) ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.POST("/products", productHandler.Create, authMW)
	e.PUT("/products/:id", productHandler.Update, authMW)
	e.DELETE("/products/:id", productHandler.Delete, authMW)

	// --- Order routes ---
	e.POST("/orders", orderHandler.Create, authMW)
	e.GET("/orders/:id", orderHandler.Get, authMW)

	// --- User routes ---
	e.GET("/users/me", userHandler.Me, authMW)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
