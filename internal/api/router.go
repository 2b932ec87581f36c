package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/velora/storefront-admin/docs"
	"github.com/velora/storefront-admin/internal/api/handler"
	"github.com/velora/storefront-admin/internal/api/middleware"
	"github.com/velora/storefront-admin/internal/core/ports"
	"github.com/velora/storefront-admin/internal/core/service"
	"github.com/velora/storefront-admin/internal/infrastructure/config"
	mongodb "github.com/velora/storefront-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/velora/storefront-admin/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, mailer ports.Mailer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	accountService := service.NewAccountService(accountRepo, mailer, tokens, log)
	accountHandler := handler.NewAccountHandler(accountService)

	catalogService := service.NewCatalogService(
		mongodb.NewCategoryRepository(db),
		mongodb.NewSubCategoryRepository(db),
		mongodb.NewCarouselRepository(db),
		mongodb.NewPostcodeRepository(db),
		log,
	)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	orderService := service.NewOrderService(mongodb.NewOrderRepository(db), redisdb.NewCheckoutDedup(rdb), log)
	orderHandler := handler.NewOrderHandler(orderService)

	auth := middleware.Auth(cfg.JWTSecret)

	// --- Account routes ---
	account := e.Group("/v1/account")
	account.POST("/register", accountHandler.Register)
	account.POST("/login", accountHandler.Login)
	account.POST("/verify-confirm", accountHandler.VerifyConfirm)
	account.POST("/resend-confirm-otp", accountHandler.ResendConfirmOTP)

	// --- Catalog routes (reads public, writes behind auth) ---
	e.GET("/v1/categories", catalogHandler.ListCategories)
	e.GET("/v1/categories/:id", catalogHandler.GetCategory)
	e.POST("/v1/categories", catalogHandler.CreateCategory, auth)
	e.PUT("/v1/categories/:id", catalogHandler.UpdateCategory, auth)
	e.DELETE("/v1/categories/:id", catalogHandler.DeleteCategory, auth)

	e.GET("/v1/subcategories", catalogHandler.ListSubCategories)
	e.GET("/v1/subcategories/:id", catalogHandler.GetSubCategory)
	e.POST("/v1/subcategories", catalogHandler.CreateSubCategory, auth)
	e.PUT("/v1/subcategories/:id", catalogHandler.UpdateSubCategory, auth)
	e.DELETE("/v1/subcategories/:id", catalogHandler.DeleteSubCategory, auth)

	e.GET("/v1/carousels", catalogHandler.ListCarousels)
	e.GET("/v1/carousels/:id", catalogHandler.GetCarousel)
	e.POST("/v1/carousels", catalogHandler.CreateCarousel, auth)
	e.PUT("/v1/carousels/:id", catalogHandler.UpdateCarousel, auth)
	e.DELETE("/v1/carousels/:id", catalogHandler.DeleteCarousel, auth)

	e.GET("/v1/postcodes", catalogHandler.ListPostcodes)
	e.GET("/v1/postcodes/check/:code", catalogHandler.CheckPostcode)
	e.POST("/v1/postcodes", catalogHandler.CreatePostcode, auth)
	e.PUT("/v1/postcodes/:code", catalogHandler.UpdatePostcode, auth)
	e.DELETE("/v1/postcodes/:code", catalogHandler.DeletePostcode, auth)

	// --- Order routes ---
	e.POST("/v1/checkout", orderHandler.Checkout)
	e.GET("/v1/orders", orderHandler.List, auth)
	e.GET("/v1/orders/:order_number", orderHandler.Get, auth)
	e.PATCH("/v1/orders/:order_number/status", orderHandler.UpdateStatus, auth)

	// --- Ops endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
