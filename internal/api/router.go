package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zrg-scripts/storefront-api/internal/api/handler"
	"github.com/zrg-scripts/storefront-api/internal/api/middleware"
	"github.com/zrg-scripts/storefront-api/internal/core/service"
	"github.com/zrg-scripts/storefront-api/internal/infrastructure/config"
	mongodb "github.com/zrg-scripts/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/zrg-scripts/storefront-api/internal/infrastructure/db/redis"
	"github.com/zrg-scripts/storefront-api/internal/infrastructure/queue"
)

// NewRouter wires repositories, services, and handlers, and returns the Echo
// instance plus the rating dispatcher (started by the caller).
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	scriptRepo := mongodb.NewScriptRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	contentRepo := mongodb.NewContentRepository(db)
	cache := redisdb.NewListingCache(rdb)

	// --- Services ---
	ratingService := service.NewRatingService(scriptRepo, reviewRepo, log)
	dispatcher := queue.NewDispatcher(0, ratingService, log)

	authService := service.NewAuthService(userRepo, service.OAuthConfig{
		ClientID:     cfg.FiveM.ClientID,
		ClientSecret: cfg.FiveM.ClientSecret,
		RedirectURL:  cfg.FiveM.RedirectURI,
		AuthURL:      cfg.FiveM.AuthURL,
		TokenURL:     cfg.FiveM.TokenURL,
		UserinfoURL:  cfg.FiveM.UserinfoURL,
	}, cfg.JWTSecret, 24*time.Hour, log)
	catalogService := service.NewCatalogService(scriptRepo, reviewRepo, blogRepo, contentRepo, cache, log)
	reviewService := service.NewReviewService(scriptRepo, reviewRepo, cache, dispatcher, log)
	contentService := service.NewContentService(contentRepo, cache, log)
	blogService := service.NewBlogService(blogRepo, cache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	contentHandler := handler.NewContentHandler(contentService)
	blogHandler := handler.NewBlogHandler(blogService)

	// --- Public routes ---
	v1 := e.Group("/v1")
	v1.GET("/stats", contentHandler.Stats)
	v1.GET("/featured-servers", contentHandler.FeaturedServers)
	v1.GET("/scripts", catalogHandler.List)
	v1.GET("/scripts/:slug", catalogHandler.Get)
	v1.POST("/write-review", reviewHandler.Submit)
	v1.GET("/testimonials", contentHandler.Testimonials)
	v1.GET("/faqs", contentHandler.FAQs)
	v1.GET("/posts", blogHandler.List)
	v1.GET("/posts/:slug", blogHandler.Get)
	v1.GET("/team-members", contentHandler.TeamMembers)
	v1.GET("/search", catalogHandler.Search)
	v1.GET("/auth/fivem/login", authHandler.Login)
	v1.GET("/auth/fivem/callback", authHandler.Callback)

	// --- Authenticated routes ---
	v1.GET("/me", authHandler.Me, middleware.Auth(cfg.JWTSecret))

	// --- Probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
