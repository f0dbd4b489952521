package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell/showcase-api/internal/api/handler"
	"github.com/inkwell/showcase-api/internal/api/middleware"
	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
	"github.com/inkwell/showcase-api/internal/core/service"
	"github.com/inkwell/showcase-api/internal/infrastructure/config"
	mongodb "github.com/inkwell/showcase-api/internal/infrastructure/db/mongo"
	redisdb "github.com/inkwell/showcase-api/internal/infrastructure/db/redis"
	"github.com/inkwell/showcase-api/internal/infrastructure/identity"
)

// loginPath is where page guards point refused browsers.
const loginPath = "/login"

// Deps carries the shared collaborators the router wires handlers around.
// Sitemaps and SitemapCache are injected because the revalidation worker in
// main shares the exact same instances.
type Deps struct {
	Cfg          *config.Config
	DB           *mongo.Database
	Redis        *redis.Client
	Sitemaps     ports.SitemapService
	SitemapCache handler.DocumentCache
	RenderURLSet func(domain.SitemapDocument) (string, error)
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("showcase"))
	e.Use(middleware.ExtractCredential())

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(d.DB)
	contentRepo := mongodb.NewContentRepository(d.DB)
	giveawayRepo := mongodb.NewGiveawayRepository(d.DB)
	favoritesRepo := mongodb.NewFavoritesRepository(d.DB)

	provider := identity.NewJWTProvider(userRepo, d.Cfg.JWTSecret)
	identitySvc := service.NewIdentityService(provider, d.Log)
	authSvc := service.NewAuthService(userRepo, d.Cfg.JWTSecret, 24*time.Hour)
	giveawaySvc := service.NewGiveawayService(giveawayRepo, redisdb.NewEntryGuard(d.Redis), d.Log)
	favoritesSvc := service.NewFavoritesService(favoritesRepo, d.Log)

	authHandler := handler.NewAuthHandler(authSvc, identitySvc)
	contentHandler := handler.NewContentHandler(contentRepo)
	giveawayHandler := handler.NewGiveawayHandler(giveawaySvc)
	favoritesHandler := handler.NewFavoritesHandler(favoritesSvc, identitySvc, loginPath)
	sitemapHandler := handler.NewSitemapHandler(
		d.Sitemaps, d.SitemapCache, d.RenderURLSet,
		d.Cfg.Sitemap.BaseURL, d.Cfg.Sitemap.ContentType, d.Cfg.Sitemap.PerPage,
	)

	requireAuth := middleware.RequireAuthenticated(identitySvc, loginPath)
	requireElevated := middleware.RequireRole(identitySvc, "/", domain.RoleAdmin, domain.RoleSuperadmin)

	// --- Auth routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/v1/session", authHandler.Session)

	// --- Public content ---
	e.GET("/v1/content", contentHandler.List)

	// --- Sitemaps (crawler-facing) ---
	e.GET("/sitemap.xml", sitemapHandler.Index)
	e.GET("/sitemaps/:name/:page", sitemapHandler.Page)

	// --- Giveaways ---
	e.GET("/v1/giveaways", giveawayHandler.ListActive)
	e.POST("/v1/giveaways", giveawayHandler.Create, requireElevated)
	e.POST("/v1/giveaways/:id/entries", giveawayHandler.Enter, requireAuth)

	// --- Favorites (authorization against the path's user id is in-handler) ---
	e.GET("/v1/users/:id/favorites", favoritesHandler.List)
	e.POST("/v1/users/:id/favorites", favoritesHandler.Add)
	e.DELETE("/v1/users/:id/favorites/:content_id", favoritesHandler.Remove)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.DB, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
