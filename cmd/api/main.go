package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/inkwell/showcase-api/docs"
	"github.com/inkwell/showcase-api/internal/api"
	"github.com/inkwell/showcase-api/internal/api/handler"
	"github.com/inkwell/showcase-api/internal/core/service"
	"github.com/inkwell/showcase-api/internal/infrastructure/config"
	mongodb "github.com/inkwell/showcase-api/internal/infrastructure/db/mongo"
	redisdb "github.com/inkwell/showcase-api/internal/infrastructure/db/redis"
	"github.com/inkwell/showcase-api/internal/infrastructure/queue"
	"github.com/inkwell/showcase-api/pkg/logger"
)

// @title        Showcase API
// @version      1.0
// @description  Content showcase service: auth, favorites, giveaways, and sitemap generation.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; stderr is all we have.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("fatal error")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := client.Disconnect(context.Background()); cerr != nil {
			log.Error().Err(cerr).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rdb.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("redis close failed")
		}
	}()

	if err := mongodb.NewGiveawayRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewFavoritesRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}

	// --- Sitemap pipeline, shared by the router and the revalidator ---
	contentRepo := mongodb.NewContentRepository(db)
	sitemapSvc := service.NewSitemapService(contentRepo, cfg.Sitemap.ContentType, cfg.Sitemap.PerPage, log)
	sitemapCache := redisdb.NewSitemapCache(rdb, cfg.Sitemap.RevalidateEvery)
	renderURLSet := handler.NewURLSetRenderer(cfg.Sitemap.BaseURL)

	revalidator := queue.NewRevalidator(
		cfg.Sitemap.ContentType,
		sitemapSvc,
		sitemapCache,
		renderURLSet,
		cfg.Sitemap.PerPage,
		cfg.Sitemap.RevalidateEvery,
		cfg.Sitemap.Workers,
		log,
	)
	revalidator.Start(ctx)

	e := api.NewRouter(api.Deps{
		Cfg:          cfg,
		DB:           db,
		Redis:        rdb,
		Sitemaps:     sitemapSvc,
		SitemapCache: sitemapCache,
		RenderURLSet: renderURLSet,
		Log:          log,
	})

	// --- Serve until interrupted ---
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("showcase api started")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
