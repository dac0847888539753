// Package main is the entry point for the album API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	_ "github.com/albumhub/album-api/docs"
	"github.com/albumhub/album-api/internal/api"
	"github.com/albumhub/album-api/internal/api/handler"
	"github.com/albumhub/album-api/internal/api/middleware"
	"github.com/albumhub/album-api/internal/core/ports"
	"github.com/albumhub/album-api/internal/core/service"
	"github.com/albumhub/album-api/internal/infrastructure/config"
	mongodb "github.com/albumhub/album-api/internal/infrastructure/db/mongo"
	redisdb "github.com/albumhub/album-api/internal/infrastructure/db/redis"
	"github.com/albumhub/album-api/internal/infrastructure/providers"
	"github.com/albumhub/album-api/internal/infrastructure/queue"
	"github.com/albumhub/album-api/internal/infrastructure/ratelimit"
	"github.com/albumhub/album-api/pkg/logger"
)

// @title                       Album API
// @version                     1.0
// @description                 Albums, photos and accounts with JWT auth, plus a random profile generator.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "album-api",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
		AppName:  "album-api",
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	albumRepo := mongodb.NewAlbumRepository(db)
	photoRepo := mongodb.NewPhotoRepository(db)
	if err := mongodb.EnsureIndexes(ctx, userRepo, albumRepo, photoRepo); err != nil {
		return err
	}

	healthChecks := map[string]handler.DependencyCheck{
		"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, readpref.Primary()) },
	}

	// --- Rate limit store: Redis when configured, process memory otherwise ---
	var limiter ports.RateLimiter = ratelimit.NewMemoryLimiter(0)
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("redis close failed")
			}
		}()
		limiter = redisdb.NewLimiter(rdb)
		healthChecks["redis"] = func(ctx context.Context) error { return pingRedis(ctx, rdb) }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("rate limits backed by redis")
	} else {
		log.Info().Msg("rate limits kept in process memory")
	}

	// --- Services ---
	tokens, err := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	logins := queue.NewLoginDispatcher(cfg.Auth.LoginWorkers, userRepo, log.With().Str("component", "login_dispatcher").Logger())
	logins.Start(ctx)

	credentials := service.NewCredentialService(userRepo, tokens, logins, cfg.Auth.BcryptCost, log)
	users := service.NewUserService(userRepo, log)
	albums := service.NewAlbumService(albumRepo, photoRepo, log)
	photos := service.NewPhotoService(albumRepo, photoRepo, log)

	upstream := providers.New(providers.Config{
		RandomUserURL:   cfg.Profile.RandomUserURL,
		RandommerURL:    cfg.Profile.RandommerURL,
		RandommerAPIKey: cfg.Profile.RandommerAPIKey,
		QuoteURL:        cfg.Profile.QuoteURL,
		JokeURL:         cfg.Profile.JokeURL,
		CountryCode:     cfg.Profile.CountryCode,
	}, nil)
	profiles := service.NewProfileService(upstream, cfg.Profile.Timeout, providerTimeouts(cfg.Profile), log)

	// --- HTTP ---
	opts := api.Options{
		Debug:          cfg.IsDevelopment(),
		CORSOrigins:    cfg.CORSOrigins,
		BodyLimit:      cfg.BodyLimit,
		SwaggerEnabled: cfg.SwaggerEnabled,
	}
	if cfg.RateLimit.Enabled {
		opts.APILimit = middleware.RateLimitConfig{Name: "api", Limit: cfg.RateLimit.APIRequests, Window: cfg.RateLimit.APIWindow}
		opts.AuthLimit = middleware.RateLimitConfig{Name: "auth", Limit: cfg.RateLimit.AuthRequests, Window: cfg.RateLimit.AuthWindow}
	}

	router := api.NewRouter(opts, api.Deps{
		Logger:       log,
		Tokens:       tokens,
		Credentials:  credentials,
		Users:        users,
		Albums:       albums,
		Photos:       photos,
		Profiles:     profiles,
		Limiter:      limiter,
		HealthChecks: healthChecks,
	})

	srv := api.NewServer(":"+cfg.Port, router)
	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

func pingRedis(ctx context.Context, rdb *goredis.Client) error {
	return rdb.Ping(ctx).Err()
}

// providerTimeouts expands the per-upstream overrides to provider names.
// Randommer serves five of the eight providers.
func providerTimeouts(p config.ProfileConfig) map[string]time.Duration {
	timeouts := make(map[string]time.Duration)
	set := func(d time.Duration, names ...string) {
		if d <= 0 {
			return
		}
		for _, n := range names {
			timeouts[n] = d
		}
	}
	set(p.RandomUserTimeout, service.ProviderRandomUser)
	set(p.RandommerTimeout, service.ProviderPhone, service.ProviderIBAN, service.ProviderCreditCard, service.ProviderName, service.ProviderPet)
	set(p.QuoteTimeout, service.ProviderQuote)
	set(p.JokeTimeout, service.ProviderJoke)
	return timeouts
}
