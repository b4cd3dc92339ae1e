package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scorelib/scoresearch-backend/internal/conf"
	"github.com/scorelib/scoresearch-backend/internal/pkg/logger"
	"github.com/scorelib/scoresearch-backend/internal/pkg/minio"
	"github.com/scorelib/scoresearch-backend/internal/pkg/redis"
	scorebiz "github.com/scorelib/scoresearch-backend/internal/score/biz"
	"github.com/scorelib/scoresearch-backend/internal/score/render"
	scoreservice "github.com/scorelib/scoresearch-backend/internal/score/service"
	searchprovider "github.com/scorelib/scoresearch-backend/internal/search/provider"
	searchtypes "github.com/scorelib/scoresearch-backend/internal/search/types"
	"github.com/scorelib/scoresearch-backend/internal/server"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	// Load configuration
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger with config
	log, err := logger.New(&logger.Config{
		Level:            config.Log.Level,
		Format:           config.Log.Format,
		Output:           config.Log.Output,
		EnableCaller:     config.Log.EnableCaller,
		EnableStacktrace: config.Log.EnableStacktrace,
		File: logger.FileConfig{
			Filename:   config.Log.File.Filename,
			MaxSize:    config.Log.File.MaxSize,
			MaxAge:     config.Log.File.MaxAge,
			MaxBackups: config.Log.File.MaxBackups,
			Compress:   config.Log.File.Compress,
		},
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	log.Info("config loaded successfully")

	// Initialize the search provider. A missing API key disables the search
	// tier; the resolver still serves from the curated table and fallback.
	provider := newSearchProvider(config, log)

	// Initialize the image renderer
	renderer, cleanup, err := newRenderer(config, log)
	if err != nil {
		log.Fatal("failed to initialize renderer", zap.Error(err))
	}
	defer cleanup()

	// Wire up the lookup pipeline
	resolver := scorebiz.NewResolver(provider, config.Search.SiteScope, config.Search.MaxResults, log.Logger)
	scoreService := scoreservice.NewScoreService(resolver, renderer, log.Logger)
	httpServer := server.NewHTTPServer(config, log, scoreService)

	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Stop(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

func newSearchProvider(config *conf.Config, log *logger.Logger) searchprovider.Provider {
	if config.Search.APIKey == "" {
		log.Warn("search api key not set, search tier disabled")
		return nil
	}

	providerConfig := &searchtypes.ProviderConfig{
		ID:      searchtypes.ProviderID(config.Search.Provider),
		Name:    config.Search.Name,
		APIHost: config.Search.APIHost,
		APIKey:  config.Search.APIKey,
		Timeout: config.Search.Timeout,
	}
	if providerConfig.Name == "" {
		providerConfig.Name = config.Search.Provider
	}

	provider, err := searchprovider.NewFactory().Create(providerConfig)
	if err != nil {
		log.Warn("failed to create search provider, search tier disabled", zap.Error(err))
		return nil
	}

	log.Info("search provider initialized",
		zap.String("provider", string(provider.GetID())),
		zap.String("site_scope", config.Search.SiteScope),
	)
	return provider
}

func newRenderer(config *conf.Config, log *logger.Logger) (render.Renderer, func(), error) {
	noop := func() {}

	switch config.Render.Mode {
	case "placeholder":
		return render.NewPlaceholderRenderer(), noop, nil

	case "minio":
		store, err := minio.NewClient(&minio.Config{
			Endpoint:        config.MinIO.Endpoint,
			AccessKeyID:     config.MinIO.AccessKey,
			SecretAccessKey: config.MinIO.SecretKey,
			UseSSL:          config.MinIO.UseSSL,
			Bucket:          config.MinIO.Bucket,
			PublicBaseURL:   config.MinIO.PublicBaseURL,
		}, log.Logger)
		if err != nil {
			return nil, noop, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, noop, err
		}

		var cache render.Cache
		cleanup := noop
		if config.Redis.Addr != "" && config.Render.CacheTTL > 0 {
			redisClient, err := redis.New(&redis.Config{
				Addr:     config.Redis.Addr,
				Password: config.Redis.Password,
				DB:       config.Redis.DB,
			}, log.Logger)
			if err != nil {
				// The cache is an optimization; run without it.
				log.Warn("failed to initialize redis cache, rendering without cache", zap.Error(err))
			} else {
				cache = redisClient
				cleanup = func() { redisClient.Close() }
			}
		}

		renderer := render.NewPageRenderer(store, cache, render.PageRendererConfig{
			MaxFetchBytes: config.Render.MaxFetchBytes,
			FetchTimeout:  time.Duration(config.Render.FetchTimeout) * time.Second,
			DPI:           config.Render.DPI,
			CacheTTL:      time.Duration(config.Render.CacheTTL) * time.Second,
		}, log.Logger)
		return renderer, cleanup, nil

	default:
		return nil, noop, fmt.Errorf("unknown render mode: %s", config.Render.Mode)
	}
}
