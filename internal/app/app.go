package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hotelconcierge/internal/booking"
	"hotelconcierge/internal/cache"
	"hotelconcierge/internal/catalog"
	"hotelconcierge/internal/config"
	"hotelconcierge/internal/convai"
	"hotelconcierge/internal/idgen/simple"
	"hotelconcierge/internal/rag"
	"hotelconcierge/internal/transport/web"
)

const shutdownTimeout = 4 * time.Second

// Run wires the whole service and blocks until shutdown. The booking core
// always starts; retrieval, conversations and the answer cache are optional
// and come up only when configured.
func Run(l *zap.Logger, conf *config.Config) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	profile, err := catalog.Load(conf.HotelDataPath)
	if err != nil {
		return fmt.Errorf("load hotel profile: %w", err)
	}

	store := catalog.NewStore(catalog.Config{L: l, Versions: simple.New()})

	if _, err := store.Install(ctx, profile); err != nil {
		return fmt.Errorf("install hotel profile: %w", err)
	}

	extractor := booking.NewExtractor(nil)
	bookingManager := booking.New(l, store, extractor)

	deps := web.Deps{
		Quotes: bookingManager,
		Reloader: &catalog.Reloader{
			Path:  conf.HotelDataPath,
			Store: store,
		},
	}

	if conf.GeminiAPIKey != "" {
		embedder, err := rag.NewGeminiEmbedder(ctx, conf.GeminiAPIKey, conf.EmbeddingModel)
		if err != nil {
			return fmt.Errorf("init embedder: %w", err)
		}

		defer func() {
			if err := embedder.Close(); err != nil {
				l.Warn("Failed to close embedder", zap.Error(err))
			}
		}()

		engine := rag.NewEngine(rag.Config{
			L:        l,
			Embedder: embedder,
			Catalog:  store,
			IndexDir: conf.IndexStoragePath,
			Model:    conf.EmbeddingModel,
			TopK:     conf.TopKResults,
			MinScore: conf.SimilarityThreshold,
		})

		if err := engine.Init(ctx); err != nil {
			return fmt.Errorf("init retrieval index: %w", err)
		}

		deps.Queries = engine
	} else {
		l.Warn("Retrieval disabled: no embedding API key configured")
	}

	if conf.RedisAddr != "" {
		answers, err := cache.New(ctx, cache.Config{
			L:        l,
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
			TTL:      conf.QueryCacheTTL,
		})
		if err != nil {
			return fmt.Errorf("init answer cache: %w", err)
		}

		defer func() {
			if err := answers.Close(); err != nil {
				l.Warn("Failed to close answer cache", zap.Error(err))
			}
		}()

		deps.Answers = answers
	}

	if conf.ElevenLabsAPIKey != "" {
		deps.Conversations = convai.New(convai.Config{
			L:       l,
			BaseURL: conf.ElevenLabsBaseURL,
			APIKey:  conf.ElevenLabsAPIKey,
		})
	} else {
		l.Warn("Conversations api disabled: no API key configured")
	}

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Host,
		Port:              conf.Port,
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		HealthEndpoint:    conf.HealthEndpoint,
		RateLimitPerMin:   conf.RateLimitPerMin,
		RateLimitBurst:    conf.RateLimitBurst,
	}

	srv, err := web.New(ctx, webConf, deps)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.Error("Failed to stop http server", zap.Error(err))
		}
	}()

	l.Info("Application is running",
		zap.String("host", webConf.Host),
		zap.String("port", webConf.Port),
	)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.Error("Failed to run http server", zap.Error(err))

		cancel()
	}

	l.Info("Application stopped gracefully")

	return nil
}
