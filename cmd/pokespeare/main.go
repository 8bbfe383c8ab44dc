// Command pokespeare runs the Shakespearean Pokemon description gateway.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pokespeare/pokespeare"
	"github.com/pokespeare/pokespeare/cache"
	"github.com/pokespeare/pokespeare/client"
	"github.com/pokespeare/pokespeare/config"
	"github.com/pokespeare/pokespeare/logging"
	"github.com/pokespeare/pokespeare/server"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(pokespeare.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", pokespeare.Name, pokespeare.FullVersion())
		if pokespeare.BuildDate != "unknown" && pokespeare.BuildDate != "" {
			fmt.Fprintf(stdout, "  built: %s\n", pokespeare.BuildDate)
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	registry := prometheus.NewRegistry()
	metrics := server.NewMetrics(registry)

	// Result cache: in-memory LRU by default, Redis when configured.
	var resultCache pokespeare.Cache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			URL: cfg.RedisURL,
			TTL: cfg.RedisTTL,
		})
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer redisCache.Close()
		resultCache = redisCache
		logger.Info().Msg("using redis result cache")
	} else {
		lru := cache.NewLRUCache(cfg.CacheSize)
		server.RegisterCacheStats(registry, lru.HitCount, lru.MissCount)
		resultCache = lru
		logger.Info().Int("capacity", cfg.CacheSize).Msg("using in-memory result cache")
	}

	descriptions := client.NewPokeAPIClient(client.PokeAPIConfig{
		BaseURL:     cfg.PokeAPIEndpoint,
		RequestHook: metrics.PokeAPIRequests.Inc,
	})

	var translator pokespeare.TranslationClient
	switch cfg.Translator {
	case config.TranslatorOpenAI:
		translator = client.NewOpenAITranslator(client.OpenAIConfig{
			APIKey:      cfg.OpenAIKey,
			Model:       cfg.OpenAIModel,
			RequestHook: metrics.TranslatorRequests.Inc,
		})
	default:
		translator = client.NewShakespeareClient(client.ShakespeareConfig{
			BaseURL:     cfg.TranslatorEndpoint,
			RequestHook: metrics.TranslatorRequests.Inc,
		})
	}
	if cfg.TranslatorRPM > 0 {
		translator = pokespeare.NewRateLimitedTranslationClient(translator, pokespeare.RateLimitConfig{
			RequestsPerMinute: cfg.TranslatorRPM,
		})
	}

	resolver := pokespeare.NewResolver(descriptions, translator,
		pokespeare.WithCache(resultCache),
		pokespeare.WithLogger(logger),
		pokespeare.WithSingleFlight(),
	)

	srv := server.New(resolver,
		server.WithLogger(logger),
		server.WithMetricsHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
	)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logger.Info().Msg("received termination signal, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}
