package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"jurisflow/internal/cache/memory"
	"jurisflow/internal/cache/noop"
	rediscache "jurisflow/internal/cache/redis"
	"jurisflow/internal/config"
	"jurisflow/internal/datajud"
	"jurisflow/internal/handler"
	"jurisflow/internal/llm"
	"jurisflow/internal/llm/claude"
	"jurisflow/internal/llm/gemini"
	"jurisflow/internal/llm/openai"
	"jurisflow/internal/llm/vertex"
	"jurisflow/internal/logging"
	"jurisflow/internal/pdf"
	"jurisflow/internal/port"
	"jurisflow/internal/repository/postgres"
	"jurisflow/internal/router"
	"jurisflow/internal/service"
	gcsstorage "jurisflow/internal/storage/gcs"
	s3storage "jurisflow/internal/storage/s3"
)

// @title Jurisflow API
// @version 1.0
// @description Legal document analysis: PDF text extraction, FIRAC analysis, DataJud precedent search, distinguish analysis and drafting.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(&cfg.Log, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize cache
	cache, err := newCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	defer closeQuietly("cache", cache)

	// Initialize storage
	storage, err := newStorage(ctx, &cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	if storage != nil {
		defer closeQuietly("storage", storage)
	}

	// Initialize text generation
	registerProviders()
	generator := newGenerator(ctx, &cfg.LLM)
	if closer, ok := generator.(io.Closer); ok {
		defer closeQuietly("generator", closer)
	}

	searcher := datajud.NewClient(&cfg.DataJud)

	// Initialize services
	extractionSvc := service.NewExtractionService(pdf.NewExtractor(), cache, storage, &cfg.Extraction, &cfg.Cache, &cfg.Storage)
	analysisSvc := service.NewAnalysisService(generator, &cfg.Analysis)
	precedentSvc := service.NewPrecedentService(searcher, &cfg.DataJud)
	distinguishSvc := service.NewDistinguishService(generator)
	draftingSvc := service.NewDraftingService(generator)
	healthSvc := service.NewHealthService(cache, service.Dependencies{
		TextGeneration:  generator != nil,
		PrecedentSearch: cfg.DataJud.HasCredentials(),
		Storage:         storage != nil,
	})

	// Initialize handlers
	documentH := handler.NewDocumentHandler(extractionSvc, draftingSvc, cfg.Extraction.MaxBytes())
	analysisH := handler.NewAnalysisHandler(analysisSvc, distinguishSvc)
	precedentH := handler.NewPrecedentHandler(precedentSvc)
	healthH := handler.NewHealthHandler(healthSvc)

	// Setup router
	r := router.Setup(cfg, documentH, analysisH, precedentH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server starting", "addr", srv.Addr, "environment", cfg.Server.Environment,
			"llm_provider", cfg.LLM.Provider, "cache", cfg.Cache.Provider, "storage", cfg.Storage.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func registerProviders() {
	llm.RegisterProvider("openai", func(_ context.Context, cfg *config.LLMConfig) (port.TextGenerator, error) {
		return openai.NewGenerator(cfg), nil
	})
	llm.RegisterProvider("claude", func(_ context.Context, cfg *config.LLMConfig) (port.TextGenerator, error) {
		return claude.NewGenerator(cfg), nil
	})
	llm.RegisterProvider("gemini", func(ctx context.Context, cfg *config.LLMConfig) (port.TextGenerator, error) {
		return gemini.NewGenerator(ctx, cfg)
	})
	llm.RegisterProvider("vertex", func(ctx context.Context, cfg *config.LLMConfig) (port.TextGenerator, error) {
		return vertex.NewGenerator(ctx, cfg)
	})
}

// newGenerator returns nil when no usable provider is configured; the
// analysis endpoints then answer 503 and the service reports degraded.
func newGenerator(ctx context.Context, cfg *config.LLMConfig) port.TextGenerator {
	if !cfg.HasCredentials() {
		slog.Warn("no text generation credentials configured", "provider", cfg.Provider)
		return nil
	}
	generator, err := llm.NewGenerator(ctx, cfg)
	if err != nil {
		slog.Warn("text generation provider unavailable", "provider", cfg.Provider, "error", err)
		return nil
	}
	return generator
}

func newCache(ctx context.Context, cfg *config.Config) (port.ExtractionCache, error) {
	switch cfg.Cache.Provider {
	case "memory":
		return memory.NewCache(), nil
	case "redis":
		return rediscache.NewCache(ctx, cfg.Cache.RedisURL)
	case "postgres":
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return postgres.NewExtractionCacheRepo(db), nil
	default:
		return noop.NewCache(), nil
	}
}

func newStorage(ctx context.Context, cfg *config.StorageConfig) (port.ObjectStorage, error) {
	switch cfg.Provider {
	case "s3":
		return s3storage.NewClient(ctx, cfg)
	case "gcs":
		return gcsstorage.NewClient(ctx, cfg)
	default:
		return nil, nil
	}
}

func closeQuietly(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("close failed", "component", name, "error", err)
	}
}
