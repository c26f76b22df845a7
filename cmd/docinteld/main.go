package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/joseph-ayodele/docintel/internal/batch"
	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/dedupe"
	"github.com/joseph-ayodele/docintel/internal/ingest"
	"github.com/joseph-ayodele/docintel/internal/pipeline"
	"github.com/joseph-ayodele/docintel/internal/provider"
	"github.com/joseph-ayodele/docintel/internal/provider/gemini"
	"github.com/joseph-ayodele/docintel/internal/provider/openai"
	"github.com/joseph-ayodele/docintel/internal/provider/resilient"
	"github.com/joseph-ayodele/docintel/internal/repository"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	prov, cleanup, err := buildProvider(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build provider", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	filesRepo := repository.NewFileRepository(entc, logger)
	flagsRepo := repository.NewDuplicateFlagRepository(entc, logger)
	entitiesRepo := repository.NewEntityRepository(entc, logger)
	jobsRepo := repository.NewBatchJobRepository(entc, logger)
	itemsRepo := repository.NewBatchItemRepository(entc, logger)

	detector := dedupe.NewDetector(filesRepo, flagsRepo, logger)
	ingestor := ingest.NewFSIngestor(filesRepo, detector, logger)
	processor := pipeline.NewProcessor(logger, prov, filesRepo, entitiesRepo, ingestor)

	orchestrator := batch.NewOrchestrator(
		jobsRepo, itemsRepo, processor, logger, cfg.Batch.MaxItemRetries,
		batch.WithWorkers(cfg.Batch.Workers),
		batch.WithQueueSize(cfg.Batch.QueueSize),
		batch.WithItemTimeout(cfg.Batch.ItemTimeout),
	)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr, "provider", prov.Name())

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	orchestrator.Shutdown(drainCtx)
	logger.Info("stopped")
}

// buildProvider wires the configured upstream behind the circuit breaker,
// preferring the multimodal client when a Gemini key is present.
func buildProvider(ctx context.Context, cfg *common.Config, logger *slog.Logger) (provider.Provider, func(), error) {
	breaker := resilient.NewBreaker(resilient.BreakerConfig{})

	if cfg.Providers.GeminiAPIKey != "" {
		gc, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:      cfg.Providers.GeminiAPIKey,
			Model:       cfg.Providers.GeminiModel,
			Temperature: cfg.Providers.Temperature,
			Timeout:     cfg.Providers.MultimodalTimeout,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := gc.Close(); err != nil {
				logger.Warn("failed to close gemini client", "error", err)
			}
		}
		return resilient.Wrap(gc, breaker, logger), cleanup, nil
	}

	oc := openai.NewClient(openai.Config{
		APIKey:      cfg.Providers.OpenAIAPIKey,
		BaseURL:     cfg.Providers.OpenAIBaseURL,
		Model:       cfg.Providers.OpenAIModel,
		Temperature: cfg.Providers.Temperature,
		Timeout:     cfg.Providers.Timeout,
	}, logger)
	return resilient.Wrap(oc, breaker, logger), func() {}, nil
}
