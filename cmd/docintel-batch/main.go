package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/gen/ent"
	"github.com/joseph-ayodele/docintel/internal/batch"
	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/dedupe"
	"github.com/joseph-ayodele/docintel/internal/export"
	"github.com/joseph-ayodele/docintel/internal/ingest"
	"github.com/joseph-ayodele/docintel/internal/pipeline"
	"github.com/joseph-ayodele/docintel/internal/provider"
	"github.com/joseph-ayodele/docintel/internal/provider/gemini"
	"github.com/joseph-ayodele/docintel/internal/provider/openai"
	"github.com/joseph-ayodele/docintel/internal/provider/resilient"
	"github.com/joseph-ayodele/docintel/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory to process documents from (required)")
		out     = flag.String("out", "", "output XLSX report path (optional, defaults to parent directory)")
		typeStr = flag.String("type", "document", "document type hint for the batch")
		owner   = flag.String("owner", "", "owner UUID (optional, generated when empty)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "batch-report.xlsx")
	}

	docType, ok := constants.Canonicalize(*typeStr)
	if !ok {
		printError("Error: unknown --type %q, one of: %s\n", *typeStr, strings.Join(constants.AsStringSlice(), ", "))
		os.Exit(1)
	}

	ownerID := uuid.New()
	if *owner != "" {
		parsed, err := uuid.Parse(*owner)
		if err != nil {
			printError("Error: invalid --owner UUID: %v\n", err)
			os.Exit(1)
		}
		ownerID = parsed
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	entc, cleanupDB, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer cleanupDB()

	prov, cleanupProv, err := buildProvider(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build provider", "error", err)
		os.Exit(1)
	}
	defer cleanupProv()

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

	sources, err := collectSources(*dir)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(sources) == 0 {
		printError("Error: no supported documents under %s\n", *dir)
		os.Exit(1)
	}
	logger.Info("starting batch", "dir", *dir, "sources", len(sources), "type", docType, "owner_id", ownerID)

	job, err := orchestrator.CreateBatch(ctx, ownerID, docType, sources, nil)
	if err != nil {
		logger.Error("failed to create batch", "error", err)
		os.Exit(1)
	}

	status := waitForJob(ctx, orchestrator, job.ID, logger)

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	orchestrator.Shutdown(drainCtx)
	cancel()

	logger.Info("exporting report", "output", *out)
	exportService := export.NewService(jobsRepo, itemsRepo, logger)
	xlsxBytes, err := exportService.ExportBatchReportXLSX(ctx, job.ID)
	if err != nil {
		logger.Error("failed to export report", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Batch %s finished: %s\n", job.ID, status.Job.Status)
	fmt.Printf("- Items: %d\n", status.Job.TotalItems)
	fmt.Printf("- Processed: %d\n", status.Job.ProcessedItems)
	fmt.Printf("- Failed: %d\n", status.Job.FailedItems)
	fmt.Printf("- Actual cost: $%.4f\n", status.Job.ActualCost)
	fmt.Printf("- Report: %s\n", *out)
	if status.Job.Status == constants.BatchJobCompletedWithErrors {
		os.Exit(2)
	}
}

// openDatabase picks in-memory SQLite for local one-shot runs, Postgres
// otherwise.
func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if inmem {
		client, err := repository.OpenInMemory(ctx, logger)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close ent client", "error", err)
			}
		}
		return client, cleanup, nil
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { repository.Close(client, pool, logger) }, nil
}

func collectSources(root string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; ok {
			sources = append(sources, path)
		}
		return nil
	})
	return sources, err
}

// waitForJob polls until the job reaches a terminal status.
func waitForJob(ctx context.Context, o *batch.Orchestrator, jobID uuid.UUID, logger *slog.Logger) *batch.Status {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		status, err := o.GetStatus(ctx, jobID)
		if err != nil {
			logger.Error("failed to poll batch status", "batch_job_id", jobID, "error", err)
			time.Sleep(time.Second)
			continue
		}
		if status.Job.Status.IsTerminal() {
			return status
		}
		logger.Info("batch progress",
			"batch_job_id", jobID,
			"processed", status.Job.ProcessedItems,
			"total", status.Job.TotalItems,
			"failed", status.Job.FailedItems,
		)
		<-ticker.C
	}
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
