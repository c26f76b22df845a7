// Package pipeline coordinates the full path for one document: load bytes,
// extract through the provider stack, persist typed entities, then run
// best-effort enrichment.
package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/batch"
	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/entity"
	"github.com/joseph-ayodele/docintel/internal/ingest"
	"github.com/joseph-ayodele/docintel/internal/provider"
	"github.com/joseph-ayodele/docintel/internal/repository"
)

// Outcome is everything ProcessFile produced for one document.
type Outcome struct {
	File    *entity.File                `json:"file"`
	Result  *entity.ExtractionResult    `json:"result"`
	Links   []*entity.ExtractableEntity `json:"links"`
	Summary string                      `json:"summary,omitempty"`
	Tags    []string                    `json:"tags,omitempty"`
}

type Processor struct {
	logger   *slog.Logger
	provider provider.Provider
	files    repository.FileRepository
	entities repository.EntityRepository
	ingestor *ingest.FSIngestor
}

func NewProcessor(
	logger *slog.Logger,
	prov provider.Provider,
	files repository.FileRepository,
	entities repository.EntityRepository,
	ingestor *ingest.FSIngestor,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:   logger,
		provider: prov,
		files:    files,
		entities: entities,
		ingestor: ingestor,
	}
}

// ProcessFile extracts entities from an already-ingested file and persists
// them. Enrichment (summary, tags) is best-effort and never fails the run.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID, docType constants.DocType, promptOverride string) (*Outcome, error) {
	ctx = common.EnsureRequestID(ctx)
	start := time.Now()

	file, err := p.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, common.WrapError(err, "load file")
	}
	if file.DeletedAt != nil {
		return nil, common.InvalidArgumentError("file is deleted")
	}

	data, err := os.ReadFile(file.SourcePath)
	if err != nil {
		return nil, common.FileNotFoundError(file.SourcePath, err)
	}

	in := provider.Input{
		FileID:   file.ID,
		Bytes:    data,
		MimeType: file.MimeType,
		Filename: file.Filename,
	}
	res, err := p.provider.Extract(ctx, in, docType, promptOverride)
	if err != nil {
		p.logger.Error("pipeline.extract_failed",
			"req_id", common.RequestIDFromContext(ctx),
			"file_id", file.ID,
			"provider", p.provider.Name(),
			"kind", common.KindOf(err),
			"error", err,
		)
		return nil, err
	}

	links, err := p.entities.SaveExtraction(ctx, file, res)
	if err != nil {
		return nil, common.WrapError(err, "persist entities")
	}

	out := &Outcome{File: file, Result: res, Links: links}

	// enrichment degrades silently; the resilient wrapper swallows errors
	if res.RawText != "" {
		out.Summary, _ = p.provider.Summarize(ctx, res.RawText, 512)
		out.Tags, _ = p.provider.SuggestTags(ctx, res.RawText, 5)
	}

	primary := res.PrimaryEntity()
	primaryType := constants.Document
	if primary != nil {
		primaryType = primary.Type
	}
	p.logger.Info("pipeline.processed",
		"req_id", common.RequestIDFromContext(ctx),
		"file_id", file.ID,
		"provider", res.ProviderName,
		"model", res.ModelID,
		"entities", len(res.Entities),
		"primary_type", primaryType,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// ProcessSource ingests a path for the owner and runs the full pipeline on
// it. Satisfies the batch orchestrator's item contract.
func (p *Processor) ProcessSource(ctx context.Context, ownerID uuid.UUID, source string, docType constants.DocType) (*batch.ItemResult, error) {
	file, ing, err := p.ingestor.IngestPath(ctx, ownerID, source)
	if err != nil {
		return nil, err
	}

	out, err := p.ProcessFile(ctx, file.ID, docType, "")
	if err != nil {
		return nil, err
	}

	summary := map[string]interface{}{
		"file_id":    file.ID.String(),
		"hash":       ing.HashHex,
		"entities":   len(out.Result.Entities),
		"duplicates": ing.Duplicates,
	}
	if primary := out.Result.PrimaryEntity(); primary != nil {
		summary["primary_type"] = string(primary.Type)
		summary["confidence"] = primary.ConfidenceScore
	}
	if len(out.Tags) > 0 {
		summary["tags"] = out.Tags
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	cost := constants.UnitCost(docType)
	if primary := out.Result.PrimaryEntity(); primary != nil {
		cost = constants.UnitCost(primary.Type)
	}
	return &batch.ItemResult{Result: raw, Cost: cost}, nil
}
