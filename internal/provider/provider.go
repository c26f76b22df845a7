package provider

import (
	"context"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/entity"
)

// Input is one document handed to a provider: raw bytes plus the declared
// mime type. Filename is a hint only.
type Input struct {
	FileID   uuid.UUID
	Bytes    []byte
	MimeType string
	Filename string
}

// Provider is the capability set every AI backend implements.
// Classify and Extract are the primary calls; Summarize and SuggestTags are
// best-effort enrichment.
type Provider interface {
	Name() string
	Classify(ctx context.Context, in Input) (entity.Classification, error)
	Extract(ctx context.Context, in Input, schemaType constants.DocType, promptOverride string) (*entity.ExtractionResult, error)
	Summarize(ctx context.Context, text string, maxLen int) (string, error)
	SuggestTags(ctx context.Context, text string, maxTags int) ([]string, error)
}
