package entity

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
)

// ExtractionRequest carries one file's bytes into the provider stack.
// Immutable once created.
type ExtractionRequest struct {
	OwnerID        uuid.UUID
	FileID         uuid.UUID
	Bytes          []byte
	MimeType       string
	SchemaType     constants.DocType
	PromptOverride string
}

// Classification is the pass-1 result of the two-pass strategy.
type Classification struct {
	Type       constants.DocType `json:"type"`
	Confidence float64           `json:"confidence"`
	Reasoning  string            `json:"reasoning,omitempty"`
}

// Entity is one extracted record: a type tag, a confidence, and a nested
// key/value payload whose shape depends on the type.
type Entity struct {
	Type            constants.DocType `json:"type"`
	ConfidenceScore float64           `json:"confidence_score"`
	Data            map[string]any    `json:"data"`
}

// LargeFileInfo records the fallback strategy applied to oversized inputs.
// Sampling is advisory: the full document is still attached and SamplePages
// lists the pages the model is instructed to read.
type LargeFileInfo struct {
	Strategy    string `json:"strategy"` // "text_excerpt" or "sample_pages"
	PageCount   int    `json:"page_count,omitempty"`
	SamplePages []int  `json:"sample_pages,omitempty"`
}

// ExtractionResult is produced per extraction attempt and never mutated.
// RawText/RawResponse are kept for audit; Entities is the ordered list of
// extracted records.
type ExtractionResult struct {
	ProviderName string          `json:"provider_name"`
	ModelID      string          `json:"model_id"`
	Entities     []Entity        `json:"entities"`
	RawText      string          `json:"raw_text,omitempty"`
	RawResponse  json.RawMessage `json:"raw_response,omitempty"`
	LargeFile    *LargeFileInfo  `json:"large_file,omitempty"`

	// Classification carries the pass-1 outcome when the two-pass strategy
	// ran; audit only.
	Classification *Classification `json:"classification,omitempty"`
}

// PrimaryEntity returns the highest-confidence entity, or nil when the
// result is empty. Order breaks ties (earlier wins).
func (r *ExtractionResult) PrimaryEntity() *Entity {
	var best *Entity
	for i := range r.Entities {
		if best == nil || r.Entities[i].ConfidenceScore > best.ConfidenceScore {
			best = &r.Entities[i]
		}
	}
	return best
}
