package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
)

// ExtractableEntity is the polymorphic link record tying a file to exactly
// one typed row (receipt, invoice, ...) produced from it. At most one row
// per file carries IsPrimary; (EntityType, EntityID) is claimed by a single
// file lineage at a time.
type ExtractableEntity struct {
	ID                 uuid.UUID         `json:"id"`
	FileID             uuid.UUID         `json:"file_id"`
	OwnerID            uuid.UUID         `json:"owner_id"`
	EntityType         constants.DocType `json:"entity_type"`
	EntityID           uuid.UUID         `json:"entity_id"`
	IsPrimary          bool              `json:"is_primary"`
	ConfidenceScore    float64           `json:"confidence_score"`
	ExtractionProvider string            `json:"extraction_provider"`
	ExtractionModel    string            `json:"extraction_model"`
	ExtractionMetadata json.RawMessage   `json:"extraction_metadata,omitempty"`
	ExtractedAt        time.Time         `json:"extracted_at"`
	DeletedAt          *time.Time        `json:"deleted_at,omitempty"`
}

// EntityRef is the application-layer tagged variant behind the
// (entity_type, entity_id) storage pair.
type EntityRef struct {
	Type constants.DocType
	ID   uuid.UUID
}
