package entity

import (
	"time"

	"github.com/google/uuid"
)

// File represents an ingested file for data transfer between layers.
type File struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	SourcePath  string     `json:"source_path"`
	ContentHash []byte     `json:"content_hash"`
	Filename    string     `json:"filename"`
	FileExt     string     `json:"file_ext"`
	MimeType    string     `json:"mime_type"`
	FileSize    int        `json:"file_size"`
	UploadedAt  time.Time  `json:"uploaded_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}
