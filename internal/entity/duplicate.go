package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
)

// DuplicateFlag marks two same-owner files sharing a content hash.
// FileID is always the canonically smaller id of the pair, so one flag
// exists per unordered pair regardless of upload order.
type DuplicateFlag struct {
	ID              uuid.UUID                     `json:"id"`
	OwnerID         uuid.UUID                     `json:"owner_id"`
	FileID          uuid.UUID                     `json:"file_id"`
	DuplicateFileID uuid.UUID                     `json:"duplicate_file_id"`
	Reason          string                        `json:"reason"`
	Status          constants.DuplicateFlagStatus `json:"status"`
	ResolvedFileID  *uuid.UUID                    `json:"resolved_file_id,omitempty"`
	ResolvedAt      *time.Time                    `json:"resolved_at,omitempty"`
	CreatedAt       time.Time                     `json:"created_at"`
}

// CanonicalPair orders two file ids so the smaller one comes first,
// comparing the UUIDs bytewise.
func CanonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() < b.String() {
		return a, b
	}
	return b, a
}
