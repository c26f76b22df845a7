// Package dedupe flags exact content collisions between files of a single
// owner. Cross-owner collisions are never flagged: an owner must not learn
// that someone else uploaded the same file.
package dedupe

import (
	"context"
	"encoding/hex"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/entity"
)

// FileStore lists candidate files for a hash. Implementations exclude the
// file itself and soft-deleted files.
type FileStore interface {
	ListByOwnerAndHash(ctx context.Context, ownerID uuid.UUID, hash []byte, exclude uuid.UUID) ([]*entity.File, error)
}

// FlagStore persists duplicate flags. CreateIfAbsent relies on the unique
// (owner_id, file_id, duplicate_file_id) constraint: a collision means the
// flag already exists, not an error.
type FlagStore interface {
	CreateIfAbsent(ctx context.Context, flag *entity.DuplicateFlag) (*entity.DuplicateFlag, bool, error)
}

type Detector struct {
	files  FileStore
	flags  FlagStore
	logger *slog.Logger
}

func NewDetector(files FileStore, flags FlagStore, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{files: files, flags: flags, logger: logger}
}

// DetectDuplicates finds all same-owner files sharing file's content hash
// and ensures exactly one open flag per unordered pair, the lower id always
// stored as file_id. Re-running detection is idempotent.
func (d *Detector) DetectDuplicates(ctx context.Context, file *entity.File) ([]*entity.DuplicateFlag, error) {
	if len(file.ContentHash) == 0 {
		return nil, nil
	}

	matches, err := d.files.ListByOwnerAndHash(ctx, file.OwnerID, file.ContentHash, file.ID)
	if err != nil {
		d.logger.Error("dedupe.list_failed",
			"owner_id", file.OwnerID,
			"file_id", file.ID,
			"error", err,
		)
		return nil, err
	}

	var flags []*entity.DuplicateFlag
	for _, m := range matches {
		a, b := entity.CanonicalPair(file.ID, m.ID)
		flag := &entity.DuplicateFlag{
			OwnerID:         file.OwnerID,
			FileID:          a,
			DuplicateFileID: b,
			Reason:          constants.DuplicateReasonHashMatch,
			Status:          constants.DuplicateOpen,
		}
		row, created, err := d.flags.CreateIfAbsent(ctx, flag)
		if err != nil {
			return flags, err
		}
		if created {
			d.logger.Info("dedupe.flag_created",
				"owner_id", file.OwnerID,
				"file_id", a,
				"duplicate_file_id", b,
				"hash", hex.EncodeToString(file.ContentHash),
			)
		}
		flags = append(flags, row)
	}
	return flags, nil
}
