// Package ingest reads documents off the local filesystem into the files
// table, hashing content on the way in so duplicate detection has something
// to match on.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/dedupe"
	"github.com/joseph-ayodele/docintel/internal/entity"
	"github.com/joseph-ayodele/docintel/internal/repository"
)

type IngestionResult struct {
	SourcePath string    `json:"source_path"`
	FileID     string    `json:"file_id"`
	HashHex    string    `json:"hash_hex"`
	FileExt    string    `json:"file_ext"`
	Duplicates int       `json:"duplicates"`
	UploadedAt time.Time `json:"uploaded_at"`
	Err        string    `json:"err,omitempty"`
}

type DirStats struct {
	Scanned    uint32
	Matched    uint32
	Succeeded  uint32
	Duplicates uint32
	Failed     uint32
}

// FSIngestor reads from the local filesystem.
type FSIngestor struct {
	files    repository.FileRepository
	detector *dedupe.Detector
	logger   *slog.Logger
}

func NewFSIngestor(files repository.FileRepository, detector *dedupe.Detector, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{
		files:    files,
		detector: detector,
		logger:   logger,
	}
}

// IngestPath hashes one file, records it, and runs duplicate detection
// against the owner's existing uploads.
func (i *FSIngestor) IngestPath(ctx context.Context, ownerID uuid.UUID, path string) (*entity.File, *IngestionResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" {
		return nil, nil, common.UnsupportedMimeError("missing file extension")
	}
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, nil, common.UnsupportedMimeError("unsupported extension: " + ext)
	}

	f, err := os.Open(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, common.FileNotFoundError(abs, err)
		}
		return nil, nil, err
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			i.logger.Warn("ingest.close_failed", "path", abs, "error", err)
		}
	}(f)

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return nil, nil, err
	}
	if size > constants.MaxFileSizeBytes {
		return nil, nil, common.FileTooLargeError(fmt.Sprintf("%s: %d bytes exceeds limit of %d", abs, size, constants.MaxFileSizeBytes))
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	row, err := i.files.Create(ctx, ownerID, abs, filepath.Base(abs), ext, constants.MimeByExt[ext], int(size), sum, now)
	if err != nil {
		return nil, nil, err
	}

	flags, err := i.detector.DetectDuplicates(ctx, row)
	if err != nil {
		// the file is in; a detection hiccup should not fail ingestion
		i.logger.Warn("ingest.dedupe_failed", "file_id", row.ID, "error", err)
	}

	res := &IngestionResult{
		SourcePath: row.SourcePath,
		FileID:     row.ID.String(),
		HashHex:    hex.EncodeToString(sum),
		FileExt:    row.FileExt,
		Duplicates: len(flags),
		UploadedAt: row.UploadedAt,
	}
	return row, res, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and calls
// IngestPath for each matching file. Per-file failures are collected, not
// fatal.
func (i *FSIngestor) IngestDirectory(ctx context.Context, ownerID uuid.UUID, root string, skipHidden bool) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		stats.Matched++

		_, r, err := i.IngestPath(ctx, ownerID, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, *r)
		stats.Succeeded++
		if r.Duplicates > 0 {
			stats.Duplicates++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
