package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/gen/ent"
	entfile "github.com/joseph-ayodele/docintel/gen/ent/file"
	"github.com/joseph-ayodele/docintel/internal/entity"
	"github.com/joseph-ayodele/docintel/internal/utils"
)

type FileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.File, error)
	Create(ctx context.Context, ownerID uuid.UUID, sourcePath, filename, ext, mimeType string, size int, hash []byte, uploadedAt time.Time) (*entity.File, error)
	ListByOwnerAndHash(ctx context.Context, ownerID uuid.UUID, hash []byte, exclude uuid.UUID) ([]*entity.File, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type fileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFileRepository(entc *ent.Client, logger *slog.Logger) FileRepository {
	return &fileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *fileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.File, error) {
	row, err := r.ent.File.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToFile(row), nil
}

func (r *fileRepo) Create(ctx context.Context, ownerID uuid.UUID, sourcePath, filename, ext, mimeType string, size int, hash []byte, uploadedAt time.Time) (*entity.File, error) {
	row, err := r.ent.File.Create().
		SetOwnerID(ownerID).
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetMimeType(mimeType).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create file", "owner_id", ownerID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return utils.ToFile(row), nil
}

// ListByOwnerAndHash returns same-owner files with the given content hash,
// excluding the file itself and soft-deleted rows.
func (r *fileRepo) ListByOwnerAndHash(ctx context.Context, ownerID uuid.UUID, hash []byte, exclude uuid.UUID) ([]*entity.File, error) {
	rows, err := r.ent.File.Query().
		Where(
			entfile.OwnerID(ownerID),
			entfile.ContentHash(hash),
			entfile.IDNEQ(exclude),
			entfile.DeletedAtIsNil(),
		).
		Order(entfile.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list files by owner and hash", "owner_id", ownerID, "error", err)
		return nil, err
	}
	result := make([]*entity.File, len(rows))
	for i, row := range rows {
		result[i] = utils.ToFile(row)
	}
	return result, nil
}

func (r *fileRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.File.UpdateOneID(id).
		SetDeletedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to soft-delete file", "file_id", id, "error", err)
	}
	return err
}
