package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/gen/ent"
	entflag "github.com/joseph-ayodele/docintel/gen/ent/duplicateflag"
	"github.com/joseph-ayodele/docintel/internal/entity"
	"github.com/joseph-ayodele/docintel/internal/utils"
)

type DuplicateFlagRepository interface {
	CreateIfAbsent(ctx context.Context, flag *entity.DuplicateFlag) (*entity.DuplicateFlag, bool, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, status constants.DuplicateFlagStatus) ([]*entity.DuplicateFlag, error)
	Resolve(ctx context.Context, id uuid.UUID, keepFileID uuid.UUID) (*entity.DuplicateFlag, error)
}

type duplicateFlagRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDuplicateFlagRepository(entc *ent.Client, logger *slog.Logger) DuplicateFlagRepository {
	return &duplicateFlagRepo{
		ent:    entc,
		logger: logger,
	}
}

// CreateIfAbsent inserts a flag for the pair, treating a hit on the unique
// (owner_id, file_id, duplicate_file_id) constraint as "already flagged" and
// returning the existing row instead of an error.
func (r *duplicateFlagRepo) CreateIfAbsent(ctx context.Context, flag *entity.DuplicateFlag) (*entity.DuplicateFlag, bool, error) {
	row, err := r.ent.DuplicateFlag.Create().
		SetOwnerID(flag.OwnerID).
		SetFileID(flag.FileID).
		SetDuplicateFileID(flag.DuplicateFileID).
		SetReason(flag.Reason).
		SetStatus(string(flag.Status)).
		Save(ctx)
	if err == nil {
		return utils.ToDuplicateFlag(row), true, nil
	}
	if !ent.IsConstraintError(err) {
		r.logger.Error("failed to create duplicate flag", "owner_id", flag.OwnerID, "file_id", flag.FileID, "error", err)
		return nil, false, err
	}

	existing, qerr := r.ent.DuplicateFlag.Query().
		Where(
			entflag.OwnerID(flag.OwnerID),
			entflag.FileID(flag.FileID),
			entflag.DuplicateFileID(flag.DuplicateFileID),
		).Only(ctx)
	if qerr != nil {
		return nil, false, qerr
	}
	return utils.ToDuplicateFlag(existing), false, nil
}

func (r *duplicateFlagRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, status constants.DuplicateFlagStatus) ([]*entity.DuplicateFlag, error) {
	q := r.ent.DuplicateFlag.Query().Where(entflag.OwnerID(ownerID))
	if status != "" {
		q = q.Where(entflag.Status(string(status)))
	}
	rows, err := q.Order(entflag.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list duplicate flags", "owner_id", ownerID, "error", err)
		return nil, err
	}
	result := make([]*entity.DuplicateFlag, len(rows))
	for i, row := range rows {
		result[i] = utils.ToDuplicateFlag(row)
	}
	return result, nil
}

// Resolve marks the flag resolved, recording which file was kept.
func (r *duplicateFlagRepo) Resolve(ctx context.Context, id uuid.UUID, keepFileID uuid.UUID) (*entity.DuplicateFlag, error) {
	row, err := r.ent.DuplicateFlag.UpdateOneID(id).
		SetStatus(string(constants.DuplicateResolved)).
		SetResolvedFileID(keepFileID).
		SetResolvedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to resolve duplicate flag", "flag_id", id, "error", err)
		return nil, err
	}
	return utils.ToDuplicateFlag(row), nil
}
