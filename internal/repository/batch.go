package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/gen/ent"
	entitem "github.com/joseph-ayodele/docintel/gen/ent/batchitem"
	entjob "github.com/joseph-ayodele/docintel/gen/ent/batchjob"
	"github.com/joseph-ayodele/docintel/internal/entity"
	"github.com/joseph-ayodele/docintel/internal/utils"
)

// BatchJobRepository owns batch_jobs rows. Counter methods are atomic
// increments; status transitions are conditional updates so concurrent
// workers and Cancel cannot double-apply a terminal state.
type BatchJobRepository interface {
	Create(ctx context.Context, job *entity.BatchJob, sources []string) (*entity.BatchJob, []*entity.BatchItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BatchJob, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	AddProcessedItems(ctx context.Context, id uuid.UUID, delta int) error
	AddFailedItems(ctx context.Context, id uuid.UUID, delta int) error
	AddActualCost(ctx context.Context, id uuid.UUID, delta float64) error
	Finish(ctx context.Context, id uuid.UUID, status constants.BatchJobStatus, errMsg string) (bool, error)
	CancelWithItems(ctx context.Context, id uuid.UUID, reason string) (bool, int, error)
}

// BatchItemRepository owns batch_items rows. MarkCompleted and MarkFailed
// only fire while the row is still processing, so a cancelled item cannot
// be re-marked afterwards.
type BatchItemRepository interface {
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.BatchItem, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, result json.RawMessage, cost float64, took time.Duration) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string, took time.Duration) (bool, error)
	IncrementRetries(ctx context.Context, id uuid.UUID) (int, error)
	RequeueForRetry(ctx context.Context, id uuid.UUID) (bool, error)
}

type batchJobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewBatchJobRepository(entc *ent.Client, logger *slog.Logger) BatchJobRepository {
	return &batchJobRepo{
		ent:    entc,
		logger: logger,
	}
}

// Create inserts the job and one item per source in a single transaction;
// either the whole batch exists or none of it does.
func (r *batchJobRepo) Create(ctx context.Context, job *entity.BatchJob, sources []string) (*entity.BatchJob, []*entity.BatchItem, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, nil, err
	}

	builder := tx.BatchJob.Create().
		SetOwnerID(job.OwnerID).
		SetJobType(string(job.Type)).
		SetTotalItems(len(sources)).
		SetStatus(string(constants.BatchJobQueued)).
		SetEstimatedCost(job.EstimatedCost)
	if len(job.Options) > 0 {
		var opts map[string]interface{}
		if err := json.Unmarshal(job.Options, &opts); err == nil {
			builder = builder.SetOptions(opts)
		}
	}
	row, err := builder.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create batch job", "owner_id", job.OwnerID, "error", err)
		return nil, nil, err
	}

	items := make([]*entity.BatchItem, 0, len(sources))
	for i, src := range sources {
		itemRow, err := tx.BatchItem.Create().
			SetBatchJobID(row.ID).
			SetItemIndex(i).
			SetSource(src).
			SetItemType(string(job.Type)).
			SetStatus(string(constants.BatchItemQueued)).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			r.logger.Error("failed to create batch item", "batch_job_id", row.ID, "item_index", i, "error", err)
			return nil, nil, err
		}
		items = append(items, utils.ToBatchItem(itemRow))
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return utils.ToBatchJob(row), items, nil
}

func (r *batchJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.BatchJob, error) {
	row, err := r.ent.BatchJob.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToBatchJob(row), nil
}

func (r *batchJobRepo) MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.BatchJob.Update().
		Where(entjob.ID(id), entjob.StatusEQ(string(constants.BatchJobQueued))).
		SetStatus(string(constants.BatchJobProcessing)).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *batchJobRepo) AddProcessedItems(ctx context.Context, id uuid.UUID, delta int) error {
	return r.ent.BatchJob.UpdateOneID(id).AddProcessedItems(delta).Exec(ctx)
}

func (r *batchJobRepo) AddFailedItems(ctx context.Context, id uuid.UUID, delta int) error {
	return r.ent.BatchJob.UpdateOneID(id).AddFailedItems(delta).Exec(ctx)
}

func (r *batchJobRepo) AddActualCost(ctx context.Context, id uuid.UUID, delta float64) error {
	return r.ent.BatchJob.UpdateOneID(id).AddActualCost(delta).Exec(ctx)
}

// Finish moves a processing job to its terminal status. Returns false when
// the job was not in processing anymore, e.g. already cancelled.
func (r *batchJobRepo) Finish(ctx context.Context, id uuid.UUID, status constants.BatchJobStatus, errMsg string) (bool, error) {
	upd := r.ent.BatchJob.Update().
		Where(entjob.ID(id), entjob.StatusEQ(string(constants.BatchJobProcessing))).
		SetStatus(string(status)).
		SetCompletedAt(time.Now().UTC())
	if errMsg != "" {
		upd = upd.SetErrorMessage(errMsg)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CancelWithItems moves a non-terminal job to cancelled and fails its
// remaining items in the same transaction, including the counter updates.
// A worker's MarkCompleted either commits before this transaction or loses
// its status condition to it, so no item can go completed under a job that
// is already cancelled. Terminal jobs are left untouched and false is
// returned. The int is the number of items failed.
func (r *batchJobRepo) CancelWithItems(ctx context.Context, id uuid.UUID, reason string) (bool, int, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return false, 0, err
	}
	now := time.Now().UTC()

	moved, err := tx.BatchJob.Update().
		Where(
			entjob.ID(id),
			entjob.StatusIn(
				string(constants.BatchJobQueued),
				string(constants.BatchJobProcessing),
			),
		).
		SetStatus(string(constants.BatchJobCancelled)).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to cancel batch job", "batch_job_id", id, "error", err)
		return false, 0, err
	}
	if moved == 0 {
		_ = tx.Rollback()
		return false, 0, nil
	}

	n, err := tx.BatchItem.Update().
		Where(
			entitem.BatchJobID(id),
			entitem.StatusIn(
				string(constants.BatchItemQueued),
				string(constants.BatchItemProcessing),
			),
		).
		SetStatus(string(constants.BatchItemFailed)).
		SetErrorMessage(reason).
		SetProcessedAt(now).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to fail pending items", "batch_job_id", id, "error", err)
		return false, 0, err
	}
	if n > 0 {
		if err := tx.BatchJob.UpdateOneID(id).
			AddProcessedItems(n).
			AddFailedItems(n).
			Exec(ctx); err != nil {
			_ = tx.Rollback()
			return false, 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, 0, err
	}
	return true, n, nil
}

type batchItemRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewBatchItemRepository(entc *ent.Client, logger *slog.Logger) BatchItemRepository {
	return &batchItemRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *batchItemRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.BatchItem, error) {
	rows, err := r.ent.BatchItem.Query().
		Where(entitem.BatchJobID(jobID)).
		Order(entitem.ByItemIndex()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list batch items", "batch_job_id", jobID, "error", err)
		return nil, err
	}
	result := make([]*entity.BatchItem, len(rows))
	for i, row := range rows {
		result[i] = utils.ToBatchItem(row)
	}
	return result, nil
}

func (r *batchItemRepo) MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.BatchItem.Update().
		Where(entitem.ID(id), entitem.StatusEQ(string(constants.BatchItemQueued))).
		SetStatus(string(constants.BatchItemProcessing)).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *batchItemRepo) MarkCompleted(ctx context.Context, id uuid.UUID, result json.RawMessage, cost float64, took time.Duration) (bool, error) {
	upd := r.ent.BatchItem.Update().
		Where(entitem.ID(id), entitem.StatusEQ(string(constants.BatchItemProcessing))).
		SetStatus(string(constants.BatchItemCompleted)).
		SetCost(cost).
		SetProcessingTimeMs(took.Milliseconds()).
		SetProcessedAt(time.Now().UTC())
	if len(result) > 0 {
		var m map[string]interface{}
		if err := json.Unmarshal(result, &m); err == nil {
			upd = upd.SetResult(m)
		}
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *batchItemRepo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string, took time.Duration) (bool, error) {
	n, err := r.ent.BatchItem.Update().
		Where(entitem.ID(id), entitem.StatusEQ(string(constants.BatchItemProcessing))).
		SetStatus(string(constants.BatchItemFailed)).
		SetErrorMessage(errMsg).
		SetProcessingTimeMs(took.Milliseconds()).
		SetProcessedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *batchItemRepo) IncrementRetries(ctx context.Context, id uuid.UUID) (int, error) {
	row, err := r.ent.BatchItem.UpdateOneID(id).AddRetries(1).Save(ctx)
	if err != nil {
		return 0, err
	}
	return row.Retries, nil
}

// RequeueForRetry flips a processing item back to queued so it can run
// again; the persisted retry counter survives the round trip.
func (r *batchItemRepo) RequeueForRetry(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.BatchItem.Update().
		Where(entitem.ID(id), entitem.StatusEQ(string(constants.BatchItemProcessing))).
		SetStatus(string(constants.BatchItemQueued)).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
