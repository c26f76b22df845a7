package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/entity"
	"github.com/joseph-ayodele/docintel/internal/repository"
)

// ItemResult is what one successfully processed source yields.
type ItemResult struct {
	Result json.RawMessage
	Cost   float64
}

// ItemProcessor runs extraction for a single source. The pipeline processor
// satisfies this.
type ItemProcessor interface {
	ProcessSource(ctx context.Context, ownerID uuid.UUID, source string, docType constants.DocType) (*ItemResult, error)
}

// Status is the progress snapshot returned by GetStatus.
type Status struct {
	Job   *entity.BatchJob    `json:"job"`
	Items []*entity.BatchItem `json:"items"`
}

// Orchestrator creates batch jobs, fans their items out to the queue, and
// keeps job counters and statuses consistent as items finish. Item failures
// with a retryable cause re-enter the queue until the retry budget is spent.
type Orchestrator struct {
	jobs       repository.BatchJobRepository
	items      repository.BatchItemRepository
	proc       ItemProcessor
	queue      *Queue
	logger     *slog.Logger
	maxRetries int

	mu    sync.Mutex
	stops map[uuid.UUID]chan struct{}
}

func NewOrchestrator(
	jobs repository.BatchJobRepository,
	items repository.BatchItemRepository,
	proc ItemProcessor,
	logger *slog.Logger,
	maxRetries int,
	queueOpts ...Option,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	o := &Orchestrator{
		jobs:       jobs,
		items:      items,
		proc:       proc,
		logger:     logger,
		maxRetries: maxRetries,
		stops:      map[uuid.UUID]chan struct{}{},
	}
	o.queue = NewQueue(o.runItem, logger, queueOpts...)
	return o
}

// CreateBatch persists the job with one item per source, estimates cost up
// front, and enqueues every item.
func (o *Orchestrator) CreateBatch(ctx context.Context, ownerID uuid.UUID, docType constants.DocType, sources []string, options json.RawMessage) (*entity.BatchJob, error) {
	if len(sources) == 0 {
		return nil, common.InvalidArgumentError("batch needs at least one source")
	}
	if _, ok := constants.Canonicalize(string(docType)); !ok && docType != "" {
		return nil, common.InvalidArgumentErrorf("unknown document type %q", docType)
	}
	if docType == "" {
		docType = constants.Document
	}

	job := &entity.BatchJob{
		OwnerID:       ownerID,
		Type:          docType,
		Options:       options,
		EstimatedCost: float64(len(sources)) * constants.UnitCost(docType),
	}
	created, items, err := o.jobs.Create(ctx, job, sources)
	if err != nil {
		return nil, err
	}

	o.logger.Info("batch.created",
		"batch_job_id", created.ID,
		"owner_id", ownerID,
		"type", docType,
		"total_items", created.TotalItems,
		"estimated_cost", created.EstimatedCost,
	)

	for _, it := range items {
		_ = o.queue.Enqueue(ctx, Job{JobID: created.ID, ItemID: it.ID})
	}
	return created, nil
}

// Cancel moves a non-terminal job to cancelled, fails its remaining items in
// the same transaction, and signals in-flight workers to stop. Cancelling a
// terminal job is a no-op returning false.
func (o *Orchestrator) Cancel(ctx context.Context, jobID uuid.UUID) (bool, error) {
	moved, n, err := o.jobs.CancelWithItems(ctx, jobID, "batch cancelled")
	if err != nil {
		return false, err
	}
	if !moved {
		return false, nil
	}

	// wake in-flight workers so provider calls abort early
	o.mu.Lock()
	if stop, ok := o.stops[jobID]; ok {
		close(stop)
		delete(o.stops, jobID)
	}
	o.mu.Unlock()

	o.logger.Info("batch.cancelled", "batch_job_id", jobID, "items_failed", n)
	return true, nil
}

// GetStatus returns the job with derived progress plus its items in index
// order.
func (o *Orchestrator) GetStatus(ctx context.Context, jobID uuid.UUID) (*Status, error) {
	job, err := o.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	items, err := o.items.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &Status{Job: job, Items: items}, nil
}

// Shutdown drains the worker pool.
func (o *Orchestrator) Shutdown(ctx context.Context) {
	o.queue.Shutdown(ctx)
}

// stopChan returns the per-job channel closed by Cancel, creating it on
// first use so jobs resumed after a restart still get one.
func (o *Orchestrator) stopChan(jobID uuid.UUID) chan struct{} {
	o.mu.Lock()
	defer o.mu.Unlock()
	stop, ok := o.stops[jobID]
	if !ok {
		stop = make(chan struct{})
		o.stops[jobID] = stop
	}
	return stop
}

func (o *Orchestrator) dropStop(jobID uuid.UUID) {
	o.mu.Lock()
	if stop, ok := o.stops[jobID]; ok {
		close(stop)
		delete(o.stops, jobID)
	}
	o.mu.Unlock()
}

func (o *Orchestrator) runItem(ctx context.Context, job Job) {
	start := time.Now()
	log := o.logger.With("batch_job_id", job.JobID, "item_id", job.ItemID)

	jobRow, err := o.jobs.GetByID(ctx, job.JobID)
	if err != nil {
		log.Error("batch.job_load_failed", "error", err)
		return
	}
	if jobRow.Status.IsTerminal() {
		log.Info("batch.item_skipped", "reason", "job terminal", "status", jobRow.Status)
		return
	}

	// first item to run flips the job into processing
	if moved, err := o.jobs.MarkProcessing(ctx, job.JobID); err != nil {
		log.Error("batch.job_transition_failed", "error", err)
		return
	} else if moved {
		log.Info("batch.job_started")
	}

	claimed, err := o.items.MarkProcessing(ctx, job.ItemID)
	if err != nil {
		log.Error("batch.item_claim_failed", "error", err)
		return
	}
	if !claimed {
		// already terminal, e.g. failed by Cancel
		log.Info("batch.item_skipped", "reason", "not queued")
		return
	}

	item, err := o.findItem(ctx, job)
	if err != nil {
		log.Error("batch.item_load_failed", "error", err)
		return
	}

	// cancel the in-flight provider call when Cancel fires
	runCtx, cancelRun := context.WithCancel(ctx)
	stop := o.stopChan(job.JobID)
	go func() {
		select {
		case <-stop:
			cancelRun()
		case <-runCtx.Done():
		}
	}()

	res, perr := o.proc.ProcessSource(runCtx, jobRow.OwnerID, item.Source, item.Type)
	cancelRun()
	took := time.Since(start)

	if perr == nil {
		marked, err := o.items.MarkCompleted(ctx, job.ItemID, res.Result, res.Cost, took)
		if err != nil {
			log.Error("batch.item_complete_failed", "error", err)
			return
		}
		if !marked {
			// lost the race to Cancel; counters were settled there
			return
		}
		if err := o.jobs.AddProcessedItems(ctx, job.JobID, 1); err != nil {
			log.Error("batch.counter_failed", "error", err)
		}
		if res.Cost > 0 {
			if err := o.jobs.AddActualCost(ctx, job.JobID, res.Cost); err != nil {
				log.Error("batch.counter_failed", "error", err)
			}
		}
		log.Info("batch.item_completed", "elapsed_ms", took.Milliseconds(), "cost", res.Cost)
		o.maybeFinish(ctx, job.JobID)
		return
	}

	if common.IsRetryable(perr) && ctx.Err() == nil {
		retries, rerr := o.items.IncrementRetries(ctx, job.ItemID)
		if rerr == nil && retries <= o.maxRetries {
			if requeued, rerr := o.items.RequeueForRetry(ctx, job.ItemID); rerr == nil && requeued {
				log.Warn("batch.item_retry",
					"retries", retries,
					"kind", common.KindOf(perr),
					"error", perr,
				)
				_ = o.queue.Enqueue(context.Background(), job)
				return
			}
		}
	}

	marked, err := o.items.MarkFailed(ctx, job.ItemID, perr.Error(), took)
	if err != nil {
		log.Error("batch.item_fail_failed", "error", err)
		return
	}
	if !marked {
		return
	}
	if err := o.jobs.AddProcessedItems(ctx, job.JobID, 1); err != nil {
		log.Error("batch.counter_failed", "error", err)
	}
	if err := o.jobs.AddFailedItems(ctx, job.JobID, 1); err != nil {
		log.Error("batch.counter_failed", "error", err)
	}
	log.Error("batch.item_failed",
		"elapsed_ms", took.Milliseconds(),
		"kind", common.KindOf(perr),
		"error", perr,
	)
	o.maybeFinish(ctx, job.JobID)
}

func (o *Orchestrator) findItem(ctx context.Context, job Job) (*entity.BatchItem, error) {
	items, err := o.items.ListByJob(ctx, job.JobID)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == job.ItemID {
			return it, nil
		}
	}
	return nil, fmt.Errorf("batch item %s not found in job %s", job.ItemID, job.JobID)
}

// maybeFinish closes the job once every item is accounted for. The
// conditional update in Finish means only one caller wins and a cancelled
// job is never overwritten.
func (o *Orchestrator) maybeFinish(ctx context.Context, jobID uuid.UUID) {
	job, err := o.jobs.GetByID(ctx, jobID)
	if err != nil {
		o.logger.Error("batch.job_load_failed", "batch_job_id", jobID, "error", err)
		return
	}
	if job.Status.IsTerminal() || job.ProcessedItems < job.TotalItems {
		return
	}

	status := constants.BatchJobCompleted
	if job.FailedItems > 0 {
		status = constants.BatchJobCompletedWithErrors
	}
	moved, err := o.jobs.Finish(ctx, jobID, status, "")
	if err != nil {
		o.logger.Error("batch.job_finish_failed", "batch_job_id", jobID, "error", err)
		return
	}
	if moved {
		o.dropStop(jobID)
		o.logger.Info("batch.job_finished",
			"batch_job_id", jobID,
			"status", status,
			"processed", job.ProcessedItems,
			"failed", job.FailedItems,
			"actual_cost", job.ActualCost,
		)
	}
}
