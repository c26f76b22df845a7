package batch

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/entity"
)

// in-memory repositories exercising the same conditional-transition
// semantics as the database layer

type fakeJobs struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.BatchJob
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{jobs: map[uuid.UUID]*entity.BatchJob{}}
}

func (f *fakeJobs) Create(_ context.Context, job *entity.BatchJob, sources []string) (*entity.BatchJob, []*entity.BatchItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *job
	stored.ID = uuid.New()
	stored.TotalItems = len(sources)
	stored.Status = constants.BatchJobQueued
	f.jobs[stored.ID] = &stored

	items := make([]*entity.BatchItem, 0, len(sources))
	for i, src := range sources {
		items = append(items, &entity.BatchItem{
			ID:         uuid.New(),
			BatchJobID: stored.ID,
			ItemIndex:  i,
			Source:     src,
			Type:       job.Type,
			Status:     constants.BatchItemQueued,
		})
	}
	copied := stored
	return &copied, items, nil
}

func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.BatchJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, errors.New("job not found")
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobs) MarkProcessing(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job := f.jobs[id]
	if job == nil || job.Status != constants.BatchJobQueued {
		return false, nil
	}
	job.Status = constants.BatchJobProcessing
	now := time.Now()
	job.StartedAt = &now
	return true, nil
}

func (f *fakeJobs) AddProcessedItems(_ context.Context, id uuid.UUID, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[id].ProcessedItems += delta
	return nil
}

func (f *fakeJobs) AddFailedItems(_ context.Context, id uuid.UUID, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[id].FailedItems += delta
	return nil
}

func (f *fakeJobs) AddActualCost(_ context.Context, id uuid.UUID, delta float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[id].ActualCost += delta
	return nil
}

func (f *fakeJobs) Finish(_ context.Context, id uuid.UUID, status constants.BatchJobStatus, errMsg string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job := f.jobs[id]
	if job == nil || job.Status != constants.BatchJobProcessing {
		return false, nil
	}
	job.Status = status
	job.ErrorMessage = errMsg
	now := time.Now()
	job.CompletedAt = &now
	return true, nil
}

type fakeItems struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.BatchItem
}

func newFakeItems() *fakeItems {
	return &fakeItems{items: map[uuid.UUID]*entity.BatchItem{}}
}

func (f *fakeItems) add(items []*entity.BatchItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range items {
		copied := *it
		f.items[it.ID] = &copied
	}
}

func (f *fakeItems) ListByJob(_ context.Context, jobID uuid.UUID) ([]*entity.BatchItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.BatchItem
	for _, it := range f.items {
		if it.BatchJobID == jobID {
			copied := *it
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeItems) MarkProcessing(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := f.items[id]
	if it == nil || it.Status != constants.BatchItemQueued {
		return false, nil
	}
	it.Status = constants.BatchItemProcessing
	return true, nil
}

func (f *fakeItems) MarkCompleted(_ context.Context, id uuid.UUID, result json.RawMessage, cost float64, took time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := f.items[id]
	if it == nil || it.Status != constants.BatchItemProcessing {
		return false, nil
	}
	it.Status = constants.BatchItemCompleted
	it.Result = result
	it.Cost = cost
	it.ProcessingTime = took
	now := time.Now()
	it.ProcessedAt = &now
	return true, nil
}

func (f *fakeItems) MarkFailed(_ context.Context, id uuid.UUID, errMsg string, took time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := f.items[id]
	if it == nil || it.Status != constants.BatchItemProcessing {
		return false, nil
	}
	it.Status = constants.BatchItemFailed
	it.ErrorMessage = errMsg
	it.ProcessingTime = took
	now := time.Now()
	it.ProcessedAt = &now
	return true, nil
}

func (f *fakeItems) IncrementRetries(_ context.Context, id uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := f.items[id]
	it.Retries++
	return it.Retries, nil
}

func (f *fakeItems) RequeueForRetry(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := f.items[id]
	if it == nil || it.Status != constants.BatchItemProcessing {
		return false, nil
	}
	it.Status = constants.BatchItemQueued
	return true, nil
}

// fakeProc scripts per-source behavior by filename prefix.
type fakeProc struct {
	mu       sync.Mutex
	attempts map[string]int
	block    chan struct{} // sources prefixed "slow-" wait here
}

func newFakeProc() *fakeProc {
	return &fakeProc{attempts: map[string]int{}, block: make(chan struct{})}
}

func (p *fakeProc) attemptsFor(source string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attempts[source]
}

func (p *fakeProc) ProcessSource(ctx context.Context, _ uuid.UUID, source string, _ constants.DocType) (*ItemResult, error) {
	p.mu.Lock()
	p.attempts[source]++
	attempt := p.attempts[source]
	p.mu.Unlock()

	switch {
	case strings.HasPrefix(source, "bad-"):
		return nil, common.ResponseInvalidError("unparsable", nil)
	case strings.HasPrefix(source, "flaky-") && attempt == 1:
		return nil, common.RateLimitedError("slow down", nil)
	case strings.HasPrefix(source, "down-"):
		return nil, common.UpstreamUnavailableError("unreachable", nil)
	case strings.HasPrefix(source, "slow-"):
		select {
		case <-p.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	case strings.HasPrefix(source, "late-"):
		// ignores cancellation and reports success after the block opens
		<-p.block
	}
	return &ItemResult{Result: json.RawMessage(`{"ok":true}`), Cost: 0.01}, nil
}

// hook item creation into CreateBatch: the orchestrator calls jobs.Create,
// which returns items that also need to exist in the item store.
type wiredJobs struct {
	*fakeJobs
	items *fakeItems
}

func (w *wiredJobs) Create(ctx context.Context, job *entity.BatchJob, sources []string) (*entity.BatchJob, []*entity.BatchItem, error) {
	created, items, err := w.fakeJobs.Create(ctx, job, sources)
	if err != nil {
		return nil, nil, err
	}
	w.items.add(items)
	return created, items, nil
}

// CancelWithItems holds both store locks so the job transition, the item
// failures, and the counters land as one step, like the database transaction.
func (w *wiredJobs) CancelWithItems(_ context.Context, id uuid.UUID, reason string) (bool, int, error) {
	w.fakeJobs.mu.Lock()
	defer w.fakeJobs.mu.Unlock()
	w.items.mu.Lock()
	defer w.items.mu.Unlock()

	job := w.fakeJobs.jobs[id]
	if job == nil || job.Status.IsTerminal() {
		return false, 0, nil
	}
	job.Status = constants.BatchJobCancelled
	now := time.Now()
	job.CompletedAt = &now

	n := 0
	for _, it := range w.items.items {
		if it.BatchJobID != id || it.Status.IsTerminal() {
			continue
		}
		it.Status = constants.BatchItemFailed
		it.ErrorMessage = reason
		it.ProcessedAt = &now
		n++
	}
	job.ProcessedItems += n
	job.FailedItems += n
	return true, n, nil
}

func newWiredOrchestrator(t *testing.T, proc ItemProcessor, maxRetries int) (*Orchestrator, *fakeJobs, *fakeItems) {
	t.Helper()
	jobs := newFakeJobs()
	items := newFakeItems()
	o := NewOrchestrator(&wiredJobs{fakeJobs: jobs, items: items}, items, proc, nil, maxRetries,
		WithWorkers(2),
		WithQueueSize(32),
		WithItemTimeout(5*time.Second),
	)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		o.Shutdown(ctx)
	})
	return o, jobs, items
}

func waitTerminal(t *testing.T, o *Orchestrator, jobID uuid.UUID) *Status {
	t.Helper()
	var status *Status
	require.Eventually(t, func() bool {
		s, err := o.GetStatus(context.Background(), jobID)
		if err != nil {
			return false
		}
		status = s
		return s.Job.Status.IsTerminal()
	}, 5*time.Second, 10*time.Millisecond)
	return status
}

func TestBatchCompletes(t *testing.T) {
	o, _, _ := newWiredOrchestrator(t, newFakeProc(), 2)

	sources := []string{"a.pdf", "b.pdf", "c.pdf", "d.pdf", "e.pdf"}
	job, err := o.CreateBatch(context.Background(), uuid.New(), constants.Receipt, sources, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, job.TotalItems)
	assert.InDelta(t, 5*constants.UnitCost(constants.Receipt), job.EstimatedCost, 1e-9)

	status := waitTerminal(t, o, job.ID)
	assert.Equal(t, constants.BatchJobCompleted, status.Job.Status)
	assert.Equal(t, 5, status.Job.ProcessedItems)
	assert.Zero(t, status.Job.FailedItems)
	assert.InDelta(t, 0.05, status.Job.ActualCost, 1e-9)
	assert.Equal(t, 100.0, status.Job.ProgressPercentage())
	assert.Equal(t, 100.0, status.Job.SuccessRate())
}

func TestBatchCompletedWithErrors(t *testing.T) {
	o, _, _ := newWiredOrchestrator(t, newFakeProc(), 2)

	sources := []string{"a.pdf", "bad-b.pdf", "c.pdf"}
	job, err := o.CreateBatch(context.Background(), uuid.New(), constants.Invoice, sources, nil)
	require.NoError(t, err)

	status := waitTerminal(t, o, job.ID)
	assert.Equal(t, constants.BatchJobCompletedWithErrors, status.Job.Status)
	assert.Equal(t, 3, status.Job.ProcessedItems)
	assert.Equal(t, 1, status.Job.FailedItems)

	for _, it := range status.Items {
		if strings.HasPrefix(it.Source, "bad-") {
			assert.Equal(t, constants.BatchItemFailed, it.Status)
			assert.Contains(t, it.ErrorMessage, "RESPONSE_INVALID")
			// non-retryable failures are not retried
			assert.Zero(t, it.Retries)
		} else {
			assert.Equal(t, constants.BatchItemCompleted, it.Status)
		}
	}
}

func TestBatchRetriesTransientFailures(t *testing.T) {
	proc := newFakeProc()
	o, _, _ := newWiredOrchestrator(t, proc, 2)

	job, err := o.CreateBatch(context.Background(), uuid.New(), constants.Receipt, []string{"flaky-a.pdf"}, nil)
	require.NoError(t, err)

	status := waitTerminal(t, o, job.ID)
	assert.Equal(t, constants.BatchJobCompleted, status.Job.Status)
	require.Len(t, status.Items, 1)
	assert.Equal(t, constants.BatchItemCompleted, status.Items[0].Status)
	assert.Equal(t, 1, status.Items[0].Retries)
	assert.Equal(t, 2, proc.attemptsFor("flaky-a.pdf"))
}

func TestBatchRetryBudgetExhausted(t *testing.T) {
	proc := newFakeProc()
	o, _, _ := newWiredOrchestrator(t, proc, 1)

	job, err := o.CreateBatch(context.Background(), uuid.New(), constants.Receipt, []string{"down-a.pdf"}, nil)
	require.NoError(t, err)

	status := waitTerminal(t, o, job.ID)
	assert.Equal(t, constants.BatchJobCompletedWithErrors, status.Job.Status)
	require.Len(t, status.Items, 1)
	assert.Equal(t, constants.BatchItemFailed, status.Items[0].Status)
	// one retry allowed: initial attempt plus one requeue
	assert.Equal(t, 2, proc.attemptsFor("down-a.pdf"))
}

func TestBatchCancel(t *testing.T) {
	proc := newFakeProc()
	o, _, _ := newWiredOrchestrator(t, proc, 0)

	// two workers both get stuck on slow items, the rest stay queued
	sources := []string{"slow-a.pdf", "slow-b.pdf", "c.pdf", "d.pdf", "e.pdf"}
	job, err := o.CreateBatch(context.Background(), uuid.New(), constants.Receipt, sources, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		s, err := o.GetStatus(context.Background(), job.ID)
		return err == nil && s.Job.Status == constants.BatchJobProcessing
	}, 5*time.Second, 10*time.Millisecond)

	moved, err := o.Cancel(context.Background(), job.ID)
	require.NoError(t, err)
	assert.True(t, moved)

	status := waitTerminal(t, o, job.ID)
	assert.Equal(t, constants.BatchJobCancelled, status.Job.Status)
	for _, it := range status.Items {
		assert.True(t, it.Status.IsTerminal(), "item %s left in %s", it.Source, it.Status)
	}

	// cancelling again is a no-op
	moved, err = o.Cancel(context.Background(), job.ID)
	require.NoError(t, err)
	assert.False(t, moved)
}

func TestBatchCancelLateCompletionLoses(t *testing.T) {
	proc := newFakeProc()
	o, _, items := newWiredOrchestrator(t, proc, 0)

	job, err := o.CreateBatch(context.Background(), uuid.New(), constants.Receipt, []string{"late-a.pdf"}, nil)
	require.NoError(t, err)

	// wait until the worker holds the item
	require.Eventually(t, func() bool {
		list, err := items.ListByJob(context.Background(), job.ID)
		return err == nil && len(list) == 1 && list[0].Status == constants.BatchItemProcessing
	}, 5*time.Second, 10*time.Millisecond)

	moved, err := o.Cancel(context.Background(), job.ID)
	require.NoError(t, err)
	assert.True(t, moved)

	// the in-flight call now returns success, after the cancel already
	// failed the item; its MarkCompleted must lose the status condition
	close(proc.block)
	drainCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	o.Shutdown(drainCtx)

	status, err := o.GetStatus(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.BatchJobCancelled, status.Job.Status)
	require.Len(t, status.Items, 1)
	assert.Equal(t, constants.BatchItemFailed, status.Items[0].Status)
	assert.Equal(t, 1, status.Job.ProcessedItems)
	assert.Equal(t, 1, status.Job.FailedItems)
	assert.Zero(t, status.Job.ActualCost)
}

func TestCreateBatchValidation(t *testing.T) {
	o, _, _ := newWiredOrchestrator(t, newFakeProc(), 0)

	_, err := o.CreateBatch(context.Background(), uuid.New(), constants.Receipt, nil, nil)
	assert.Error(t, err)

	_, err = o.CreateBatch(context.Background(), uuid.New(), "hologram", []string{"a.pdf"}, nil)
	assert.Error(t, err)
}
