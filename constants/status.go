package constants

// BatchJobStatus is the canonical status for rows in batch_jobs.
type BatchJobStatus string

// Stable values (store these exact strings in DB).
const (
	BatchJobQueued              BatchJobStatus = "queued"
	BatchJobProcessing          BatchJobStatus = "processing"
	BatchJobCompleted           BatchJobStatus = "completed"
	BatchJobCompletedWithErrors BatchJobStatus = "completed_with_errors"
	BatchJobCancelled           BatchJobStatus = "cancelled"
)

// IsTerminal reports whether the job status admits no further transitions.
func (s BatchJobStatus) IsTerminal() bool {
	switch s {
	case BatchJobCompleted, BatchJobCompletedWithErrors, BatchJobCancelled:
		return true
	}
	return false
}

// BatchItemStatus is the canonical status for rows in batch_items.
type BatchItemStatus string

const (
	BatchItemQueued     BatchItemStatus = "queued"
	BatchItemProcessing BatchItemStatus = "processing"
	BatchItemCompleted  BatchItemStatus = "completed"
	BatchItemFailed     BatchItemStatus = "failed"
)

func (s BatchItemStatus) IsTerminal() bool {
	return s == BatchItemCompleted || s == BatchItemFailed
}

// DuplicateFlagStatus tracks resolution state of a duplicate pair.
type DuplicateFlagStatus string

const (
	DuplicateOpen     DuplicateFlagStatus = "open"
	DuplicateResolved DuplicateFlagStatus = "resolved"
)

// DuplicateReasonHashMatch is the only reason emitted by the hash detector.
const DuplicateReasonHashMatch = "hash_match"
