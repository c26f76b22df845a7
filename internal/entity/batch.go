package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
)

// BatchJob aggregates many extraction runs with progress and cost
// accounting. Terminal statuses are immutable once reached.
type BatchJob struct {
	ID             uuid.UUID                `json:"id"`
	OwnerID        uuid.UUID                `json:"owner_id"`
	Type           constants.DocType        `json:"type"`
	TotalItems     int                      `json:"total_items"`
	ProcessedItems int                      `json:"processed_items"`
	FailedItems    int                      `json:"failed_items"`
	Status         constants.BatchJobStatus `json:"status"`
	Options        json.RawMessage          `json:"options,omitempty"`
	EstimatedCost  float64                  `json:"estimated_cost"`
	ActualCost     float64                  `json:"actual_cost"`
	StartedAt      *time.Time               `json:"started_at,omitempty"`
	CompletedAt    *time.Time               `json:"completed_at,omitempty"`
	ErrorMessage   string                   `json:"error_message,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
}

// ProgressPercentage is derived, not stored.
func (j *BatchJob) ProgressPercentage() float64 {
	if j.TotalItems == 0 {
		return 0
	}
	return float64(j.ProcessedItems) / float64(j.TotalItems) * 100
}

// SuccessRate is derived, not stored; 0 when nothing has been processed.
func (j *BatchJob) SuccessRate() float64 {
	if j.ProcessedItems == 0 {
		return 0
	}
	return float64(j.ProcessedItems-j.FailedItems) / float64(j.ProcessedItems) * 100
}

// BatchItem is one unit of work inside a BatchJob. ItemIndex is unique
// within a job and defines reporting order, not execution order.
type BatchItem struct {
	ID             uuid.UUID                 `json:"id"`
	BatchJobID     uuid.UUID                 `json:"batch_job_id"`
	ItemIndex      int                       `json:"item_index"`
	Source         string                    `json:"source"`
	Type           constants.DocType         `json:"type"`
	Options        json.RawMessage           `json:"options,omitempty"`
	Status         constants.BatchItemStatus `json:"status"`
	Result         json.RawMessage           `json:"result,omitempty"`
	ErrorMessage   string                    `json:"error_message,omitempty"`
	ProcessingTime time.Duration             `json:"processing_time,omitempty"`
	Cost           float64                   `json:"cost"`
	Retries        int                       `json:"retries"`
	ProcessedAt    *time.Time                `json:"processed_at,omitempty"`
}
