package utils

import (
	"encoding/json"
	"time"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/gen/ent"
	"github.com/joseph-ayodele/docintel/internal/entity"
)

// ParseYMD parses a calendar date and strips the time to midnight UTC to
// match DATE column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func rawJSON(m map[string]interface{}) json.RawMessage {
	if len(m) == 0 {
		return nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return b
}

func ToFile(e *ent.File) *entity.File {
	return &entity.File{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		MimeType:    e.MimeType,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
		DeletedAt:   e.DeletedAt,
	}
}

func ToEntityLink(e *ent.EntityLink) *entity.ExtractableEntity {
	return &entity.ExtractableEntity{
		ID:                 e.ID,
		FileID:             e.FileID,
		OwnerID:            e.OwnerID,
		EntityType:         constants.DocType(e.EntityType),
		EntityID:           e.EntityID,
		IsPrimary:          e.IsPrimary,
		ConfidenceScore:    e.ConfidenceScore,
		ExtractionProvider: e.ExtractionProvider,
		ExtractionModel:    e.ExtractionModel,
		ExtractionMetadata: rawJSON(e.ExtractionMetadata),
		ExtractedAt:        e.ExtractedAt,
		DeletedAt:          e.DeletedAt,
	}
}

func ToDuplicateFlag(e *ent.DuplicateFlag) *entity.DuplicateFlag {
	return &entity.DuplicateFlag{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		FileID:          e.FileID,
		DuplicateFileID: e.DuplicateFileID,
		Reason:          e.Reason,
		Status:          constants.DuplicateFlagStatus(e.Status),
		ResolvedFileID:  e.ResolvedFileID,
		ResolvedAt:      e.ResolvedAt,
		CreatedAt:       e.CreatedAt,
	}
}

func ToBatchJob(e *ent.BatchJob) *entity.BatchJob {
	return &entity.BatchJob{
		ID:             e.ID,
		OwnerID:        e.OwnerID,
		Type:           constants.DocType(e.JobType),
		TotalItems:     e.TotalItems,
		ProcessedItems: e.ProcessedItems,
		FailedItems:    e.FailedItems,
		Status:         constants.BatchJobStatus(e.Status),
		Options:        rawJSON(e.Options),
		EstimatedCost:  e.EstimatedCost,
		ActualCost:     e.ActualCost,
		StartedAt:      e.StartedAt,
		CompletedAt:    e.CompletedAt,
		ErrorMessage:   e.ErrorMessage,
		CreatedAt:      e.CreatedAt,
	}
}

func ToBatchItem(e *ent.BatchItem) *entity.BatchItem {
	return &entity.BatchItem{
		ID:             e.ID,
		BatchJobID:     e.BatchJobID,
		ItemIndex:      e.ItemIndex,
		Source:         e.Source,
		Type:           constants.DocType(e.ItemType),
		Options:        rawJSON(e.Options),
		Status:         constants.BatchItemStatus(e.Status),
		Result:         rawJSON(e.Result),
		ErrorMessage:   e.ErrorMessage,
		ProcessingTime: time.Duration(e.ProcessingTimeMs) * time.Millisecond,
		Cost:           e.Cost,
		Retries:        e.Retries,
		ProcessedAt:    e.ProcessedAt,
	}
}
