// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/db/ent/schema"
	"github.com/joseph-ayodele/docintel/gen/ent/bankstatement"
	"github.com/joseph-ayodele/docintel/gen/ent/batchitem"
	"github.com/joseph-ayodele/docintel/gen/ent/batchjob"
	"github.com/joseph-ayodele/docintel/gen/ent/contract"
	"github.com/joseph-ayodele/docintel/gen/ent/documentrecord"
	"github.com/joseph-ayodele/docintel/gen/ent/duplicateflag"
	"github.com/joseph-ayodele/docintel/gen/ent/entitylink"
	"github.com/joseph-ayodele/docintel/gen/ent/file"
	"github.com/joseph-ayodele/docintel/gen/ent/invoice"
	"github.com/joseph-ayodele/docintel/gen/ent/receipt"
	"github.com/joseph-ayodele/docintel/gen/ent/voucher"
	"github.com/joseph-ayodele/docintel/gen/ent/warranty"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bankstatementFields := schema.BankStatement{}.Fields()
	_ = bankstatementFields
	// bankstatementDescCreatedAt is the schema descriptor for created_at field.
	bankstatementDescCreatedAt := bankstatementFields[9].Descriptor()
	// bankstatement.DefaultCreatedAt holds the default value on creation for the created_at field.
	bankstatement.DefaultCreatedAt = bankstatementDescCreatedAt.Default.(func() time.Time)
	// bankstatementDescID is the schema descriptor for id field.
	bankstatementDescID := bankstatementFields[0].Descriptor()
	// bankstatement.DefaultID holds the default value on creation for the id field.
	bankstatement.DefaultID = bankstatementDescID.Default.(func() uuid.UUID)
	batchitemFields := schema.BatchItem{}.Fields()
	_ = batchitemFields
	// batchitemDescItemIndex is the schema descriptor for item_index field.
	batchitemDescItemIndex := batchitemFields[2].Descriptor()
	// batchitem.ItemIndexValidator is a validator for the "item_index" field. It is called by the builders before save.
	batchitem.ItemIndexValidator = batchitemDescItemIndex.Validators[0].(func(int) error)
	// batchitemDescSource is the schema descriptor for source field.
	batchitemDescSource := batchitemFields[3].Descriptor()
	// batchitem.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	batchitem.SourceValidator = batchitemDescSource.Validators[0].(func(string) error)
	// batchitemDescItemType is the schema descriptor for item_type field.
	batchitemDescItemType := batchitemFields[4].Descriptor()
	// batchitem.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	batchitem.ItemTypeValidator = func() func(string) error {
		validators := batchitemDescItemType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(item_type string) error {
			for _, fn := range fns {
				if err := fn(item_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// batchitemDescStatus is the schema descriptor for status field.
	batchitemDescStatus := batchitemFields[6].Descriptor()
	// batchitem.DefaultStatus holds the default value on creation for the status field.
	batchitem.DefaultStatus = batchitemDescStatus.Default.(string)
	// batchitem.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batchitem.StatusValidator = batchitemDescStatus.Validators[0].(func(string) error)
	// batchitemDescProcessingTimeMs is the schema descriptor for processing_time_ms field.
	batchitemDescProcessingTimeMs := batchitemFields[9].Descriptor()
	// batchitem.DefaultProcessingTimeMs holds the default value on creation for the processing_time_ms field.
	batchitem.DefaultProcessingTimeMs = batchitemDescProcessingTimeMs.Default.(int64)
	// batchitem.ProcessingTimeMsValidator is a validator for the "processing_time_ms" field. It is called by the builders before save.
	batchitem.ProcessingTimeMsValidator = batchitemDescProcessingTimeMs.Validators[0].(func(int64) error)
	// batchitemDescCost is the schema descriptor for cost field.
	batchitemDescCost := batchitemFields[10].Descriptor()
	// batchitem.DefaultCost holds the default value on creation for the cost field.
	batchitem.DefaultCost = batchitemDescCost.Default.(float64)
	// batchitemDescRetries is the schema descriptor for retries field.
	batchitemDescRetries := batchitemFields[11].Descriptor()
	// batchitem.DefaultRetries holds the default value on creation for the retries field.
	batchitem.DefaultRetries = batchitemDescRetries.Default.(int)
	// batchitem.RetriesValidator is a validator for the "retries" field. It is called by the builders before save.
	batchitem.RetriesValidator = batchitemDescRetries.Validators[0].(func(int) error)
	// batchitemDescID is the schema descriptor for id field.
	batchitemDescID := batchitemFields[0].Descriptor()
	// batchitem.DefaultID holds the default value on creation for the id field.
	batchitem.DefaultID = batchitemDescID.Default.(func() uuid.UUID)
	batchjobFields := schema.BatchJob{}.Fields()
	_ = batchjobFields
	// batchjobDescJobType is the schema descriptor for job_type field.
	batchjobDescJobType := batchjobFields[2].Descriptor()
	// batchjob.JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	batchjob.JobTypeValidator = func() func(string) error {
		validators := batchjobDescJobType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(job_type string) error {
			for _, fn := range fns {
				if err := fn(job_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// batchjobDescTotalItems is the schema descriptor for total_items field.
	batchjobDescTotalItems := batchjobFields[3].Descriptor()
	// batchjob.TotalItemsValidator is a validator for the "total_items" field. It is called by the builders before save.
	batchjob.TotalItemsValidator = batchjobDescTotalItems.Validators[0].(func(int) error)
	// batchjobDescProcessedItems is the schema descriptor for processed_items field.
	batchjobDescProcessedItems := batchjobFields[4].Descriptor()
	// batchjob.DefaultProcessedItems holds the default value on creation for the processed_items field.
	batchjob.DefaultProcessedItems = batchjobDescProcessedItems.Default.(int)
	// batchjob.ProcessedItemsValidator is a validator for the "processed_items" field. It is called by the builders before save.
	batchjob.ProcessedItemsValidator = batchjobDescProcessedItems.Validators[0].(func(int) error)
	// batchjobDescFailedItems is the schema descriptor for failed_items field.
	batchjobDescFailedItems := batchjobFields[5].Descriptor()
	// batchjob.DefaultFailedItems holds the default value on creation for the failed_items field.
	batchjob.DefaultFailedItems = batchjobDescFailedItems.Default.(int)
	// batchjob.FailedItemsValidator is a validator for the "failed_items" field. It is called by the builders before save.
	batchjob.FailedItemsValidator = batchjobDescFailedItems.Validators[0].(func(int) error)
	// batchjobDescStatus is the schema descriptor for status field.
	batchjobDescStatus := batchjobFields[6].Descriptor()
	// batchjob.DefaultStatus holds the default value on creation for the status field.
	batchjob.DefaultStatus = batchjobDescStatus.Default.(string)
	// batchjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batchjob.StatusValidator = batchjobDescStatus.Validators[0].(func(string) error)
	// batchjobDescEstimatedCost is the schema descriptor for estimated_cost field.
	batchjobDescEstimatedCost := batchjobFields[8].Descriptor()
	// batchjob.DefaultEstimatedCost holds the default value on creation for the estimated_cost field.
	batchjob.DefaultEstimatedCost = batchjobDescEstimatedCost.Default.(float64)
	// batchjobDescActualCost is the schema descriptor for actual_cost field.
	batchjobDescActualCost := batchjobFields[9].Descriptor()
	// batchjob.DefaultActualCost holds the default value on creation for the actual_cost field.
	batchjob.DefaultActualCost = batchjobDescActualCost.Default.(float64)
	// batchjobDescCreatedAt is the schema descriptor for created_at field.
	batchjobDescCreatedAt := batchjobFields[13].Descriptor()
	// batchjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	batchjob.DefaultCreatedAt = batchjobDescCreatedAt.Default.(func() time.Time)
	// batchjobDescID is the schema descriptor for id field.
	batchjobDescID := batchjobFields[0].Descriptor()
	// batchjob.DefaultID holds the default value on creation for the id field.
	batchjob.DefaultID = batchjobDescID.Default.(func() uuid.UUID)
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[6].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	documentrecordFields := schema.DocumentRecord{}.Fields()
	_ = documentrecordFields
	// documentrecordDescCreatedAt is the schema descriptor for created_at field.
	documentrecordDescCreatedAt := documentrecordFields[4].Descriptor()
	// documentrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentrecord.DefaultCreatedAt = documentrecordDescCreatedAt.Default.(func() time.Time)
	// documentrecordDescID is the schema descriptor for id field.
	documentrecordDescID := documentrecordFields[0].Descriptor()
	// documentrecord.DefaultID holds the default value on creation for the id field.
	documentrecord.DefaultID = documentrecordDescID.Default.(func() uuid.UUID)
	duplicateflagFields := schema.DuplicateFlag{}.Fields()
	_ = duplicateflagFields
	// duplicateflagDescReason is the schema descriptor for reason field.
	duplicateflagDescReason := duplicateflagFields[4].Descriptor()
	// duplicateflag.DefaultReason holds the default value on creation for the reason field.
	duplicateflag.DefaultReason = duplicateflagDescReason.Default.(string)
	// duplicateflagDescStatus is the schema descriptor for status field.
	duplicateflagDescStatus := duplicateflagFields[5].Descriptor()
	// duplicateflag.DefaultStatus holds the default value on creation for the status field.
	duplicateflag.DefaultStatus = duplicateflagDescStatus.Default.(string)
	// duplicateflag.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	duplicateflag.StatusValidator = duplicateflagDescStatus.Validators[0].(func(string) error)
	// duplicateflagDescCreatedAt is the schema descriptor for created_at field.
	duplicateflagDescCreatedAt := duplicateflagFields[8].Descriptor()
	// duplicateflag.DefaultCreatedAt holds the default value on creation for the created_at field.
	duplicateflag.DefaultCreatedAt = duplicateflagDescCreatedAt.Default.(func() time.Time)
	// duplicateflagDescID is the schema descriptor for id field.
	duplicateflagDescID := duplicateflagFields[0].Descriptor()
	// duplicateflag.DefaultID holds the default value on creation for the id field.
	duplicateflag.DefaultID = duplicateflagDescID.Default.(func() uuid.UUID)
	entitylinkFields := schema.EntityLink{}.Fields()
	_ = entitylinkFields
	// entitylinkDescEntityType is the schema descriptor for entity_type field.
	entitylinkDescEntityType := entitylinkFields[3].Descriptor()
	// entitylink.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	entitylink.EntityTypeValidator = func() func(string) error {
		validators := entitylinkDescEntityType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(entity_type string) error {
			for _, fn := range fns {
				if err := fn(entity_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entitylinkDescIsPrimary is the schema descriptor for is_primary field.
	entitylinkDescIsPrimary := entitylinkFields[5].Descriptor()
	// entitylink.DefaultIsPrimary holds the default value on creation for the is_primary field.
	entitylink.DefaultIsPrimary = entitylinkDescIsPrimary.Default.(bool)
	// entitylinkDescConfidenceScore is the schema descriptor for confidence_score field.
	entitylinkDescConfidenceScore := entitylinkFields[6].Descriptor()
	// entitylink.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	entitylink.DefaultConfidenceScore = entitylinkDescConfidenceScore.Default.(float64)
	// entitylinkDescExtractedAt is the schema descriptor for extracted_at field.
	entitylinkDescExtractedAt := entitylinkFields[10].Descriptor()
	// entitylink.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	entitylink.DefaultExtractedAt = entitylinkDescExtractedAt.Default.(func() time.Time)
	// entitylinkDescID is the schema descriptor for id field.
	entitylinkDescID := entitylinkFields[0].Descriptor()
	// entitylink.DefaultID holds the default value on creation for the id field.
	entitylink.DefaultID = entitylinkDescID.Default.(func() uuid.UUID)
	fileFields := schema.File{}.Fields()
	_ = fileFields
	// fileDescSourcePath is the schema descriptor for source_path field.
	fileDescSourcePath := fileFields[2].Descriptor()
	// file.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	file.SourcePathValidator = fileDescSourcePath.Validators[0].(func(string) error)
	// fileDescFilename is the schema descriptor for filename field.
	fileDescFilename := fileFields[4].Descriptor()
	// file.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	file.FilenameValidator = fileDescFilename.Validators[0].(func(string) error)
	// fileDescFileExt is the schema descriptor for file_ext field.
	fileDescFileExt := fileFields[5].Descriptor()
	// file.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	file.FileExtValidator = func() func(string) error {
		validators := fileDescFileExt.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_ext string) error {
			for _, fn := range fns {
				if err := fn(file_ext); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// fileDescMimeType is the schema descriptor for mime_type field.
	fileDescMimeType := fileFields[6].Descriptor()
	// file.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	file.MimeTypeValidator = fileDescMimeType.Validators[0].(func(string) error)
	// fileDescFileSize is the schema descriptor for file_size field.
	fileDescFileSize := fileFields[7].Descriptor()
	// file.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	file.FileSizeValidator = fileDescFileSize.Validators[0].(func(int) error)
	// fileDescUploadedAt is the schema descriptor for uploaded_at field.
	fileDescUploadedAt := fileFields[8].Descriptor()
	// file.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	file.DefaultUploadedAt = fileDescUploadedAt.Default.(func() time.Time)
	// fileDescID is the schema descriptor for id field.
	fileDescID := fileFields[0].Descriptor()
	// file.DefaultID holds the default value on creation for the id field.
	file.DefaultID = fileDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCurrencyCode is the schema descriptor for currency_code field.
	invoiceDescCurrencyCode := invoiceFields[8].Descriptor()
	// invoice.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	invoice.CurrencyCodeValidator = invoiceDescCurrencyCode.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[9].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescMerchantName is the schema descriptor for merchant_name field.
	receiptDescMerchantName := receiptFields[2].Descriptor()
	// receipt.MerchantNameValidator is a validator for the "merchant_name" field. It is called by the builders before save.
	receipt.MerchantNameValidator = receiptDescMerchantName.Validators[0].(func(string) error)
	// receiptDescCurrencyCode is the schema descriptor for currency_code field.
	receiptDescCurrencyCode := receiptFields[9].Descriptor()
	// receipt.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	receipt.CurrencyCodeValidator = receiptDescCurrencyCode.Validators[0].(func(string) error)
	// receiptDescCreatedAt is the schema descriptor for created_at field.
	receiptDescCreatedAt := receiptFields[12].Descriptor()
	// receipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	receipt.DefaultCreatedAt = receiptDescCreatedAt.Default.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
	voucherFields := schema.Voucher{}.Fields()
	_ = voucherFields
	// voucherDescCreatedAt is the schema descriptor for created_at field.
	voucherDescCreatedAt := voucherFields[6].Descriptor()
	// voucher.DefaultCreatedAt holds the default value on creation for the created_at field.
	voucher.DefaultCreatedAt = voucherDescCreatedAt.Default.(func() time.Time)
	// voucherDescID is the schema descriptor for id field.
	voucherDescID := voucherFields[0].Descriptor()
	// voucher.DefaultID holds the default value on creation for the id field.
	voucher.DefaultID = voucherDescID.Default.(func() uuid.UUID)
	warrantyFields := schema.Warranty{}.Fields()
	_ = warrantyFields
	// warrantyDescCreatedAt is the schema descriptor for created_at field.
	warrantyDescCreatedAt := warrantyFields[6].Descriptor()
	// warranty.DefaultCreatedAt holds the default value on creation for the created_at field.
	warranty.DefaultCreatedAt = warrantyDescCreatedAt.Default.(func() time.Time)
	// warrantyDescID is the schema descriptor for id field.
	warrantyDescID := warrantyFields[0].Descriptor()
	// warranty.DefaultID holds the default value on creation for the id field.
	warranty.DefaultID = warrantyDescID.Default.(func() uuid.UUID)
}
