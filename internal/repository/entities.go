package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/gen/ent"
	entlink "github.com/joseph-ayodele/docintel/gen/ent/entitylink"
	"github.com/joseph-ayodele/docintel/internal/entity"
	"github.com/joseph-ayodele/docintel/internal/utils"
)

// EntityRepository persists normalized extraction output: one typed row per
// entity plus an entity_links record tying it back to the source file.
type EntityRepository interface {
	// SaveExtraction replaces a file's entity set. Previous links are
	// soft-deleted, each entity gets a fresh typed row, and the result's
	// primary entity carries is_primary on its link.
	SaveExtraction(ctx context.Context, file *entity.File, res *entity.ExtractionResult) ([]*entity.ExtractableEntity, error)
	ListLinksForFile(ctx context.Context, fileID uuid.UUID) ([]*entity.ExtractableEntity, error)
}

type entityRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewEntityRepository(entc *ent.Client, logger *slog.Logger) EntityRepository {
	return &entityRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *entityRepo) SaveExtraction(ctx context.Context, file *entity.File, res *entity.ExtractionResult) ([]*entity.ExtractableEntity, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	links, err := r.saveExtractionTx(ctx, tx, file, res)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("rollback failed", "file_id", file.ID, "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *entityRepo) saveExtractionTx(ctx context.Context, tx *ent.Tx, file *entity.File, res *entity.ExtractionResult) ([]*entity.ExtractableEntity, error) {
	now := time.Now().UTC()

	// retract the previous entity set for this file
	n, err := tx.EntityLink.Update().
		Where(entlink.FileID(file.ID), entlink.DeletedAtIsNil()).
		SetDeletedAt(now).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to retire previous entity links", "file_id", file.ID, "error", err)
		return nil, err
	}
	if n > 0 {
		r.logger.Info("entity.links_retired", "file_id", file.ID, "count", n)
	}

	primary := res.PrimaryEntity()
	links := make([]*entity.ExtractableEntity, 0, len(res.Entities))
	for i := range res.Entities {
		e := &res.Entities[i]
		ref, err := createTyped(ctx, tx, file.OwnerID, e)
		if err != nil {
			r.logger.Error("failed to create typed entity", "file_id", file.ID, "entity_type", e.Type, "error", err)
			return nil, err
		}

		meta := map[string]interface{}{}
		if res.LargeFile != nil {
			meta["large_file_strategy"] = res.LargeFile.Strategy
		}
		if res.Classification != nil {
			meta["classified_type"] = string(res.Classification.Type)
			meta["classification_confidence"] = res.Classification.Confidence
		}

		builder := tx.EntityLink.Create().
			SetFileID(file.ID).
			SetOwnerID(file.OwnerID).
			SetEntityType(string(ref.Type)).
			SetEntityID(ref.ID).
			SetIsPrimary(e == primary).
			SetConfidenceScore(e.ConfidenceScore).
			SetExtractionProvider(res.ProviderName).
			SetExtractionModel(res.ModelID).
			SetExtractedAt(now)
		if len(meta) > 0 {
			builder = builder.SetExtractionMetadata(meta)
		}
		row, err := builder.Save(ctx)
		if err != nil {
			r.logger.Error("failed to create entity link", "file_id", file.ID, "entity_type", ref.Type, "error", err)
			return nil, err
		}
		links = append(links, utils.ToEntityLink(row))
	}
	return links, nil
}

func (r *entityRepo) ListLinksForFile(ctx context.Context, fileID uuid.UUID) ([]*entity.ExtractableEntity, error) {
	rows, err := r.ent.EntityLink.Query().
		Where(entlink.FileID(fileID), entlink.DeletedAtIsNil()).
		Order(entlink.ByExtractedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list entity links", "file_id", fileID, "error", err)
		return nil, err
	}
	result := make([]*entity.ExtractableEntity, len(rows))
	for i, row := range rows {
		result[i] = utils.ToEntityLink(row)
	}
	return result, nil
}

// creators dispatch typed-row insertion on document type; unknown types land
// in document_records.
var creators = map[constants.DocType]func(context.Context, *ent.Tx, uuid.UUID, map[string]any) (uuid.UUID, error){
	constants.Receipt:       createReceipt,
	constants.Invoice:       createInvoice,
	constants.Contract:      createContract,
	constants.Voucher:       createVoucher,
	constants.Warranty:      createWarranty,
	constants.BankStatement: createBankStatement,
	constants.Document:      createDocumentRecord,
}

func createTyped(ctx context.Context, tx *ent.Tx, ownerID uuid.UUID, e *entity.Entity) (entity.EntityRef, error) {
	create, ok := creators[e.Type]
	dt := e.Type
	if !ok {
		create = createDocumentRecord
		dt = constants.Document
	}
	id, err := create(ctx, tx, ownerID, e.Data)
	if err != nil {
		return entity.EntityRef{}, err
	}
	return entity.EntityRef{Type: dt, ID: id}, nil
}

func createReceipt(ctx context.Context, tx *ent.Tx, ownerID uuid.UUID, data map[string]any) (uuid.UUID, error) {
	merchant := childMap(data, "merchant")
	totals := childMap(data, "totals")
	info := childMap(data, "receipt_info")
	payment := childMap(data, "payment")

	name := firstString(merchant, "name", "merchant_name")
	if name == "" {
		name = firstString(data, "merchant_name", "merchant")
	}
	if name == "" {
		name = "unknown"
	}

	builder := tx.Receipt.Create().
		SetOwnerID(ownerID).
		SetMerchantName(name).
		SetNillableSubtotal(firstFloat(totals, "subtotal")).
		SetNillableTaxAmount(firstFloat(totals, "tax_amount", "tax")).
		SetNillableTotalAmount(firstFloat(totals, "total_amount", "total")).
		SetNillableTotalDiscount(firstFloat(totals, "total_discount", "discount"))

	if v := firstString(info, "receipt_number"); v != "" {
		builder = builder.SetReceiptNumber(v)
	}
	if d := firstDate(info, "date", "tx_date", "purchase_date"); d != nil {
		builder = builder.SetTxDate(*d)
	} else if d := firstDate(data, "date", "tx_date"); d != nil {
		builder = builder.SetTxDate(*d)
	}
	if v := firstString(totals, "currency", "currency_code"); len(v) == 3 {
		builder = builder.SetCurrencyCode(v)
	}
	if v := firstString(payment, "method"); v != "" {
		builder = builder.SetPaymentMethod(v)
	}
	if items := itemList(data, "items", "purchase_items"); len(items) > 0 {
		builder = builder.SetItems(items)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func createInvoice(ctx context.Context, tx *ent.Tx, ownerID uuid.UUID, data map[string]any) (uuid.UUID, error) {
	builder := tx.Invoice.Create().
		SetOwnerID(ownerID).
		SetNillableTotalAmount(firstFloat(data, "total_amount", "total"))

	if v := firstString(data, "invoice_number"); v != "" {
		builder = builder.SetInvoiceNumber(v)
	}
	if v := firstString(data, "from_name", "from"); v != "" {
		builder = builder.SetFromName(v)
	}
	if v := firstString(data, "to_name", "to"); v != "" {
		builder = builder.SetToName(v)
	}
	if d := firstDate(data, "issue_date", "date"); d != nil {
		builder = builder.SetIssueDate(*d)
	}
	if d := firstDate(data, "due_date"); d != nil {
		builder = builder.SetDueDate(*d)
	}
	if v := firstString(data, "currency", "currency_code"); len(v) == 3 {
		builder = builder.SetCurrencyCode(v)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func createContract(ctx context.Context, tx *ent.Tx, ownerID uuid.UUID, data map[string]any) (uuid.UUID, error) {
	builder := tx.Contract.Create().SetOwnerID(ownerID)

	if v := firstString(data, "contract_number"); v != "" {
		builder = builder.SetContractNumber(v)
	}
	if parties := stringList(data, "parties"); len(parties) > 0 {
		builder = builder.SetParties(parties)
	}
	if d := firstDate(data, "effective_date", "start_date"); d != nil {
		builder = builder.SetEffectiveDate(*d)
	}
	if d := firstDate(data, "termination_date", "end_date"); d != nil {
		builder = builder.SetTerminationDate(*d)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func createVoucher(ctx context.Context, tx *ent.Tx, ownerID uuid.UUID, data map[string]any) (uuid.UUID, error) {
	builder := tx.Voucher.Create().
		SetOwnerID(ownerID).
		SetNillableValue(firstFloat(data, "value", "amount"))

	if v := firstString(data, "code", "voucher_code"); v != "" {
		builder = builder.SetCode(v)
	}
	if v := firstString(data, "voucher_type"); v != "" {
		builder = builder.SetVoucherType(v)
	}
	if d := firstDate(data, "expiry_date", "expires_at"); d != nil {
		builder = builder.SetExpiryDate(*d)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func createWarranty(ctx context.Context, tx *ent.Tx, ownerID uuid.UUID, data map[string]any) (uuid.UUID, error) {
	builder := tx.Warranty.Create().SetOwnerID(ownerID)

	if v := firstString(data, "serial_number"); v != "" {
		builder = builder.SetSerialNumber(v)
	}
	if v := firstString(data, "covered_product", "product", "product_name"); v != "" {
		builder = builder.SetCoveredProduct(v)
	}
	if d := firstDate(data, "warranty_start_date", "start_date"); d != nil {
		builder = builder.SetWarrantyStartDate(*d)
	}
	if d := firstDate(data, "warranty_end_date", "end_date"); d != nil {
		builder = builder.SetWarrantyEndDate(*d)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func createBankStatement(ctx context.Context, tx *ent.Tx, ownerID uuid.UUID, data map[string]any) (uuid.UUID, error) {
	builder := tx.BankStatement.Create().
		SetOwnerID(ownerID).
		SetNillableOpeningBalance(firstFloat(data, "opening_balance")).
		SetNillableClosingBalance(firstFloat(data, "closing_balance"))

	if v := firstString(data, "bank_name"); v != "" {
		builder = builder.SetBankName(v)
	}
	if v := firstString(data, "account_number"); v != "" {
		builder = builder.SetAccountNumber(v)
	}
	if v := firstString(data, "iban"); v != "" {
		builder = builder.SetIban(v)
	}
	if d := firstDate(data, "period_start", "statement_period_start"); d != nil {
		builder = builder.SetPeriodStart(*d)
	}
	if d := firstDate(data, "period_end", "statement_period_end"); d != nil {
		builder = builder.SetPeriodEnd(*d)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func createDocumentRecord(ctx context.Context, tx *ent.Tx, ownerID uuid.UUID, data map[string]any) (uuid.UUID, error) {
	builder := tx.DocumentRecord.Create().SetOwnerID(ownerID)

	if v := firstString(data, "title", "document_title", "subject"); v != "" {
		builder = builder.SetTitle(v)
	}
	if v := firstString(data, "summary", "description"); v != "" {
		builder = builder.SetSummary(v)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

// field pickers over the loose extraction maps

func childMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	child, _ := m[key].(map[string]any)
	return child
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func firstFloat(m map[string]any, keys ...string) *float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return &v
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return &f
			}
		case int:
			f := float64(v)
			return &f
		}
	}
	return nil
}

func firstDate(m map[string]any, keys ...string) *time.Time {
	for _, k := range keys {
		s, ok := m[k].(string)
		if !ok || s == "" {
			continue
		}
		if t, err := utils.ParseYMD(s); err == nil {
			return &t
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return &t
		}
	}
	return nil
}

func stringList(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func itemList(m map[string]any, keys ...string) []map[string]interface{} {
	for _, k := range keys {
		raw, ok := m[k].([]any)
		if !ok {
			continue
		}
		out := make([]map[string]interface{}, 0, len(raw))
		for _, v := range raw {
			if im, ok := v.(map[string]any); ok {
				out = append(out, im)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
