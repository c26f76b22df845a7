// Code generated by ent, DO NOT EDIT.

package entitylink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldFileID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldOwnerID, v))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldEntityType, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldEntityID, v))
}

// IsPrimary applies equality check predicate on the "is_primary" field. It's identical to IsPrimaryEQ.
func IsPrimary(v bool) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldIsPrimary, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldConfidenceScore, v))
}

// ExtractionProvider applies equality check predicate on the "extraction_provider" field. It's identical to ExtractionProviderEQ.
func ExtractionProvider(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldExtractionProvider, v))
}

// ExtractionModel applies equality check predicate on the "extraction_model" field. It's identical to ExtractionModelEQ.
func ExtractionModel(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldExtractionModel, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldExtractedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldDeletedAt, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotIn(FieldFileID, vs...))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLTE(FieldOwnerID, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldContainsFold(FieldEntityType, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v uuid.UUID) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLTE(FieldEntityID, v))
}

// IsPrimaryEQ applies the EQ predicate on the "is_primary" field.
func IsPrimaryEQ(v bool) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldIsPrimary, v))
}

// IsPrimaryNEQ applies the NEQ predicate on the "is_primary" field.
func IsPrimaryNEQ(v bool) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNEQ(FieldIsPrimary, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLTE(FieldConfidenceScore, v))
}

// ExtractionProviderEQ applies the EQ predicate on the "extraction_provider" field.
func ExtractionProviderEQ(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldExtractionProvider, v))
}

// ExtractionProviderNEQ applies the NEQ predicate on the "extraction_provider" field.
func ExtractionProviderNEQ(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNEQ(FieldExtractionProvider, v))
}

// ExtractionProviderIn applies the In predicate on the "extraction_provider" field.
func ExtractionProviderIn(vs ...string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIn(FieldExtractionProvider, vs...))
}

// ExtractionProviderNotIn applies the NotIn predicate on the "extraction_provider" field.
func ExtractionProviderNotIn(vs ...string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotIn(FieldExtractionProvider, vs...))
}

// ExtractionProviderGT applies the GT predicate on the "extraction_provider" field.
func ExtractionProviderGT(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGT(FieldExtractionProvider, v))
}

// ExtractionProviderGTE applies the GTE predicate on the "extraction_provider" field.
func ExtractionProviderGTE(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGTE(FieldExtractionProvider, v))
}

// ExtractionProviderLT applies the LT predicate on the "extraction_provider" field.
func ExtractionProviderLT(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLT(FieldExtractionProvider, v))
}

// ExtractionProviderLTE applies the LTE predicate on the "extraction_provider" field.
func ExtractionProviderLTE(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLTE(FieldExtractionProvider, v))
}

// ExtractionProviderContains applies the Contains predicate on the "extraction_provider" field.
func ExtractionProviderContains(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldContains(FieldExtractionProvider, v))
}

// ExtractionProviderHasPrefix applies the HasPrefix predicate on the "extraction_provider" field.
func ExtractionProviderHasPrefix(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldHasPrefix(FieldExtractionProvider, v))
}

// ExtractionProviderHasSuffix applies the HasSuffix predicate on the "extraction_provider" field.
func ExtractionProviderHasSuffix(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldHasSuffix(FieldExtractionProvider, v))
}

// ExtractionProviderIsNil applies the IsNil predicate on the "extraction_provider" field.
func ExtractionProviderIsNil() predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIsNull(FieldExtractionProvider))
}

// ExtractionProviderNotNil applies the NotNil predicate on the "extraction_provider" field.
func ExtractionProviderNotNil() predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotNull(FieldExtractionProvider))
}

// ExtractionProviderEqualFold applies the EqualFold predicate on the "extraction_provider" field.
func ExtractionProviderEqualFold(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEqualFold(FieldExtractionProvider, v))
}

// ExtractionProviderContainsFold applies the ContainsFold predicate on the "extraction_provider" field.
func ExtractionProviderContainsFold(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldContainsFold(FieldExtractionProvider, v))
}

// ExtractionModelEQ applies the EQ predicate on the "extraction_model" field.
func ExtractionModelEQ(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldExtractionModel, v))
}

// ExtractionModelNEQ applies the NEQ predicate on the "extraction_model" field.
func ExtractionModelNEQ(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNEQ(FieldExtractionModel, v))
}

// ExtractionModelIn applies the In predicate on the "extraction_model" field.
func ExtractionModelIn(vs ...string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIn(FieldExtractionModel, vs...))
}

// ExtractionModelNotIn applies the NotIn predicate on the "extraction_model" field.
func ExtractionModelNotIn(vs ...string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotIn(FieldExtractionModel, vs...))
}

// ExtractionModelGT applies the GT predicate on the "extraction_model" field.
func ExtractionModelGT(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGT(FieldExtractionModel, v))
}

// ExtractionModelGTE applies the GTE predicate on the "extraction_model" field.
func ExtractionModelGTE(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGTE(FieldExtractionModel, v))
}

// ExtractionModelLT applies the LT predicate on the "extraction_model" field.
func ExtractionModelLT(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLT(FieldExtractionModel, v))
}

// ExtractionModelLTE applies the LTE predicate on the "extraction_model" field.
func ExtractionModelLTE(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLTE(FieldExtractionModel, v))
}

// ExtractionModelContains applies the Contains predicate on the "extraction_model" field.
func ExtractionModelContains(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldContains(FieldExtractionModel, v))
}

// ExtractionModelHasPrefix applies the HasPrefix predicate on the "extraction_model" field.
func ExtractionModelHasPrefix(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldHasPrefix(FieldExtractionModel, v))
}

// ExtractionModelHasSuffix applies the HasSuffix predicate on the "extraction_model" field.
func ExtractionModelHasSuffix(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldHasSuffix(FieldExtractionModel, v))
}

// ExtractionModelIsNil applies the IsNil predicate on the "extraction_model" field.
func ExtractionModelIsNil() predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIsNull(FieldExtractionModel))
}

// ExtractionModelNotNil applies the NotNil predicate on the "extraction_model" field.
func ExtractionModelNotNil() predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotNull(FieldExtractionModel))
}

// ExtractionModelEqualFold applies the EqualFold predicate on the "extraction_model" field.
func ExtractionModelEqualFold(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEqualFold(FieldExtractionModel, v))
}

// ExtractionModelContainsFold applies the ContainsFold predicate on the "extraction_model" field.
func ExtractionModelContainsFold(v string) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldContainsFold(FieldExtractionModel, v))
}

// ExtractionMetadataIsNil applies the IsNil predicate on the "extraction_metadata" field.
func ExtractionMetadataIsNil() predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIsNull(FieldExtractionMetadata))
}

// ExtractionMetadataNotNil applies the NotNil predicate on the "extraction_metadata" field.
func ExtractionMetadataNotNil() predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotNull(FieldExtractionMetadata))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLTE(FieldExtractedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.EntityLink {
	return predicate.EntityLink(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.EntityLink {
	return predicate.EntityLink(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.EntityLink {
	return predicate.EntityLink(sql.FieldNotNull(FieldDeletedAt))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.EntityLink {
	return predicate.EntityLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.File) predicate.EntityLink {
	return predicate.EntityLink(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntityLink) predicate.EntityLink {
	return predicate.EntityLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntityLink) predicate.EntityLink {
	return predicate.EntityLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntityLink) predicate.EntityLink {
	return predicate.EntityLink(sql.NotPredicates(p))
}
