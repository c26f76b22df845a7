package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/db/ent/schema/utils"
)

type BatchItem struct{ ent.Schema }

func (BatchItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batch_items"},
	}
}

func (BatchItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("batch_job_id", uuid.UUID{}),
		field.Int("item_index").NonNegative().Immutable(),
		field.String("source").NotEmpty(),
		field.String("item_type").NotEmpty().
			Validate(utils.EnumValidator(constants.AsStringSlice()...)),
		field.JSON("options", map[string]interface{}{}).Optional(),
		field.String("status").
			Default(string(constants.BatchItemQueued)).
			Validate(utils.EnumValidator(
				string(constants.BatchItemQueued),
				string(constants.BatchItemProcessing),
				string(constants.BatchItemCompleted),
				string(constants.BatchItemFailed),
			)),
		field.JSON("result", map[string]interface{}{}).Optional(),
		field.String("error_message").Optional(),
		// wall-clock processing time in milliseconds
		field.Int64("processing_time_ms").Default(0).NonNegative(),
		field.Float("cost").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,6)"}),
		field.Int("retries").Default(0).NonNegative(),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (BatchItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY items -> ONE job (FK: batch_items.batch_job_id)
		edge.From("job", BatchJob.Type).
			Ref("items").
			Field("batch_job_id").
			Required().
			Unique(),
	}
}

func (BatchItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_job_id", "item_index").Unique(),
		index.Fields("batch_job_id", "status"),
	}
}
