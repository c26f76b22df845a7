package schema

import (
	"time"

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

type BatchJob struct{ ent.Schema }

func (BatchJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batch_jobs"},
	}
}

func (BatchJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}).Immutable(),
		field.String("job_type").NotEmpty().
			Validate(utils.EnumValidator(constants.AsStringSlice()...)),
		field.Int("total_items").NonNegative(),
		field.Int("processed_items").Default(0).NonNegative(),
		field.Int("failed_items").Default(0).NonNegative(),
		field.String("status").
			Default(string(constants.BatchJobQueued)).
			Validate(utils.EnumValidator(
				string(constants.BatchJobQueued),
				string(constants.BatchJobProcessing),
				string(constants.BatchJobCompleted),
				string(constants.BatchJobCompletedWithErrors),
				string(constants.BatchJobCancelled),
			)),
		field.JSON("options", map[string]interface{}{}).Optional(),
		field.Float("estimated_cost").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,6)"}),
		field.Float("actual_cost").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,6)"}),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.String("error_message").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (BatchJob) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE job -> MANY items
		edge.To("items", BatchItem.Type),
	}
}

func (BatchJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "status"),
		index.Fields("owner_id", "created_at"),
	}
}
