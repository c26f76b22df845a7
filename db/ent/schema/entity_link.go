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

// EntityLink ties a file to one typed row via (entity_type, entity_id).
// The typed tables stay polymorphic behind this pair, so there is no FK
// edge to them; referential checks live in the repository layer.
type EntityLink struct{ ent.Schema }

func (EntityLink) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "entity_links"},
	}
}

func (EntityLink) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("owner_id", uuid.UUID{}).Immutable(),
		field.String("entity_type").NotEmpty().
			Validate(utils.EnumValidator(constants.AsStringSlice()...)),
		field.UUID("entity_id", uuid.UUID{}),
		field.Bool("is_primary").Default(false),
		field.Float("confidence_score").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(4,3)"}),
		field.String("extraction_provider").Optional(),
		field.String("extraction_model").Optional(),
		field.JSON("extraction_metadata", map[string]interface{}{}).Optional(),
		field.Time("extracted_at").Default(time.Now),
		field.Time("deleted_at").Optional().Nillable(),
	}
}

func (EntityLink) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY links -> ONE file (FK: entity_links.file_id)
		edge.From("file", File.Type).
			Ref("entity_links").
			Field("file_id").
			Required().
			Unique(),
	}
}

func (EntityLink) Indexes() []ent.Index {
	return []ent.Index{
		// a typed row is claimed by a single link at a time
		index.Fields("entity_type", "entity_id").Unique(),
		index.Fields("file_id"),
		index.Fields("owner_id", "entity_type"),
	}
}
