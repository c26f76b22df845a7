package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Warranty struct{ ent.Schema }

func (Warranty) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "warranties"},
	}
}

func (Warranty) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}).Immutable(),
		field.String("serial_number").Optional(),
		field.String("covered_product").Optional(),
		field.Time("warranty_start_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("warranty_end_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Warranty) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "warranty_end_date"),
	}
}
