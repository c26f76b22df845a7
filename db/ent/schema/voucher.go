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

type Voucher struct{ ent.Schema }

func (Voucher) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vouchers"},
	}
}

func (Voucher) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}).Immutable(),
		field.String("code").Optional(),
		field.String("voucher_type").Optional(),
		field.Float("value").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("expiry_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Voucher) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "expiry_date"),
	}
}
