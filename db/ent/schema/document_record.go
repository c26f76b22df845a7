package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// DocumentRecord is the catch-all typed table for documents that fit no
// narrower shape.
type DocumentRecord struct{ ent.Schema }

func (DocumentRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_records"},
	}
}

func (DocumentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}).Immutable(),
		field.String("title").Optional(),
		field.Text("summary").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}
