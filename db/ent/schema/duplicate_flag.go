package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/db/ent/schema/utils"
)

// DuplicateFlag stores one row per unordered file pair; file_id always
// holds the canonically smaller id of the two.
type DuplicateFlag struct{ ent.Schema }

func (DuplicateFlag) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "duplicate_flags"},
	}
}

func (DuplicateFlag) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}).Immutable(),
		field.UUID("file_id", uuid.UUID{}).Immutable(),
		field.UUID("duplicate_file_id", uuid.UUID{}).Immutable(),
		field.String("reason").Default(constants.DuplicateReasonHashMatch),
		field.String("status").
			Default(string(constants.DuplicateOpen)).
			Validate(utils.EnumValidator(
				string(constants.DuplicateOpen),
				string(constants.DuplicateResolved),
			)),
		field.UUID("resolved_file_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("resolved_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (DuplicateFlag) Indexes() []ent.Index {
	return []ent.Index{
		// idempotent detection: re-runs hit this constraint, not a new row
		index.Fields("owner_id", "file_id", "duplicate_file_id").Unique(),
		index.Fields("owner_id", "status"),
	}
}
