package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type GiftCard struct {
	ent.Schema
}

func (GiftCard) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "gift_cards"},
	}
}

func (GiftCard) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// redemption code, globally unique; dedup happens on this column
		field.String("code").NotEmpty().Unique(),
		field.Int("value").NonNegative(),
		field.String("user_id").NotEmpty(),
		// gmail message the code was harvested from, for traceability
		field.String("message_id").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (GiftCard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
