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

type ProcessedMessage struct {
	ent.Schema
}

func (ProcessedMessage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processed_messages"},
	}
}

func (ProcessedMessage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("user_id").NotEmpty(),
		field.String("message_id").NotEmpty(),
		field.Time("processed_at").Default(time.Now),
	}
}

func (ProcessedMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "message_id").Unique(),
	}
}
