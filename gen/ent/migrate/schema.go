// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GiftCardsColumns holds the columns for the "gift_cards" table.
	GiftCardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GiftCardsTable holds the schema information for the "gift_cards" table.
	GiftCardsTable = &schema.Table{
		Name:       "gift_cards",
		Columns:    GiftCardsColumns,
		PrimaryKey: []*schema.Column{GiftCardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "giftcard_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{GiftCardsColumns[3], GiftCardsColumns[5]},
			},
		},
	}
	// ProcessedMessagesColumns holds the columns for the "processed_messages" table.
	ProcessedMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString},
		{Name: "processed_at", Type: field.TypeTime},
	}
	// ProcessedMessagesTable holds the schema information for the "processed_messages" table.
	ProcessedMessagesTable = &schema.Table{
		Name:       "processed_messages",
		Columns:    ProcessedMessagesColumns,
		PrimaryKey: []*schema.Column{ProcessedMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processedmessage_user_id_message_id",
				Unique:  true,
				Columns: []*schema.Column{ProcessedMessagesColumns[1], ProcessedMessagesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GiftCardsTable,
		ProcessedMessagesTable,
	}
)

func init() {
	GiftCardsTable.Annotation = &entsql.Annotation{
		Table: "gift_cards",
	}
	ProcessedMessagesTable.Annotation = &entsql.Annotation{
		Table: "processed_messages",
	}
}
