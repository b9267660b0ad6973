// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/giftcards-tracker/db/ent/schema"
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/giftcard"
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/processedmessage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	giftcardFields := schema.GiftCard{}.Fields()
	_ = giftcardFields
	// giftcardDescCode is the schema descriptor for code field.
	giftcardDescCode := giftcardFields[1].Descriptor()
	// giftcard.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	giftcard.CodeValidator = giftcardDescCode.Validators[0].(func(string) error)
	// giftcardDescValue is the schema descriptor for value field.
	giftcardDescValue := giftcardFields[2].Descriptor()
	// giftcard.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	giftcard.ValueValidator = giftcardDescValue.Validators[0].(func(int) error)
	// giftcardDescUserID is the schema descriptor for user_id field.
	giftcardDescUserID := giftcardFields[3].Descriptor()
	// giftcard.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	giftcard.UserIDValidator = giftcardDescUserID.Validators[0].(func(string) error)
	// giftcardDescCreatedAt is the schema descriptor for created_at field.
	giftcardDescCreatedAt := giftcardFields[5].Descriptor()
	// giftcard.DefaultCreatedAt holds the default value on creation for the created_at field.
	giftcard.DefaultCreatedAt = giftcardDescCreatedAt.Default.(func() time.Time)
	// giftcardDescID is the schema descriptor for id field.
	giftcardDescID := giftcardFields[0].Descriptor()
	// giftcard.DefaultID holds the default value on creation for the id field.
	giftcard.DefaultID = giftcardDescID.Default.(func() uuid.UUID)
	processedmessageFields := schema.ProcessedMessage{}.Fields()
	_ = processedmessageFields
	// processedmessageDescUserID is the schema descriptor for user_id field.
	processedmessageDescUserID := processedmessageFields[1].Descriptor()
	// processedmessage.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	processedmessage.UserIDValidator = processedmessageDescUserID.Validators[0].(func(string) error)
	// processedmessageDescMessageID is the schema descriptor for message_id field.
	processedmessageDescMessageID := processedmessageFields[2].Descriptor()
	// processedmessage.MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	processedmessage.MessageIDValidator = processedmessageDescMessageID.Validators[0].(func(string) error)
	// processedmessageDescProcessedAt is the schema descriptor for processed_at field.
	processedmessageDescProcessedAt := processedmessageFields[3].Descriptor()
	// processedmessage.DefaultProcessedAt holds the default value on creation for the processed_at field.
	processedmessage.DefaultProcessedAt = processedmessageDescProcessedAt.Default.(func() time.Time)
	// processedmessageDescID is the schema descriptor for id field.
	processedmessageDescID := processedmessageFields[0].Descriptor()
	// processedmessage.DefaultID holds the default value on creation for the id field.
	processedmessage.DefaultID = processedmessageDescID.Default.(func() uuid.UUID)
}
