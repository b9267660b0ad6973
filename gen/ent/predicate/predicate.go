// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GiftCard is the predicate function for giftcard builders.
type GiftCard func(*sql.Selector)

// ProcessedMessage is the predicate function for processedmessage builders.
type ProcessedMessage func(*sql.Selector)
