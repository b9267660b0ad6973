package entity

import (
	"time"

	"github.com/google/uuid"
)

// GiftCard is a harvested gift card owned by a user.
type GiftCard struct {
	ID        uuid.UUID
	Code      string
	Value     int
	UserID    string
	MessageID string
	CreatedAt time.Time
}
