package repository

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/giftcards-tracker/gen/ent"
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/processedmessage"
	"github.com/joseph-ayodele/giftcards-tracker/internal/common"
)

// MessageRepository is the dedup cache of already-processed mailbox
// messages, keyed per user.
type MessageRepository interface {
	Seen(ctx context.Context, userID, messageID string) (bool, error)
	MarkSeen(ctx context.Context, userID, messageID string) error
}

type messageRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewMessageRepository(client *ent.Client, logger *slog.Logger) MessageRepository {
	return &messageRepository{
		client: client,
		logger: logger,
	}
}

func (r *messageRepository) Seen(ctx context.Context, userID, messageID string) (bool, error) {
	seen, err := r.client.ProcessedMessage.Query().
		Where(
			processedmessage.UserID(userID),
			processedmessage.MessageID(messageID),
		).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check processed message", "message_id", messageID, "error", err)
		return false, common.WrapError(err, "check processed message")
	}
	return seen, nil
}

func (r *messageRepository) MarkSeen(ctx context.Context, userID, messageID string) error {
	_, err := r.client.ProcessedMessage.Create().
		SetUserID(userID).
		SetMessageID(messageID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// concurrent harvest marked it first
			return nil
		}
		r.logger.Error("failed to mark message processed", "message_id", messageID, "error", err)
		return common.WrapError(err, "mark message processed")
	}
	return nil
}
