package repository

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/giftcards-tracker/gen/ent"
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/giftcard"
	"github.com/joseph-ayodele/giftcards-tracker/internal/common"
	"github.com/joseph-ayodele/giftcards-tracker/internal/entity"
)

type GiftCardRepository interface {
	// Exists reports whether a code is already stored, for any owner.
	Exists(ctx context.Context, code string) (bool, error)
	// SaveNew stores the cards whose codes are not present yet and
	// returns how many were inserted. Already-stored codes are skipped.
	SaveNew(ctx context.Context, userID string, cards []entity.GiftCard) (int, error)
	// ListByOwner returns all cards stored for a user, oldest first.
	ListByOwner(ctx context.Context, userID string) ([]*entity.GiftCard, error)
}

type giftCardRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewGiftCardRepository(client *ent.Client, logger *slog.Logger) GiftCardRepository {
	return &giftCardRepository{
		client: client,
		logger: logger,
	}
}

func (r *giftCardRepository) Exists(ctx context.Context, code string) (bool, error) {
	exists, err := r.client.GiftCard.Query().Where(giftcard.Code(code)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check gift card existence", "error", err)
		return false, common.WrapError(err, "check gift card")
	}
	return exists, nil
}

func (r *giftCardRepository) SaveNew(ctx context.Context, userID string, cards []entity.GiftCard) (int, error) {
	saved := 0
	for _, card := range cards {
		exists, err := r.Exists(ctx, card.Code)
		if err != nil {
			return saved, err
		}
		if exists {
			r.logger.Info("gift card already stored, skipping", "code", card.Code)
			continue
		}

		_, err = r.client.GiftCard.Create().
			SetCode(card.Code).
			SetValue(card.Value).
			SetUserID(userID).
			SetMessageID(card.MessageID).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to save gift card", "code", card.Code, "error", err)
			return saved, common.WrapError(err, "save gift card")
		}
		saved++
		r.logger.Info("saved gift card", "code", card.Code, "value", card.Value, "user_id", userID)
	}
	return saved, nil
}

func (r *giftCardRepository) ListByOwner(ctx context.Context, userID string) ([]*entity.GiftCard, error) {
	recs, err := r.client.GiftCard.Query().
		Where(giftcard.UserID(userID)).
		Order(giftcard.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list gift cards", "user_id", userID, "error", err)
		return nil, common.WrapError(err, "list gift cards")
	}

	result := make([]*entity.GiftCard, len(recs))
	for i, rec := range recs {
		result[i] = toGiftCard(rec)
	}
	return result, nil
}

func toGiftCard(rec *ent.GiftCard) *entity.GiftCard {
	return &entity.GiftCard{
		ID:        rec.ID,
		Code:      rec.Code,
		Value:     rec.Value,
		UserID:    rec.UserID,
		MessageID: rec.MessageID,
		CreatedAt: rec.CreatedAt,
	}
}
