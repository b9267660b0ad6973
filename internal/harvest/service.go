// Package harvest runs the end-to-end pass over a user's mailbox: search
// for the vendor's gift-card emails, extract codes and values from their
// PDF attachments, and persist whatever was not stored before.
package harvest

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/giftcards-tracker/internal/auth"
	"github.com/joseph-ayodele/giftcards-tracker/internal/common"
	"github.com/joseph-ayodele/giftcards-tracker/internal/entity"
	"github.com/joseph-ayodele/giftcards-tracker/internal/extract"
	"github.com/joseph-ayodele/giftcards-tracker/internal/mailbox"
	"github.com/joseph-ayodele/giftcards-tracker/internal/repository"
	"github.com/joseph-ayodele/giftcards-tracker/internal/vendorcfg"
)

// Mailbox is the slice of the Gmail client the harvester consumes.
type Mailbox interface {
	Search(ctx context.Context, since time.Time) ([]string, error)
	Metadata(ctx context.Context, messageID string) (mailbox.MessageMeta, error)
	Attachments(ctx context.Context, messageID string) ([]mailbox.Attachment, error)
}

// MailboxFactory opens a mailbox session with a user's Google token.
type MailboxFactory func(ctx context.Context, accessToken string) (Mailbox, error)

// TokenValidator checks a Google access token and returns its subject.
type TokenValidator interface {
	Validate(ctx context.Context, accessToken string) (string, error)
}

// Service handles harvesting business logic.
type Service struct {
	google      TokenValidator
	openMailbox MailboxFactory
	extractor   *extract.Extractor
	cards       repository.GiftCardRepository
	messages    repository.MessageRepository
	profile     vendorcfg.Profile
	logger      *slog.Logger
}

// NewService creates a new harvest service.
func NewService(
	google TokenValidator,
	openMailbox MailboxFactory,
	extractor *extract.Extractor,
	cards repository.GiftCardRepository,
	messages repository.MessageRepository,
	profile vendorcfg.Profile,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		google:      google,
		openMailbox: openMailbox,
		extractor:   extractor,
		cards:       cards,
		messages:    messages,
		profile:     profile,
		logger:      logger,
	}
}

// Options tweak a single harvest run.
type Options struct {
	// Days overrides the vendor profile's lookback window when positive.
	Days int
}

// Summary reports what one harvest run did.
type Summary struct {
	MessagesFound      int `json:"messages_found"`
	MessagesSkipped    int `json:"messages_skipped"`
	AttachmentsScanned int `json:"attachments_scanned"`
	CardsFound         int `json:"cards_found"`
	CardsSaved         int `json:"cards_saved"`
}

// Run harvests the user's mailbox once. A malformed message or attachment
// is logged and skipped; it never aborts the rest of the batch.
func (s *Service) Run(ctx context.Context, user *auth.User, opts Options) (*Summary, error) {
	if user == nil || user.ID == "" {
		return nil, common.NewAppError("HARVEST_NO_USER", "authenticated user is required", common.ErrUnauthorized)
	}

	sub, err := s.google.Validate(ctx, user.ProviderToken)
	if err != nil {
		return nil, err
	}
	s.logger.Info("harvest.start", "user_id", user.ID, "google_sub", sub)

	mb, err := s.openMailbox(ctx, user.ProviderToken)
	if err != nil {
		return nil, err
	}

	days := opts.Days
	if days <= 0 {
		days = s.profile.LookbackDays
	}
	since := time.Now().AddDate(0, 0, -days)

	ids, err := mb.Search(ctx, since)
	if err != nil {
		return nil, err
	}

	summary := &Summary{MessagesFound: len(ids)}
	var found []entity.GiftCard

	for _, id := range ids {
		seen, err := s.messages.Seen(ctx, user.ID, id)
		if err != nil {
			return nil, err
		}
		if seen {
			summary.MessagesSkipped++
			s.logger.Debug("harvest.message.seen", "message_id", id)
			continue
		}

		// headers are informational only; a metadata failure does not
		// stop the message from being harvested
		meta, err := mb.Metadata(ctx, id)
		if err != nil {
			s.logger.Warn("harvest.message.metadata_failed", "message_id", id, "error", err)
		} else {
			s.logger.Info("harvest.message.new",
				"message_id", id,
				"subject", meta.Subject,
				"received", meta.Received,
			)
		}

		atts, err := mb.Attachments(ctx, id)
		if err != nil {
			s.logger.Warn("harvest.message.attachments_failed", "message_id", id, "error", err)
			continue
		}

		for _, att := range atts {
			if !att.IsPDF() {
				continue
			}
			summary.AttachmentsScanned++

			details, ok := s.extractor.Details(att.Data)
			if !ok {
				s.logger.Info("harvest.attachment.no_code", "message_id", id, "filename", att.Filename)
				continue
			}
			s.logger.Info("harvest.attachment.extracted",
				"message_id", id,
				"filename", att.Filename,
				"code", details.Code,
				"value", details.Value,
			)
			found = append(found, entity.GiftCard{
				Code:      details.Code,
				Value:     details.Value,
				MessageID: id,
			})
		}

		if err := s.messages.MarkSeen(ctx, user.ID, id); err != nil {
			return nil, err
		}
	}

	summary.CardsFound = len(found)
	saved, err := s.cards.SaveNew(ctx, user.ID, found)
	if err != nil {
		return nil, err
	}
	summary.CardsSaved = saved

	s.logger.Info("harvest.done",
		"user_id", user.ID,
		"messages", summary.MessagesFound,
		"skipped", summary.MessagesSkipped,
		"cards_found", summary.CardsFound,
		"cards_saved", summary.CardsSaved,
	)
	return summary, nil
}
