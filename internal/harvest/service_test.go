package harvest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joseph-ayodele/giftcards-tracker/internal/auth"
	"github.com/joseph-ayodele/giftcards-tracker/internal/common"
	"github.com/joseph-ayodele/giftcards-tracker/internal/entity"
	"github.com/joseph-ayodele/giftcards-tracker/internal/extract"
	"github.com/joseph-ayodele/giftcards-tracker/internal/mailbox"
	"github.com/joseph-ayodele/giftcards-tracker/internal/vendorcfg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityReader treats the document bytes as the extracted text, so tests
// can feed plain text through the real pattern chains.
type identityReader struct{}

func (identityReader) ReadText(data []byte) (string, error) {
	return string(data), nil
}

type stubValidator struct {
	sub string
	err error
}

func (s stubValidator) Validate(ctx context.Context, token string) (string, error) {
	return s.sub, s.err
}

type stubMailbox struct {
	ids         []string
	attachments map[string][]mailbox.Attachment
	failFor     map[string]bool
	failMetaFor map[string]bool
}

func (m *stubMailbox) Search(ctx context.Context, since time.Time) ([]string, error) {
	return m.ids, nil
}

func (m *stubMailbox) Metadata(ctx context.Context, id string) (mailbox.MessageMeta, error) {
	if m.failMetaFor[id] {
		return mailbox.MessageMeta{}, errors.New("message headers unreadable")
	}
	return mailbox.MessageMeta{Subject: "subject of " + id, Received: time.Now()}, nil
}

func (m *stubMailbox) Attachments(ctx context.Context, id string) ([]mailbox.Attachment, error) {
	if m.failFor[id] {
		return nil, errors.New("message payload unreadable")
	}
	return m.attachments[id], nil
}

type memCards struct {
	byCode map[string]entity.GiftCard
}

func newMemCards() *memCards {
	return &memCards{byCode: make(map[string]entity.GiftCard)}
}

func (c *memCards) Exists(ctx context.Context, code string) (bool, error) {
	_, ok := c.byCode[code]
	return ok, nil
}

func (c *memCards) SaveNew(ctx context.Context, userID string, cards []entity.GiftCard) (int, error) {
	saved := 0
	for _, card := range cards {
		if _, ok := c.byCode[card.Code]; ok {
			continue
		}
		card.UserID = userID
		c.byCode[card.Code] = card
		saved++
	}
	return saved, nil
}

func (c *memCards) ListByOwner(ctx context.Context, userID string) ([]*entity.GiftCard, error) {
	var out []*entity.GiftCard
	for _, card := range c.byCode {
		if card.UserID == userID {
			cp := card
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memMessages struct {
	seen map[string]bool
}

func newMemMessages() *memMessages {
	return &memMessages{seen: make(map[string]bool)}
}

func (m *memMessages) Seen(ctx context.Context, userID, messageID string) (bool, error) {
	return m.seen[userID+"/"+messageID], nil
}

func (m *memMessages) MarkSeen(ctx context.Context, userID, messageID string) error {
	m.seen[userID+"/"+messageID] = true
	return nil
}

func pdfAttachment(name, text string) mailbox.Attachment {
	return mailbox.Attachment{
		Filename: name,
		MimeType: "application/pdf",
		Data:     []byte(text),
	}
}

func newTestService(mb Mailbox, cards *memCards, messages *memMessages) *Service {
	extractor := extract.New(extract.Options{}, nil).WithReader(identityReader{})
	factory := func(ctx context.Context, token string) (Mailbox, error) {
		return mb, nil
	}
	return NewService(
		stubValidator{sub: "g-sub"},
		factory,
		extractor,
		cards,
		messages,
		vendorcfg.Default(),
		nil,
	)
}

func TestRunHarvestsNewMessages(t *testing.T) {
	mb := &stubMailbox{
		ids: []string{"m1", "m2"},
		attachments: map[string][]mailbox.Attachment{
			"m1": {
				pdfAttachment("card.pdf", "Your gift card code ABC12345 value 60.00 ₪"),
				{Filename: "logo.png", MimeType: "image/png", Data: []byte("png")},
			},
			"m2": {
				pdfAttachment("terms.pdf", "Thank you for your purchase"),
			},
		},
	}
	cards := newMemCards()
	messages := newMemMessages()
	svc := newTestService(mb, cards, messages)

	got, err := svc.Run(context.Background(), &auth.User{ID: "u1", ProviderToken: "g-tok"}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, got.MessagesFound)
	assert.Equal(t, 0, got.MessagesSkipped)
	assert.Equal(t, 2, got.AttachmentsScanned)
	assert.Equal(t, 1, got.CardsFound)
	assert.Equal(t, 1, got.CardsSaved)

	stored, err := cards.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "ABC12345", stored[0].Code)
	assert.Equal(t, 60, stored[0].Value)
	assert.Equal(t, "m1", stored[0].MessageID)
}

func TestRunSkipsSeenMessagesAndDuplicateCodes(t *testing.T) {
	mb := &stubMailbox{
		ids: []string{"old", "new"},
		attachments: map[string][]mailbox.Attachment{
			"new": {pdfAttachment("card.pdf", "קוד: ABC1234\nשובר על סך 45 ₪")},
		},
	}
	cards := newMemCards()
	cards.byCode["ABC1234"] = entity.GiftCard{Code: "ABC1234", UserID: "u1"}
	messages := newMemMessages()
	messages.seen["u1/old"] = true
	svc := newTestService(mb, cards, messages)

	got, err := svc.Run(context.Background(), &auth.User{ID: "u1", ProviderToken: "g-tok"}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, got.MessagesSkipped)
	assert.Equal(t, 1, got.CardsFound)
	// the code was already stored, so nothing new is saved
	assert.Equal(t, 0, got.CardsSaved)
	assert.True(t, messages.seen["u1/new"])
}

func TestRunSurvivesBrokenMessage(t *testing.T) {
	mb := &stubMailbox{
		ids: []string{"broken", "good"},
		attachments: map[string][]mailbox.Attachment{
			"good": {pdfAttachment("card.pdf", "code: XYZ9876 sum ₪30")},
		},
		failFor: map[string]bool{"broken": true},
	}
	cards := newMemCards()
	messages := newMemMessages()
	svc := newTestService(mb, cards, messages)

	got, err := svc.Run(context.Background(), &auth.User{ID: "u1", ProviderToken: "g-tok"}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, got.CardsSaved)
	// the broken message is retried next run: it was never marked seen
	assert.False(t, messages.seen["u1/broken"])
	assert.True(t, messages.seen["u1/good"])
}

func TestRunSurvivesMetadataFailure(t *testing.T) {
	mb := &stubMailbox{
		ids: []string{"m1"},
		attachments: map[string][]mailbox.Attachment{
			"m1": {pdfAttachment("card.pdf", "Your gift card code ABC12345 value 60.00 ₪")},
		},
		failMetaFor: map[string]bool{"m1": true},
	}
	cards := newMemCards()
	messages := newMemMessages()
	svc := newTestService(mb, cards, messages)

	got, err := svc.Run(context.Background(), &auth.User{ID: "u1", ProviderToken: "g-tok"}, Options{})
	require.NoError(t, err)

	// headers are informational; the message is still harvested
	assert.Equal(t, 1, got.CardsSaved)
	assert.True(t, messages.seen["u1/m1"])
}

func TestRunRejectsInvalidGoogleToken(t *testing.T) {
	extractor := extract.New(extract.Options{}, nil).WithReader(identityReader{})
	svc := NewService(
		stubValidator{err: common.NewAppError("AUTH_INVALID_GOOGLE_TOKEN", "invalid", common.ErrUnauthorized)},
		func(ctx context.Context, token string) (Mailbox, error) { return &stubMailbox{}, nil },
		extractor,
		newMemCards(),
		newMemMessages(),
		vendorcfg.Default(),
		nil,
	)

	_, err := svc.Run(context.Background(), &auth.User{ID: "u1", ProviderToken: "bad"}, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestRunRequiresUser(t *testing.T) {
	svc := newTestService(&stubMailbox{}, newMemCards(), newMemMessages())

	_, err := svc.Run(context.Background(), nil, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}
