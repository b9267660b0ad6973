// Package mailbox wraps the Gmail API with the three operations the
// harvester needs: search for the vendor's gift-card emails, read message
// metadata, and download attachments.
package mailbox

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joseph-ayodele/giftcards-tracker/internal/common"
	"github.com/joseph-ayodele/giftcards-tracker/internal/vendorcfg"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const maxSearchResults = 100

// Client is a per-request Gmail session for one user's mailbox.
type Client struct {
	svc     *gmail.Service
	profile vendorcfg.Profile
	logger  *slog.Logger
}

// NewClient opens a Gmail session with the user's Google access token.
// Extra client options are for tests pointing at a fake endpoint.
func NewClient(ctx context.Context, accessToken string, profile vendorcfg.Profile, logger *slog.Logger, opts ...option.ClientOption) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if accessToken == "" {
		return nil, common.NewAppError("MAILBOX_MISSING_TOKEN", "google access token is required", common.ErrUnauthorized)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := gmail.NewService(ctx, append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating gmail service: %w", err)
	}

	return &Client{svc: svc, profile: profile, logger: logger}, nil
}

// query builds the Gmail search expression for the vendor's gift-card
// emails newer than the given date.
func (c *Client) query(since time.Time) string {
	return fmt.Sprintf("from:%s subject:%q after:%s",
		c.profile.Sender, c.profile.Subject, since.Format("2006/01/02"))
}

// Search returns the ids of gift-card messages received since the given
// time, newest first as Gmail orders them.
func (c *Client) Search(ctx context.Context, since time.Time) ([]string, error) {
	q := c.query(since)
	c.logger.Debug("mailbox.search", "query", q)

	res, err := c.svc.Users.Messages.List("me").
		Q(q).
		MaxResults(maxSearchResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	ids := make([]string, 0, len(res.Messages))
	for _, m := range res.Messages {
		ids = append(ids, m.Id)
	}
	c.logger.Info("mailbox.search.ok", "query", q, "messages", len(ids))
	return ids, nil
}

// MessageMeta is the header summary of one message.
type MessageMeta struct {
	Subject  string
	Received time.Time
}

// Metadata fetches a message's subject and receive time without its body.
func (c *Client) Metadata(ctx context.Context, id string) (MessageMeta, error) {
	msg, err := c.svc.Users.Messages.Get("me", id).
		Format("metadata").
		MetadataHeaders("Subject").
		Context(ctx).
		Do()
	if err != nil {
		return MessageMeta{}, fmt.Errorf("getting message %s: %w", id, err)
	}

	meta := MessageMeta{Received: time.UnixMilli(msg.InternalDate)}
	if msg.Payload != nil {
		for _, h := range msg.Payload.Headers {
			if strings.EqualFold(h.Name, "Subject") {
				meta.Subject = h.Value
				break
			}
		}
	}
	return meta, nil
}
