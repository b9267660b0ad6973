package mailbox

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/gmail/v1"
)

// Attachment is one downloaded message attachment.
type Attachment struct {
	Filename string
	MimeType string
	Data     []byte
}

// IsPDF reports whether the attachment looks like a PDF document.
func (a Attachment) IsPDF() bool {
	if a.MimeType == "application/pdf" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(a.Filename), ".pdf")
}

// Attachments downloads every attachment of a message, walking nested
// multipart payloads.
func (c *Client) Attachments(ctx context.Context, messageID string) ([]Attachment, error) {
	msg, err := c.svc.Users.Messages.Get("me", messageID).
		Format("full").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("getting message %s: %w", messageID, err)
	}
	if msg.Payload == nil {
		return nil, nil
	}
	return c.collect(ctx, messageID, msg.Payload)
}

// collect walks a payload tree depth-first. Attachments are sometimes
// nested inside multipart/* containers, so every part with sub-parts is
// descended into.
func (c *Client) collect(ctx context.Context, messageID string, payload *gmail.MessagePart) ([]Attachment, error) {
	var out []Attachment
	for _, part := range payload.Parts {
		if part.Filename != "" && part.Body != nil && part.Body.AttachmentId != "" {
			data, err := c.fetchBody(ctx, messageID, part.Body.AttachmentId)
			if err != nil {
				return nil, err
			}
			out = append(out, Attachment{
				Filename: part.Filename,
				MimeType: part.MimeType,
				Data:     data,
			})
		}
		if len(part.Parts) > 0 {
			nested, err := c.collect(ctx, messageID, part)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		}
	}
	return out, nil
}

func (c *Client) fetchBody(ctx context.Context, messageID, attachmentID string) ([]byte, error) {
	body, err := c.svc.Users.Messages.Attachments.Get("me", messageID, attachmentID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("getting attachment %s of message %s: %w", attachmentID, messageID, err)
	}
	return decodeBody(body.Data)
}

// decodeBody decodes Gmail's base64url body data, padded or not.
func decodeBody(data string) ([]byte, error) {
	if b, err := base64.URLEncoding.DecodeString(data); err == nil {
		return b, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("decoding attachment data: %w", err)
	}
	return b, nil
}
