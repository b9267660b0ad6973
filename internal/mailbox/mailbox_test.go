package mailbox

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/joseph-ayodele/giftcards-tracker/internal/vendorcfg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c, err := NewClient(context.Background(), "access-token", vendorcfg.Default(), nil,
		option.WithEndpoint(ts.URL))
	require.NoError(t, err)
	return c, ts
}

func TestQueryShape(t *testing.T) {
	c := &Client{profile: vendorcfg.Default()}
	since := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

	q := c.query(since)
	assert.Contains(t, q, "from:info@wolt.com")
	assert.Contains(t, q, `subject:"הגיפט קארד של Wolt הגיע ומחכה לשליחה"`)
	assert.Contains(t, q, "after:2025/05/20")
}

func TestSearchReturnsIDs(t *testing.T) {
	var gotQuery string
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_ = json.NewEncoder(w).Encode(&gmail.ListMessagesResponse{
			Messages: []*gmail.Message{{Id: "m1"}, {Id: "m2"}},
		})
	}))

	ids, err := c.Search(context.Background(), time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, ids)
	assert.Contains(t, gotQuery, "after:2025/01/02")
}

func TestSearchEmptyMailbox(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(&gmail.ListMessagesResponse{})
	}))

	ids, err := c.Search(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMetadata(t *testing.T) {
	received := time.Date(2025, 5, 21, 8, 30, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("/gmail/v1/users/me/messages/m9", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metadata", r.URL.Query().Get("format"))
		_ = json.NewEncoder(w).Encode(&gmail.Message{
			Id:           "m9",
			InternalDate: received.UnixMilli(),
			Payload: &gmail.MessagePart{
				Headers: []*gmail.MessagePartHeader{
					{Name: "Message-ID", Value: "<m9@mail.example>"},
					{Name: "subject", Value: "הגיפט קארד של Wolt הגיע ומחכה לשליחה"},
				},
			},
		})
	})

	c, _ := testClient(t, mux)
	meta, err := c.Metadata(context.Background(), "m9")
	require.NoError(t, err)
	assert.Equal(t, "הגיפט קארד של Wolt הגיע ומחכה לשליחה", meta.Subject)
	assert.True(t, meta.Received.Equal(received))
}

func TestMetadataError(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))

	_, err := c.Metadata(context.Background(), "gone")
	assert.Error(t, err)
}

func TestAttachmentsWalksNestedParts(t *testing.T) {
	pdfBytes := []byte("%PDF-1.4 fake")
	mux := http.NewServeMux()
	mux.HandleFunc("/gmail/v1/users/me/messages/m1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(&gmail.Message{
			Id: "m1",
			Payload: &gmail.MessagePart{
				MimeType: "multipart/mixed",
				Parts: []*gmail.MessagePart{
					{MimeType: "text/html", Body: &gmail.MessagePartBody{Data: "aGk="}},
					{
						MimeType: "multipart/alternative",
						Parts: []*gmail.MessagePart{
							{
								Filename: "giftcard.pdf",
								MimeType: "application/pdf",
								Body:     &gmail.MessagePartBody{AttachmentId: "att1"},
							},
						},
					},
				},
			},
		})
	})
	mux.HandleFunc("/gmail/v1/users/me/messages/m1/attachments/att1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(&gmail.MessagePartBody{
			Data: base64.URLEncoding.EncodeToString(pdfBytes),
		})
	})

	c, _ := testClient(t, mux)
	atts, err := c.Attachments(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, atts, 1)
	assert.Equal(t, "giftcard.pdf", atts[0].Filename)
	assert.True(t, atts[0].IsPDF())
	assert.Equal(t, pdfBytes, atts[0].Data)
}

func TestDecodeBodyUnpadded(t *testing.T) {
	raw := []byte{0xde, 0xad, 0xbe}
	b, err := decodeBody(base64.RawURLEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, b)
}

func TestIsPDF(t *testing.T) {
	assert.True(t, Attachment{MimeType: "application/pdf"}.IsPDF())
	assert.True(t, Attachment{Filename: "Card.PDF", MimeType: "application/octet-stream"}.IsPDF())
	assert.False(t, Attachment{Filename: "logo.png", MimeType: "image/png"}.IsPDF())
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := NewClient(context.Background(), "", vendorcfg.Default(), nil)
	assert.Error(t, err)
}
