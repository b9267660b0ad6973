package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/joseph-ayodele/giftcards-tracker/internal/auth"
	"github.com/joseph-ayodele/giftcards-tracker/internal/common"
	"github.com/joseph-ayodele/giftcards-tracker/internal/entity"
	"github.com/joseph-ayodele/giftcards-tracker/internal/harvest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	user *auth.User
	err  error
}

func (s stubValidator) Validate(ctx context.Context, token string) (*auth.User, error) {
	return s.user, s.err
}

type stubHarvester struct {
	summary *harvest.Summary
	err     error
	gotOpts harvest.Options
}

func (s *stubHarvester) Run(ctx context.Context, user *auth.User, opts harvest.Options) (*harvest.Summary, error) {
	s.gotOpts = opts
	return s.summary, s.err
}

type stubCards struct {
	cards []*entity.GiftCard
	err   error
}

func (s stubCards) Exists(ctx context.Context, code string) (bool, error) { return false, nil }

func (s stubCards) SaveNew(ctx context.Context, userID string, cards []entity.GiftCard) (int, error) {
	return 0, nil
}

func (s stubCards) ListByOwner(ctx context.Context, userID string) ([]*entity.GiftCard, error) {
	return s.cards, s.err
}

type stubExporter struct {
	data []byte
	err  error
}

func (s stubExporter) ExportCardsXLSX(ctx context.Context, userID string) ([]byte, error) {
	return s.data, s.err
}

func testServer(t *testing.T, v UserValidator, h Harvester, c stubCards, e stubExporter, health HealthFunc) *httptest.Server {
	t.Helper()
	srv := New(v, h, c, e, health, nil)
	ts := httptest.NewServer(srv.Router([]string{"*"}))
	t.Cleanup(ts.Close)
	return ts
}

func jsonDecode(resp *http.Response, v any) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

func authedUser() *auth.User {
	return &auth.User{ID: "u1", Email: "a@example.com", ProviderToken: "g-tok"}
}

func doRequest(t *testing.T, method, url, body string, headers map[string]string) *http.Response {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHarvestRequiresAuthHeader(t *testing.T) {
	ts := testServer(t, stubValidator{user: authedUser()}, &stubHarvester{}, stubCards{}, stubExporter{}, nil)

	resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/harvest", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHarvestRejectsMalformedAuthHeader(t *testing.T) {
	ts := testServer(t, stubValidator{user: authedUser()}, &stubHarvester{}, stubCards{}, stubExporter{}, nil)

	resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/harvest", "", map[string]string{
		"Authorization": "Basic dXNlcjpwYXNz",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHarvestRejectsInvalidToken(t *testing.T) {
	ts := testServer(t,
		stubValidator{err: common.NewAppError("AUTH_INVALID_TOKEN", "nope", common.ErrUnauthorized)},
		&stubHarvester{}, stubCards{}, stubExporter{}, nil)

	resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/harvest", "", map[string]string{
		"Authorization": "Bearer expired",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHarvestOK(t *testing.T) {
	h := &stubHarvester{summary: &harvest.Summary{
		MessagesFound: 3,
		CardsFound:    2,
		CardsSaved:    1,
	}}
	ts := testServer(t, stubValidator{user: authedUser()}, h, stubCards{}, stubExporter{}, nil)

	resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/harvest", `{"days": 14}`, map[string]string{
		"Authorization": "Bearer good",
		"Content-Type":  "application/json",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 14, h.gotOpts.Days)

	var got harvest.Summary
	require.NoError(t, jsonDecode(resp, &got))
	assert.Equal(t, 3, got.MessagesFound)
	assert.Equal(t, 1, got.CardsSaved)
}

func TestHarvestEmptyBodyUsesDefaults(t *testing.T) {
	h := &stubHarvester{summary: &harvest.Summary{}}
	ts := testServer(t, stubValidator{user: authedUser()}, h, stubCards{}, stubExporter{}, nil)

	resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/harvest", "", map[string]string{
		"Authorization": "Bearer good",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, h.gotOpts.Days)
}

func TestHarvestRejectsBadBody(t *testing.T) {
	ts := testServer(t, stubValidator{user: authedUser()}, &stubHarvester{}, stubCards{}, stubExporter{}, nil)

	for _, body := range []string{`{"days":`, `{"days": 1000}`, `{"days": -1}`, `{"day": 7}`} {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/harvest", body, map[string]string{
			"Authorization": "Bearer good",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)
	}
}

func TestListCards(t *testing.T) {
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	ts := testServer(t, stubValidator{user: authedUser()}, &stubHarvester{}, stubCards{
		cards: []*entity.GiftCard{
			{Code: "ABC12345", Value: 60, MessageID: "m1", CreatedAt: created},
		},
	}, stubExporter{}, nil)

	resp := doRequest(t, http.MethodGet, ts.URL+"/api/v1/cards", "", map[string]string{
		"Authorization": "Bearer good",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Cards []cardResponse `json:"cards"`
	}
	require.NoError(t, jsonDecode(resp, &got))
	require.Len(t, got.Cards, 1)
	assert.Equal(t, "ABC12345", got.Cards[0].Code)
	assert.Equal(t, 60, got.Cards[0].Value)
	assert.Equal(t, "2025-06-01T10:00:00Z", got.Cards[0].CreatedAt)
}

func TestExportCards(t *testing.T) {
	ts := testServer(t, stubValidator{user: authedUser()}, &stubHarvester{}, stubCards{},
		stubExporter{data: []byte("PK\x03\x04workbook")}, nil)

	resp := doRequest(t, http.MethodGet, ts.URL+"/api/v1/cards/export", "", map[string]string{
		"Authorization": "Bearer good",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "gift-cards.xlsx")
}

func TestHealthz(t *testing.T) {
	ts := testServer(t, stubValidator{user: authedUser()}, &stubHarvester{}, stubCards{}, stubExporter{}, nil)

	resp := doRequest(t, http.MethodGet, ts.URL+"/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthzUnhealthy(t *testing.T) {
	failing := func(ctx context.Context) error { return errors.New("db down") }
	ts := testServer(t, stubValidator{user: authedUser()}, &stubHarvester{}, stubCards{}, stubExporter{}, failing)

	resp := doRequest(t, http.MethodGet, ts.URL+"/healthz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
