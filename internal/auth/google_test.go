package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joseph-ayodele/giftcards-tracker/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google.golang.org/api/option"
)

func TestGoogleValidateOK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "tokeninfo")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id": "g-123", "expires_in": 3600}`))
	}))
	defer ts.Close()

	v := NewGoogleValidator(nil, option.WithEndpoint(ts.URL))
	sub, err := v.Validate(context.Background(), "access-token")
	require.NoError(t, err)
	assert.Equal(t, "g-123", sub)
}

func TestGoogleValidateRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusBadRequest)
	}))
	defer ts.Close()

	v := NewGoogleValidator(nil, option.WithEndpoint(ts.URL))
	_, err := v.Validate(context.Background(), "bad-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestGoogleValidateNoSubject(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"expires_in": 3600}`))
	}))
	defer ts.Close()

	v := NewGoogleValidator(nil, option.WithEndpoint(ts.URL))
	_, err := v.Validate(context.Background(), "anon-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestGoogleValidateEmptyToken(t *testing.T) {
	v := NewGoogleValidator(nil)
	_, err := v.Validate(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}
