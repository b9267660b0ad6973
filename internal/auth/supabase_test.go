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
)

func TestSupabaseValidateOK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer jwt-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "user-1",
			"email": "a@example.com",
			"user_metadata": {"sub": "g-sub", "provider_token": "google-tok"}
		}`))
	}))
	defer ts.Close()

	v := NewSupabaseValidator(common.AuthConfig{SupabaseURL: ts.URL, SupabaseKey: "test-key"}, nil)
	u, err := v.Validate(context.Background(), "jwt-123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, "a@example.com", u.Email)
	assert.Equal(t, "g-sub", u.Subject)
	assert.Equal(t, "google-tok", u.ProviderToken)
}

func TestSupabaseValidateRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid token"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	v := NewSupabaseValidator(common.AuthConfig{SupabaseURL: ts.URL, SupabaseKey: "k"}, nil)
	_, err := v.Validate(context.Background(), "expired")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestSupabaseValidateNoUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	v := NewSupabaseValidator(common.AuthConfig{SupabaseURL: ts.URL, SupabaseKey: "k"}, nil)
	_, err := v.Validate(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestSupabaseValidateEmptyToken(t *testing.T) {
	v := NewSupabaseValidator(common.AuthConfig{SupabaseURL: "http://unused", SupabaseKey: "k"}, nil)
	_, err := v.Validate(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}
