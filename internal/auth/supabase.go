// Package auth validates the two identities every request carries: the
// Supabase access token authenticating the caller, and the Google access
// token granting mailbox access.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/joseph-ayodele/giftcards-tracker/internal/common"
)

// User is the authenticated Supabase identity.
type User struct {
	ID    string
	Email string
	// Subject is the upstream provider's subject claim.
	Subject string
	// ProviderToken is the Google OAuth access token Supabase stored at
	// login; it is what unlocks the user's mailbox.
	ProviderToken string
}

// SupabaseValidator resolves access tokens against the Supabase auth API.
type SupabaseValidator struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

func NewSupabaseValidator(cfg common.AuthConfig, logger *slog.Logger) *SupabaseValidator {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SupabaseValidator{
		baseURL: strings.TrimRight(cfg.SupabaseURL, "/"),
		apiKey:  cfg.SupabaseKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Validate exchanges a bearer token for the user it belongs to. Any
// failure short of a transport error maps to common.ErrUnauthorized.
func (v *SupabaseValidator) Validate(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, common.NewAppError("AUTH_MISSING_TOKEN", "access token is required", common.ErrUnauthorized)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build user request: %w", err)
	}
	req.Header.Set("apikey", v.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Error("auth.supabase.request_failed", "error", err)
		return nil, common.NewAppError("AUTH_PROVIDER_UNREACHABLE", "supabase auth request failed", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			v.logger.Warn("auth.supabase.body_close_error", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		v.logger.Warn("auth.supabase.rejected", "status", resp.StatusCode)
		return nil, common.NewAppError("AUTH_INVALID_TOKEN", "invalid or expired supabase token", common.ErrUnauthorized)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read user response: %w", err)
	}

	var body struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		UserMetadata struct {
			Sub           string `json:"sub"`
			ProviderToken string `json:"provider_token"`
		} `json:"user_metadata"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}
	if body.ID == "" {
		return nil, common.NewAppError("AUTH_INVALID_TOKEN", "supabase returned no user", common.ErrUnauthorized)
	}

	v.logger.Debug("auth.supabase.ok", "user_id", body.ID)
	return &User{
		ID:            body.ID,
		Email:         body.Email,
		Subject:       body.UserMetadata.Sub,
		ProviderToken: body.UserMetadata.ProviderToken,
	}, nil
}
