package auth

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/giftcards-tracker/internal/common"

	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// GoogleValidator checks Google OAuth access tokens against the tokeninfo
// endpoint and resolves the Google subject behind them.
type GoogleValidator struct {
	opts   []option.ClientOption
	logger *slog.Logger
}

// NewGoogleValidator builds a validator. Extra client options are for
// tests pointing at a fake endpoint.
func NewGoogleValidator(logger *slog.Logger, opts ...option.ClientOption) *GoogleValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &GoogleValidator{
		opts:   append([]option.ClientOption{option.WithoutAuthentication()}, opts...),
		logger: logger,
	}
}

// Validate returns the Google user id owning the access token.
func (g *GoogleValidator) Validate(ctx context.Context, accessToken string) (string, error) {
	if accessToken == "" {
		return "", common.NewAppError("AUTH_MISSING_GOOGLE_TOKEN", "google access token is required", common.ErrUnauthorized)
	}

	svc, err := oauth2api.NewService(ctx, g.opts...)
	if err != nil {
		return "", common.WrapError(err, "create oauth2 service")
	}

	info, err := svc.Tokeninfo().AccessToken(accessToken).Context(ctx).Do()
	if err != nil {
		g.logger.Warn("auth.google.tokeninfo_failed", "error", err)
		return "", common.NewAppError("AUTH_INVALID_GOOGLE_TOKEN", "invalid google access token", common.ErrUnauthorized)
	}
	if info.UserId == "" {
		return "", common.NewAppError("AUTH_INVALID_GOOGLE_TOKEN", "could not verify google user identity", common.ErrUnauthorized)
	}

	g.logger.Debug("auth.google.ok", "subject", info.UserId)
	return info.UserId, nil
}
