package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/giftcards-tracker/internal/auth"
	"github.com/joseph-ayodele/giftcards-tracker/internal/common"
)

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := common.WithRequestID(r.Context(), uuid.New().String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireUser authenticates the Supabase bearer token and stores the
// resolved user in the request context.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusBadRequest, "invalid authorization header")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		user, err := s.validator.Validate(r.Context(), token)
		if err != nil {
			s.logger.Warn("server.auth.rejected",
				"request_id", common.RequestIDFromContext(r.Context()),
				"error", err,
			)
			writeError(w, common.HTTPStatus(err), "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), common.ContextKeyUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFrom(ctx context.Context) *auth.User {
	if user, ok := ctx.Value(common.ContextKeyUser).(*auth.User); ok {
		return user
	}
	return nil
}
