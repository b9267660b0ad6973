// Package server exposes the HTTP surface: harvest trigger, card listing
// and export, and a health probe. All /api routes require a Supabase
// bearer token.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/joseph-ayodele/giftcards-tracker/internal/auth"
	"github.com/joseph-ayodele/giftcards-tracker/internal/harvest"
	"github.com/joseph-ayodele/giftcards-tracker/internal/repository"
)

// UserValidator resolves a bearer token into the calling user.
type UserValidator interface {
	Validate(ctx context.Context, token string) (*auth.User, error)
}

// Harvester runs one mailbox harvest for a user.
type Harvester interface {
	Run(ctx context.Context, user *auth.User, opts harvest.Options) (*harvest.Summary, error)
}

// Exporter renders a user's cards as a workbook.
type Exporter interface {
	ExportCardsXLSX(ctx context.Context, userID string) ([]byte, error)
}

// HealthFunc reports backend health (database reachability).
type HealthFunc func(ctx context.Context) error

type Server struct {
	validator UserValidator
	harvester Harvester
	cards     repository.GiftCardRepository
	exporter  Exporter
	health    HealthFunc
	logger    *slog.Logger
}

func New(
	validator UserValidator,
	harvester Harvester,
	cards repository.GiftCardRepository,
	exporter Exporter,
	health HealthFunc,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if health == nil {
		health = func(context.Context) error { return nil }
	}
	return &Server{
		validator: validator,
		harvester: harvester,
		cards:     cards,
		exporter:  exporter,
		health:    health,
		logger:    logger,
	}
}

// Router builds the route tree.
func (s *Server) Router(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(s.withRequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.requireUser)
		r.Post("/harvest", s.handleHarvest)
		r.Get("/cards", s.handleListCards)
		r.Get("/cards/export", s.handleExportCards)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
