package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/joseph-ayodele/giftcards-tracker/internal/common"
	"github.com/joseph-ayodele/giftcards-tracker/internal/harvest"
)

type harvestRequest struct {
	Days int `json:"days"`
}

type cardResponse struct {
	Code      string `json:"code"`
	Value     int    `json:"value"`
	MessageID string `json:"message_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.health(r.Context()); err != nil {
		s.logger.Error("server.health.failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHarvest(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "no authenticated user")
		return
	}

	// unknown fields are rejected, like the vendor profile loader does;
	// an empty body just means defaults
	var req harvestRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Days < 0 || req.Days > 365 {
		writeError(w, http.StatusBadRequest, "days out of range")
		return
	}

	summary, err := s.harvester.Run(r.Context(), user, harvest.Options{Days: req.Days})
	if err != nil {
		s.logger.Error("server.harvest.failed", "user_id", user.ID, "error", err)
		writeError(w, common.HTTPStatus(err), harvestErrorMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func harvestErrorMessage(err error) string {
	if errors.Is(err, common.ErrUnauthorized) {
		return "invalid or expired google token"
	}
	return "harvest failed"
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "no authenticated user")
		return
	}

	cards, err := s.cards.ListByOwner(r.Context(), user.ID)
	if err != nil {
		s.logger.Error("server.cards.list_failed", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "listing cards failed")
		return
	}

	out := make([]cardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, cardResponse{
			Code:      card.Code,
			Value:     card.Value,
			MessageID: card.MessageID,
			CreatedAt: card.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"cards": out})
}

func (s *Server) handleExportCards(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "no authenticated user")
		return
	}

	workbook, err := s.exporter.ExportCardsXLSX(r.Context(), user.ID)
	if err != nil {
		s.logger.Error("server.cards.export_failed", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="gift-cards.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}
