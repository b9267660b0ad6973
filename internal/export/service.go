package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/giftcards-tracker/internal/repository"
)

// Service is a tiny façade over the card repository that produces XLSX
// bytes for exports.
type Service struct {
	cards  repository.GiftCardRepository
	logger *slog.Logger
}

func NewService(cards repository.GiftCardRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cards: cards, logger: logger}
}

// ExportCardsXLSX returns an XLSX workbook (as bytes) with all of the
// user's stored gift cards.
func (s *Service) ExportCardsXLSX(ctx context.Context, userID string) ([]byte, error) {
	start := time.Now()

	cards, err := s.cards.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query gift cards: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Gift Cards"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Code",
		"Value",
		"Harvested At",
		"Source Message",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, card := range cards {
		values := []any{
			card.Code,
			card.Value,
			card.CreatedAt.UTC().Format(time.RFC3339),
			card.MessageID,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.cards.ok",
		"user_id", userID,
		"rows", len(cards),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
