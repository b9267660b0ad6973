package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joseph-ayodele/giftcards-tracker/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuri/excelize/v2"
)

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

func TestExportCardsXLSX(t *testing.T) {
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc := NewService(stubCards{cards: []*entity.GiftCard{
		{Code: "ABC12345", Value: 60, MessageID: "m1", CreatedAt: created},
		{Code: "XYZ9876", Value: 45, MessageID: "m2", CreatedAt: created.Add(time.Hour)},
	}}, nil)

	b, err := svc.ExportCardsXLSX(context.Background(), "u1")
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Gift Cards")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Code", "Value", "Harvested At", "Source Message"}, rows[0])
	assert.Equal(t, "ABC12345", rows[1][0])
	assert.Equal(t, "60", rows[1][1])
	assert.Equal(t, "XYZ9876", rows[2][0])
}

func TestExportCardsXLSXEmpty(t *testing.T) {
	svc := NewService(stubCards{}, nil)

	b, err := svc.ExportCardsXLSX(context.Background(), "u1")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Gift Cards")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestExportCardsXLSXRepositoryError(t *testing.T) {
	svc := NewService(stubCards{err: errors.New("db down")}, nil)

	_, err := svc.ExportCardsXLSX(context.Background(), "u1")
	assert.Error(t, err)
}
