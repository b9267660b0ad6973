package vendorcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vendor.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
	assert.Equal(t, "info@wolt.com", p.Sender)
	assert.Equal(t, "ILS", p.CurrencyCode)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeProfile(t, `{
		"sender": "vouchers@example.de",
		"subject": "Dein Gutschein ist da",
		"currency_glyph": "€",
		"currency_code": "EUR"
	}`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vouchers@example.de", p.Sender)
	assert.Equal(t, "EUR", p.CurrencyCode)
	// untouched fields keep their defaults
	assert.Equal(t, 30, p.LookbackDays)
	assert.Equal(t, "קוד", p.CodeMarker)
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"bad currency code": `{"currency_code": "shekels"}`,
		"bad lookback":      `{"lookback_days": 0}`,
		"unknown field":     `{"vendor_name": "wolt"}`,
		"wrong type":        `{"subject": 7}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeProfile(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load(writeProfile(t, `{"sender": `))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
