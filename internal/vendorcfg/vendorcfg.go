// Package vendorcfg loads the vendor profile: which sender and subject to
// search the mailbox for, and the currency/marker conventions the vendor's
// PDFs use. The built-in default is the Wolt Israel profile.
package vendorcfg

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Profile describes one gift-card vendor.
type Profile struct {
	// Sender is the vendor's from-address in gift-card emails.
	Sender string `json:"sender"`
	// Subject is the exact subject line of gift-card emails.
	Subject string `json:"subject"`
	// LookbackDays bounds how far back the mailbox search goes.
	LookbackDays int `json:"lookback_days"`
	// CurrencyGlyph and CurrencyCode drive the amount patterns.
	CurrencyGlyph string `json:"currency_glyph"`
	CurrencyCode  string `json:"currency_code"`
	// CodeMarker is the localized word labeling the code line.
	CodeMarker string `json:"code_marker"`
}

// Default returns the Wolt Israel profile.
func Default() Profile {
	return Profile{
		Sender:        "info@wolt.com",
		Subject:       "הגיפט קארד של Wolt הגיע ומחכה לשליחה",
		LookbackDays:  30,
		CurrencyGlyph: "₪",
		CurrencyCode:  "ILS",
		CodeMarker:    "קוד",
	}
}

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "sender": {"type": "string", "minLength": 3},
    "subject": {"type": "string", "minLength": 1},
    "lookback_days": {"type": "integer", "minimum": 1, "maximum": 365},
    "currency_glyph": {"type": "string", "minLength": 1},
    "currency_code": {"type": "string", "pattern": "^[A-Z]{3}$"},
    "code_marker": {"type": "string", "minLength": 1}
  }
}`

var profileSchema = jsonschema.MustCompileString("vendor.json", schemaJSON)

// Load reads and validates a profile file. An empty path yields the
// default profile; fields absent from the file keep their defaults.
func Load(path string) (Profile, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read vendor profile: %w", err)
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return Profile{}, fmt.Errorf("parse vendor profile: %w", err)
	}
	if err := profileSchema.Validate(v); err != nil {
		return Profile{}, fmt.Errorf("vendor profile does not match schema: %w", err)
	}

	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("decode vendor profile: %w", err)
	}
	return p, nil
}
