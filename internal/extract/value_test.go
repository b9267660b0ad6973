package extract

import (
	"testing"
)

func TestFindValueDecimalGlyph(t *testing.T) {
	e := New(Options{}, nil)

	if v := e.FindValue("שובר על סך 60.00 ₪"); v != 60 {
		t.Errorf("got %d, want 60", v)
	}
}

func TestFindValueBareGlyph(t *testing.T) {
	e := New(Options{}, nil)

	cases := map[string]int{
		"גיפט קארד ₪45":  45,
		"גיפט קארד 45 ₪": 45,
		"₪120 gift card": 120,
	}
	for text, want := range cases {
		if v := e.FindValue(text); v != want {
			t.Errorf("text %q: got %d, want %d", text, v, want)
		}
	}
}

func TestFindValueCurrencyCodeTruncates(t *testing.T) {
	e := New(Options{}, nil)

	cases := map[string]int{
		"Amount ILS 99.50": 99,
		"Amount 99.50 ILS": 99,
		"Amount ILS 75":    75,
	}
	for text, want := range cases {
		if v := e.FindValue(text); v != want {
			t.Errorf("text %q: got %d, want %d", text, v, want)
		}
	}
}

func TestFindValueDecimalBeatsBareGlyph(t *testing.T) {
	e := New(Options{}, nil)

	// the decimal pattern runs first and takes the integer part, rather
	// than letting the bare-glyph pattern grab the fractional digits
	if v := e.FindValue("₪7 handling fee, card 60.00 ₪"); v != 60 {
		t.Errorf("got %d, want 60", v)
	}
}

func TestFindValueDefaultsToZero(t *testing.T) {
	e := New(Options{}, nil)

	for _, text := range []string{"", "Thank you for your purchase", "100 EUR"} {
		if v := e.FindValue(text); v != 0 {
			t.Errorf("text %q: got %d, want 0", text, v)
		}
	}
}

func TestFindValueCustomCurrency(t *testing.T) {
	e := New(Options{CurrencyGlyph: "€", CurrencyCode: "EUR"}, nil)

	if v := e.FindValue("Gutschein 25.00 €"); v != 25 {
		t.Errorf("glyph: got %d, want 25", v)
	}
	if v := e.FindValue("Gutschein EUR 30.90"); v != 30 {
		t.Errorf("code: got %d, want 30", v)
	}
}
