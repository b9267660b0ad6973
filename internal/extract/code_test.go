package extract

import (
	"testing"
)

func TestFindCodeExactToken(t *testing.T) {
	e := New(Options{}, nil)

	code, ok := e.FindCode("Your gift card code ABC12345 is ready")
	if !ok {
		t.Fatal("expected a code")
	}
	if code != "ABC12345" {
		t.Errorf("got %q, want ABC12345", code)
	}
}

func TestFindCodeFirstInDocumentOrder(t *testing.T) {
	e := New(Options{}, nil)

	// the exact pattern deliberately returns the first qualifying token,
	// even when it is boilerplate rather than the real code
	code, ok := e.FindCode("Reference REF00001\nYour code: XYZ98765")
	if !ok {
		t.Fatal("expected a code")
	}
	if code != "REF00001" {
		t.Errorf("got %q, want REF00001 (first 8-char token wins)", code)
	}
}

func TestFindCodeMarkedLineFallback(t *testing.T) {
	e := New(Options{}, nil)

	// 7-character token is ignored by the exact pattern but picked up on
	// the line carrying the Hebrew marker
	text := "Happy birthday!\nקוד: ABC1234\nBon appetit"
	code, ok := e.FindCode(text)
	if !ok {
		t.Fatal("expected a code via marked-line fallback")
	}
	if code != "ABC1234" {
		t.Errorf("got %q, want ABC1234", code)
	}
}

func TestFindCodeMarkedLineNineChars(t *testing.T) {
	e := New(Options{}, nil)

	code, ok := e.FindCode("קוד ABCD12345")
	if !ok {
		t.Fatal("expected a code")
	}
	if code != "ABCD12345" {
		t.Errorf("got %q, want ABCD12345", code)
	}
}

func TestFindCodePrefixedFallback(t *testing.T) {
	e := New(Options{}, nil)

	for _, text := range []string{
		"Gift card\ncode: ABC1234\nenjoy",
		"Gift card\nCode ABC1234\nenjoy",
		"Gift card\nCODE: ABC1234\nenjoy",
	} {
		code, ok := e.FindCode(text)
		if !ok {
			t.Fatalf("expected a code in %q", text)
		}
		if code != "ABC1234" {
			t.Errorf("text %q: got %q, want ABC1234", text, code)
		}
	}
}

func TestFindCodeAbsent(t *testing.T) {
	e := New(Options{}, nil)

	for _, text := range []string{
		"",
		"Thank you for your purchase",
		"lowercase abc12345 is not a code",
		"short AB12 and long ABCDEF12345 tokens",
	} {
		if code, ok := e.FindCode(text); ok {
			t.Errorf("text %q: unexpected code %q", text, code)
		}
	}
}

func TestFindCodeCustomMarker(t *testing.T) {
	e := New(Options{CodeMarker: "rintangan"}, nil)

	code, ok := e.FindCode("rintangan QQ1234Z")
	if !ok {
		t.Fatal("expected a code")
	}
	if code != "QQ1234Z" {
		t.Errorf("got %q, want QQ1234Z", code)
	}
}
