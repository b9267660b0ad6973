package extract

import (
	"errors"
	"testing"
)

// stubReader hands back canned text for any input bytes.
type stubReader struct {
	text string
	err  error
}

func (s stubReader) ReadText(data []byte) (string, error) {
	return s.text, s.err
}

func TestDetailsEndToEnd(t *testing.T) {
	e := New(Options{}, nil).WithReader(stubReader{
		text: "Your gift card code ABC12345 value 60.00 ₪",
	})

	d, ok := e.Details([]byte("%PDF"))
	if !ok {
		t.Fatal("expected details")
	}
	if d.Code != "ABC12345" {
		t.Errorf("code: got %q, want ABC12345", d.Code)
	}
	if d.Value != 60 {
		t.Errorf("value: got %d, want 60", d.Value)
	}
}

func TestDetailsNoCodeShortCircuits(t *testing.T) {
	// an amount is present, but without a code the result must be
	// (absent, 0) - the value locator is never consulted
	e := New(Options{}, nil).WithReader(stubReader{
		text: "Thank you for your purchase of 45 ₪",
	})

	d, ok := e.Details([]byte("%PDF"))
	if ok {
		t.Fatalf("expected no details, got %+v", d)
	}
	if d.Code != "" || d.Value != 0 {
		t.Errorf("expected zero details, got %+v", d)
	}
}

func TestDetailsEmptyDocument(t *testing.T) {
	e := New(Options{}, nil).WithReader(stubReader{text: ""})

	if d, ok := e.Details(nil); ok {
		t.Fatalf("expected no details, got %+v", d)
	}
}

func TestDetailsUnreadableDocument(t *testing.T) {
	e := New(Options{}, nil).WithReader(stubReader{
		err: errors.New("broken xref table"),
	})

	// a reader failure degrades to empty text and an absent result,
	// never an error surfaced to the caller
	if d, ok := e.Details([]byte("garbage")); ok {
		t.Fatalf("expected no details, got %+v", d)
	}
}

func TestDetailsIdempotent(t *testing.T) {
	e := New(Options{}, nil).WithReader(stubReader{
		text: "קוד: ABC1234\nשובר על סך 60.00 ₪",
	})

	data := []byte("same bytes")
	first, ok1 := e.Details(data)
	second, ok2 := e.Details(data)
	if ok1 != ok2 || first != second {
		t.Errorf("results differ: %+v/%v vs %+v/%v", first, ok1, second, ok2)
	}
	if first.Code != "ABC1234" || first.Value != 60 {
		t.Errorf("got %+v, want {ABC1234 60}", first)
	}
}
