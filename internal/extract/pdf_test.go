package extract

import (
	"bytes"
	"testing"
)

func TestTextCorruptDocument(t *testing.T) {
	e := New(Options{}, nil)

	// arbitrary bytes are not a PDF; extraction must degrade to empty
	// text instead of failing
	if text := e.Text([]byte("this is not a pdf")); text != "" {
		t.Errorf("got %q, want empty text", text)
	}
}

func TestTextEmptyInput(t *testing.T) {
	e := New(Options{}, nil)

	if text := e.Text(nil); text != "" {
		t.Errorf("got %q, want empty text", text)
	}
}

func TestTextTruncatedHeader(t *testing.T) {
	e := New(Options{}, nil)

	// a valid magic header with a mangled body must not panic
	data := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte{0x00}, 64)...)
	if text := e.Text(data); text != "" {
		t.Errorf("got %q, want empty text", text)
	}
}
