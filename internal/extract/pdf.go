package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextReader derives plain text from raw document bytes.
type TextReader interface {
	ReadText(data []byte) (string, error)
}

// pdfReader extracts row-oriented text from every page of a PDF, in page
// order. The reader operates on an in-memory buffer, so the only resource
// is the buffer itself; there is no handle to leak.
type pdfReader struct{}

func (pdfReader) ReadText(data []byte) (text string, err error) {
	// the pdf package panics on some malformed inputs; a corrupt
	// attachment must never take down the caller
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("read pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for n := 1; n <= r.NumPage(); n++ {
		page := r.Page(n)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", n, err)
		}
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(word.S)
			}
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
