// Package extract implements the gift-card PDF extraction core:
// document bytes -> text -> (code, value).
//
// Codes and values are located by ordered chains of pattern strategies,
// evaluated first-match-wins. Extraction is best-effort: unreadable
// documents yield empty text, a missing code yields an absent result and
// a missing value defaults to 0. None of these are errors for the caller.
package extract

import (
	"log/slog"
)

// Options configure the locale-specific parts of the pattern tables.
// The zero value is filled with the vendor defaults (Hebrew code marker,
// shekel glyph, ILS currency code).
type Options struct {
	// CodeMarker is the localized word labeling the code line.
	CodeMarker string
	// CurrencyGlyph is the currency symbol adjacent to amounts.
	CurrencyGlyph string
	// CurrencyCode is the 3-letter currency code adjacent to amounts.
	CurrencyCode string
}

// Details is the (code, value) pair extracted from one document.
type Details struct {
	Code  string
	Value int
}

// codeStrategy tries to locate a code in text. valueStrategy likewise for
// an amount. Strategies run in fixed priority order, stopping at the first
// success.
type (
	codeStrategy  func(text string) (string, bool)
	valueStrategy func(text string) (int, bool)
)

// Extractor is stateless across calls; a single instance is safe for
// concurrent use over independent documents.
type Extractor struct {
	reader TextReader
	opts   Options

	codeStrategies  []codeStrategy
	valueStrategies []valueStrategy

	logger *slog.Logger
}

func New(opts Options, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.CodeMarker == "" {
		opts.CodeMarker = defaultCodeMarker
	}
	if opts.CurrencyGlyph == "" {
		opts.CurrencyGlyph = defaultCurrencyGlyph
	}
	if opts.CurrencyCode == "" {
		opts.CurrencyCode = defaultCurrencyCode
	}

	e := &Extractor{
		reader: pdfReader{},
		opts:   opts,
		logger: logger,
	}
	e.codeStrategies = []codeStrategy{
		findExactCode,
		e.findMarkedCode,
		findPrefixedCode,
	}
	e.valueStrategies = newValueStrategies(opts.CurrencyGlyph, opts.CurrencyCode)
	return e
}

// WithReader swaps the text reader. Used by callers that already have
// plain text, and by tests.
func (e *Extractor) WithReader(r TextReader) *Extractor {
	e.reader = r
	return e
}

// Text returns the plain text of all pages of the document, in page order.
// Unreadable input is logged and yields "", never an error.
func (e *Extractor) Text(data []byte) string {
	text, err := e.reader.ReadText(data)
	if err != nil {
		e.logger.Warn("extract.text.failed", "bytes", len(data), "error", err)
		return ""
	}
	return text
}

// FindCode locates a gift-card code in text, trying each strategy in
// priority order. The exact 8-character pattern runs first; it can match an
// incidental token in boilerplate before the labeled fallbacks get a chance.
// That priority order is kept on purpose for compatibility with harvested
// vendor layouts.
func (e *Extractor) FindCode(text string) (string, bool) {
	for _, try := range e.codeStrategies {
		if code, ok := try(text); ok {
			return code, true
		}
	}
	return "", false
}

// FindValue locates the card's monetary amount in text, in whole currency
// units. Fractions are truncated, not rounded. Returns 0 when no pattern
// matches.
func (e *Extractor) FindValue(text string) int {
	for _, try := range e.valueStrategies {
		if value, ok := try(text); ok {
			return value
		}
	}
	return 0
}

// Details extracts the (code, value) pair from document bytes. When no code
// is found it reports ok=false without looking for a value: a value with no
// code is meaningless to callers.
func (e *Extractor) Details(data []byte) (Details, bool) {
	text := e.Text(data)

	code, ok := e.FindCode(text)
	if !ok {
		e.logger.Debug("extract.details.no_code", "bytes", len(data))
		return Details{}, false
	}

	value := e.FindValue(text)
	e.logger.Debug("extract.details.ok", "code", code, "value", value)
	return Details{Code: code, Value: value}, true
}
