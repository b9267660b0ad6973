package extract

import (
	"regexp"
	"strconv"
)

const (
	defaultCurrencyGlyph = "₪"
	defaultCurrencyCode  = "ILS"
)

// newValueStrategies compiles the amount patterns for a currency glyph and
// 3-letter code, in priority order:
//  1. decimal amount followed by the glyph ("60.00 ₪")
//  2. bare amount adjacent to the glyph on either side ("₪45", "45 ₪")
//  3. amount adjacent to the currency code, optionally fractional
//     ("ILS 99.50"); fractions are truncated, not rounded
func newValueStrategies(glyph, code string) []valueStrategy {
	g := regexp.QuoteMeta(glyph)
	c := regexp.QuoteMeta(code)

	decimalPattern := regexp.MustCompile(`(\d+)\.00\s*` + g)
	glyphPattern := regexp.MustCompile(`(?:` + g + `\s*(\d+))|(?:(\d+)\s*` + g + `)`)
	codePattern := regexp.MustCompile(`(?:` + c + `\s*(\d+(?:\.\d+)?))|(?:(\d+(?:\.\d+)?)\s*` + c + `)`)

	return []valueStrategy{
		func(text string) (int, bool) {
			m := decimalPattern.FindStringSubmatch(text)
			if m == nil {
				return 0, false
			}
			return atoiValue(m[1])
		},
		func(text string) (int, bool) {
			m := glyphPattern.FindStringSubmatch(text)
			if m == nil {
				return 0, false
			}
			return atoiValue(firstGroup(m))
		},
		func(text string) (int, bool) {
			m := codePattern.FindStringSubmatch(text)
			if m == nil {
				return 0, false
			}
			f, err := strconv.ParseFloat(firstGroup(m), 64)
			if err != nil {
				return 0, false
			}
			return int(f), true
		},
	}
}

// firstGroup returns whichever capture group participated in the match.
func firstGroup(m []string) string {
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}

func atoiValue(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
