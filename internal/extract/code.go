package extract

import (
	"regexp"
	"strings"
)

// defaultCodeMarker is the Hebrew word for "code", which labels the code
// line in the vendor's localized PDFs.
const defaultCodeMarker = "קוד"

var (
	// exact vendor format: 8 uppercase letters/digits on word boundaries
	codeExact = regexp.MustCompile(`\b[A-Z0-9]{8}\b`)
	// looser 7-9 character token, only trusted on labeled lines
	codeLoose = regexp.MustCompile(`\b[A-Z0-9]{7,9}\b`)
	// "code" or "code:" marker, matched case-insensitively, followed by
	// the token itself
	codePrefixed = regexp.MustCompile(`(?i:code:?)\s*([A-Z0-9]{7,9})`)
)

// findExactCode returns the first 8-character uppercase alphanumeric token
// in document order.
func findExactCode(text string) (string, bool) {
	if m := codeExact.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

// findMarkedCode scans lines containing the localized code marker and
// returns the first 7-9 character token on such a line.
func (e *Extractor) findMarkedCode(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, e.opts.CodeMarker) {
			continue
		}
		if m := codeLoose.FindString(line); m != "" {
			return m, true
		}
	}
	return "", false
}

// findPrefixedCode scans lines for a literal "code"/"code:" label followed
// by a 7-9 character token.
func findPrefixedCode(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if m := codePrefixed.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}
