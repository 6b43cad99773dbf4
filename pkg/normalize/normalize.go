// Package normalize derives canonical comparison keys from free-text entity
// fields. Normalized text is used for identity matching only, never for
// display. Every function here is deterministic and total: equal inputs
// always normalize identically, across calls and across runs.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Kind selects the normalization profile for a field.
type Kind string

// Normalization kinds.
const (
	// KindName normalizes display names (manufacturers, models).
	KindName Kind = "name"
	// KindSerial normalizes serial numbers: alphanumerics only, upper-cased.
	KindSerial Kind = "serial"
)

// equivalences folds common company-name abbreviations to one canonical
// token so "Gibson Guitar Corp." and "Gibson Guitar Corporation" compare
// equal. Keys and values are already lower-case, punctuation-free.
var equivalences = map[string]string{
	"corporation":   "corp",
	"company":       "co",
	"incorporated":  "inc",
	"limited":       "ltd",
	"brothers":      "bros",
	"manufacturing": "mfg",
	"&":             "and",
}

// accentFolder strips combining marks so accented and unaccented spellings
// normalize to the same key.
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize returns the canonical comparison key for text under the given
// kind. It is idempotent: Normalize(Normalize(x, k), k) == Normalize(x, k).
func Normalize(text string, kind Kind) string {
	if kind == KindSerial {
		return Serial(text)
	}
	return Name(text)
}

// Name normalizes a display name: accent folding, lower-casing, punctuation
// stripping, whitespace collapsing, and abbreviation folding.
func Name(s string) string {
	folded, _, err := transform.String(accentFolder, s)
	if err != nil {
		// Fold failures leave the input as-is; the remaining pipeline
		// still produces a stable key.
		folded = s
	}

	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '&':
			// Kept as a token so it can fold to "and" below.
			b.WriteString(" & ")
		default:
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	for i, tok := range fields {
		if canonical, ok := equivalences[tok]; ok {
			fields[i] = canonical
		}
	}

	return strings.Join(fields, " ")
}

// Serial normalizes a serial number: separators and punctuation are
// stripped and the remaining alphanumerics are upper-cased.
func Serial(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
