package parser

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes accented characters and strips the combining marks, so
// "Café" folds to "Cafe" before slug normalization.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a free-text label into a filesystem-safe identifier:
// lowercase, every run of non-alphanumeric characters collapsed to a single
// underscore, leading and trailing underscores stripped. A label made up of
// nothing but punctuation normalizes to the empty string, which callers treat
// as a dropped block.
func Slugify(label string) string {
	folded, _, err := transform.String(asciiFold, label)
	if err != nil {
		folded = label
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r + ('a' - 'A'))
		default:
			// Any non-alphanumeric rune (including non-ASCII leftovers after
			// folding) acts as a separator.
			pendingSep = true
		}
	}
	return b.String()
}
