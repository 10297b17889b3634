package matcher

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Compatibility decomposition plus removal of combining marks, so accented
// names fold to their base letters (Élodie -> elodie).
var decompose = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Normalize canonicalizes text for both index build and query time.
// Lowercases, replaces anything that is not a letter or digit with a space,
// and collapses runs of whitespace. Idempotent: Normalize(Normalize(s)) ==
// Normalize(s).
func Normalize(s string) string {
	t, _, err := transform.String(decompose, s)
	if err != nil {
		t = s
	}
	t = strings.ToLower(t)
	t = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, t)
	return strings.Join(strings.Fields(t), " ")
}
