package matcher

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// indexSet holds the four lookup structures built over a catalog. Keys are
// fragments of normalized text; values are catalog positions. Built in one
// pass and read-only afterwards, so safe to share across queries.
type indexSet struct {
	prefix   map[string][]int
	token    map[string][]int
	trigram  map[string][]int
	phonetic map[string][]int
}

const (
	minPrefixLen = 2
	maxPrefixLen = 4
	minTokenLen  = 2
)

func buildIndices(c *Catalog) *indexSet {
	idx := &indexSet{
		prefix:   make(map[string][]int),
		token:    make(map[string][]int),
		trigram:  make(map[string][]int),
		phonetic: make(map[string][]int),
	}

	for pos := 0; pos < c.Len(); pos++ {
		rec := c.At(pos)
		name := rec.NormalizedName
		symbol := strings.ToLower(rec.Symbol)

		for _, p := range prefixes(name) {
			idx.prefix[p] = append(idx.prefix[p], pos)
		}
		for _, p := range prefixes(symbol) {
			idx.prefix[p] = append(idx.prefix[p], pos)
		}

		for _, word := range strings.Fields(name) {
			if len(word) >= minTokenLen {
				idx.token[word] = append(idx.token[word], pos)
			}
		}

		for _, tg := range trigrams(name) {
			idx.trigram[tg] = append(idx.trigram[tg], pos)
		}

		if code := phoneticKey(name); code != "" {
			idx.phonetic[code] = append(idx.phonetic[code], pos)
		}
	}
	return idx
}

// prefixes returns the leading substrings of s with lengths 2 through 4,
// capped at len(s). Rune-based so multibyte names slice cleanly.
func prefixes(s string) []string {
	runes := []rune(s)
	var out []string
	for l := minPrefixLen; l <= maxPrefixLen && l <= len(runes); l++ {
		out = append(out, string(runes[:l]))
	}
	return out
}

// trigrams slides a 3-rune window over s padded with one leading and one
// trailing space, so even 1-character names yield a trigram.
func trigrams(s string) []string {
	runes := []rune(" " + s + " ")
	out := make([]string, 0, len(runes))
	for i := 0; i+3 <= len(runes); i++ {
		out = append(out, string(runes[i:i+3]))
	}
	return out
}

// phoneticKey computes the primary Double Metaphone code over the
// space-stripped text. Empty input yields an empty key, which is never
// indexed.
func phoneticKey(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return ""
	}
	primary, _ := matchr.DoubleMetaphone(s)
	return primary
}
