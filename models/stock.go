package models

// Stock is one catalog entry as supplied by a data source.
type Stock struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Type     string `json:"type"`
}

// MatchType tags which strategy produced a match.
type MatchType string

const (
	MatchExact    MatchType = "exact"
	MatchPrefix   MatchType = "prefix"
	MatchWord     MatchType = "word"
	MatchTrigram  MatchType = "trigram"
	MatchPhonetic MatchType = "phonetic"
	MatchFuzzy    MatchType = "fuzzy"

	// MatchFullText is used by the bleve-backed engine, which ranks with its
	// own analyzer rather than the cascade tiers.
	MatchFullText MatchType = "fulltext"
)

// Match is one ranked resolution candidate for a query.
//
// Score is a 0-100 confidence local to the tier that produced the match:
// exact hits are always 100, ranked tiers score by string similarity, and
// the fuzzy fallback uses a plain similarity ratio. Scores from different
// tiers are not comparable to each other.
type Match struct {
	Symbol string    `json:"symbol"`
	Ticker string    `json:"ticker"`
	Name   string    `json:"name"`
	Score  float64   `json:"score"`
	Type   MatchType `json:"match_type"`
}
