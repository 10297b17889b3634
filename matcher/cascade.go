package matcher

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/vedantwalia/stock-monitor/models"
)

// Config carries the matcher tunables. The zero value of any field falls
// back to its default.
type Config struct {
	MaxResults     int     // result cap when the caller passes k <= 0 (default 5)
	RankFloor      float64 // minimum score for ranked-tier candidates (default 30)
	FuzzyFloor     float64 // minimum score for fuzzy-fallback candidates (default 60)
	TrigramOverlap float64 // fraction of query trigrams a candidate must share (default 0.3)
	MarketSuffix   string  // appended to symbols to derive tickers (default ".NS")
}

// DefaultConfig returns the standard tunables.
func DefaultConfig() Config {
	return Config{
		MaxResults:     5,
		RankFloor:      30,
		FuzzyFloor:     60,
		TrigramOverlap: 0.3,
		MarketSuffix:   ".NS",
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxResults <= 0 {
		c.MaxResults = d.MaxResults
	}
	if c.RankFloor <= 0 {
		c.RankFloor = d.RankFloor
	}
	if c.FuzzyFloor <= 0 {
		c.FuzzyFloor = d.FuzzyFloor
	}
	if c.TrigramOverlap <= 0 {
		c.TrigramOverlap = d.TrigramOverlap
	}
	if c.MarketSuffix == "" {
		c.MarketSuffix = d.MarketSuffix
	}
	return c
}

// preparedQuery is the per-query view the strategies work from.
type preparedQuery struct {
	normalized string
	words      []string
	trigrams   map[string]struct{}
}

func prepareQuery(normalized string) preparedQuery {
	tgs := make(map[string]struct{})
	for _, tg := range trigrams(normalized) {
		tgs[tg] = struct{}{}
	}
	return preparedQuery{
		normalized: normalized,
		words:      strings.Fields(normalized),
		trigrams:   tgs,
	}
}

// strategy is one indexed matching tier: given a prepared query it proposes
// candidate catalog positions for ranking.
type strategy interface {
	Kind() models.MatchType
	Candidates(q preparedQuery) []int
}

type prefixStrategy struct{ idx *indexSet }

func (s prefixStrategy) Kind() models.MatchType { return models.MatchPrefix }

func (s prefixStrategy) Candidates(q preparedQuery) []int {
	set := make(map[int]struct{})
	for _, p := range prefixes(q.normalized) {
		for _, pos := range s.idx.prefix[p] {
			set[pos] = struct{}{}
		}
	}
	return sortedPositions(set)
}

type tokenStrategy struct{ idx *indexSet }

func (s tokenStrategy) Kind() models.MatchType { return models.MatchWord }

func (s tokenStrategy) Candidates(q preparedQuery) []int {
	set := make(map[int]struct{})
	for _, word := range q.words {
		if len(word) < minTokenLen {
			continue
		}
		for _, pos := range s.idx.token[word] {
			set[pos] = struct{}{}
		}
	}
	return sortedPositions(set)
}

type trigramStrategy struct {
	idx     *indexSet
	overlap float64
}

func (s trigramStrategy) Kind() models.MatchType { return models.MatchTrigram }

// Candidates keeps positions sharing at least max(1, overlap*|query
// trigrams|) trigrams with the query.
func (s trigramStrategy) Candidates(q preparedQuery) []int {
	counts := make(map[int]int)
	for tg := range q.trigrams {
		for _, pos := range s.idx.trigram[tg] {
			counts[pos]++
		}
	}
	required := s.overlap * float64(len(q.trigrams))
	if required < 1 {
		required = 1
	}
	set := make(map[int]struct{})
	for pos, n := range counts {
		if float64(n) >= required {
			set[pos] = struct{}{}
		}
	}
	return sortedPositions(set)
}

type phoneticStrategy struct{ idx *indexSet }

func (s phoneticStrategy) Kind() models.MatchType { return models.MatchPhonetic }

func (s phoneticStrategy) Candidates(q preparedQuery) []int {
	code := phoneticKey(q.normalized)
	if code == "" {
		return nil
	}
	positions := s.idx.phonetic[code]
	out := make([]int, len(positions))
	copy(out, positions)
	return out
}

func sortedPositions(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for pos := range set {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

// tierOrder lists the cascade in priority order, used for instrumentation.
var tierOrder = []models.MatchType{
	models.MatchExact,
	models.MatchPrefix,
	models.MatchWord,
	models.MatchTrigram,
	models.MatchPhonetic,
	models.MatchFuzzy,
}

// Matcher resolves free-text queries against an immutable catalog. Build
// once with New; afterwards Match is safe for any number of concurrent
// callers, since catalog and indices are never mutated.
type Matcher struct {
	cfg     Config
	catalog *Catalog
	idx     *indexSet
	tiers   []strategy

	consulted [6]atomic.Uint64
}

// New builds a matcher over the given stocks. Entries missing a symbol or
// name are dropped during catalog construction.
func New(stocks []models.Stock, cfg Config) *Matcher {
	cfg = cfg.withDefaults()
	catalog := NewCatalog(stocks, cfg.MarketSuffix)
	idx := buildIndices(catalog)
	return &Matcher{
		cfg:     cfg,
		catalog: catalog,
		idx:     idx,
		tiers: []strategy{
			prefixStrategy{idx},
			tokenStrategy{idx},
			trigramStrategy{idx, cfg.TrigramOverlap},
			phoneticStrategy{idx},
		},
	}
}

// Catalog exposes the underlying catalog for symbol lookups.
func (m *Matcher) Catalog() *Catalog { return m.catalog }

// Match resolves query to at most k ranked candidates. Tiers run in fixed
// priority order and the first tier with any candidate surviving the score
// floor wins; the fuzzy fallback only runs when every indexed tier came up
// empty. Passing k <= 0 uses Config.MaxResults. An empty catalog or a query
// that normalizes to nothing yields an empty result, never an error.
func (m *Matcher) Match(query string, k int) []models.Match {
	if k <= 0 {
		k = m.cfg.MaxResults
	}
	qn := Normalize(query)
	if qn == "" || m.catalog.Len() == 0 {
		return nil
	}

	m.consulted[0].Add(1)
	if exact := m.exactMatches(query, qn); len(exact) > 0 {
		return truncate(exact, k)
	}

	q := prepareQuery(qn)
	for i, tier := range m.tiers {
		m.consulted[i+1].Add(1)
		candidates := tier.Candidates(q)
		if len(candidates) == 0 {
			continue
		}
		if ranked := m.rank(candidates, qn, tier.Kind()); len(ranked) > 0 {
			return truncate(ranked, k)
		}
	}

	m.consulted[5].Add(1)
	return m.fuzzyFallback(qn, k)
}

// exactMatches collects catalog-order hits where the symbol equals the raw
// query case-insensitively, the normalized name equals the normalized
// query, or the normalized query occurs inside the normalized name.
func (m *Matcher) exactMatches(query, qn string) []models.Match {
	trimmed := strings.TrimSpace(query)
	var out []models.Match
	for pos := 0; pos < m.catalog.Len(); pos++ {
		rec := m.catalog.At(pos)
		if strings.EqualFold(rec.Symbol, trimmed) ||
			rec.NormalizedName == qn ||
			strings.Contains(rec.NormalizedName, qn) {
			out = append(out, matchFor(rec, 100, models.MatchExact))
		}
	}
	return out
}

// TierConsults reports how many queries have evaluated each tier since the
// matcher was built.
func (m *Matcher) TierConsults() map[models.MatchType]uint64 {
	out := make(map[models.MatchType]uint64, len(tierOrder))
	for i, kind := range tierOrder {
		out[kind] = m.consulted[i].Load()
	}
	return out
}

func matchFor(rec Record, score float64, kind models.MatchType) models.Match {
	return models.Match{
		Symbol: rec.Symbol,
		Ticker: rec.Ticker,
		Name:   rec.Name,
		Score:  score,
		Type:   kind,
	}
}

func truncate(matches []models.Match, k int) []models.Match {
	if len(matches) > k {
		return matches[:k]
	}
	return matches
}
