package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantwalia/stock-monitor/models"
)

func TestSimilarity(t *testing.T) {
	assert.Equal(t, float64(1), similarity("reliance", "reliance"))
	assert.Equal(t, float64(0), similarity("", "reliance"))
	assert.Equal(t, float64(0), similarity("reliance", ""))

	// One substitution in four characters.
	assert.InDelta(t, 0.75, similarity("nyte", "nite"), 0.01)

	// A misspelled short form still scores high against the full company
	// name, since the ratio normalizes by combined length.
	assert.GreaterOrEqual(t, similarity("tataa consultency", "tata consultancy services"), 0.6)

	s := similarity("abc", "xyz")
	assert.GreaterOrEqual(t, s, float64(0))
	assert.Less(t, s, 0.5)
}

func TestRankAppliesScoreFloor(t *testing.T) {
	m := New([]models.Stock{
		{Symbol: "RELIANCE", Name: "Reliance Industries"},
		{Symbol: "ZZZT", Name: "Zzzt Qq Vvv"},
	}, Config{})

	ranked := m.rank([]int{0, 1}, "reliance industr", models.MatchPrefix)
	require.Len(t, ranked, 1)
	assert.Equal(t, "RELIANCE", ranked[0].Symbol)
	assert.GreaterOrEqual(t, ranked[0].Score, float64(30))
}

func TestRankSymbolSimilarityRescuesTickerQueries(t *testing.T) {
	m := New([]models.Stock{
		{Symbol: "HDFCBANK", Name: "Housing Development Finance Corporation Bank"},
	}, Config{})

	// The name shares almost nothing with the query; the symbol carries it.
	ranked := m.rank([]int{0}, "hdfcbnk", models.MatchPrefix)
	require.Len(t, ranked, 1)
	assert.GreaterOrEqual(t, ranked[0].Score, float64(80))
}

func TestRankOrdersByScoreThenPosition(t *testing.T) {
	m := New([]models.Stock{
		{Symbol: "ALPHA1", Name: "Alphaco"},
		{Symbol: "ALPHA2", Name: "Alphaco"},
		{Symbol: "BETA", Name: "Alphacorp Industries"},
	}, Config{})

	ranked := m.rank([]int{2, 1, 0}, "alphaco", models.MatchPrefix)
	require.Len(t, ranked, 3)
	// Identical names score identically; the tie breaks on catalog position.
	assert.Equal(t, "ALPHA1", ranked[0].Symbol)
	assert.Equal(t, "ALPHA2", ranked[1].Symbol)
	assert.Equal(t, "BETA", ranked[2].Symbol)
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[2].Score)
}

func TestFuzzyFallbackFloorAndBound(t *testing.T) {
	m := New([]models.Stock{
		{Symbol: "INFY", Name: "Infosys"},
		{Symbol: "RELIANCE", Name: "Reliance Industries"},
	}, Config{})

	results := m.fuzzyFallback("imfosis", 5)
	require.Len(t, results, 1)
	assert.Equal(t, "INFY", results[0].Symbol)
	assert.GreaterOrEqual(t, results[0].Score, float64(60))

	assert.Empty(t, m.fuzzyFallback("qqqqqqqq", 5))
}

func TestScoreFloorsHoldAcrossTiers(t *testing.T) {
	m := New(nseCatalog(), Config{})
	queries := []string{"reliance inds", "consultansy services", "consultncy srvices", "imfosis", "nyte"}
	for _, q := range queries {
		for _, r := range m.Match(q, 0) {
			if r.Type == models.MatchExact {
				continue
			}
			assert.GreaterOrEqual(t, r.Score, float64(30), "query %q", q)
			if r.Type == models.MatchFuzzy {
				assert.GreaterOrEqual(t, r.Score, float64(60), "query %q", q)
			}
		}
	}
}
