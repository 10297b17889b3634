package matcher

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/vedantwalia/stock-monitor/models"
)

// similarity is a normalized edit similarity in [0,1], 1 meaning identical
// strings: twice the longest common subsequence over the combined length.
// Normalizing by the combined length rather than the longer string keeps a
// misspelled short query scoring high against a longer full company name.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	total := len([]rune(a)) + len([]rune(b))
	return 2 * float64(edlib.LCS(a, b)) / float64(total)
}

type scoredMatch struct {
	pos   int
	match models.Match
}

// rank scores candidate positions against the normalized query and returns
// the survivors sorted by score descending, catalog position ascending.
//
// The blend favors the company name but lets a strong symbol match win
// outright, which rescues ticker-style queries whose name similarity is
// poor.
func (m *Matcher) rank(positions []int, qn string, kind models.MatchType) []models.Match {
	scored := make([]scoredMatch, 0, len(positions))
	for _, pos := range positions {
		rec := m.catalog.At(pos)
		nameSim := similarity(qn, rec.NormalizedName)
		symbolSim := similarity(qn, strings.ToLower(rec.Symbol))

		score := 0.7*nameSim + 0.3*symbolSim
		if nameSim > score {
			score = nameSim
		}
		if symbolSim > score {
			score = symbolSim
		}
		score *= 100

		if score < m.cfg.RankFloor {
			continue
		}
		scored = append(scored, scoredMatch{pos, matchFor(rec, score, kind)})
	}
	return sortScored(scored)
}

// fuzzyFallback scans the whole catalog by name similarity. It only runs
// when every indexed tier produced nothing, so the O(n) cost is acceptable.
func (m *Matcher) fuzzyFallback(qn string, k int) []models.Match {
	var scored []scoredMatch
	for pos := 0; pos < m.catalog.Len(); pos++ {
		rec := m.catalog.At(pos)
		score := similarity(qn, rec.NormalizedName) * 100
		if score < m.cfg.FuzzyFloor {
			continue
		}
		scored = append(scored, scoredMatch{pos, matchFor(rec, score, models.MatchFuzzy)})
	}
	return truncate(sortScored(scored), k)
}

func sortScored(scored []scoredMatch) []models.Match {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].match.Score != scored[j].match.Score {
			return scored[i].match.Score > scored[j].match.Score
		}
		return scored[i].pos < scored[j].pos
	})
	out := make([]models.Match, len(scored))
	for i, s := range scored {
		out[i] = s.match
	}
	return out
}
