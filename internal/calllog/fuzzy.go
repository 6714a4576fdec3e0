package calllog

import (
	"sort"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// defaultCutoff is the similarity floor below which candidates are discarded.
const defaultCutoff = 0.6

// closeMatches returns up to n candidate values whose Ratcliff/Obershelp
// similarity to query is at least cutoff, best first. Candidates are scored
// in the order given; the sort is stable, so equally similar values keep
// their first-observed order.
func closeMatches(query string, candidates []string, n int, cutoff float64) []string {
	if n <= 0 {
		return nil
	}

	metric := metrics.NewRatcliffObershelp()

	type scored struct {
		value string
		score float64
	}

	matches := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		score := strutil.Similarity(query, c, metric)
		if score >= cutoff {
			matches = append(matches, scored{value: c, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > n {
		matches = matches[:n]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.value
	}
	return out
}
