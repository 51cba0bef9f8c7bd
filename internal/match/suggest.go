package match

import (
	"sort"
)

// DefaultThreshold is the minimum Similarity a candidate needs to be offered
// as a suggestion.
const DefaultThreshold = 0.6

// DefaultLimit caps the number of suggestions returned by Suggest.
const DefaultLimit = 3

type scored struct {
	name  string
	score float64
}

// Suggest returns up to DefaultLimit candidates that look like name, best
// first. Exact matches are excluded since they are not misspellings.
func Suggest(name string, candidates []string) []string {
	return SuggestN(name, candidates, DefaultThreshold, DefaultLimit)
}

// SuggestN is Suggest with an explicit threshold and limit. Ties keep the
// order of candidates.
func SuggestN(name string, candidates []string, threshold float64, limit int) []string {
	if name == "" || limit <= 0 {
		return nil
	}

	var ranked []scored

	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		if c == name {
			continue
		}

		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		if s := Similarity(name, c); s >= threshold {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
