// ABOUTME: Fuzzy matching for package name filters
// ABOUTME: Wraps sahilm/fuzzy, returning ranked matches with source indexes

package fuzzy

import "github.com/sahilm/fuzzy"

// Match is one ranked result. Index points into the input slice, and
// MatchedIndexes are the byte positions the pattern hit, usable for
// highlighting.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find ranks names against pattern, best score first. An empty pattern
// matches nothing; callers that want the unfiltered list skip the call.
func Find(pattern string, names []string) []Match {
	if pattern == "" {
		return nil
	}
	ranked := fuzzy.Find(pattern, names)
	out := make([]Match, len(ranked))
	for i, m := range ranked {
		out[i] = Match{
			Str:            m.Str,
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return out
}
