package catalog

import (
	"sort"
	"strings"
)

// DefaultSearchLimit caps results when SearchOptions.Limit is zero.
const DefaultSearchLimit = 6

// Per-token field weights, highest precedence first. Only the best-matching
// field counts for a token; scores are additive across distinct tokens.
const (
	scoreNameExact       = 10
	scoreNamePrefix      = 7
	scoreNameSubstring   = 6
	scorePrimaryMuscle   = 5
	scoreFlagKeyword     = 5
	scoreSecondaryMuscle = 4
	scoreEquipment       = 4
	scoreMovementPattern = 3
	scoreSearchIndex     = 2
)

// SearchOptions tune one search call.
type SearchOptions struct {
	// Limit truncates the result list; zero means DefaultSearchLimit.
	Limit int
	// ExcludeIDs filters candidates out before scoring (e.g. exercises
	// already added to the plan being built).
	ExcludeIDs []string
}

// Result pairs a matched exercise with its relevance score.
type Result struct {
	Exercise Exercise
	Score    int
}

// Search scores the candidates against a free-text query and returns the
// top matches by descending score, stable with respect to candidate order on
// ties. An empty or whitespace-only query yields no results, and candidates
// no token hits are excluded entirely.
func Search(candidates []Exercise, query string, opts SearchOptions) []Result {
	tokens := Tokenize(Normalize(query))
	if len(tokens) == 0 {
		return []Result{}
	}
	expanded := expandTokens(tokens)

	excluded := make(map[string]struct{}, len(opts.ExcludeIDs))
	for _, id := range opts.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	results := make([]Result, 0, len(candidates))
	for _, candidate := range candidates {
		if _, skip := excluded[candidate.ID]; skip {
			continue
		}
		score := scoreCandidate(candidate, expanded)
		if score == 0 {
			continue
		}
		results = append(results, Result{Exercise: candidate, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func scoreCandidate(candidate Exercise, tokens map[string]struct{}) int {
	name := Normalize(candidate.Name)
	primary := Normalize(candidate.PrimaryMuscle)
	equipment := Normalize(candidate.Equipment)
	pattern := Normalize(candidate.MovementPattern)

	total := 0
	for token := range tokens {
		total += scoreToken(candidate, token, name, primary, equipment, pattern)
	}
	return total
}

// scoreToken returns the weight of the best-matching field for one token.
func scoreToken(candidate Exercise, token, name, primary, equipment, pattern string) int {
	switch {
	case name == token:
		return scoreNameExact
	case strings.HasPrefix(name, token):
		return scoreNamePrefix
	case strings.Contains(name, token):
		return scoreNameSubstring
	case strings.Contains(primary, token):
		return scorePrimaryMuscle
	case token == "compound" && candidate.Compound,
		token == "bodyweight" && candidate.Bodyweight:
		return scoreFlagKeyword
	}
	for _, muscle := range candidate.SecondaryMuscles {
		if strings.Contains(Normalize(muscle), token) {
			return scoreSecondaryMuscle
		}
	}
	switch {
	case strings.Contains(equipment, token):
		return scoreEquipment
	case strings.Contains(pattern, token):
		return scoreMovementPattern
	}
	for _, term := range candidate.SearchIndex {
		if strings.Contains(Normalize(term), token) {
			return scoreSearchIndex
		}
	}
	return 0
}
