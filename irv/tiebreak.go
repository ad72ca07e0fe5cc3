// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package irv

import (
	"math/rand"
	"slices"
	"sort"
)

// Picker selects one candidate from a non-empty slice. It is injected
// rather than hard-wired so the random fallback can run from a seeded
// source, or be stubbed out entirely in tests.
type Picker func(candidates []string) string

// RandomPicker returns a Picker that draws uniformly from rng.
func RandomPicker(rng *rand.Rand) Picker {
	return func(candidates []string) string {
		return candidates[rng.Intn(len(candidates))]
	}
}

// tieBreak decides which candidate(s) to eliminate this round. Exactly
// one of three rules fires:
//
//   - Rule A eliminates the entire lowest score class outright when it
//     is a single candidate, or when its combined votes fall short of
//     the next class even if fully consolidated onto one member.
//   - Rule B compares votes at deeper ranks (leastNthVotes) and
//     eliminates the loser when that separates the tie.
//   - Rule C eliminates one random member of the lowest class when
//     every rank is exhausted with the tie intact.
//
// The result is always a non-empty subset of the lowest score class.
func tieBreak(pool Pool, pick Picker) []string {
	classes, scores := scoreClasses(Tally(0, pool))
	lows := classes[0]
	nextScore := 0
	if len(scores) > 1 {
		nextScore = scores[1]
	}

	if len(lows) == 1 || scores[0]*len(lows) < nextScore {
		return lows
	}
	if loser := leastNthVotes(pool, lows); loser != nil {
		return loser
	}
	return []string{pick(lows)}
}

// leastNthVotes narrows the tied candidates rank by rank, starting at
// rank 1 (first-choice votes are what produced the tie, so rank 0 is
// never consulted). At each rank the candidates are re-tallied with
// missing entries counting as zero; a singleton lowest class resolves
// the tie immediately, otherwise the search continues within that class
// at the next rank. Returns nil when the longest ballot is exhausted
// with the tie still intact.
func leastNthVotes(pool Pool, candidates []string) []string {
	maxLen := 0
	for _, ballot := range pool {
		maxLen = max(maxLen, len(ballot))
	}

	for rank := 1; rank <= maxLen; rank++ {
		counts := Tally(rank, pool)
		restricted := make(map[string]int, len(candidates))
		for _, cand := range candidates {
			restricted[cand] = counts[cand]
		}
		classes, _ := scoreClasses(restricted)
		if len(classes[0]) == 1 {
			return classes[0]
		}
		candidates = classes[0]
	}
	return nil
}

// scoreClasses groups candidates by vote count and returns the classes
// in ascending score order. Candidates within a class are sorted by ID
// so every downstream decision sees a reproducible order.
func scoreClasses(counts map[string]int) (classes [][]string, scores []int) {
	byScore := make(map[int][]string)
	for cand, n := range counts {
		byScore[n] = append(byScore[n], cand)
	}
	for n := range byScore {
		scores = append(scores, n)
	}
	sort.Ints(scores)
	for _, n := range scores {
		class := byScore[n]
		slices.Sort(class)
		classes = append(classes, class)
	}
	return classes, scores
}
