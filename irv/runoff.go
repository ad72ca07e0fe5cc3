// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package irv

import "slices"

// RunElection tabulates the pool round by round until some candidate
// holds a strict majority of first-choice votes. Every non-final round
// eliminates at least one candidate and pops at least one ballot head,
// so the loop terminates. Voters whose ballots run out of choices drop
// out of later rounds, and the majority threshold shrinks with them:
// the barrier is recomputed each round from the current tally total,
// not the original ballot count.
//
// Returns ErrNoBallots when the pool has no votes left to count.
func RunElection(pool Pool, pick Picker) (Result, error) {
	pool = clonePool(pool)

	var rounds []Round
	for {
		first := Tally(0, pool)
		if len(first) == 0 {
			return Result{}, ErrNoBallots
		}

		winner, count, total := leader(first)
		if count > total/2 {
			rounds = append(rounds, Round{Votes: pool})
			return Result{Winner: winner, WinnerVotes: count, Rounds: rounds}, nil
		}

		eliminated := tieBreak(pool, pick)
		rounds = append(rounds, Round{Eliminated: eliminated, Votes: pool})
		pool = stripEliminated(pool, eliminated)
	}
}

// leader returns the candidate with the most first-choice votes, that
// vote count, and the total votes cast. Exact ties for the lead go to
// the lexicographically smallest candidate ID, which keeps the result
// stable for a given pool.
func leader(counts map[string]int) (winner string, count, total int) {
	for cand, n := range counts {
		total += n
		if n > count || (n == count && cand < winner) {
			winner, count = cand, n
		}
	}
	return winner, count, total
}

// stripEliminated builds the next round's pool. Each ballot loses its
// leading choices for as long as the head names a candidate eliminated
// this round; deeper occurrences stay put until they surface. Voters
// with nothing left are dropped from the pool.
func stripEliminated(pool Pool, eliminated []string) Pool {
	gone := make(map[string]bool, len(eliminated))
	for _, cand := range eliminated {
		gone[cand] = true
	}

	next := make(Pool, len(pool))
	for voter, ballot := range pool {
		for len(ballot) > 0 && gone[ballot[0]] {
			ballot = ballot[1:]
		}
		if len(ballot) > 0 {
			next[voter] = ballot
		}
	}
	return next
}

func clonePool(pool Pool) Pool {
	next := make(Pool, len(pool))
	for voter, ballot := range pool {
		next[voter] = slices.Clone(ballot)
	}
	return next
}
