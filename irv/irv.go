// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package irv

import "errors"

// ErrNoBallots is returned when the pool is empty or every ballot has
// run out of choices, leaving nothing to tally a winner from.
var ErrNoBallots = errors.New("no ballots to tally")

// Pool maps each voter to their remaining ranked choices, most
// preferred first. Tabulation never mutates a pool it is given; each
// round produces a fresh one.
type Pool map[string][]string

// Round is the snapshot recorded for one tabulation round. Votes is the
// pool as it stood before this round's elimination was applied.
// Eliminated is empty on the final round.
type Round struct {
	Eliminated []string `json:"eliminated,omitempty"`
	Votes      Pool     `json:"votes"`
}

// Result is the outcome of a full runoff: the majority winner, the
// first-choice votes it held in the final round, and every round
// snapshot oldest first.
type Result struct {
	Winner      string  `json:"winner"`
	WinnerVotes int     `json:"winner_votes"`
	Rounds      []Round `json:"rounds"`
}

// Tally counts how often each candidate appears at the given rank
// (0-indexed) across the pool. Ballots shorter than rank+1 contribute
// nothing, and candidates that never appear at the rank have no entry.
func Tally(rank int, pool Pool) map[string]int {
	counts := make(map[string]int)
	for _, ballot := range pool {
		if rank < len(ballot) {
			counts[ballot[rank]]++
		}
	}
	return counts
}
