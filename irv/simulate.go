// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package irv

// Simulate runs the election repeatedly over the same pool and counts
// how often each candidate wins. An election that never reaches the
// random fallback produces a single spike; any spread in the returned
// frequencies means the outcome hinged on a coin toss somewhere.
// No state is carried between trials.
func Simulate(pool Pool, trials int, pick Picker) (map[string]int, error) {
	winners := make(map[string]int)
	for range trials {
		result, err := RunElection(pool, pick)
		if err != nil {
			return nil, err
		}
		winners[result.Winner]++
	}
	return winners, nil
}
