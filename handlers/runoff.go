// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"

	"github.com/slotThe/instant-runoff/irv"
	"github.com/slotThe/instant-runoff/models"
)

// ComputeRunoffResult loads a poll's ranked ballots, runs the
// instant-runoff tabulation, and shapes the outcome for clients.
// Returns an error wrapping irv.ErrNoBallots when nobody has voted.
func ComputeRunoffResult(db *sql.DB, pollID string, pick irv.Picker) (models.ElectionResult, error) {
	labels, err := getOptionLabels(db, pollID)
	if err != nil {
		return models.ElectionResult{}, fmt.Errorf("failed to get option labels: %w", err)
	}

	pool, err := loadBallotPool(db, pollID)
	if err != nil {
		return models.ElectionResult{}, fmt.Errorf("failed to load ballots: %w", err)
	}

	result, err := irv.RunElection(pool, pick)
	if err != nil {
		return models.ElectionResult{}, fmt.Errorf("runoff tabulation failed: %w", err)
	}

	return models.ElectionResult{
		WinnerID:    result.Winner,
		WinnerLabel: labels[result.Winner],
		WinnerVotes: result.WinnerVotes,
		Rounds:      roundViews(result.Rounds),
	}, nil
}

// roundViews converts core round snapshots into the client shape,
// recomputing each round's first-choice counts from its pool snapshot.
func roundViews(rounds []irv.Round) []models.RoundView {
	views := make([]models.RoundView, len(rounds))
	for i, round := range rounds {
		views[i] = models.RoundView{
			Number:       i + 1,
			FirstChoices: irv.Tally(0, round.Votes),
			Eliminated:   round.Eliminated,
			ActiveVoters: len(round.Votes),
			Final:        i == len(rounds)-1,
		}
	}
	return views
}
