// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"

	"github.com/slotThe/instant-runoff/irv"
)

// loadBallotPool reads every ranked ballot of a poll into an irv.Pool:
// voter token -> option IDs ordered by preference. Voters who have not
// submitted a ballot simply have no entry.
func loadBallotPool(db *sql.DB, pollID string) (irv.Pool, error) {
	rows, err := db.Query(`
		SELECT b.voter_token, r.option_id
		FROM ranking r
		JOIN ballot b ON r.ballot_id = b.id
		WHERE b.poll_id = $1
		ORDER BY b.voter_token, r.position
	`, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pool := make(irv.Pool)
	for rows.Next() {
		var voter, optionID string
		if err := rows.Scan(&voter, &optionID); err != nil {
			return nil, err
		}
		pool[voter] = append(pool[voter], optionID)
	}

	return pool, rows.Err()
}

// getOptionLabels retrieves option labels for a poll
func getOptionLabels(db *sql.DB, pollID string) (map[string]string, error) {
	rows, err := db.Query(`
		SELECT id, label FROM option WHERE poll_id = $1
	`, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := make(map[string]string)
	for rows.Next() {
		var id, label string
		if err := rows.Scan(&id, &label); err != nil {
			return nil, err
		}
		labels[id] = label
	}

	return labels, rows.Err()
}
