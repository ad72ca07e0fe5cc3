// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/slotThe/instant-runoff/auth"
	"github.com/slotThe/instant-runoff/cliparse"
	"github.com/slotThe/instant-runoff/middleware"
	"github.com/slotThe/instant-runoff/models"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// ClaimUsername handles POST /polls/:slug/claim-username
func (h *VotingHandler) ClaimUsername(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var req models.ClaimUsernameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	if len(req.Username) < 2 || len(req.Username) > 50 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username must be 2-50 characters")
		return
	}

	// Find poll by share slug
	var pollID string
	var status string
	err := h.db.QueryRow(`
		SELECT id, status FROM poll WHERE share_slug = $1
	`, shareSlug).Scan(&pollID, &status)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Can only claim username for open polls
	if status != models.StatusOpen {
		middleware.ErrorResponse(w, http.StatusConflict, "Poll is not open for voting")
		return
	}

	voterToken, err := auth.GenerateVoterToken()
	if err != nil {
		slog.Error("failed to generate voter token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to claim username")
		return
	}

	// Insert username claim (UNIQUE constraint will prevent duplicates)
	_, err = h.db.Exec(`
		INSERT INTO username_claim (poll_id, username, voter_token, created_at)
		VALUES ($1, $2, $3, $4)
	`, pollID, req.Username, voterToken, time.Now())

	if err != nil {
		// Check if it's a uniqueness violation
		if err.Error() == "UNIQUE constraint failed: username_claim.poll_id, username_claim.username" ||
			err.Error() == "pq: duplicate key value violates unique constraint \"username_claim_poll_id_username_key\"" {
			middleware.ErrorResponse(w, http.StatusConflict, "Username already taken")
			return
		}
		slog.Error("failed to insert username claim", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to claim username")
		return
	}

	slog.Info("username claimed", "poll_id", pollID, "username", req.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.ClaimUsernameResponse{
		VoterToken: voterToken,
	})
}

// SubmitBallot handles POST /polls/:slug/ballots
// The request carries the voter's full preference order: option IDs,
// most preferred first. Resubmitting replaces the previous ballot.
func (h *VotingHandler) SubmitBallot(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	voterToken := r.Header.Get("X-Voter-Token")
	if voterToken == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Voter-Token header required")
		return
	}

	var req models.SubmitBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Rankings) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "rankings cannot be empty")
		return
	}

	// A ballot may not rank the same option twice
	seen := make(map[string]bool, len(req.Rankings))
	for _, optionID := range req.Rankings {
		if seen[optionID] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "duplicate option in rankings: "+optionID)
			return
		}
		seen[optionID] = true
	}

	// Find poll by share slug
	var pollID string
	var status string
	err := h.db.QueryRow(`
		SELECT id, status FROM poll WHERE share_slug = $1
	`, shareSlug).Scan(&pollID, &status)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Can only vote on open polls
	if status != models.StatusOpen {
		middleware.ErrorResponse(w, http.StatusConflict, "Poll is not open for voting")
		return
	}

	// Verify voter token is valid for this poll
	var exists bool
	err = h.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM username_claim
			WHERE poll_id = $1 AND voter_token = $2
		)
	`, pollID, voterToken).Scan(&exists)

	if err != nil {
		slog.Error("failed to verify voter token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !exists {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid voter token for this poll")
		return
	}

	// Every ranked option must belong to this poll
	validOptions, err := getOptionLabels(h.db, pollID)
	if err != nil {
		slog.Error("failed to query options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	for _, optionID := range req.Rankings {
		if _, ok := validOptions[optionID]; !ok {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid option_id: "+optionID)
			return
		}
	}

	// IP hash for tracking; reuse the admin salt
	clientIP := middleware.GetClientIP(r)
	ipHash := auth.HashIP(clientIP, h.cfg.AdminKeySalt)
	userAgent := r.UserAgent()

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Replace the existing ballot if the voter submitted before
	var existingBallotID string
	err = tx.QueryRow(`
		SELECT id FROM ballot WHERE poll_id = $1 AND voter_token = $2
	`, pollID, voterToken).Scan(&existingBallotID)

	if err != nil && err != sql.ErrNoRows {
		slog.Error("failed to query existing ballot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	isUpdate := err == nil
	var ballotID string

	if isUpdate {
		ballotID = existingBallotID
		_, err = tx.Exec(`
			UPDATE ballot
			SET submitted_at = $1, ip_hash = $2, user_agent = $3
			WHERE id = $4
		`, time.Now(), ipHash, userAgent, ballotID)

		if err != nil {
			slog.Error("failed to update ballot", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update ballot")
			return
		}

		_, err = tx.Exec(`DELETE FROM ranking WHERE ballot_id = $1`, ballotID)
		if err != nil {
			slog.Error("failed to delete old rankings", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update ballot")
			return
		}
	} else {
		ballotID = uuid.NewString()
		_, err = tx.Exec(`
			INSERT INTO ballot (id, poll_id, voter_token, submitted_at, ip_hash, user_agent)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, ballotID, pollID, voterToken, time.Now(), ipHash, userAgent)

		if err != nil {
			slog.Error("failed to insert ballot", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit ballot")
			return
		}
	}

	// Insert rankings in preference order
	for position, optionID := range req.Rankings {
		_, err = tx.Exec(`
			INSERT INTO ranking (ballot_id, option_id, position)
			VALUES ($1, $2, $3)
		`, ballotID, optionID, position)

		if err != nil {
			slog.Error("failed to insert ranking", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save rankings")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit ballot")
		return
	}

	message := "Ballot submitted successfully"
	if isUpdate {
		message = "Ballot updated successfully"
	}

	slog.Info("ballot submitted", "poll_id", pollID, "ballot_id", ballotID,
		"choices", len(req.Rankings), "is_update", isUpdate)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitBallotResponse{
		BallotID: ballotID,
		Message:  message,
	})
}

// GetMyBallot handles GET /polls/:slug/my-ballot
// Returns the caller's current preference order, if any.
func (h *VotingHandler) GetMyBallot(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	voterToken := r.Header.Get("X-Voter-Token")
	if voterToken == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Voter-Token header required")
		return
	}

	var pollID string
	err := h.db.QueryRow(`
		SELECT id FROM poll WHERE share_slug = $1
	`, shareSlug).Scan(&pollID)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var ballotID string
	var submittedAt time.Time
	err = h.db.QueryRow(`
		SELECT id, submitted_at FROM ballot
		WHERE poll_id = $1 AND voter_token = $2
	`, pollID, voterToken).Scan(&ballotID, &submittedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "No ballot submitted")
		return
	}
	if err != nil {
		slog.Error("failed to query ballot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.Query(`
		SELECT option_id FROM ranking
		WHERE ballot_id = $1
		ORDER BY position
	`, ballotID)
	if err != nil {
		slog.Error("failed to query rankings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	rankings := []string{}
	for rows.Next() {
		var optionID string
		if err := rows.Scan(&optionID); err != nil {
			slog.Error("failed to scan ranking", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		rankings = append(rankings, optionID)
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyBallotResponse{
		Rankings:    rankings,
		SubmittedAt: submittedAt,
	})
}
