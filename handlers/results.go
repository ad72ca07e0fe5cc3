// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize/english"

	"github.com/slotThe/instant-runoff/auth"
	"github.com/slotThe/instant-runoff/cliparse"
	"github.com/slotThe/instant-runoff/irv"
	"github.com/slotThe/instant-runoff/middleware"
	"github.com/slotThe/instant-runoff/models"
)

// Simulation trials per request are bounded to keep the endpoint cheap.
const (
	defaultTrials = 100
	maxTrials     = 1000
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// GetPoll handles GET /polls/:slug
// Returns poll details and options, but NOT results (results are sealed until closed)
func (h *ResultsHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var poll models.Poll
	err := h.db.QueryRow(`
		SELECT id, title, description, creator_name, method, status,
		       share_slug, closes_at, closed_at, final_snapshot_id, created_at
		FROM poll
		WHERE share_slug = $1
	`, shareSlug).Scan(
		&poll.ID, &poll.Title, &poll.Description, &poll.CreatorName,
		&poll.Method, &poll.Status, &poll.ShareSlug, &poll.ClosesAt,
		&poll.ClosedAt, &poll.FinalSnapshotID, &poll.CreatedAt,
	)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, poll_id, label
		FROM option
		WHERE poll_id = $1
		ORDER BY id
	`, poll.ID)

	if err != nil {
		slog.Error("failed to query options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Label); err != nil {
			slog.Error("failed to scan option", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		options = append(options, opt)
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollWithOptions{
		Poll:    poll,
		Options: options,
	})
}

// GetResults handles GET /polls/:slug/results
// Returns 403 if poll is open (results are sealed)
// Returns the final snapshot with round-by-round views if poll is closed
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var pollID, status string
	var snapshotID sql.NullString
	err := h.db.QueryRow(`
		SELECT id, status, final_snapshot_id
		FROM poll
		WHERE share_slug = $1
	`, shareSlug).Scan(&pollID, &status, &snapshotID)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// CRITICAL: Results are sealed while poll is open
	if status != models.StatusClosed {
		middleware.ErrorResponse(w, http.StatusForbidden, "Results are hidden until poll is closed")
		return
	}

	if !snapshotID.Valid {
		slog.Error("closed poll has no snapshot", "slug", shareSlug)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Results not available")
		return
	}

	var snapshot models.ResultSnapshot
	var payloadJSON []byte
	err = h.db.QueryRow(`
		SELECT id, poll_id, method, computed_at, payload
		FROM result_snapshot
		WHERE id = $1
	`, snapshotID.String).Scan(
		&snapshot.ID, &snapshot.PollID, &snapshot.Method,
		&snapshot.ComputedAt, &payloadJSON,
	)

	if err != nil {
		slog.Error("failed to query snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := json.Unmarshal(payloadJSON, &snapshot.Result); err != nil {
		slog.Error("failed to parse snapshot payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to parse results")
		return
	}

	var ballotCount int
	err = h.db.QueryRow(`
		SELECT COUNT(*) FROM ballot WHERE poll_id = $1
	`, pollID).Scan(&ballotCount)

	if err != nil {
		slog.Error("failed to count ballots for results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	snapshot.BallotCount = ballotCount

	labels, err := getOptionLabels(h.db, pollID)
	if err != nil {
		slog.Error("failed to query options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	response := map[string]interface{}{
		"snapshot": snapshot,
		"labels":   labels,
	}

	middleware.JSONResponse(w, http.StatusOK, response)
}

// GetBallotCount handles GET /polls/:slug/ballot-count (optional convenience endpoint)
// Returns the number of ballots submitted (visible even while open)
func (h *ResultsHandler) GetBallotCount(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
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

	var count int
	err = h.db.QueryRow(`
		SELECT COUNT(*) FROM ballot WHERE poll_id = $1
	`, pollID).Scan(&count)

	if err != nil {
		slog.Error("failed to count ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]int{
		"ballot_count": count,
	})
}

// GetPreview handles GET /polls/:slug/preview
// Returns compact poll data for link-preview display
func (h *ResultsHandler) GetPreview(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var pollID, title, status string
	err := h.db.QueryRow(`
		SELECT id, title, status FROM poll WHERE share_slug = $1
	`, shareSlug).Scan(&pollID, &title, &status)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var optionCount int
	err = h.db.QueryRow(`
		SELECT COUNT(*) FROM option WHERE poll_id = $1
	`, pollID).Scan(&optionCount)
	if err != nil {
		slog.Error("failed to count options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var ballotCount int
	err = h.db.QueryRow(`
		SELECT COUNT(*) FROM ballot WHERE poll_id = $1
	`, pollID).Scan(&ballotCount)
	if err != nil {
		slog.Error("failed to count ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	summary := english.Plural(optionCount, "option", "") + ", " +
		english.Plural(ballotCount, "ballot", "") + " so far"

	middleware.JSONResponse(w, http.StatusOK, models.PollPreviewResponse{
		Title:       title,
		Status:      status,
		Summary:     summary,
		OptionCount: optionCount,
		BallotCount: ballotCount,
	})
}

// Simulate handles GET /polls/:id/simulate
// Admin-only exploratory endpoint: re-runs the tabulation over the
// current ballots N times and reports how often each option won. A
// spread across options means the outcome currently rests on the
// random tie-break.
func (h *ResultsHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(pollID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	trials := defaultTrials
	if raw := r.URL.Query().Get("trials"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTrials {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				"trials must be an integer between 1 and "+strconv.Itoa(maxTrials))
			return
		}
		trials = n
	}

	var exists bool
	err := h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM poll WHERE id = $1)`, pollID).Scan(&exists)
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	pool, err := loadBallotPool(h.db, pollID)
	if err != nil {
		slog.Error("failed to load ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	pick := irv.RandomPicker(rand.New(rand.NewSource(time.Now().UnixNano())))
	winners, err := irv.Simulate(pool, trials, pick)
	if errors.Is(err, irv.ErrNoBallots) {
		middleware.ErrorResponse(w, http.StatusConflict, "No ballots cast yet")
		return
	}
	if err != nil {
		slog.Error("simulation failed", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Simulation failed")
		return
	}

	labels, err := getOptionLabels(h.db, pollID)
	if err != nil {
		slog.Error("failed to query options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	tallies := make([]models.WinnerTally, 0, len(winners))
	for optionID, wins := range winners {
		tallies = append(tallies, models.WinnerTally{
			OptionID: optionID,
			Label:    labels[optionID],
			Wins:     wins,
		})
	}
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].Wins != tallies[j].Wins {
			return tallies[i].Wins > tallies[j].Wins
		}
		return tallies[i].OptionID < tallies[j].OptionID
	})

	slog.Info("simulation complete", "poll_id", pollID, "trials", trials,
		"distinct_winners", len(tallies))

	middleware.JSONResponse(w, http.StatusOK, models.SimulationResponse{
		Trials:  trials,
		Winners: tallies,
	})
}
