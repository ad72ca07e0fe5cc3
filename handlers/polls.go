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
	"time"

	"github.com/google/uuid"

	"github.com/slotThe/instant-runoff/auth"
	"github.com/slotThe/instant-runoff/cliparse"
	"github.com/slotThe/instant-runoff/irv"
	"github.com/slotThe/instant-runoff/middleware"
	"github.com/slotThe/instant-runoff/models"
)

type PollHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{db: db, cfg: cfg}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.CreatorName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "creator_name is required")
		return
	}

	pollID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate poll ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	adminKey := auth.GenerateAdminKey(pollID, h.cfg.AdminKeySalt)

	_, err = h.db.Exec(`
		INSERT INTO poll (id, title, description, creator_name, method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, pollID, req.Title, req.Description, req.CreatorName, models.MethodIRV, models.StatusDraft, time.Now())

	if err != nil {
		slog.Error("failed to insert poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", pollID, "creator", req.CreatorName)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID:   pollID,
		AdminKey: adminKey,
	})
}

// AddOption handles POST /polls/:id/options
func (h *PollHandler) AddOption(w http.ResponseWriter, r *http.Request) {
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

	var req models.AddOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Label == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "label is required")
		return
	}

	// Options can only be added while the poll is a draft
	var status string
	err := h.db.QueryRow("SELECT status FROM poll WHERE id = $1", pollID).Scan(&status)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if status != models.StatusDraft {
		middleware.ErrorResponse(w, http.StatusConflict, "Cannot add options to non-draft poll")
		return
	}

	optionID, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate option ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create option")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO option (id, poll_id, label)
		VALUES ($1, $2, $3)
	`, optionID, pollID, req.Label)

	if err != nil {
		slog.Error("failed to insert option", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create option")
		return
	}

	slog.Info("option added", "poll_id", pollID, "option_id", optionID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddOptionResponse{
		OptionID: optionID,
	})
}

// PublishPoll handles POST /polls/:id/publish
func (h *PollHandler) PublishPoll(w http.ResponseWriter, r *http.Request) {
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

	var status string
	var optionCount int
	err := h.db.QueryRow(`
		SELECT p.status, COUNT(o.id)
		FROM poll p
		LEFT JOIN option o ON p.id = o.poll_id
		WHERE p.id = $1
		GROUP BY p.status
	`, pollID).Scan(&status, &optionCount)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if status != models.StatusDraft {
		middleware.ErrorResponse(w, http.StatusConflict, "Poll is not in draft status")
		return
	}

	if optionCount < 2 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Poll must have at least 2 options")
		return
	}

	shareSlug := auth.GenerateShareSlug(pollID, h.cfg.PollSlugSalt)

	_, err = h.db.Exec(`
		UPDATE poll
		SET status = $1, share_slug = $2
		WHERE id = $3
	`, models.StatusOpen, shareSlug, pollID)

	if err != nil {
		slog.Error("failed to publish poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to publish poll")
		return
	}

	slog.Info("poll published", "poll_id", pollID, "share_slug", shareSlug)

	middleware.JSONResponse(w, http.StatusOK, models.PublishPollResponse{
		ShareSlug: shareSlug,
		ShareURL:  h.cfg.BaseURL + "/polls/" + shareSlug,
	})
}

// GetPollAdmin handles GET /polls/:id/admin
// Returns poll details for admin access using poll ID and admin key
func (h *PollHandler) GetPollAdmin(w http.ResponseWriter, r *http.Request) {
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

	var poll models.Poll
	err := h.db.QueryRow(`
		SELECT id, title, description, creator_name, method, status,
		       share_slug, closes_at, closed_at, final_snapshot_id, created_at
		FROM poll
		WHERE id = $1
	`, pollID).Scan(
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

// ClosePoll handles POST /polls/:id/close
// Runs the instant-runoff tabulation over all submitted ballots and
// stores the outcome as the poll's final snapshot.
func (h *PollHandler) ClosePoll(w http.ResponseWriter, r *http.Request) {
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

	var status string
	err := h.db.QueryRow("SELECT status FROM poll WHERE id = $1", pollID).Scan(&status)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if status != models.StatusOpen {
		middleware.ErrorResponse(w, http.StatusConflict, "Poll is not open")
		return
	}

	// Tabulate before touching poll state, so a failed computation
	// leaves the poll open.
	pick := irv.RandomPicker(rand.New(rand.NewSource(time.Now().UnixNano())))
	result, err := ComputeRunoffResult(h.db, pollID, pick)
	if errors.Is(err, irv.ErrNoBallots) {
		middleware.ErrorResponse(w, http.StatusConflict, "No ballots cast; no winner can be determined")
		return
	}
	if err != nil {
		slog.Error("failed to compute runoff result", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute results")
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

	snapshotID := uuid.NewString()
	closedAt := time.Now()

	payload, err := json.Marshal(result)
	if err != nil {
		slog.Error("failed to encode snapshot payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save results")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE poll
		SET status = $1, closed_at = $2, final_snapshot_id = $3
		WHERE id = $4
	`, models.StatusClosed, closedAt, snapshotID, pollID)

	if err != nil {
		slog.Error("failed to close poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to close poll")
		return
	}

	_, err = tx.Exec(`
		INSERT INTO result_snapshot (id, poll_id, method, computed_at, payload)
		VALUES ($1, $2, $3, $4, $5)
	`, snapshotID, pollID, models.MethodIRV, closedAt, string(payload))

	if err != nil {
		slog.Error("failed to insert snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save results")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to close poll")
		return
	}

	slog.Info("poll closed", "poll_id", pollID, "snapshot_id", snapshotID,
		"winner", result.WinnerID, "rounds", len(result.Rounds))

	middleware.JSONResponse(w, http.StatusOK, models.ClosePollResponse{
		ClosedAt: closedAt,
		Snapshot: models.ResultSnapshot{
			ID:          snapshotID,
			PollID:      pollID,
			Method:      models.MethodIRV,
			ComputedAt:  closedAt,
			Result:      result,
			BallotCount: ballotCount,
		},
	})
}
