package models

import "time"

// Poll status constants
const (
	StatusDraft  = "draft"
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Voting method constants
const (
	MethodIRV = "irv"
)

// Request types

type CreatePollRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatorName string `json:"creator_name"`
}

type AddOptionRequest struct {
	Label string `json:"label"`
}

type ClaimUsernameRequest struct {
	Username string `json:"username"`
}

// option IDs ordered most-preferred first
type SubmitBallotRequest struct {
	Rankings []string `json:"rankings"`
}

// Response types

type CreatePollResponse struct {
	PollID   string `json:"poll_id"`
	AdminKey string `json:"admin_key"`
}

type AddOptionResponse struct {
	OptionID string `json:"option_id"`
}

type PublishPollResponse struct {
	ShareSlug string `json:"share_slug"`
	ShareURL  string `json:"share_url"`
}

type ClaimUsernameResponse struct {
	VoterToken string `json:"voter_token"`
}

type SubmitBallotResponse struct {
	BallotID string `json:"ballot_id"`
	Message  string `json:"message"`
}

type MyBallotResponse struct {
	Rankings    []string  `json:"rankings"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ClosePollResponse struct {
	ClosedAt time.Time      `json:"closed_at"`
	Snapshot ResultSnapshot `json:"snapshot"`
}

type PollPreviewResponse struct {
	Title       string `json:"title"`
	Status      string `json:"status"`
	Summary     string `json:"summary"`
	OptionCount int    `json:"option_count"`
	BallotCount int    `json:"ballot_count"`
}

type SimulationResponse struct {
	Trials  int           `json:"trials"`
	Winners []WinnerTally `json:"winners"`
}

type WinnerTally struct {
	OptionID string `json:"option_id"`
	Label    string `json:"label"`
	Wins     int    `json:"wins"`
}

// Domain types

type Poll struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	CreatorName     string     `json:"creator_name"`
	Method          string     `json:"method"`
	Status          string     `json:"status"`
	ShareSlug       *string    `json:"share_slug,omitempty"`
	ClosesAt        *time.Time `json:"closes_at,omitempty"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`
	FinalSnapshotID *string    `json:"final_snapshot_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type Option struct {
	ID     string `json:"id"`
	PollID string `json:"poll_id"`
	Label  string `json:"label"`
}

type PollWithOptions struct {
	Poll    Poll     `json:"poll"`
	Options []Option `json:"options"`
}

type Ballot struct {
	ID          string    `json:"id"`
	PollID      string    `json:"poll_id"`
	VoterToken  string    `json:"-"` // Never expose in JSON
	SubmittedAt time.Time `json:"submitted_at"`
	IPHash      *string   `json:"-"` // Never expose in JSON
	UserAgent   *string   `json:"-"` // Never expose in JSON
}

// Runoff result types

// RoundView is one tabulation round as presented to clients: the
// first-choice counts going into the round, who was eliminated, and how
// many ballots were still active. Eliminated is empty on the final round.
type RoundView struct {
	Number       int            `json:"number"` // 1-indexed
	FirstChoices map[string]int `json:"first_choices"`
	Eliminated   []string       `json:"eliminated,omitempty"`
	ActiveVoters int            `json:"active_voters"`
	Final        bool           `json:"final"`
}

type ElectionResult struct {
	WinnerID    string      `json:"winner_id"`
	WinnerLabel string      `json:"winner_label"`
	WinnerVotes int         `json:"winner_votes"`
	Rounds      []RoundView `json:"rounds"`
}

type ResultSnapshot struct {
	ID          string         `json:"id"`
	PollID      string         `json:"poll_id"`
	Method      string         `json:"method"`
	ComputedAt  time.Time      `json:"computed_at"`
	Result      ElectionResult `json:"result"`
	BallotCount int            `json:"ballot_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
