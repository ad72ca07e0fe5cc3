// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, description, creator_name
  - AddOptionRequest: label
  - ClaimUsernameRequest: username
  - SubmitBallotRequest: rankings ([]option_id, most preferred first)

# Response Types

Types for JSON responses:

  - CreatePollResponse: poll_id, admin_key
  - AddOptionResponse: option_id
  - PublishPollResponse: share_slug, share_url
  - ClaimUsernameResponse: voter_token
  - SubmitBallotResponse: ballot_id, message
  - MyBallotResponse: rankings, submitted_at
  - ClosePollResponse: closed_at, snapshot
  - PollPreviewResponse: title, status, summary, counts
  - SimulationResponse: trials, winners
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: poll metadata and lifecycle state
  - Option: voting option with label
  - Ballot: voter submission metadata
  - RoundView: one tabulation round (first choices, eliminated, voters)
  - ElectionResult: winner plus the full round sequence
  - ResultSnapshot: immutable result record

# Constants

Status values:

	StatusDraft  = "draft"
	StatusOpen   = "open"
	StatusClosed = "closed"

Voting method:

	MethodIRV = "irv"
*/
package models
