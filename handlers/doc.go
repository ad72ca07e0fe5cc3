// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Instant Runoff API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - PollHandler: Poll lifecycle (create, publish, close)
  - VotingHandler: Username claims and ranked ballot submission
  - ResultsHandler: Poll info, results retrieval, and simulation

Handlers are created via constructor functions that accept *sql.DB and Config:

	pollHandler := handlers.NewPollHandler(db, cfg)

# Poll Lifecycle

Polls progress through three states: draft → open → closed

	POST /polls              → CreatePoll (returns admin_key)
	POST /polls/{id}/options → AddOption (draft only)
	POST /polls/{id}/publish → PublishPoll (generates share_slug)
	POST /polls/{id}/close   → ClosePoll (runs the runoff tabulation)

Admin operations require the X-Admin-Key header.

# Voting Flow

Voters interact via the share slug:

	POST /polls/{slug}/claim-username → ClaimUsername (returns voter_token)
	POST /polls/{slug}/ballots        → SubmitBallot (create or update)
	GET  /polls/{slug}/my-ballot      → GetMyBallot

Voter operations require the X-Voter-Token header. A ballot is the
voter's preference order: option IDs, most preferred first.

# Tabulation

The instant-runoff computation itself lives in the irv package; this
package only bridges it to storage. loadBallotPool reads a poll's
rankings into an irv.Pool, and ComputeRunoffResult in runoff.go shapes
the engine's output for clients:

	result, err := handlers.ComputeRunoffResult(db, pollID, pick)

ClosePoll persists that result as the poll's immutable final snapshot.
The Simulate endpoint re-runs the tabulation repeatedly so an admin can
see whether the current outcome depends on the random tie-break.
*/
package handlers
