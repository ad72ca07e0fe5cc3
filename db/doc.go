// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The DDL is restricted to what both postgres and sqlite accept,
so the same schema works with either configured driver.

# Tables

The schema includes:

  - poll: Poll metadata and lifecycle state
  - option: Voting options per poll
  - username_claim: Maps usernames to voter tokens
  - ballot: One ballot per voter per poll
  - ranking: One row per (ballot, preference position)
  - result_snapshot: Immutable runoff results

# Relationships

	poll 1──* option
	poll 1──* username_claim
	poll 1──* ballot
	ballot 1──* ranking
	poll 1──* result_snapshot

All foreign keys use ON DELETE CASCADE. A ballot may rank each option
at most once, and each preference position at most once.

# Indexes

Performance indexes on:

  - poll.share_slug (unique)
  - poll.status
  - option.poll_id
  - ballot.poll_id
  - ballot.(poll_id, voter_token)
  - ranking.option_id
*/
package db
