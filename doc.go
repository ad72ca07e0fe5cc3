// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Instant Runoff API server.

Instant Runoff is a group polling service where voters rank the options
in order of preference and the winner is decided by instant-runoff
voting: the option with a majority of first choices wins, and until one
exists the weakest option is eliminated and its ballots transfer to
their next surviving choice.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3318 -t postgres -d "postgres://..."

A local sqlite file works for development:

	go run main.go -t sqlite -d runoff.db

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string or sqlite file path
  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC
  - POLL_SLUG_SALT (--slug-salt): Secret for share slug generation

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - BASE_URL (--base-url): Public base URL used in share links

# Architecture

The server uses a handler-based architecture with dependency injection:

  - irv: instant-runoff tabulation (pure, no I/O)
  - handlers: HTTP request handlers (polls, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Token generation and validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
