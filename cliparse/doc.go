// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string or file path (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - BaseURL: Public base URL used in share links (default: http://localhost:3318)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - PollSlugSalt: Secret for share slug generation (required)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type (sqlite or postgres)
	--base-url  Public base URL for share links
	--admin-salt  Admin key salt
	--slug-salt   Poll slug salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	BASE_URL       → --base-url
	ADMIN_KEY_SALT → --admin-salt
	POLL_SLUG_SALT → --slug-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres when set
  - ADMIN_KEY_SALT must be provided
  - POLL_SLUG_SALT must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg)
*/
package cliparse
