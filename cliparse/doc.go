// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

An optional .env file can be loaded first:

	_ = cliparse.LoadEnvFile(".env")

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKey: Key required in X-Admin-Key for admin endpoints (required)
  - VoteRate: Votes per second allowed per client IP (default: 5)
  - VoteBurst: Burst size for the vote limiter (default: 10)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-admin-key   Admin API key
	-vote-rate   Votes per second per client
	-vote-burst  Vote burst per client
	-trust-proxy Take client IPs from X-Forwarded-For / X-Real-IP

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ADMIN_KEY     → -admin-key
	VOTE_RATE     → -vote-rate
	VOTE_BURST    → -vote-burst
	TRUST_PROXY   → -trust-proxy

A flag given on the command line always wins, even when its value is the
zero value (-vote-rate 0 allows only the burst). The vote rate must be a
finite number >= 0.

CLI flags take precedence over environment variables, and environment
variables take precedence over the .env file.
*/
package cliparse
