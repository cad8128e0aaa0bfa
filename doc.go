// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the premios polls server.

premios serves poll questions that become visible at their publish date.
Questions scheduled for the future are hidden from visitors and behave
exactly like questions that do not exist.

# Starting the Server

The server requires environment variables or CLI flags for configuration.
A .env file in the working directory is loaded first when present:

	DATABASE_URL=premios.db ADMIN_KEY=secret go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin-key secret

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - ADMIN_KEY (-admin-key): Secret expected in the X-Admin-Key header

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - VOTE_RATE (-vote-rate): Votes per second per client IP (default: 5)
  - VOTE_BURST (-vote-burst): Vote burst per client IP (default: 10)
  - TRUST_PROXY (-trust-proxy): Take client IPs from X-Forwarded-For (default: false)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - visibility: Recency policy and published-question filter
  - handlers: HTML pages and JSON API
  - views: Embedded HTML templates
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, rate limiting, JSON helpers
  - models: Domain and request/response types
  - auth: Admin key validation
  - db: Connection, schema and question store
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
