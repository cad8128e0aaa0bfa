// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation, and queries.

# Connecting

Open picks the driver from the configured database type:

	conn, dialect, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

  - sqlite: modernc.org/sqlite (pure Go, default)
  - postgres: github.com/lib/pq

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, dialect); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: question text and publish instant
  - choice: answers per question with a vote counter

	question 1──* choice

# Store

Store implements visibility.QuestionRepository and the write path:

	store := db.NewStore(conn, dialect)
	id, choiceIDs, err := store.CreateQuestion(ctx, "What's new?", time.Now(), []string{"Not much"})
	err = store.Vote(ctx, id, choiceIDs[0])

Queries are written with ? placeholders and rewritten to $n for
PostgreSQL. Timestamps are written and read in UTC.
*/
package db
