// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the premios polls service.

# Handler Types

Each handler is a struct with store and config dependencies:

  - PollsHandler: public HTML pages (index, detail, results, vote)
  - QuestionsHandler: JSON API for listing and managing questions

Handlers are created via constructor functions that accept *db.Store and Config:

	pollsHandler := handlers.NewPollsHandler(store, cfg)

# Visibility

Both handlers read questions through a visibility.Filter. The current
instant is sampled once per request and passed to the filter, so a
question appears as soon as its pub_date is reached:

	GET /polls/             → Index (published questions, newest first)
	GET /polls/{id}/        → Detail (404 when unpublished or missing)
	GET /polls/{id}/results/ → Results (same rule as Detail)
	POST /polls/{id}/vote/  → Vote (form field "choice")

An unpublished question produces exactly the same response as a missing
one.

# Voting

A valid vote increments the choice and redirects with 303 See Other to
the results page. A missing or foreign choice redisplays the detail page
with status 400 and an error message.

# JSON API

	GET  /api/questions              → ListQuestions
	GET  /api/questions/{id}         → GetQuestion
	POST /api/questions              → CreateQuestion (admin)
	POST /api/questions/{id}/choices → AddChoice (admin)
	GET  /api/questions/{id}/admin   → GetQuestionAdmin (admin)

Admin operations require the X-Admin-Key header to match the configured
key. pub_date defaults to the request instant when omitted.
*/
package handlers
