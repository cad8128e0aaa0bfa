// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the premios polls service.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health
	GET /        - Redirects to /polls/

Public pages (HTML):

	GET  /polls/              - Published questions, newest first
	GET  /polls/{id}/         - Question detail with voting form
	GET  /polls/{id}/results/ - Vote counts
	POST /polls/{id}/vote/    - Cast a vote (rate limited per client IP)

JSON API:

	GET /api/questions      - Published questions
	GET /api/questions/{id} - Published question with choices

Question management (admin, requires X-Admin-Key):

	POST /api/questions              - Create question
	POST /api/questions/{id}/choices - Add choice
	GET  /api/questions/{id}/admin   - Question regardless of pub_date

Page routes end in {$} so only the exact trailing-slash paths match.

# Handler Initialization

The router creates handler instances with dependency injection:

	pollsHandler := handlers.NewPollsHandler(store, cfg)
	questionsHandler := handlers.NewQuestionsHandler(store, cfg)

The vote limiter is sized by cfg.VoteRate and cfg.VoteBurst.
*/
package router
