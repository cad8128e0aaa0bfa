// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/premios/cliparse"
	"github.com/danielhkuo/premios/db"
	"github.com/danielhkuo/premios/handlers"
	"github.com/danielhkuo/premios/middleware"
)

func NewRouter(store *db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollsHandler := handlers.NewPollsHandler(store, cfg)
	questionsHandler := handlers.NewQuestionsHandler(store, cfg)
	voteLimiter := middleware.NewRateLimiter(cfg.VoteRate, cfg.VoteBurst, cfg.AdminKey, cfg.TrustProxy)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public pages
	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(pollsHandler.Index))
	mux.HandleFunc("GET /polls/{id}/{$}", middleware.WithLogging(pollsHandler.Detail))
	mux.HandleFunc("GET /polls/{id}/results/{$}", middleware.WithLogging(pollsHandler.Results))
	mux.HandleFunc("POST /polls/{id}/vote/{$}", middleware.WithLogging(voteLimiter.Wrap(pollsHandler.Vote)))

	// JSON API
	mux.HandleFunc("GET /api/questions", middleware.WithLogging(questionsHandler.ListQuestions))
	mux.HandleFunc("GET /api/questions/{id}", middleware.WithLogging(questionsHandler.GetQuestion))

	// Question management (admin operations)
	mux.HandleFunc("POST /api/questions", middleware.WithLogging(questionsHandler.CreateQuestion))
	mux.HandleFunc("POST /api/questions/{id}/choices", middleware.WithLogging(questionsHandler.AddChoice))
	mux.HandleFunc("GET /api/questions/{id}/admin", middleware.WithLogging(questionsHandler.GetQuestionAdmin))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/polls/", http.StatusFound)
	})

	return mux
}
