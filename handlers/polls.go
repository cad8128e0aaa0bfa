// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/premios/cliparse"
	"github.com/danielhkuo/premios/db"
	"github.com/danielhkuo/premios/models"
	"github.com/danielhkuo/premios/views"
	"github.com/danielhkuo/premios/visibility"
)

const (
	notFoundMessage  = "No question matches the given query."
	noChoiceMessage  = "Please select a choice."
	databaseErrorMsg = "Database error"
)

// PollsHandler serves the public HTML pages
type PollsHandler struct {
	store  *db.Store
	filter *visibility.Filter
	cfg    cliparse.Config
	now    Clock
}

func NewPollsHandler(store *db.Store, cfg cliparse.Config) *PollsHandler {
	return &PollsHandler{
		store:  store,
		filter: visibility.NewFilter(store),
		cfg:    cfg,
		now:    time.Now,
	}
}

// Index handles GET /polls/
// Lists published questions, newest first
func (h *PollsHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	questions, err := h.filter.Latest(r.Context(), now)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		views.RenderError(w, http.StatusInternalServerError, databaseErrorMsg)
		return
	}

	views.Render(w, http.StatusOK, views.IndexPage, views.IndexData{
		Questions: summarizeAll(questions, now),
	})
}

// Detail handles GET /polls/{id}/
// Unpublished questions are reported as 404, like missing ones
func (h *PollsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	q, ok := h.visibleQuestion(w, r)
	if !ok {
		return
	}

	choices, err := h.store.ChoicesFor(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "question_id", q.ID, "error", err)
		views.RenderError(w, http.StatusInternalServerError, databaseErrorMsg)
		return
	}

	views.Render(w, http.StatusOK, views.DetailPage, views.DetailData{
		Question: q,
		Choices:  choices,
	})
}

// Results handles GET /polls/{id}/results/
func (h *PollsHandler) Results(w http.ResponseWriter, r *http.Request) {
	q, ok := h.visibleQuestion(w, r)
	if !ok {
		return
	}

	choices, err := h.store.ChoicesFor(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "question_id", q.ID, "error", err)
		views.RenderError(w, http.StatusInternalServerError, databaseErrorMsg)
		return
	}

	views.Render(w, http.StatusOK, views.ResultsPage, views.ResultsData{
		Question: q,
		Choices:  choices,
	})
}

// Vote handles POST /polls/{id}/vote/
// Expects form field "choice"; redirects to the results page on success
func (h *PollsHandler) Vote(w http.ResponseWriter, r *http.Request) {
	q, ok := h.visibleQuestion(w, r)
	if !ok {
		return
	}

	choiceID, err := strconv.ParseInt(r.PostFormValue("choice"), 10, 64)
	if err != nil {
		h.redisplayDetail(w, r, q)
		return
	}

	err = h.store.Vote(r.Context(), q.ID, choiceID)
	if errors.Is(err, db.ErrChoiceNotFound) {
		h.redisplayDetail(w, r, q)
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "question_id", q.ID, "error", err)
		views.RenderError(w, http.StatusInternalServerError, databaseErrorMsg)
		return
	}

	slog.Info("vote recorded", "question_id", q.ID, "choice_id", choiceID)

	http.Redirect(w, r, "/polls/"+strconv.FormatInt(q.ID, 10)+"/results/", http.StatusSeeOther)
}

// visibleQuestion resolves {id} to a published question or writes a 404
func (h *PollsHandler) visibleQuestion(w http.ResponseWriter, r *http.Request) (models.Question, bool) {
	id, ok := parseID(r)
	if !ok {
		views.RenderError(w, http.StatusNotFound, notFoundMessage)
		return models.Question{}, false
	}

	q, err := h.filter.Visible(r.Context(), id, h.now())
	if errors.Is(err, visibility.ErrNotFound) {
		views.RenderError(w, http.StatusNotFound, notFoundMessage)
		return models.Question{}, false
	}
	if err != nil {
		slog.Error("failed to query question", "question_id", id, "error", err)
		views.RenderError(w, http.StatusInternalServerError, databaseErrorMsg)
		return models.Question{}, false
	}

	return q, true
}

func (h *PollsHandler) redisplayDetail(w http.ResponseWriter, r *http.Request, q models.Question) {
	choices, err := h.store.ChoicesFor(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "question_id", q.ID, "error", err)
		views.RenderError(w, http.StatusInternalServerError, databaseErrorMsg)
		return
	}

	views.Render(w, http.StatusBadRequest, views.DetailPage, views.DetailData{
		Question:     q,
		Choices:      choices,
		ErrorMessage: noChoiceMessage,
	})
}
