// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/premios/auth"
	"github.com/danielhkuo/premios/cliparse"
	"github.com/danielhkuo/premios/db"
	"github.com/danielhkuo/premios/middleware"
	"github.com/danielhkuo/premios/models"
	"github.com/danielhkuo/premios/visibility"
)

// QuestionsHandler serves the JSON API
type QuestionsHandler struct {
	store  *db.Store
	filter *visibility.Filter
	cfg    cliparse.Config
	now    Clock
}

func NewQuestionsHandler(store *db.Store, cfg cliparse.Config) *QuestionsHandler {
	return &QuestionsHandler{
		store:  store,
		filter: visibility.NewFilter(store),
		cfg:    cfg,
		now:    time.Now,
	}
}

// ListQuestions handles GET /api/questions
func (h *QuestionsHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	questions, err := h.filter.Latest(r.Context(), now)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, databaseErrorMsg)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionListResponse{
		Questions: summarizeAll(questions, now),
	})
}

// GetQuestion handles GET /api/questions/{id}
// Returns 404 for questions that do not exist or are not yet published
func (h *QuestionsHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	now := h.now()
	q, err := h.filter.Visible(r.Context(), id, now)
	if errors.Is(err, visibility.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "question_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, databaseErrorMsg)
		return
	}

	h.writeWithChoices(w, r, q, now)
}

// GetQuestionAdmin handles GET /api/questions/{id}/admin
// Returns the question regardless of pub_date
func (h *QuestionsHandler) GetQuestionAdmin(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateRequest(r, h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	id, ok := parseID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	q, found, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to query question", "question_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, databaseErrorMsg)
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	h.writeWithChoices(w, r, q, h.now())
}

// CreateQuestion handles POST /api/questions
func (h *QuestionsHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateRequest(r, h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	text := strings.TrimSpace(req.QuestionText)
	if text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required")
		return
	}
	choices := make([]string, 0, len(req.Choices))
	for _, c := range req.Choices {
		c = strings.TrimSpace(c)
		if c == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "choices must not be empty")
			return
		}
		choices = append(choices, c)
	}

	pubDate := h.now()
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}

	questionID, choiceIDs, err := h.store.CreateQuestion(r.Context(), text, pubDate, choices)
	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", questionID, "pub_date", pubDate, "choices", len(choiceIDs))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: questionID,
		ChoiceIDs:  choiceIDs,
	})
}

// AddChoice handles POST /api/questions/{id}/choices
func (h *QuestionsHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateRequest(r, h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	id, ok := parseID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text := strings.TrimSpace(req.ChoiceText)
	if text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice_text is required")
		return
	}

	choiceID, err := h.store.AddChoice(r.Context(), id, text)
	if errors.Is(err, db.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to insert choice", "question_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create choice")
		return
	}

	slog.Info("choice added", "question_id", id, "choice_id", choiceID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddChoiceResponse{
		ChoiceID: choiceID,
	})
}

func (h *QuestionsHandler) writeWithChoices(w http.ResponseWriter, r *http.Request, q models.Question, now time.Time) {
	choices, err := h.store.ChoicesFor(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "question_id", q.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, databaseErrorMsg)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionWithChoices{
		Question: summarize(q, now),
		Choices:  choices,
	})
}
