// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package visibility

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/danielhkuo/premios/models"
)

// ErrNotFound is returned for unknown questions and for questions that
// are not yet published. Callers cannot tell the two apart.
var ErrNotFound = errors.New("question not found")

// QuestionRepository is the read side of question storage.
type QuestionRepository interface {
	// FindAll returns every question in ascending ID order.
	FindAll(ctx context.Context) ([]models.Question, error)
	FindByID(ctx context.Context, id int64) (models.Question, bool, error)
}

// ListVisible returns the questions published at now, newest first.
// Questions with equal pub_date keep their input order.
func ListVisible(items []models.Question, now time.Time) []models.Question {
	visible := make([]models.Question, 0, len(items))
	for _, q := range items {
		if IsPublished(q, now) {
			visible = append(visible, q)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].PubDate.After(visible[j].PubDate)
	})

	return visible
}

// GetVisibleOrNotFound looks up id in items and returns it only if published.
func GetVisibleOrNotFound(items []models.Question, id int64, now time.Time) (models.Question, error) {
	for _, q := range items {
		if q.ID == id {
			if !IsPublished(q, now) {
				return models.Question{}, ErrNotFound
			}
			return q, nil
		}
	}
	return models.Question{}, ErrNotFound
}

// Filter applies the visibility rules to a repository.
type Filter struct {
	repo QuestionRepository
}

func NewFilter(repo QuestionRepository) *Filter {
	return &Filter{repo: repo}
}

// Latest returns all questions visible at now, newest first.
func (f *Filter) Latest(ctx context.Context, now time.Time) ([]models.Question, error) {
	all, err := f.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	return ListVisible(all, now), nil
}

// Visible returns the question with the given id if it is visible at now.
func (f *Filter) Visible(ctx context.Context, id int64, now time.Time) (models.Question, error) {
	q, ok, err := f.repo.FindByID(ctx, id)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to load question %d: %w", id, err)
	}
	if !ok {
		return models.Question{}, ErrNotFound
	}
	return GetVisibleOrNotFound([]models.Question{q}, id, now)
}
