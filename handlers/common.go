// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/premios/models"
	"github.com/danielhkuo/premios/visibility"
)

// Clock returns the current instant. Handlers sample it once per request.
type Clock func() time.Time

// parseID reads the {id} path value. Only positive integers are valid.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// summarize adds the recency fields shown to visitors
func summarize(q models.Question, now time.Time) models.QuestionSummary {
	return models.QuestionSummary{
		ID:                   q.ID,
		QuestionText:         q.QuestionText,
		PubDate:              q.PubDate,
		PublishedAgo:         humanize.RelTime(q.PubDate, now, "ago", "from now"),
		WasPublishedRecently: visibility.IsRecent(q, now),
	}
}

func summarizeAll(qs []models.Question, now time.Time) []models.QuestionSummary {
	out := make([]models.QuestionSummary, 0, len(qs))
	for _, q := range qs {
		out = append(out, summarize(q, now))
	}
	return out
}
