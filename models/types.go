// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type CreateQuestionRequest struct {
	QuestionText string     `json:"question_text"`
	PubDate      *time.Time `json:"pub_date,omitempty"` // defaults to now
	Choices      []string   `json:"choices,omitempty"`
}

type AddChoiceRequest struct {
	ChoiceText string `json:"choice_text"`
}

// Response types

type CreateQuestionResponse struct {
	QuestionID int64   `json:"question_id"`
	ChoiceIDs  []int64 `json:"choice_ids"`
}

type AddChoiceResponse struct {
	ChoiceID int64 `json:"choice_id"`
}

type QuestionSummary struct {
	ID                   int64     `json:"id"`
	QuestionText         string    `json:"question_text"`
	PubDate              time.Time `json:"pub_date"`
	PublishedAgo         string    `json:"published_ago"`
	WasPublishedRecently bool      `json:"was_published_recently"`
}

type QuestionListResponse struct {
	Questions []QuestionSummary `json:"questions"`
}

type QuestionWithChoices struct {
	Question QuestionSummary `json:"question"`
	Choices  []Choice        `json:"choices"`
}

// Domain types

// Question is a poll question. PubDate is the instant it becomes visible.
type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

func (q Question) String() string {
	return q.QuestionText
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int64  `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
