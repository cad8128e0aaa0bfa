// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateQuestionRequest: question_text, pub_date (optional), choices (optional)
  - AddChoiceRequest: choice_text

# Response Types

Types for JSON responses:

  - CreateQuestionResponse: question_id, choice_ids
  - AddChoiceResponse: choice_id
  - QuestionSummary: a visible question with its recency flag
  - QuestionListResponse: questions, newest first
  - QuestionWithChoices: question plus its choices
  - ErrorResponse: error, message

# Domain Types

  - Question: question text and publish instant (pub_date)
  - Choice: an answer to a question with its vote count

A Question has no lifecycle state of its own. Whether it is visible is
decided at request time by package visibility, comparing PubDate against
the current instant.
*/
package models
