// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/premios/models"
)

var (
	ErrQuestionNotFound = errors.New("question does not exist")
	ErrChoiceNotFound   = errors.New("choice does not belong to question")
)

// Store reads and writes questions and choices.
// It satisfies visibility.QuestionRepository.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// rebind turns ? placeholders into $n for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FindAll returns every question in ascending ID order
func (s *Store) FindAll(ctx context.Context) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, (*utcTime)(&q.PubDate)); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}

	return questions, nil
}

// FindByID returns the question with id. The bool is false if it does not exist.
func (s *Store) FindByID(ctx context.Context, id int64) (models.Question, bool, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = ?
	`), id).Scan(&q.ID, &q.QuestionText, (*utcTime)(&q.PubDate))

	if err == sql.ErrNoRows {
		return models.Question{}, false, nil
	}
	if err != nil {
		return models.Question{}, false, fmt.Errorf("failed to query question: %w", err)
	}

	return q, true, nil
}

// CreateQuestion inserts a question and its choices in one transaction.
func (s *Store) CreateQuestion(ctx context.Context, text string, pubDate time.Time, choices []string) (int64, []int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var questionID int64
	err = tx.QueryRowContext(ctx, s.rebind(`
		INSERT INTO question (question_text, pub_date)
		VALUES (?, ?)
		RETURNING id
	`), text, pubDate.UTC()).Scan(&questionID)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to insert question: %w", err)
	}

	choiceIDs := make([]int64, 0, len(choices))
	for _, c := range choices {
		id, err := s.insertChoice(ctx, tx, questionID, c)
		if err != nil {
			return 0, nil, err
		}
		choiceIDs = append(choiceIDs, id)
	}

	if err := tx.Commit(); err != nil {
		return 0, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return questionID, choiceIDs, nil
}

// AddChoice appends a choice to an existing question.
func (s *Store) AddChoice(ctx context.Context, questionID int64, text string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, s.rebind(`SELECT 1 FROM question WHERE id = ?`), questionID).Scan(&exists)
	if err == sql.ErrNoRows {
		return 0, ErrQuestionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query question: %w", err)
	}

	choiceID, err := s.insertChoice(ctx, tx, questionID, text)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return choiceID, nil
}

func (s *Store) insertChoice(ctx context.Context, tx *sql.Tx, questionID int64, text string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, s.rebind(`
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES (?, ?, 0)
		RETURNING id
	`), questionID, text).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert choice: %w", err)
	}
	return id, nil
}

// ChoicesFor returns the choices of a question in ascending ID order
func (s *Store) ChoicesFor(ctx context.Context, questionID int64) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = ?
		ORDER BY id
	`), questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read choices: %w", err)
	}

	return choices, nil
}

// Vote adds one vote to choiceID. The increment is a single UPDATE.
func (s *Store) Vote(ctx context.Context, questionID, choiceID int64) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE choice
		SET votes = votes + 1
		WHERE id = ? AND question_id = ?
	`), choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}
	if n == 0 {
		return ErrChoiceNotFound
	}

	return nil
}

// utcTime scans TIMESTAMP columns from either driver into UTC.
// SQLite stores timestamps as text, so both forms are accepted.
type utcTime time.Time

var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

func (t *utcTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = utcTime(v.UTC())
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		return errors.New("pub_date is NULL")
	default:
		return fmt.Errorf("cannot scan %T into time", src)
	}
}

func (t *utcTime) parse(s string) error {
	for _, layout := range sqliteTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = utcTime(parsed.UTC())
			return nil
		}
	}
	return fmt.Errorf("cannot parse time %q", s)
}
