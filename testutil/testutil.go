// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/premios/cliparse"
	"github.com/danielhkuo/premios/db"
)

// TestDBURL is an in-memory SQLite database, private to each connection pool
const TestDBURL = ":memory:"

// TestAdminKey is the admin key used by GetTestConfig
const TestAdminKey = "test-admin-key"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, dialect, err := db.Open(cliparse.DatabaseSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, dialect); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a Store over a fresh test database
func SetupTestStore(t *testing.T) (*sql.DB, *db.Store) {
	t.Helper()
	conn := SetupTestDB(t)
	return conn, db.NewStore(conn, db.SQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
		AdminKey:     TestAdminKey,
		VoteRate:     1000,
		VoteBurst:    1000,
	}
}

// CreateTestQuestion creates a question published the given number of days
// offset from now (negative for the past, positive for the future)
func CreateTestQuestion(t *testing.T, store *db.Store, text string, days int) int64 {
	t.Helper()
	return CreateTestQuestionAt(t, store, text, time.Now().AddDate(0, 0, days))
}

// CreateTestQuestionAt creates a question with an exact pub_date
func CreateTestQuestionAt(t *testing.T, store *db.Store, text string, pubDate time.Time) int64 {
	t.Helper()

	id, _, err := store.CreateQuestion(context.Background(), text, pubDate, nil)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// AddTestChoice adds a choice to a question and returns the choice ID
func AddTestChoice(t *testing.T, store *db.Store, questionID int64, text string) int64 {
	t.Helper()

	id, err := store.AddChoice(context.Background(), questionID, text)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a url-encoded form POST request
func MakeFormRequest(path string, form url.Values) *http.Request {
	var body io.Reader = strings.NewReader(form.Encode())
	req := httptest.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertContains checks that the response body contains text
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body to contain %q. Body: %s", text, w.Body.String())
	}
}

// AssertNotContains checks that the response body does not contain text
func AssertNotContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body not to contain %q. Body: %s", text, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
