// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/premios/auth"
	"github.com/danielhkuo/premios/cliparse"
	"github.com/danielhkuo/premios/db"
	"github.com/danielhkuo/premios/models"
	"github.com/danielhkuo/premios/testutil"
)

func setupRouter(t *testing.T, cfg cliparse.Config) (*http.ServeMux, *db.Store) {
	t.Helper()
	conn, store := testutil.SetupTestStore(t)
	t.Cleanup(func() { conn.Close() })
	return NewRouter(store, cfg), store
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := setupRouter(t, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _ := setupRouter(t, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d", w.Code)
	}

	if loc := w.Header().Get("Location"); loc != "/polls/" {
		t.Errorf("Expected redirect to '/polls/', got '%s'", loc)
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := setupRouter(t, testutil.GetTestConfig())

	// 400, 401, 404 are all valid responses depending on handler logic
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"GET", "/polls/"},
		{"GET", "/polls/1/"},
		{"GET", "/polls/1/results/"},
		{"POST", "/polls/1/vote/"},

		{"GET", "/api/questions"},
		{"GET", "/api/questions/1"},
		{"POST", "/api/questions"},
		{"POST", "/api/questions/1/choices"},
		{"GET", "/api/questions/1/admin"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	mux, _ := setupRouter(t, testutil.GetTestConfig())

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"GET to vote endpoint", "GET", "/polls/1/vote/", http.StatusMethodNotAllowed},
		{"DELETE to admin endpoint", "DELETE", "/api/questions/1/admin", http.StatusMethodNotAllowed},
		{"unknown path", "GET", "/nope", http.StatusNotFound},
		{"detail without trailing slash", "GET", "/polls/1/extra/", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	mux, store := setupRouter(t, testutil.GetTestConfig())
	qID := testutil.CreateTestQuestion(t, store, "Path question", -1)

	req := httptest.NewRequest("GET", "/polls/"+strconv.FormatInt(qID, 10)+"/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "Path question")
}

func TestVoteRateLimit(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.VoteRate = 0
	cfg.VoteBurst = 1
	mux, store := setupRouter(t, cfg)

	qID := testutil.CreateTestQuestion(t, store, "Limited", -1)
	choiceID := testutil.AddTestChoice(t, store, qID, "Yes")
	path := "/polls/" + strconv.FormatInt(qID, 10) + "/vote/"
	form := url.Values{"choice": {strconv.FormatInt(choiceID, 10)}}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeFormRequest(path, form))
	testutil.AssertStatus(t, w, http.StatusSeeOther)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeFormRequest(path, form))
	testutil.AssertStatus(t, w, http.StatusTooManyRequests)
	if w.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}
}

// TestQuestionLifecycle covers scheduling a question through the API,
// waiting for it to publish, voting and reading the results
func TestQuestionLifecycle(t *testing.T) {
	mux, _ := setupRouter(t, testutil.GetTestConfig())
	admin := map[string]string{auth.AdminKeyHeader: testutil.TestAdminKey}

	// Scheduled for the future: hidden everywhere except the admin view
	future := time.Now().Add(time.Hour)
	req := testutil.MakeRequest("POST", "/api/questions", models.CreateQuestionRequest{
		QuestionText: "Scheduled question",
		PubDate:      &future,
		Choices:      []string{"Red", "Blue"},
	}, admin)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var scheduled models.CreateQuestionResponse
	testutil.AssertJSON(t, w, &scheduled)
	scheduledID := strconv.FormatInt(scheduled.QuestionID, 10)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/polls/", nil))
	testutil.AssertNotContains(t, w, "Scheduled question")

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/polls/"+scheduledID+"/", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/api/questions/"+scheduledID+"/admin", nil, admin))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Published now: visible and votable
	req = testutil.MakeRequest("POST", "/api/questions", models.CreateQuestionRequest{
		QuestionText: "Live question",
		Choices:      []string{"Red", "Blue"},
	}, admin)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var live models.CreateQuestionResponse
	testutil.AssertJSON(t, w, &live)
	liveID := strconv.FormatInt(live.QuestionID, 10)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/polls/", nil))
	testutil.AssertContains(t, w, "Live question")
	testutil.AssertContains(t, w, "· new")

	form := url.Values{"choice": {strconv.FormatInt(live.ChoiceIDs[1], 10)}}
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeFormRequest("/polls/"+liveID+"/vote/", form))
	testutil.AssertStatus(t, w, http.StatusSeeOther)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/polls/"+liveID+"/results/", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "Blue -- 1 vote")
	testutil.AssertContains(t, w, "Red -- 0 vote")

	// Voting on the scheduled question is rejected like a missing one
	form = url.Values{"choice": {strconv.FormatInt(scheduled.ChoiceIDs[0], 10)}}
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeFormRequest("/polls/"+scheduledID+"/vote/", form))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
