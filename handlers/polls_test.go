// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/premios/db"
	"github.com/danielhkuo/premios/testutil"
	"github.com/danielhkuo/premios/views"
)

func setupPollsHandler(t *testing.T) (*PollsHandler, *db.Store) {
	t.Helper()
	conn, store := testutil.SetupTestStore(t)
	t.Cleanup(func() { conn.Close() })
	return NewPollsHandler(store, testutil.GetTestConfig()), store
}

func getIndex(h *PollsHandler) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/polls/", nil)
	w := httptest.NewRecorder()
	h.Index(w, req)
	return w
}

func questionPath(id int64, suffix string) string {
	return "/polls/" + strconv.FormatInt(id, 10) + "/" + suffix
}

func getDetail(h *PollsHandler, id int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", questionPath(id, ""), nil)
	req.SetPathValue("id", strconv.FormatInt(id, 10))
	w := httptest.NewRecorder()
	h.Detail(w, req)
	return w
}

// assertOrder checks that texts appear in body in the given order
func assertOrder(t *testing.T, body string, texts ...string) {
	t.Helper()
	last := -1
	for _, text := range texts {
		i := strings.Index(body, text)
		if i < 0 {
			t.Fatalf("Expected '%s' in body: %s", text, body)
		}
		if i < last {
			t.Errorf("Expected '%s' after previous entries in body: %s", text, body)
		}
		last = i
	}
}

func TestIndex_NoQuestions(t *testing.T) {
	h, _ := setupPollsHandler(t)

	w := getIndex(h)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, views.NoPollsMessage)
}

func TestIndex_FutureQuestionNotDisplayed(t *testing.T) {
	h, store := setupPollsHandler(t)
	testutil.CreateTestQuestion(t, store, "¿Question?", 20)

	w := getIndex(h)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, views.NoPollsMessage)
	testutil.AssertNotContains(t, w, "¿Question?")
}

func TestIndex_PastQuestion(t *testing.T) {
	h, store := setupPollsHandler(t)
	testutil.CreateTestQuestion(t, store, "Pregunta de prueba", -10)

	w := getIndex(h)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "Pregunta de prueba")
	testutil.AssertNotContains(t, w, views.NoPollsMessage)
}

func TestIndex_FutureAndPastQuestion(t *testing.T) {
	h, store := setupPollsHandler(t)
	testutil.CreateTestQuestion(t, store, "Past question.", -30)
	testutil.CreateTestQuestion(t, store, "Future question.", 30)

	w := getIndex(h)

	testutil.AssertContains(t, w, "Past question.")
	testutil.AssertNotContains(t, w, "Future question.")
}

func TestIndex_TwoPastQuestions(t *testing.T) {
	h, store := setupPollsHandler(t)
	testutil.CreateTestQuestion(t, store, "Past question 1", -30)
	testutil.CreateTestQuestion(t, store, "Past question 2", -5)

	w := getIndex(h)

	testutil.AssertStatus(t, w, http.StatusOK)
	assertOrder(t, w.Body.String(), "Past question 2", "Past question 1")
}

func TestIndex_TwoFutureQuestions(t *testing.T) {
	h, store := setupPollsHandler(t)
	testutil.CreateTestQuestion(t, store, "future1_question", 30)
	testutil.CreateTestQuestion(t, store, "future2_QUESTION", 10)

	w := getIndex(h)

	testutil.AssertContains(t, w, views.NoPollsMessage)
	testutil.AssertNotContains(t, w, "future1_question")
	testutil.AssertNotContains(t, w, "future2_QUESTION")
}

func TestIndex_MarksRecentQuestions(t *testing.T) {
	h, store := setupPollsHandler(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	testutil.CreateTestQuestionAt(t, store, "Fresh", now.Add(-time.Hour))
	testutil.CreateTestQuestionAt(t, store, "Stale", now.Add(-72*time.Hour))

	w := getIndex(h)

	testutil.AssertContains(t, w, "Fresh</a> <small>1 hour ago · new</small>")
	testutil.AssertContains(t, w, "Stale</a> <small>3 days ago</small>")
}

func TestIndex_QuestionBecomesVisibleWhenPublished(t *testing.T) {
	h, store := setupPollsHandler(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	testutil.CreateTestQuestionAt(t, store, "Scheduled", now.Add(time.Minute))
	testutil.AssertNotContains(t, getIndex(h), "Scheduled")

	now = now.Add(time.Minute)
	testutil.AssertContains(t, getIndex(h), "Scheduled")
}

func TestDetail_FutureQuestion(t *testing.T) {
	h, store := setupPollsHandler(t)
	id := testutil.CreateTestQuestion(t, store, "Future question.", 30)

	w := getDetail(h, id)

	testutil.AssertStatus(t, w, http.StatusNotFound)
	testutil.AssertNotContains(t, w, "Future question.")
}

func TestDetail_PastQuestion(t *testing.T) {
	h, store := setupPollsHandler(t)
	id := testutil.CreateTestQuestion(t, store, "Past question.", -30)
	testutil.AddTestChoice(t, store, id, "Yes")

	w := getDetail(h, id)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "Past question.")
	testutil.AssertContains(t, w, "Yes")
}

func TestDetail_FutureLooksLikeMissing(t *testing.T) {
	h, store := setupPollsHandler(t)
	future := testutil.CreateTestQuestion(t, store, "Future question.", 30)

	futureResp := getDetail(h, future)
	missingResp := getDetail(h, future+1000)

	if futureResp.Code != missingResp.Code || futureResp.Body.String() != missingResp.Body.String() {
		t.Errorf("Expected identical responses, got %d %q and %d %q",
			futureResp.Code, futureResp.Body.String(), missingResp.Code, missingResp.Body.String())
	}
}

func TestDetail_InvalidID(t *testing.T) {
	h, _ := setupPollsHandler(t)

	for _, id := range []string{"abc", "0", "-1", ""} {
		req := httptest.NewRequest("GET", "/polls/x/", nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		h.Detail(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("id %q: expected 404, got %d", id, w.Code)
		}
	}
}

func TestResults(t *testing.T) {
	h, store := setupPollsHandler(t)
	past := testutil.CreateTestQuestion(t, store, "Past question.", -1)
	future := testutil.CreateTestQuestion(t, store, "Future question.", 1)
	testutil.AddTestChoice(t, store, past, "Yes")

	tests := []struct {
		name           string
		id             int64
		expectedStatus int
	}{
		{"past question", past, http.StatusOK},
		{"future question", future, http.StatusNotFound},
		{"missing question", future + 1, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", questionPath(tt.id, "results/"), nil)
			req.SetPathValue("id", strconv.FormatInt(tt.id, 10))
			w := httptest.NewRecorder()
			h.Results(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestVote(t *testing.T) {
	h, store := setupPollsHandler(t)
	past := testutil.CreateTestQuestion(t, store, "Past question.", -1)
	future := testutil.CreateTestQuestion(t, store, "Future question.", 1)
	yes := testutil.AddTestChoice(t, store, past, "Yes")
	testutil.AddTestChoice(t, store, past, "No")
	futureChoice := testutil.AddTestChoice(t, store, future, "Maybe")

	vote := func(id int64, choice string) *httptest.ResponseRecorder {
		form := url.Values{}
		if choice != "" {
			form.Set("choice", choice)
		}
		req := testutil.MakeFormRequest(questionPath(id, "vote/"), form)
		req.SetPathValue("id", strconv.FormatInt(id, 10))
		w := httptest.NewRecorder()
		h.Vote(w, req)
		return w
	}

	t.Run("valid vote redirects to results", func(t *testing.T) {
		w := vote(past, strconv.FormatInt(yes, 10))

		testutil.AssertStatus(t, w, http.StatusSeeOther)
		if loc := w.Header().Get("Location"); loc != questionPath(past, "results/") {
			t.Errorf("Expected redirect to results, got '%s'", loc)
		}
	})

	t.Run("missing choice redisplays form", func(t *testing.T) {
		w := vote(past, "")

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		testutil.AssertContains(t, w, noChoiceMessage)
		testutil.AssertContains(t, w, "Past question.")
	})

	t.Run("choice of another question", func(t *testing.T) {
		w := vote(past, strconv.FormatInt(futureChoice, 10))

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		testutil.AssertContains(t, w, noChoiceMessage)
	})

	t.Run("future question", func(t *testing.T) {
		w := vote(future, strconv.FormatInt(futureChoice, 10))

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	choices, err := store.ChoicesFor(t.Context(), past)
	if err != nil {
		t.Fatal(err)
	}
	if choices[0].Votes != 1 || choices[1].Votes != 0 {
		t.Errorf("Expected votes [1 0], got [%d %d]", choices[0].Votes, choices[1].Votes)
	}

	futureChoices, _ := store.ChoicesFor(t.Context(), future)
	if futureChoices[0].Votes != 0 {
		t.Errorf("Expected no votes on unpublished question, got %d", futureChoices[0].Votes)
	}
}
