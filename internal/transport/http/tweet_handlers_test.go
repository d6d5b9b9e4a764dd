package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/tweetboard/internal/store"
	"github.com/vovakirdan/tweetboard/internal/tweet"
)

func newTestRouter(t *testing.T) (http.Handler, store.Store) {
	t.Helper()

	st := createTestStore(t)
	disabledLogger := zerolog.New(nil)
	return NewRouter(st, &disabledLogger), st
}

func serve(h http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := serve(router, http.MethodGet, "/health", nil)
	if resp.Code != http.StatusOK || resp.Body.String() != "ok" {
		t.Fatalf("unexpected health response: %d %q", resp.Code, resp.Body.String())
	}
}

func TestCreateAndListTweets(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, text := range []string{"first", "<b>bold</b> & co"} {
		resp := serve(router, http.MethodPost, "/tweet", []byte(`{"message":`+quote(t, text)+`}`))
		if resp.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
		}
		time.Sleep(time.Millisecond)
	}

	resp := serve(router, http.MethodGet, "/tweets", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var msgs []tweet.Message
	if err := json.Unmarshal(resp.Body.Bytes(), &msgs); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 tweets, got %d", len(msgs))
	}

	// newest first, body stored escaped
	if msgs[0].Message != "&lt;b&gt;bold&lt;&#x2f;b&gt; &amp; co" {
		t.Errorf("unexpected escaped message: %q", msgs[0].Message)
	}
	if msgs[1].Message != "first" {
		t.Errorf("unexpected second message: %q", msgs[1].Message)
	}
	if msgs[0].ID == "" || msgs[0].ID == msgs[1].ID {
		t.Errorf("expected distinct ids, got %q and %q", msgs[0].ID, msgs[1].ID)
	}
	if _, ok := tweet.ParseDate(msgs[0].Date); !ok {
		t.Errorf("date is not ISO-8601: %q", msgs[0].Date)
	}
}

func TestListTweetsEmptyIsArray(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := serve(router, http.MethodGet, "/tweets", nil)
	if resp.Body.String() != "[]" {
		t.Fatalf("expected empty JSON array, got %q", resp.Body.String())
	}
}

func TestCreateTweetRejectsEmptyMessage(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, body := range []string{`{"message":""}`, `{}`, `not json`} {
		resp := serve(router, http.MethodPost, "/tweet", []byte(body))
		if resp.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected status 400, got %d", body, resp.Code)
		}
	}
}

func TestDeleteTweet(t *testing.T) {
	router, st := newTestRouter(t)
	ctx := context.Background()

	if err := st.SaveTweet(ctx, &store.Tweet{ID: "42", Date: time.Now(), Message: "bye"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	resp := serve(router, http.MethodDelete, "/tweet/42", nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	tweets, err := st.ListTweets(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tweets) != 0 {
		t.Fatalf("expected tweet to be deleted, %d left", len(tweets))
	}

	resp = serve(router, http.MethodDelete, "/tweet/unknown", nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("deleting unknown id: expected status 204, got %d", resp.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := serve(router, http.MethodOptions, "/tweet/1", nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Fatal("missing Access-Control-Allow-Methods")
	}
}

func quote(t *testing.T, s string) string {
	t.Helper()
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}
