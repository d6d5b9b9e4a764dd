package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/tweetboard/internal/store"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestListTweetsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := []store.Tweet{
		{ID: "old", Date: base, Message: "first"},
		{ID: "new", Date: base.Add(2 * time.Hour), Message: "third"},
		{ID: "mid", Date: base.Add(time.Hour + 5*time.Nanosecond), Message: "second"},
	}
	for i := range seed {
		if err := s.SaveTweet(ctx, &seed[i]); err != nil {
			t.Fatalf("save %s: %v", seed[i].ID, err)
		}
	}

	got, err := s.ListTweets(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"new", "mid", "old"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tweets, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
	if !got[1].Date.Equal(base.Add(time.Hour + 5*time.Nanosecond)) {
		t.Errorf("date not preserved: %v", got[1].Date)
	}
}

func TestListTweetsEmpty(t *testing.T) {
	s := newTestStore(t)

	got, err := s.ListTweets(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestDeleteTweet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveTweet(ctx, &store.Tweet{ID: "a", Date: time.Now(), Message: "x"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.DeleteTweet(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteTweet(ctx, "missing"); err != nil {
		t.Fatalf("delete unknown id should succeed: %v", err)
	}

	got, err := s.ListTweets(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no tweets, got %d", len(got))
	}
}

func TestSaveTweetDuplicateID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tw := store.Tweet{ID: "dup", Date: time.Now(), Message: "x"}
	if err := s.SaveTweet(ctx, &tw); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveTweet(ctx, &tw); err == nil {
		t.Fatal("expected primary key violation")
	}
}
