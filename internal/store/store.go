package store

import (
	"context"
	"time"
)

// Tweet represents a persisted message of the development backend.
type Tweet struct {
	ID      string
	Date    time.Time
	Message string // HTML-escaped body
}

// TweetStore handles message persistence.
type TweetStore interface {
	// SaveTweet persists a message to storage.
	SaveTweet(ctx context.Context, t *Tweet) error

	// ListTweets returns all messages, newest first.
	ListTweets(ctx context.Context) ([]*Tweet, error)

	// DeleteTweet removes a message. Deleting an unknown id is not an error.
	DeleteTweet(ctx context.Context, id string) error
}

// Store combines all storage interfaces.
type Store interface {
	TweetStore
	Close() error
}
