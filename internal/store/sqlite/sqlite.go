package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/vovakirdan/tweetboard/internal/store"
)

// Schema creates the tweets table. Dates are stored as RFC3339 text with
// nanoseconds so that lexical order is chronological order.
const Schema = `
	CREATE TABLE IF NOT EXISTS tweets (
		id      TEXT PRIMARY KEY,
		date    TEXT NOT NULL,
		message TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tweets_date ON tweets(date DESC);
`

// dateLayout keeps a fixed number of fractional digits for sortable text.
const dateLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore implements store.Store for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLite store and applies the schema.
// dbPath is the path to the SQLite database file.
func New(dbPath string) (*SQLiteStore, error) {
	return NewWithSetup(dbPath, func(db *sql.DB) error {
		_, err := db.Exec(Schema)
		return err
	})
}

// NewWithSetup creates a new SQLite store and runs a setup function.
// Useful for tests to apply schema without migrations.
func NewWithSetup(dbPath string, setup func(*sql.DB) error) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Set connection pool limits before setup
	db.SetMaxOpenConns(1) // SQLite works best with single connection
	db.SetMaxIdleConns(1)

	// Run setup function (e.g., apply schema)
	if setup != nil {
		if err := setup(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ==== TweetStore implementation ====

// SaveTweet persists a message to storage.
func (s *SQLiteStore) SaveTweet(ctx context.Context, t *store.Tweet) error {
	query := `
		INSERT INTO tweets (id, date, message)
		VALUES (?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, t.ID, t.Date.UTC().Format(dateLayout), t.Message); err != nil {
		return fmt.Errorf("insert tweet: %w", err)
	}
	return nil
}

// ListTweets returns all messages, newest first.
func (s *SQLiteStore) ListTweets(ctx context.Context) ([]*store.Tweet, error) {
	query := `
		SELECT id, date, message
		FROM tweets
		ORDER BY date DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query tweets: %w", err)
	}
	defer rows.Close()

	tweets := []*store.Tweet{}
	for rows.Next() {
		var (
			t    store.Tweet
			date string
		)
		if err := rows.Scan(&t.ID, &date, &t.Message); err != nil {
			return nil, fmt.Errorf("scan tweet: %w", err)
		}
		t.Date, err = time.Parse(time.RFC3339Nano, date)
		if err != nil {
			return nil, fmt.Errorf("parse tweet %s date %q: %w", t.ID, date, err)
		}
		tweets = append(tweets, &t)
	}

	return tweets, rows.Err()
}

// DeleteTweet removes a message by id.
func (s *SQLiteStore) DeleteTweet(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tweets WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}
	return nil
}
