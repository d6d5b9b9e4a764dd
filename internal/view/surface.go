package view

import (
	"context"

	"github.com/vovakirdan/tweetboard/internal/tweet"
)

// Surface is the rendering target of a Controller. A render pass is always
// Clear, ReplayAnimation, zero or more Append, ClearCompose, Present; a
// pass that empties the list after a failed fetch skips the Append and
// ClearCompose calls. The Controller never runs two passes at once.
type Surface interface {
	// Clear drops every displayed entry.
	Clear()
	// ReplayAnimation restarts the entry animation of the list container.
	ReplayAnimation()
	// Append displays one entry after the current ones.
	Append(entry Entry)
	// ClearCompose empties the compose input.
	ClearCompose()
	// Present ends a render pass.
	Present() error
}

// Entry is one rendered message.
type Entry struct {
	ID   tweet.ID
	Text string
	Date string

	// Delete removes this entry's message and refreshes the list.
	Delete func(ctx context.Context) Result
}
