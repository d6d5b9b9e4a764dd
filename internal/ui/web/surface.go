// Package web renders the message list as a server-side HTML page.
package web

import (
	"sync"

	"github.com/samber/lo"

	"github.com/vovakirdan/tweetboard/internal/tweet"
	"github.com/vovakirdan/tweetboard/internal/view"
)

// Surface keeps the latest render for the page handler. A pass is staged
// and becomes visible on Present, so a page never shows half a list.
type Surface struct {
	mu         sync.RWMutex
	entries    []view.Entry
	generation int
	draft      string

	pending    []view.Entry
	replay     bool
	clearDraft bool
}

// NewSurface creates an empty Surface.
func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}

// ReplayAnimation flips the animation class of the list container on the
// next Present so the browser restarts the entry animation.
func (s *Surface) ReplayAnimation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replay = true
}

func (s *Surface) Append(entry view.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, entry)
}

func (s *Surface) ClearCompose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearDraft = true
}

// Present swaps the staged pass in; the page reads it on the next request.
func (s *Surface) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries, s.pending = s.pending, nil
	if s.replay {
		s.replay = false
		s.generation++
	}
	if s.clearDraft {
		s.clearDraft = false
		s.draft = ""
	}
	return nil
}

// SetDraft keeps the compose text until a successful refresh clears it.
func (s *Surface) SetDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = text
}

// Lookup returns the displayed entry with the given id.
func (s *Surface) Lookup(id tweet.ID) (view.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.entries, func(e view.Entry) bool {
		return e.ID == id
	})
}

// Page is the template data of the index page.
type Page struct {
	Entries        []EntryView
	Draft          string
	AnimationClass string
}

// EntryView is the template form of an entry.
type EntryView struct {
	ID   string
	Text string
	Date string
}

// Snapshot returns the page data of the latest render.
func (s *Surface) Snapshot() Page {
	s.mu.RLock()
	defer s.mu.RUnlock()

	class := "replay-even"
	if s.generation%2 == 1 {
		class = "replay-odd"
	}
	return Page{
		Entries: lo.Map(s.entries, func(e view.Entry, _ int) EntryView {
			return EntryView{ID: e.ID.String(), Text: e.Text, Date: e.Date}
		}),
		Draft:          s.draft,
		AnimationClass: class,
	}
}
