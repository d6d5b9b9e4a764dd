// Package term renders the message list on a terminal.
package term

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/vovakirdan/tweetboard/internal/view"
)

const clearScreen = "\033[H\033[2J"

var (
	indexStyle = color.New(color.FgCyan, color.OpBold)
	dimStyle   = color.New(color.FgDarkGray)
)

// Option configures a Surface.
type Option func(*Surface)

// WithColor highlights ids and dates and clears the screen on every render.
func WithColor() Option {
	return func(s *Surface) {
		s.colored = true
	}
}

// WithPrompt prints prompt after every render.
func WithPrompt(prompt string) Option {
	return func(s *Surface) {
		s.prompt = prompt
	}
}

// Surface prints the whole list as a table on every render.
type Surface struct {
	mu      sync.Mutex
	out     io.Writer
	colored bool
	prompt  string

	entries    []view.Entry
	replay     bool
	showPrompt bool
}

// NewSurface creates a Surface writing to out.
func NewSurface(out io.Writer, opts ...Option) *Surface {
	s := &Surface{out: out}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// ReplayAnimation makes the next Present start from a blank screen.
func (s *Surface) ReplayAnimation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replay = true
}

func (s *Surface) Append(entry view.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

func (s *Surface) ClearCompose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showPrompt = true
}

// Present writes the table.
func (s *Surface) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.replay {
		s.replay = false
		sep := "\n"
		if s.colored {
			sep = clearScreen
		}
		if _, err := io.WriteString(s.out, sep); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}

	if len(s.entries) == 0 {
		if _, err := io.WriteString(s.out, s.paint(dimStyle, "no messages yet")+"\n"); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	} else {
		table := tablewriter.NewWriter(s.out)
		table.SetHeader([]string{"#", "Message", "Date"})
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(false)
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for i, e := range s.entries {
			table.Append([]string{
				s.paint(indexStyle, strconv.Itoa(i+1)),
				e.Text,
				s.paint(dimStyle, e.Date),
			})
		}
		table.Render()
	}

	if s.showPrompt && s.prompt != "" {
		s.showPrompt = false
		if _, err := io.WriteString(s.out, s.prompt); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}

// Entries returns a copy of the displayed entries.
func (s *Surface) Entries() []view.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]view.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entry returns the n-th displayed entry, counting from 1.
func (s *Surface) Entry(n int) (view.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 || n > len(s.entries) {
		return view.Entry{}, false
	}
	return s.entries[n-1], true
}

func (s *Surface) paint(style color.Style, text string) string {
	if !s.colored {
		return text
	}
	return style.Render(text)
}
