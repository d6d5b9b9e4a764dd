// Package view keeps a Surface in sync with the remote message list.
package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/vovakirdan/tweetboard/internal/tweet"
)

// Client is the remote message service.
type Client interface {
	List(ctx context.Context) ([]tweet.Message, error)
	Create(ctx context.Context, text string) error
	Delete(ctx context.Context, id tweet.ID) error
}

// Op names a controller operation.
type Op string

const (
	OpSubmit  Op = "submit"
	OpRemove  Op = "remove"
	OpRefresh Op = "refresh"
)

// Result reports the outcome of one operation. For submit and remove it
// describes the mutation only; the refresh that follows reports separately.
type Result struct {
	Op      Op
	ID      tweet.ID
	Skipped bool
	Err     error
}

// OK reports whether the operation ran and succeeded.
func (r Result) OK() bool {
	return !r.Skipped && r.Err == nil
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers fn to receive every Result.
func WithObserver(fn func(Result)) Option {
	return func(c *Controller) {
		c.observe = fn
	}
}

// Controller binds compose, delete and refresh actions to a Surface.
type Controller struct {
	surface  Surface
	client   Client
	log      *zerolog.Logger
	validate *validator.Validate
	observe  func(Result)

	// render serialises passes over the surface; fetches run outside it.
	render sync.Mutex
}

// New creates a controller without rendering anything.
func New(surface Surface, client Client, logger *zerolog.Logger, opts ...Option) *Controller {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	c := &Controller{
		surface:  surface,
		client:   client,
		log:      logger,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init creates a controller and performs the initial refresh.
func Init(ctx context.Context, surface Surface, client Client, logger *zerolog.Logger, opts ...Option) *Controller {
	c := New(surface, client, logger, opts...)
	c.RefreshList(ctx)
	return c
}

// SubmitMessage posts text and refreshes the list. Empty text is ignored
// without any network call. The refresh happens whether or not the post
// succeeded.
func (c *Controller) SubmitMessage(ctx context.Context, text string) Result {
	if err := c.validate.Var(text, "required"); err != nil {
		c.log.Debug().Msg("empty message not submitted")
		return c.report(Result{Op: OpSubmit, Skipped: true})
	}

	res := Result{Op: OpSubmit}
	if err := c.client.Create(ctx, text); err != nil {
		res.Err = fmt.Errorf("send message: %w", err)
	}
	c.report(res)

	c.refresh(ctx, true)
	return res
}

// RemoveMessage deletes the message with the given id and refreshes the
// list regardless of the outcome.
func (c *Controller) RemoveMessage(ctx context.Context, id tweet.ID) Result {
	res := Result{Op: OpRemove, ID: id}
	if err := c.client.Delete(ctx, id); err != nil {
		res.Err = fmt.Errorf("delete message %s: %w", id, err)
	}
	c.report(res)

	c.refresh(ctx, true)
	return res
}

// RefreshList fetches the list and re-renders the surface from it. On
// failure the display is left untouched.
func (c *Controller) RefreshList(ctx context.Context) Result {
	return c.refresh(ctx, false)
}

// refresh re-renders from a fresh fetch. After a mutation the old list is
// already gone, so a failed fetch leaves an empty list behind.
func (c *Controller) refresh(ctx context.Context, afterMutation bool) Result {
	msgs, err := c.client.List(ctx)
	if err != nil {
		if afterMutation {
			c.clearList()
		}
		return c.report(Result{Op: OpRefresh, Err: fmt.Errorf("fetch messages: %w", err)})
	}

	entries := lo.Map(msgs, func(msg tweet.Message, _ int) Entry {
		return c.entry(msg)
	})

	c.renderEntries(entries)

	c.log.Debug().Int("count", len(entries)).Msg("messages rendered")
	return c.report(Result{Op: OpRefresh})
}

func (c *Controller) renderEntries(entries []Entry) {
	c.render.Lock()
	defer c.render.Unlock()

	c.surface.Clear()
	c.surface.ReplayAnimation()
	for _, e := range entries {
		c.surface.Append(e)
	}
	c.surface.ClearCompose()
	if err := c.surface.Present(); err != nil {
		c.log.Warn().Err(err).Msg("failed to present messages")
	}
}

// clearList empties the list and keeps the compose input.
func (c *Controller) clearList() {
	c.render.Lock()
	defer c.render.Unlock()

	c.surface.Clear()
	c.surface.ReplayAnimation()
	if err := c.surface.Present(); err != nil {
		c.log.Warn().Err(err).Msg("failed to present messages")
	}
}

func (c *Controller) entry(msg tweet.Message) Entry {
	id := msg.ID
	return Entry{
		ID:   id,
		Text: tweet.Unescape(msg.Message),
		Date: tweet.FormatDate(msg.Date),
		Delete: func(ctx context.Context) Result {
			return c.RemoveMessage(ctx, id)
		},
	}
}

func (c *Controller) report(res Result) Result {
	if res.Err != nil {
		c.log.Error().Err(res.Err).Str("op", string(res.Op)).Msg("request failed")
	}
	if c.observe != nil {
		c.observe(res)
	}
	return res
}
