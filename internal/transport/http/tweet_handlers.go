package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/vovakirdan/tweetboard/internal/store"
	"github.com/vovakirdan/tweetboard/internal/tweet"
)

// TweetHandlers provides HTTP handlers for the message endpoints.
type TweetHandlers struct {
	store store.TweetStore
	log   *zerolog.Logger
	now   func() time.Time
}

// NewTweetHandlers creates a new tweet handlers instance.
func NewTweetHandlers(st store.TweetStore, logger *zerolog.Logger) *TweetHandlers {
	return &TweetHandlers{
		store: st,
		log:   logger,
		now:   time.Now,
	}
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// List returns every message, newest first.
// GET /tweets
func (h *TweetHandlers) List(c *gin.Context) {
	tweets, err := h.store.ListTweets(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list tweets")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, lo.Map(tweets, func(t *store.Tweet, _ int) tweet.Message {
		return toMessage(t)
	}))
}

// Create stores a new message with an escaped body.
// POST /tweet
func (h *TweetHandlers) Create(c *gin.Context) {
	var req tweet.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid create tweet request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	t := &store.Tweet{
		ID:      uuid.NewString(),
		Date:    h.now().UTC(),
		Message: tweet.Escape(req.Message),
	}
	if err := h.store.SaveTweet(c.Request.Context(), t); err != nil {
		h.log.Error().Err(err).Msg("failed to add tweet")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to add tweet"})
		return
	}

	h.log.Info().Str("tweet_id", t.ID).Msg("tweet added")
	c.JSON(http.StatusCreated, toMessage(t))
}

// Delete removes a message by id.
// DELETE /tweet/:id
func (h *TweetHandlers) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteTweet(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Str("tweet_id", id).Msg("failed to delete tweet")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete tweet"})
		return
	}

	h.log.Info().Str("tweet_id", id).Msg("tweet deleted")
	c.Status(http.StatusNoContent)
}

func toMessage(t *store.Tweet) tweet.Message {
	return tweet.Message{
		ID:      tweet.ID(t.ID),
		Message: t.Message,
		Date:    t.Date.UTC().Format(time.RFC3339Nano),
	}
}
