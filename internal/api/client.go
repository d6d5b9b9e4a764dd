// Package api talks to the remote message service over HTTP/JSON.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/vovakirdan/tweetboard/internal/tweet"
)

// DefaultBaseURL is the address of the message service when none is configured.
const DefaultBaseURL = "http://127.0.0.1:8888"

const contentTypeJSON = "application/json; charset=UTF-8"

// ErrRequestFailed covers every failure of a remote call: transport errors,
// non-2xx statuses and undecodable list payloads.
var ErrRequestFailed = errors.New("request failed")

// Client issues list, create and delete calls against a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client. A nil httpClient falls back to a client without timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// BaseURL returns the normalized service address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches all messages in server order.
// GET /tweets
func (c *Client) List(ctx context.Context) ([]tweet.Message, error) {
	const path = "/tweets"

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var msgs []tweet.Message
	if err := json.NewDecoder(resp.Body).Decode(&msgs); err != nil {
		return nil, fmt.Errorf("%w: GET %s: decode body: %w", ErrRequestFailed, path, err)
	}
	return msgs, nil
}

// Create posts a new message.
// POST /tweet
func (c *Client) Create(ctx context.Context, text string) error {
	const path = "/tweet"

	body, err := json.Marshal(tweet.CreateRequest{Message: text})
	if err != nil {
		return fmt.Errorf("%w: POST %s: encode body: %w", ErrRequestFailed, path, err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

// Delete removes the message with the given id.
// DELETE /tweet/{id}
func (c *Client) Delete(ctx context.Context, id tweet.ID) error {
	resp, err := c.do(ctx, http.MethodDelete, "/tweet/"+url.PathEscape(id.String()), nil)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

// do sends the request and returns the response only for 2xx statuses.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-type", contentTypeJSON)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		drain(resp)
		return nil, &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}
	return resp, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// StatusError reports a non-2xx answer.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s %s: status %d", ErrRequestFailed, e.Method, e.Path, e.StatusCode)
}

// Unwrap makes errors.Is(err, ErrRequestFailed) hold.
func (e *StatusError) Unwrap() error {
	return ErrRequestFailed
}
