package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tableflip.dev/quotes/pkg/quote"
)

// ServerCategory is assigned to every quote that arrives from the server.
const ServerCategory = "Server"

// post is the wire shape returned by the endpoint.
type post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// FetchQuotes retrieves the remote collection and maps each post to a quote
// with the post title as text and ServerCategory as category.
func (c *Client) FetchQuotes(ctx context.Context) ([]quote.Quote, error) {
	resp, err := c.do(ctx, c.attempts, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("remote: fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var posts []post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("remote: decode posts: %w", err)
	}
	if c.limit > 0 && len(posts) > c.limit {
		posts = posts[:c.limit]
	}

	out := make([]quote.Quote, 0, len(posts))
	for _, p := range posts {
		out = append(out, quote.Quote{Text: p.Title, Category: ServerCategory})
	}
	c.logger.Debug("fetched quotes", "count", len(out))
	return out, nil
}

// PushQuote posts q as JSON to the endpoint once, without retries. Only the
// status is checked.
func (c *Client) PushQuote(ctx context.Context, q quote.Quote) error {
	body, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("remote: encode quote: %w", err)
	}
	resp, err := c.do(ctx, 1, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
		return req, nil
	})
	if err != nil {
		return fmt.Errorf("remote: push: %w", err)
	}
	drain(resp.Body)
	return nil
}
