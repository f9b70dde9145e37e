// Package leaderboard talks to the remote score service and provides a
// reference implementation of that service.
//
// Wire format:
//
//	POST /api/scores  {"score":int,"playerName":string}  -> 2xx
//	GET  /api/scores  -> [{"playerName":string,"score":int}, ...]
//	GET  /api/scores/{name}  -> {"playerName":string,"score":int}
package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ScoresPath is the leaderboard resource.
const ScoresPath = "/api/scores"

// Entry is one leaderboard row.
type Entry struct {
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
}

// Client submits finished runs and fetches the leaderboard.
type Client interface {
	Submit(ctx context.Context, e Entry) error
	FetchAll(ctx context.Context) ([]Entry, error)
}

// NetworkError reports a failed leaderboard call: transport errors,
// non-2xx responses and undecodable bodies.
type NetworkError struct {
	Op     string // "submit" or "fetch"
	Status int    // HTTP status, 0 when no response was received
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("leaderboard: %s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("leaderboard: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type submitRequest struct {
	Score      int    `json:"score"`
	PlayerName string `json:"playerName"`
}

// HTTPClient is a Client for the JSON HTTP leaderboard.
// It is safe for concurrent use.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the service at baseURL
// (e.g. "http://localhost:8080"). A non-positive timeout means 5s.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Submit posts a finished run.
func (c *HTTPClient) Submit(ctx context.Context, e Entry) error {
	body, err := json.Marshal(submitRequest{Score: e.Score, PlayerName: e.PlayerName})
	if err != nil {
		return &NetworkError{Op: "submit", Err: fmt.Errorf("marshal: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ScoresPath, bytes.NewReader(body))
	if err != nil {
		return &NetworkError{Op: "submit", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{Op: "submit", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &NetworkError{Op: "submit", Status: resp.StatusCode, Err: fmt.Errorf("unexpected status")}
	}
	return nil
}

// FetchAll returns the leaderboard in server order.
func (c *HTTPClient) FetchAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := c.getJSON(ctx, "fetch", ScoresPath, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// PlayerBest returns the best score the service holds for a player.
// A player without scores comes back with score 0.
func (c *HTTPClient) PlayerBest(ctx context.Context, name string) (Entry, error) {
	var e Entry
	if err := c.getJSON(ctx, "best", ScoresPath+"/"+url.PathEscape(name), &e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, op, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &NetworkError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status")}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &NetworkError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

var _ Client = (*HTTPClient)(nil)
