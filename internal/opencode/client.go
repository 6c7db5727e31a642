// Package opencode is a thin HTTP client for the agent server: session
// lookups, the TUI toast surface, and the server-sent event stream.
package opencode

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Session is the server's session snapshot. Snapshots are fetched on demand
// and never cached across events.
type Session struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	Slug     string `json:"slug,omitempty"`
	ParentID string `json:"parentID,omitempty"`
}

// Client talks to a single agent server.
type Client struct {
	base string
	http *http.Client
}

// New creates a client for the given base URL (e.g. http://127.0.0.1:4096).
func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{},
	}
}

// Session fetches a session by id. A non-empty directory scopes the lookup
// to that working directory; an empty directory queries without scope.
func (c *Client) Session(ctx context.Context, id, directory string) (*Session, error) {
	u := c.base + "/session/" + url.PathEscape(id)
	if directory != "" {
		u += "?directory=" + url.QueryEscape(directory)
	}
	var s Session
	if err := c.getJSON(ctx, u, &s); err != nil {
		return nil, err
	}
	if s.ID == "" {
		return nil, fmt.Errorf("session %s: empty response", id)
	}
	return &s, nil
}

// Sessions lists up to limit recent sessions scoped to directory.
func (c *Client) Sessions(ctx context.Context, directory string, limit int) ([]Session, error) {
	q := url.Values{}
	if directory != "" {
		q.Set("directory", directory)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	u := c.base + "/session"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	var list []Session
	if err := c.getJSON(ctx, u, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ShowToast asks the server's TUI to render a toast. Rendering is the
// server's concern; this call is fire-and-forget from the caller's side.
func (c *Client) ShowToast(ctx context.Context, directory, title, message, variant string) error {
	body, err := json.Marshal(map[string]string{
		"title":   title,
		"message": message,
		"variant": variant,
	})
	if err != nil {
		return err
	}
	u := c.base + "/tui/show-toast"
	if directory != "" {
		u += "?directory=" + url.QueryEscape(directory)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 400 {
		return fmt.Errorf("show toast: %s", resp.Status)
	}
	return nil
}

// Events subscribes to the server's event stream and returns a channel of
// raw event documents. The channel closes when the stream ends or ctx is
// cancelled. Each element is the payload of one SSE "data:" line.
func (c *Client) Events(ctx context.Context) (<-chan json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/event", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("event stream: %s", resp.Status)
	}

	out := make(chan json.RawMessage)
	go func() {
		defer close(out)
		defer resp.Body.Close()
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "" {
				continue
			}
			select {
			case out <- json.RawMessage(data):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, u string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("GET %s: %s", u, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
