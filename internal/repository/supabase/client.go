// Package supabase stores farm saves through the Supabase PostgREST
// API. It exists for deployments that run without direct database
// access; the Postgres store is the primary backend.
package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config configures the Supabase REST client.
type Config struct {
	ProjectURL string
	ServiceKey string
	Table      string
	Timeout    time.Duration
}

// Client is a minimal PostgREST client scoped to one table.
type Client struct {
	http   *http.Client
	prefix string
	key    string
	table  string
}

// New creates a Supabase client.
func New(cfg Config) (*Client, error) {
	if cfg.ProjectURL == "" {
		return nil, fmt.Errorf("project URL is required")
	}
	if cfg.ServiceKey == "" {
		return nil, fmt.Errorf("service key is required")
	}
	table := cfg.Table
	if table == "" {
		table = "farm_saves"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http:   &http.Client{Timeout: timeout},
		prefix: strings.TrimRight(cfg.ProjectURL, "/") + "/rest/v1",
		key:    cfg.ServiceKey,
		table:  table,
	}, nil
}

// do performs one PostgREST request against the configured table. The
// query string must already be encoded.
func (c *Client) do(ctx context.Context, method, query string, body []byte) ([]byte, int, error) {
	path := c.prefix + "/" + url.PathEscape(c.table)
	if query != "" {
		path += "?" + query
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	return data, resp.StatusCode, nil
}

// Ping verifies the REST endpoint is reachable; used by readiness
// checks.
func (c *Client) Ping(ctx context.Context) error {
	_, status, err := c.do(ctx, http.MethodGet, "select=user_id&limit=1", nil)
	if err != nil {
		return err
	}
	if status >= 300 {
		return fmt.Errorf("supabase ping returned status %d", status)
	}
	return nil
}
