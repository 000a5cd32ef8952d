// Package source fetches the raw catalog CSV from an HTTP URL or a local file.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Sentinel errors for source fetches.
var (
	ErrUnavailable = errors.New("source unavailable")
	ErrBadStatus   = errors.New("unexpected source status")
	ErrTooLarge    = errors.New("source response too large")
)

// maxBodySize caps how much of a response is read.
var maxBodySize int64 = 64 << 20

// Client fetches the catalog CSV.
type Client struct {
	location   string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "source")
	}
}

// New creates a client for location, an http(s) URL, a file:// URL or a
// local path.
func New(location string, opts ...Option) *Client {
	c := &Client{
		location: location,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Source returns the configured location.
func (c *Client) Source() string {
	return c.location
}

// Fetch returns the raw CSV bytes.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	start := time.Now()

	var (
		data []byte
		err  error
	)
	if isRemote(c.location) {
		data, err = c.fetchHTTP(ctx)
	} else {
		data, err = c.readFile()
	}
	if err != nil {
		return nil, err
	}

	if c.log != nil {
		c.log.Debug("fetched source",
			"source", c.location,
			"bytes", len(data),
			"duration_ms", time.Since(start).Milliseconds())
	}
	return data, nil
}

func (c *Client) fetchHTTP(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.location, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	if int64(len(data)) > maxBodySize {
		return nil, fmt.Errorf("%w: over %d bytes", ErrTooLarge, maxBodySize)
	}
	return data, nil
}

func (c *Client) readFile() ([]byte, error) {
	path := c.location
	if u, err := url.Parse(path); err == nil && u.Scheme == "file" {
		path = u.Path
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return data, nil
}

func isRemote(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
