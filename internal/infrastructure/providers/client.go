// Package providers implements the upstream random-data APIs the profile
// generator fans out to.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/albumhub/album-api/internal/core/domain"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 1 << 20
)

// Config holds the upstream endpoints and credentials.
type Config struct {
	RandomUserURL   string
	RandommerURL    string
	RandommerAPIKey string
	QuoteURL        string
	JokeURL         string
	CountryCode     string
}

// Client talks to every upstream provider over one shared http.Client.
// Deadlines come from the caller's context.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New returns a Client. A nil httpClient gets a default with a hard timeout
// as a backstop for callers without a deadline.
func New(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	cfg.RandomUserURL = strings.TrimRight(cfg.RandomUserURL, "/")
	cfg.RandommerURL = strings.TrimRight(cfg.RandommerURL, "/")
	cfg.QuoteURL = strings.TrimRight(cfg.QuoteURL, "/")
	cfg.JokeURL = strings.TrimRight(cfg.JokeURL, "/")
	if cfg.CountryCode == "" {
		cfg.CountryCode = "FR"
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

// getJSON performs a GET and decodes a 200 response into out. Any other
// status is reported as domain.ErrProviderUnavailable.
func (c *Client) getJSON(ctx context.Context, rawURL string, query url.Values, header http.Header, out any) error {
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", domain.ErrProviderUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", domain.ErrProviderUnavailable, req.URL.Host, resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrProviderUnavailable, req.URL.Host, err)
	}
	return nil
}

func (c *Client) randommer(ctx context.Context, path string, query url.Values, out any) error {
	header := http.Header{}
	if c.cfg.RandommerAPIKey != "" {
		header.Set("X-Api-Key", c.cfg.RandommerAPIKey)
	}
	return c.getJSON(ctx, c.cfg.RandommerURL+path, query, header, out)
}
