// Package omdb provides a client for the OMDb REST API.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cinemcp/cinemcp/log"
	"github.com/cinemcp/cinemcp/network"
)

const (
	// DefaultBaseURL is the public OMDb endpoint.
	DefaultBaseURL = "http://www.omdbapi.com/"

	// DemoKey is substituted when no key is configured. OMDb may reject or throttle it.
	DemoKey = "demo"
)

// Options configures a Client.
type Options struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Client talks to OMDb. It holds no mutable state and is safe for concurrent use.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

// New creates a Client, filling in the demo key, endpoint and shared HTTP client when unset.
func New(options Options) *Client {
	c := &Client{
		apiKey:  options.APIKey,
		baseURL: options.BaseURL,
		httpc:   options.HTTPClient,
	}

	if c.apiKey == "" {
		log.Warn("OMDB_API_KEY is not set, falling back to the demo key")
		c.apiKey = DemoKey
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpc == nil {
		c.httpc = network.Client
	}

	return c
}

// get performs a GET against the endpoint with the given query and decodes the JSON body into v.
func (c *Client) get(ctx context.Context, q url.Values, v any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("parse endpoint: %w", err)
	}

	q.Set("apikey", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debugf("omdb GET %s", redact(u))
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	// OMDb answers an invalid key with 401 and a regular {"Response":"False"} body.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusUnauthorized {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

// redact hides the API key in logged URLs.
func redact(u *url.URL) string {
	q := u.Query()
	if q.Has("apikey") {
		q.Set("apikey", "***")
	}
	clone := *u
	clone.RawQuery = q.Encode()
	return clone.String()
}
