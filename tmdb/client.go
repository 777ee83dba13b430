// Package tmdb provides a client for the TMDb v3 REST API.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/cinemcp/cinemcp/log"
	"github.com/cinemcp/cinemcp/network"
)

const (
	// DefaultBaseURL is the public TMDb v3 endpoint.
	DefaultBaseURL = "https://api.themoviedb.org/3"

	// DefaultLanguage is requested when no language is configured.
	DefaultLanguage = "en-US"
)

// errNotFound marks a 404 answer, which lookups report as absent.
var errNotFound = errors.New("not found")

// Options configures a Client.
type Options struct {
	APIKey     string
	BaseURL    string
	Language   string
	HTTPClient *http.Client
}

// Client talks to TMDb. It holds no mutable state and is safe for concurrent use.
// A Client without an API key is inert: every method returns an empty result without a request.
type Client struct {
	apiKey   string
	baseURL  string
	language string
	httpc    *http.Client
}

// New creates a Client, filling in the endpoint, language and shared HTTP client when unset.
func New(options Options) *Client {
	c := &Client{
		apiKey:   options.APIKey,
		baseURL:  strings.TrimSuffix(options.BaseURL, "/"),
		language: options.Language,
		httpc:    options.HTTPClient,
	}

	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.language == "" {
		c.language = DefaultLanguage
	}
	if c.httpc == nil {
		c.httpc = network.Client
	}
	if c.apiKey == "" {
		log.Info("TMDB_API_KEY is not set, TMDb lookups are disabled")
	}

	return c
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// get performs a GET against path with the given query and decodes the JSON body into v.
func (c *Client) get(ctx context.Context, path string, q url.Values, v any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("api_key", c.apiKey)
	q.Set("language", c.language)

	u := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debugf("tmdb GET %s", path)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return errors.New("api key rejected")
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}
