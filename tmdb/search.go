// Package tmdb provides a client for the TMDb v3 REST API.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/cinemcp/cinemcp/log"
	"github.com/cinemcp/cinemcp/movie"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Result caps applied to the raw upstream lists before normalization.
const (
	SearchLimit   = 10
	PopularLimit  = 10
	DiscoverLimit = 10
	TrendingLimit = 15
)

// Search looks up movies by title, optionally narrowed to a release year.
func (c *Client) Search(ctx context.Context, title, year string) ([]*movie.Hit, error) {
	if !c.Enabled() {
		return []*movie.Hit{}, nil
	}

	q := url.Values{}
	q.Set("query", title)
	if year != "" {
		q.Set("year", year)
	}

	return c.list(ctx, "search", "/search/movie", q, SearchLimit)
}

// Popular returns the first page of the popularity-ranked catalog.
func (c *Client) Popular(ctx context.Context) ([]*movie.Hit, error) {
	if !c.Enabled() {
		return []*movie.Hit{}, nil
	}

	q := url.Values{}
	q.Set("page", "1")

	return c.list(ctx, "popular", "/movie/popular", q, PopularLimit)
}

// Trending returns this week's trending movies.
func (c *Client) Trending(ctx context.Context) ([]*movie.Hit, error) {
	if !c.Enabled() {
		return []*movie.Hit{}, nil
	}

	return c.list(ctx, "trending", "/trending/movie/week", nil, TrendingLimit)
}

// Discover returns movies of a single numeric genre code.
func (c *Client) Discover(ctx context.Context, genreCode string) ([]*movie.Hit, error) {
	if !c.Enabled() {
		return []*movie.Hit{}, nil
	}

	q := url.Values{}
	q.Set("page", "1")
	q.Set("with_genres", genreCode)

	return c.list(ctx, "discover", "/discover/movie", q, DiscoverLimit)
}

// list fetches a paginated endpoint and normalizes at most limit entries.
func (c *Client) list(ctx context.Context, op, path string, q url.Values, limit int) ([]*movie.Hit, error) {
	var page Page
	if err := c.get(ctx, path, q, &page); err != nil {
		err = fmt.Errorf("tmdb %s: %w", op, err)
		log.Warn(err)
		return []*movie.Hit{}, err
	}

	raw := lo.Compact(lo.Slice(page.Results, 0, limit))
	return lo.Map(raw, func(m *Movie, _ int) *movie.Hit {
		return m.Hit()
	}), nil
}

// Detail fetches the full record of a movie with its credits embedded.
// An unknown ID yields None and a nil error.
func (c *Client) Detail(ctx context.Context, id string) (mo.Option[*movie.Detail], error) {
	if !c.Enabled() {
		return mo.None[*movie.Detail](), nil
	}

	q := url.Values{}
	q.Set("append_to_response", "credits")

	var details MovieDetails
	err := c.get(ctx, "/movie/"+url.PathEscape(id), q, &details)
	switch {
	case errors.Is(err, errNotFound):
		log.Debugf("tmdb detail %s: not found", id)
		return mo.None[*movie.Detail](), nil
	case err != nil:
		err = fmt.Errorf("tmdb detail %s: %w", id, err)
		log.Warn(err)
		return mo.None[*movie.Detail](), err
	}

	return mo.Some(details.Detail()), nil
}
