// Package omdb provides a client for the OMDb REST API.
package omdb

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cinemcp/cinemcp/log"
	"github.com/cinemcp/cinemcp/movie"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Search looks up movies by title, optionally narrowed to a release year.
// An explicit no-result answer yields an empty list and a nil error.
func (c *Client) Search(ctx context.Context, title, year string) ([]*movie.Hit, error) {
	q := url.Values{}
	q.Set("s", title)
	q.Set("type", "movie")
	if year != "" {
		q.Set("y", year)
	}

	var result searchResult
	if err := c.get(ctx, q, &result); err != nil {
		err = fmt.Errorf("omdb search: %w", err)
		log.Warn(err)
		return nil, err
	}

	if result.Response == noResult {
		log.Debugf("omdb search %q: %s", title, result.Error)
		return []*movie.Hit{}, nil
	}

	return lo.Map(result.Search, func(item searchItem, _ int) *movie.Hit {
		return item.hit()
	}), nil
}

// Detail fetches the full record, with the complete plot, for an IMDb ID.
// An explicit no-result answer yields None and a nil error.
func (c *Client) Detail(ctx context.Context, id string) (mo.Option[*movie.Detail], error) {
	q := url.Values{}
	q.Set("i", id)
	q.Set("plot", "full")

	var m Movie
	if err := c.get(ctx, q, &m); err != nil {
		err = fmt.Errorf("omdb detail %s: %w", id, err)
		log.Warn(err)
		return mo.None[*movie.Detail](), err
	}

	if m.Response == noResult {
		log.Debugf("omdb detail %s: %s", id, m.Error)
		return mo.None[*movie.Detail](), nil
	}

	return mo.Some(m.Detail()), nil
}
