// Package catalog aggregates both metadata upstreams into a single movie catalog.
//
// Every method returns a plain result. Upstream failures are logged by the clients
// and flattened here into empty lists or absent details.
package catalog

import (
	"context"
	"strings"

	"github.com/cinemcp/cinemcp/movie"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sourcegraph/conc"
)

// SearchLimit caps the merged search result.
const SearchLimit = 20

// Provider is a metadata upstream that can search titles and look up a single record.
type Provider interface {
	Search(ctx context.Context, title, year string) ([]*movie.Hit, error)
	Detail(ctx context.Context, id string) (mo.Option[*movie.Detail], error)
}

// Discoverer is a Provider that also serves curated lists.
type Discoverer interface {
	Provider
	Popular(ctx context.Context) ([]*movie.Hit, error)
	Trending(ctx context.Context) ([]*movie.Hit, error)
	Discover(ctx context.Context, genreCode string) ([]*movie.Hit, error)
}

// Catalog merges upstream A (OMDb) and upstream B (TMDb).
type Catalog struct {
	omdb Provider
	tmdb Discoverer
}

// New creates a Catalog over the two upstream clients.
func New(omdb Provider, tmdb Discoverer) *Catalog {
	return &Catalog{omdb: omdb, tmdb: tmdb}
}

// Search queries both upstreams concurrently and merges the results:
// OMDb hits first, then TMDb hits, deduplicated by case-insensitive title, capped at SearchLimit.
func (c *Catalog) Search(ctx context.Context, title, year string) []*movie.Hit {
	var (
		wg           conc.WaitGroup
		fromA, fromB []*movie.Hit
	)

	wg.Go(func() {
		fromA, _ = c.omdb.Search(ctx, title, year)
	})
	wg.Go(func() {
		fromB, _ = c.tmdb.Search(ctx, title, year)
	})
	wg.Wait()

	merged := make([]*movie.Hit, 0, len(fromA)+len(fromB))
	merged = append(merged, lo.Compact(fromA)...)
	merged = append(merged, lo.Compact(fromB)...)

	return lo.Slice(Dedup(merged), 0, SearchLimit)
}

// Dedup keeps the first hit of every case-insensitive title.
// Distinct movies sharing a title collapse into one.
func Dedup(hits []*movie.Hit) []*movie.Hit {
	return lo.UniqBy(hits, func(h *movie.Hit) string {
		return strings.ToLower(h.Title)
	})
}

// Detail looks up a single record on the upstream that owns the ID.
// There is no fallback to the other upstream.
func (c *Catalog) Detail(ctx context.Context, id string, source movie.Source) mo.Option[*movie.Detail] {
	var provider Provider = c.omdb
	if source == movie.TMDb {
		provider = c.tmdb
	}

	detail, err := provider.Detail(ctx, id)
	if err != nil {
		return mo.None[*movie.Detail]()
	}

	return detail
}

// Recommendations returns movies of the given genre, or the popular list when the
// genre is empty or unknown.
func (c *Catalog) Recommendations(ctx context.Context, genre string) []*movie.Hit {
	if genre != "" {
		if code, ok := GenreCode(genre); ok {
			return orEmpty(c.tmdb.Discover(ctx, code))
		}
	}

	return orEmpty(c.tmdb.Popular(ctx))
}

// Trending returns this week's trending movies.
func (c *Catalog) Trending(ctx context.Context) []*movie.Hit {
	return orEmpty(c.tmdb.Trending(ctx))
}

// orEmpty flattens a failed list into an empty one.
func orEmpty(hits []*movie.Hit, err error) []*movie.Hit {
	if err != nil || hits == nil {
		return []*movie.Hit{}
	}
	return hits
}
