// Package tools exposes the movie catalog as MCP tools served over stdio.
package tools

import (
	"context"
	"fmt"
	"io"
	stdlog "log"

	"github.com/cinemcp/cinemcp/constant"
	"github.com/cinemcp/cinemcp/log"
	"github.com/cinemcp/cinemcp/movie"
	"github.com/cinemcp/cinemcp/render"
	"github.com/cinemcp/cinemcp/util"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Tool names as advertised to clients.
const (
	SearchMovies    = "search_movies"
	GetMovieDetails = "get_movie_details"
	RecommendMovies = "recommend_movies"
	PopularMovies   = "popular_movies"
	MovieHelp       = "movie_help"
)

// Movies is the catalog surface the tools call into.
type Movies interface {
	Search(ctx context.Context, title, year string) []*movie.Hit
	Detail(ctx context.Context, id string, source movie.Source) mo.Option[*movie.Detail]
	Recommendations(ctx context.Context, genre string) []*movie.Hit
	Trending(ctx context.Context) []*movie.Hit
}

type handlers struct {
	movies Movies
}

// New builds the MCP server with every movie tool registered.
func New(movies Movies) *server.MCPServer {
	s := server.NewMCPServer(
		constant.ServerName,
		constant.Version,
		server.WithToolCapabilities(false),
		server.WithInstructions("MCP server for movie searches using OMDb and TMDb APIs"),
	)

	h := &handlers{movies: movies}

	s.AddTool(mcp.NewTool(SearchMovies,
		mcp.WithDescription("Search movies by title across OMDb and TMDb"),
		mcp.WithString("title", mcp.Required(), mcp.Description("Movie title to search for")),
		mcp.WithString("year", mcp.Description("Movie year (optional)")),
	), guard("searching movies", h.search))

	s.AddTool(mcp.NewTool(GetMovieDetails,
		mcp.WithDescription("Get complete movie information"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Movie ID (IMDB ID or TMDb ID)")),
		mcp.WithString("source",
			mcp.Description("Data source (omdb or tmdb)"),
			mcp.Enum(lo.Map(movie.Sources(), func(s movie.Source, _ int) string { return string(s) })...),
			mcp.DefaultString(string(movie.DefaultSource)),
		),
	), guard("getting details", h.detail))

	s.AddTool(mcp.NewTool(RecommendMovies,
		mcp.WithDescription("Get movie recommendations, optionally for a genre"),
		mcp.WithString("genre", mcp.Description(
			"Movie genre (optional). Examples: action, comedy, drama, horror, sci-fi, romance",
		)),
	), guard("getting recommendations", h.recommend))

	s.AddTool(mcp.NewTool(PopularMovies,
		mcp.WithDescription("Get the most popular movies of the week"),
	), guard("getting popular movies", h.popular))

	s.AddTool(mcp.NewTool(MovieHelp,
		mcp.WithDescription("Explain how to use this server"),
	), h.help)

	return s
}

// Serve runs the server over the given streams until ctx is done or input ends.
func Serve(ctx context.Context, movies Movies, in io.Reader, out io.Writer) error {
	errs := log.Writer()
	defer util.Ignore(errs.Close)

	stdio := server.NewStdioServer(New(movies))
	stdio.SetErrorLogger(stdlog.New(errs, "", 0))

	log.Infof("serving %s %s over stdio", constant.ServerName, constant.Version)
	return stdio.Listen(ctx, in, out)
}

func (h *handlers) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	year := req.GetString("year", "")
	if !movie.ValidYear(year) {
		return mcp.NewToolResultError(fmt.Sprintf("year must be a 4-digit year, got %q", year)), nil
	}

	hits := h.movies.Search(ctx, title, year)
	return mcp.NewToolResultText(render.Search(title, year, hits)), nil
}

func (h *handlers) detail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	source, err := movie.ParseSource(req.GetString("source", string(movie.DefaultSource)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	detail := h.movies.Detail(ctx, id, source)
	return mcp.NewToolResultText(render.Detail(id, source, detail)), nil
}

func (h *handlers) recommend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	genre := req.GetString("genre", "")
	hits := h.movies.Recommendations(ctx, genre)
	return mcp.NewToolResultText(render.Recommendations(genre, hits)), nil
}

func (h *handlers) popular(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(render.Popular(h.movies.Trending(ctx))), nil
}

func (h *handlers) help(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(Help()), nil
}

// guard turns a panic inside a handler into the tool's error text.
func guard(action string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				failure, ok := r.(error)
				if !ok {
					failure = fmt.Errorf("%v", r)
				}
				log.Errorf("%s: %s", req.Params.Name, failure)
				result, err = mcp.NewToolResultText(render.Failure(action, failure)), nil
			}
		}()

		return next(ctx, req)
	}
}
