package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cinemcp/cinemcp/catalog"
	"github.com/cinemcp/cinemcp/color"
	"github.com/cinemcp/cinemcp/config"
	"github.com/cinemcp/cinemcp/icon"
	"github.com/cinemcp/cinemcp/network"
	"github.com/cinemcp/cinemcp/omdb"
	"github.com/cinemcp/cinemcp/style"
	"github.com/cinemcp/cinemcp/tmdb"
	"github.com/cinemcp/cinemcp/tools"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

// serveCmd runs the MCP server on standard input and output.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the movie tools over MCP on stdio",
	Long: `Serve the movie tools over the Model Context Protocol on stdio.
Standard output carries the protocol stream; status lines and logs go to standard error.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(serve(cmd))
	},
}

// newCatalog wires both upstream clients from the configuration snapshot.
func newCatalog() *catalog.Catalog {
	settings := config.Load()

	return catalog.New(
		omdb.New(omdb.Options{
			APIKey:     settings.OMDb.APIKey,
			BaseURL:    settings.OMDb.BaseURL,
			HTTPClient: network.Client,
		}),
		tmdb.New(tmdb.Options{
			APIKey:     settings.TMDb.APIKey,
			BaseURL:    settings.TMDb.BaseURL,
			Language:   settings.TMDb.Language,
			HTTPClient: network.Client,
		}),
	)
}

func serve(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	movies := newCatalog()
	_, _ = fmt.Fprintln(os.Stderr, style.Fg(color.Green)(icon.Prefix(icon.Movie)+"Movie MCP server started successfully"))

	err := tools.Serve(ctx, movies, os.Stdin, os.Stdout)
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintln(os.Stderr, "\n"+icon.Prefix(icon.Stop)+"Shutting down MCP server...")
		return nil
	}

	if err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
