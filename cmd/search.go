package cmd

import (
	"fmt"
	"strings"

	"github.com/cinemcp/cinemcp/movie"
	"github.com/cinemcp/cinemcp/render"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("year", "y", "", "Restrict the search to a release year")
	searchCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

// searchCmd searches both upstreams by title.
var searchCmd = &cobra.Command{
	Use:     "search <title>",
	Short:   "Search movies by title across OMDb and TMDb",
	Example: "  cinemcp search the dark knight --year 2008",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			title  = strings.Join(args, " ")
			year   = lo.Must(cmd.Flags().GetString("year"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
		)

		if !movie.ValidYear(year) {
			handleErr(fmt.Errorf("year must be a 4-digit year, got %q", year))
		}

		hits := newCatalog().Search(cmd.Context(), title, year)

		if asJson {
			printJSON(cmd, hits)
			return
		}

		printText(cmd, render.Search(title, year, hits))
	},
}
