package cmd

import (
	"github.com/cinemcp/cinemcp/movie"
	"github.com/cinemcp/cinemcp/open"
	"github.com/cinemcp/cinemcp/render"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detailsCmd)

	detailsCmd.Flags().StringP("source", "s", string(movie.DefaultSource), "Data source the ID belongs to (omdb, tmdb)")
	lo.Must0(detailsCmd.RegisterFlagCompletionFunc("source", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(movie.Sources(), func(s movie.Source, _ int) string {
			return string(s)
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	detailsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	detailsCmd.Flags().BoolP("open", "o", false, "Open the movie page in the default browser")
}

// detailsCmd fetches the full record of a movie from one upstream.
var detailsCmd = &cobra.Command{
	Use:     "details <id>",
	Short:   "Get complete movie information by IMDb ID or TMDb ID",
	Example: "  cinemcp details tt0468569\n  cinemcp details 155 --source tmdb",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source, err := movie.ParseSource(lo.Must(cmd.Flags().GetString("source")))
		handleErr(err)

		id := args[0]
		detail := newCatalog().Detail(cmd.Context(), id, source)

		if d, ok := detail.Get(); ok && lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Start(movie.PageURL(id, d.Source)))
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, detail.OrEmpty())
			return
		}

		printText(cmd, render.Detail(id, source, detail))
	},
}
