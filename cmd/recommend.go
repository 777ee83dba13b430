package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cinemcp/cinemcp/catalog"
	"github.com/cinemcp/cinemcp/color"
	"github.com/cinemcp/cinemcp/icon"
	"github.com/cinemcp/cinemcp/render"
	"github.com/cinemcp/cinemcp/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

// closestGenre returns the known genre name nearest to name.
func closestGenre(name string) string {
	name = strings.ToLower(name)
	return lo.MinBy(catalog.GenreNames(), func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}

// recommendCmd lists recommendations for a genre, or popular movies without one.
var recommendCmd = &cobra.Command{
	Use:   "recommend [genre]",
	Short: "Get movie recommendations, optionally for a genre",
	Long: `Get movie recommendations from TMDb.
An unknown genre falls back to the popular list.`,
	Example: "  cinemcp recommend horror\n  cinemcp recommend \"science fiction\"",
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return catalog.GenreNames(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		genre := strings.Join(args, " ")

		if _, ok := catalog.GenreCode(genre); genre != "" && !ok {
			_, _ = fmt.Fprintf(
				os.Stderr,
				"%sunknown genre %s, did you mean %s? showing popular movies\n",
				icon.Prefix(icon.Hint),
				style.Fg(color.Red)(genre),
				style.Fg(color.Yellow)(closestGenre(genre)),
			)
		}

		hits := newCatalog().Recommendations(cmd.Context(), genre)

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, hits)
			return
		}

		printText(cmd, render.Recommendations(genre, hits))
	},
}
