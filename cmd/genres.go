package cmd

import (
	"fmt"

	"github.com/cinemcp/cinemcp/catalog"
	"github.com/cinemcp/cinemcp/color"
	"github.com/cinemcp/cinemcp/style"
	"github.com/cinemcp/cinemcp/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(genresCmd)

	genresCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

// genresCmd prints the genre table used by recommendations.
var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the genres accepted by recommend",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		genres := catalog.Genres()

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, lo.Map(genres, func(g catalog.Genre, _ int) map[string]any {
				return map[string]any{"name": g.Name, "code": g.Code, "alias": g.Alias}
			}))
			return
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, style.Title(util.Quantify(len(catalog.GenreNames()), "genre", "genres")))
		_, _ = fmt.Fprintln(out)

		for _, g := range genres {
			name := util.Capitalize(g.Name)
			if g.Alias {
				name += style.Faint(" (alias)")
			}
			_, _ = fmt.Fprintf(out, "%s %s\n", style.Fg(color.Purple)(fmt.Sprintf("%-6s", g.Code)), name)
		}
	},
}
