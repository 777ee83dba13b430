package cmd

import (
	"github.com/cinemcp/cinemcp/render"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(popularCmd)

	popularCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

// popularCmd lists this week's trending movies.
var popularCmd = &cobra.Command{
	Use:     "popular",
	Short:   "Get the most popular movies of the week",
	Aliases: []string{"trending"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		hits := newCatalog().Trending(cmd.Context())

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, hits)
			return
		}

		printText(cmd, render.Popular(hits))
	},
}
