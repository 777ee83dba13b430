package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/cinemcp/cinemcp/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

const fallbackWidth = 80

// printText writes a rendered block word-wrapped to the terminal width.
func printText(cmd *cobra.Command, text string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), wordwrap.String(text, util.TerminalWidth(fallbackWidth)))
}

func printJSON(cmd *cobra.Command, v any) {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	handleErr(encoder.Encode(v))
}
