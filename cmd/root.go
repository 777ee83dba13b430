// Package cmd implements the command-line interface for cinemcp.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cinemcp/cinemcp/color"
	"github.com/cinemcp/cinemcp/constant"
	"github.com/cinemcp/cinemcp/icon"
	"github.com/cinemcp/cinemcp/key"
	"github.com/cinemcp/cinemcp/log"
	"github.com/cinemcp/cinemcp/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("omdb-api-key", "", "OMDb API key, overrides OMDB_API_KEY")
	lo.Must0(viper.BindPFlag(key.OMDbAPIKey, rootCmd.PersistentFlags().Lookup("omdb-api-key")))

	rootCmd.PersistentFlags().String("tmdb-api-key", "", "TMDb API key, overrides TMDB_API_KEY")
	lo.Must0(viper.BindPFlag(key.TMDbAPIKey, rootCmd.PersistentFlags().Lookup("tmdb-api-key")))

	rootCmd.PersistentFlags().StringP("language", "L", "", "Language requested from TMDb")
	lo.Must0(viper.BindPFlag(key.TMDbLanguage, rootCmd.PersistentFlags().Lookup("language")))

	rootCmd.PersistentFlags().String("log-level", "", "Set the log level (panic, fatal, error, warn, info, debug, trace)")
	lo.Must0(viper.BindPFlag(key.LogsLevel, rootCmd.PersistentFlags().Lookup("log-level")))
}

// rootCmd defines the entry point for cinemcp. Without a subcommand it serves MCP over stdio.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "A Model Context Protocol server for movie search, details and recommendations",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiYellow).Render("    - Movie search, details and recommendations from OMDb and TMDb over MCP"),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed only now, so logging is configured again.
		return log.Setup()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(serve(cmd))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
