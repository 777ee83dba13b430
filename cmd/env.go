package cmd

import (
	"os"

	"github.com/cinemcp/cinemcp/color"
	"github.com/cinemcp/cinemcp/config"
	"github.com/cinemcp/cinemcp/style"
	"github.com/cinemcp/cinemcp/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values. Secrets are masked.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		secret := make(map[string]bool)
		envs := lo.Map(config.EnvExposed, func(name string, _ int) string {
			field := config.Default[name]
			secret[field.Env()] = field.Secret
			return field.Env()
		})
		envs = append(envs, where.EnvConfigPath)
		slices.Sort(envs)

		for _, env := range envs {
			value := os.Getenv(env)
			present := value != ""

			if !present && setOnly {
				continue
			}

			if present && unsetOnly {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			switch {
			case !present:
				cmd.Println(style.Fg(color.Red)("unset"))
			case secret[env]:
				cmd.Println(style.Fg(color.Green)(config.Mask(value)))
			default:
				cmd.Println(style.Fg(color.Green)(value))
			}
		}
	},
}
