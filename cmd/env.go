package cmd

import (
	"os"

	"github.com/nextep-cli/nextep/color"
	"github.com/nextep-cli/nextep/config"
	"github.com/nextep-cli/nextep/style"
	"github.com/nextep-cli/nextep/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")

	envCmd.SetOut(os.Stdout)
}

// envVariables lists every environment variable nextep reads, sorted.
func envVariables() []string {
	vars := lo.Map(config.EnvExposed, func(k string, _ int) string {
		field := config.Default[k]
		return field.Env()
	})
	vars = append(vars, where.EnvConfigPath)
	slices.Sort(vars)
	return vars
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the supported environment variables and their values",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, env := range envVariables() {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env), "=")
			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
