package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/nextep-cli/nextep/color"
	"github.com/nextep-cli/nextep/constant"
	"github.com/nextep-cli/nextep/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint": style.Faint,
	"bold":  style.Bold,
	"cyan":  style.Fg(color.Cyan),
}).Parse(`{{ cyan "▇▇▇" }} {{ cyan .App }}

  {{ faint "Version" }}      {{ bold .Version }}
  {{ faint "Git Commit" }}   {{ bold .Revision }}
  {{ faint "Build Date" }}   {{ bold .BuiltAt }}
  {{ faint "Built By" }}     {{ bold .BuiltBy }}
  {{ faint "Platform" }}     {{ bold .OS }}/{{ bold .Arch }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), map[string]string{
			"App":      constant.Nextep,
			"Version":  constant.Version,
			"Revision": constant.Revision,
			"BuiltAt":  strings.TrimSpace(constant.BuiltAt),
			"BuiltBy":  constant.BuiltBy,
			"OS":       runtime.GOOS,
			"Arch":     runtime.GOARCH,
		}))
	},
}
