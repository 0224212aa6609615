package cmd

import (
	"os"

	"github.com/nextep-cli/nextep/color"
	"github.com/nextep-cli/nextep/style"
	"github.com/nextep-cli/nextep/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c")},
	{"Watchlist", where.Shows, "shows", mo.Some("s")},
	{"Logs", where.Logs, "logs", mo.Some("l")},
	{"Cache", where.Cache, "cache", mo.None[string]()},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, target := range wherePaths {
		if short, ok := target.argShort.Get(); ok {
			whereCmd.Flags().BoolP(target.argLong, short, false, target.name+" path")
		} else {
			whereCmd.Flags().Bool(target.argLong, false, target.name+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the paths nextep reads and writes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, target := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(target.argLong)) {
				cmd.Println(target.where())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, target := range wherePaths {
			cmd.Printf("%s %s\n", header(target.name+"?"), style.Fg(color.Yellow)("--"+target.argLong))
			cmd.Println(target.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
