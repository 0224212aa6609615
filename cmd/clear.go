package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/nextep-cli/nextep/icon"
	"github.com/nextep-cli/nextep/util"
	"github.com/nextep-cli/nextep/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort string
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", "c", where.Cache},
	{"remembered shows", "queries", "q", where.Queries},
	{"logs", "logs", "l", where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		clearCmd.Flags().BoolP(target.argLong, target.argShort, false, "clear "+target.name)
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached and logged artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}
			anyCleared = true

			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := util.Delete(target.location())
			erase()

			if err != nil && !errors.Is(err, os.ErrNotExist) {
				handleErr(err)
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
