package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/nextep-cli/nextep/color"
	"github.com/nextep-cli/nextep/icon"
	"github.com/nextep-cli/nextep/query"
	"github.com/nextep-cli/nextep/style"
	"github.com/nextep-cli/nextep/util"
	"github.com/nextep-cli/nextep/watchlist"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showsCmd)
}

// showsCmd manages the watchlist tracked when nextep runs without arguments.
var showsCmd = &cobra.Command{
	Use:   "shows",
	Short: "Manage the list of tracked shows",
}

func init() {
	showsCmd.AddCommand(showsListCmd)
	showsListCmd.Flags().BoolP("titles", "t", false, "Print humanized titles")
	showsListCmd.SetOut(os.Stdout)
}

var showsListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the tracked shows",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ids, err := watchlist.Load()
		handleErr(err)

		if len(ids) == 0 {
			_, _ = fmt.Fprintln(os.Stderr, style.Faint("no tracked shows, add some with `nextep shows add`"))
			return
		}

		titles := lo.Must(cmd.Flags().GetBool("titles"))
		for _, id := range ids {
			if titles {
				id = util.Humanize(id)
			}
			cmd.Println(id)
		}
	},
}

func init() {
	showsCmd.AddCommand(showsAddCmd)
}

var showsAddCmd = &cobra.Command{
	Use:   "add [show...]",
	Short: "Add shows to the watchlist",
	Long:  "Add shows to the watchlist. Identifiers are lowercased and spaces become hyphens.\nWithout arguments you are prompted for one.",
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			var response string
			input := survey.Input{
				Message: "Show identifier",
				Help:    "As it appears in the episode site address, e.g. the-expanse",
				Suggest: query.SuggestMany,
			}
			handleErr(survey.AskOne(&input, &response, survey.WithValidator(survey.Required)))
			args = []string{response}
		}

		added, err := watchlist.Add(args...)
		handleErr(err)
		util.Ignore(func() error { return query.Remember(1, added...) })

		if len(added) == 0 {
			fmt.Printf("%s nothing to add\n", style.Faint(icon.Get(icon.Show)))
			return
		}

		for _, id := range added {
			fmt.Printf("%s added %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(id))
		}
	},
}

func init() {
	showsCmd.AddCommand(showsRemoveCmd)
}

var showsRemoveCmd = &cobra.Command{
	Use:     "remove [show...]",
	Short:   "Remove shows from the watchlist",
	Long:    "Remove shows from the watchlist.\nWithout arguments you pick them from the current list.",
	Aliases: []string{"rm"},
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		ids, err := watchlist.Load()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return lo.Without(ids, args...), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := watchlist.Load()
		handleErr(err)

		if len(saved) == 0 {
			handleErr(errors.New("the watchlist is empty"))
		}

		if len(args) == 0 {
			prompt := survey.MultiSelect{
				Message: "Shows to remove",
				Options: saved,
			}
			handleErr(survey.AskOne(&prompt, &args))
		}

		removed, err := watchlist.Remove(args...)
		handleErr(err)

		for _, id := range removed {
			fmt.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(id))
		}

		missing, _ := lo.Difference(watchlist.NormalizeAll(args), removed)
		for _, id := range missing {
			fmt.Printf("%s %s is not tracked, did you mean %s?\n",
				style.Fg(color.Red)(icon.Get(icon.Fail)),
				style.Fg(color.Red)(id),
				style.Fg(color.Yellow)(closest(id, saved)),
			)
		}
	},
}

// closest returns the candidate with the smallest edit distance to s.
func closest(s string, candidates []string) string {
	return lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(s, a) < levenshtein.Distance(s, b)
	})
}
