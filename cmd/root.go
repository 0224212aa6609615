// Package cmd implements the command-line interface of nextep.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/nextep-cli/nextep/color"
	"github.com/nextep-cli/nextep/constant"
	"github.com/nextep-cli/nextep/icon"
	"github.com/nextep-cli/nextep/key"
	"github.com/nextep-cli/nextep/log"
	"github.com/nextep-cli/nextep/query"
	"github.com/nextep-cli/nextep/report"
	"github.com/nextep-cli/nextep/source"
	"github.com/nextep-cli/nextep/style"
	"github.com/nextep-cli/nextep/tracker"
	"github.com/nextep-cli/nextep/util"
	"github.com/nextep-cli/nextep/watchlist"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errNoShows is returned when neither arguments nor the watchlist name a show.
var errNoShows = errors.New("no shows to track: pass identifiers or add them with `nextep shows add`")

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (e.g. nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(formatNames(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formatNames(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.OutputFormat, rootCmd.Flags().Lookup("format")))

	rootCmd.Flags().IntP("concurrency", "c", 0, "Number of show pages fetched in parallel")
	lo.Must0(viper.BindPFlag(key.FetchConcurrency, rootCmd.Flags().Lookup("concurrency")))

	rootCmd.Flags().BoolP("titles", "t", false, "Show humanized titles instead of identifiers")
	lo.Must0(viper.BindPFlag(key.OutputTitles, rootCmd.Flags().Lookup("titles")))

	rootCmd.Flags().BoolP("quiet", "q", false, "Do not print progress to stderr (implied when stderr is not a terminal)")
}

func formatNames() []string {
	return lo.Map(report.Formats, func(f report.Format, _ int) string { return string(f) })
}

// rootCmd tracks the shows given as arguments, or the watchlist when there are none.
var rootCmd = &cobra.Command{
	Use:   constant.Nextep + " [show...]",
	Short: "Previous and next episodes of your TV shows",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Previous and next episodes of your TV shows"),
	Example: "  nextep the-expanse \"doctor who\"\n  nextep --format markdown",
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(track(cmd, args))
	},
}

func track(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(viper.GetString(key.OutputFormat))
	if err != nil {
		return err
	}

	ids := watchlist.NormalizeAll(args)
	if len(args) == 0 {
		if ids, err = watchlist.Load(); err != nil {
			return fmt.Errorf("load watchlist: %w", err)
		}
	} else {
		util.Ignore(func() error { return query.Remember(1, ids...) })
	}

	if len(ids) == 0 {
		return errNoShows
	}

	log.Infof("tracking %s", util.Quantify(len(ids), "show", "shows"))

	opts := tracker.Options{Concurrency: viper.GetInt(key.FetchConcurrency)}
	quiet := lo.Must(cmd.Flags().GetBool("quiet")) || !util.IsStderrTerminal()

	done := func() {}
	if !quiet {
		opts.Progress, done = tracker.ProgressLine()
	}

	shows := tracker.Track(cmd.Context(), source.NewNextEpisode(), ids, opts)
	done()

	if !quiet {
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Show), tracker.Summary(shows))
	}

	var width int
	if util.IsTerminal() {
		if w, _, err := util.TerminalSize(); err == nil {
			width = w
		}
	}

	return report.Render(cmd.OutOrStdout(), shows, format, report.Options{
		Wrap:    viper.GetInt(key.OutputWrap),
		Titles:  viper.GetBool(key.OutputTitles),
		Colored: viper.GetBool(key.OutputColored) && util.IsTerminal(),
		Width:   width,
	})
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Println(err)
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
