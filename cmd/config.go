package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nextep-cli/nextep/color"
	"github.com/nextep-cli/nextep/config"
	"github.com/nextep-cli/nextep/constant"
	"github.com/nextep-cli/nextep/filesystem"
	"github.com/nextep-cli/nextep/icon"
	"github.com/nextep-cli/nextep/style"
	"github.com/nextep-cli/nextep/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

func errUnknownKey(k string) error {
	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(k),
		style.Fg(color.Yellow)(closest(k, lo.Keys(config.Default))),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	keys := lo.Keys(config.Default)
	slices.Sort(keys)
	return keys, cobra.ShellCompDirectiveNoFileComp
}

func configFile() string {
	return filepath.Join(where.Config(), constant.Nextep+".toml")
}

// lookupField resolves the key from the first argument or the --key flag.
func lookupField(cmd *cobra.Command, args []string) (config.Field, error) {
	k := lo.Must(cmd.Flags().GetString("key"))
	if len(args) > 0 {
		k = args[0]
	}

	if k == "" {
		return config.Field{}, errors.New("key is required as an argument or --key flag")
	}

	field, ok := config.Default[k]
	if !ok {
		return config.Field{}, errUnknownKey(k)
	}
	return field, nil
}

// writeConfig saves viper state, creating the file when it does not exist yet.
func writeConfig() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configCmd is the parent of the configuration commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings and defaults",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Configuration keys to describe")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print as json")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))
		if len(keys) == 0 {
			keys = lo.Keys(config.Default)
			slices.Sort(keys)
		}

		fields := make([]*config.Field, 0, len(keys))
		for _, k := range keys {
			field, ok := config.Default[k]
			if !ok {
				handleErr(errUnknownKey(k))
			}
			fields = append(fields, &field)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, field := range fields {
			cmd.Print(field.Pretty())

			if i < len(fields)-1 {
				cmd.Print("\n\n")
			}
		}
		cmd.Println()
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "Configuration key to set")
	configSetCmd.Flags().StringP("value", "v", "", "New value")
	lo.Must0(configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Set a configuration value",
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := lookupField(cmd, args)
		handleErr(err)

		raw := lo.Must(cmd.Flags().GetString("value"))
		if len(args) == 2 {
			raw = args[1]
		} else if !cmd.Flags().Changed("value") {
			handleErr(errors.New("value is required as an argument or --value flag"))
		}

		value, err := field.Parse(raw)
		handleErr(err)

		viper.Set(field.Key, value)
		handleErr(writeConfig())

		success("set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "Configuration key to print")
	lo.Must0(configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
	configGetCmd.SetOut(os.Stdout)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print a configuration value",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := lookupField(cmd, args)
		handleErr(err)

		cmd.Println(viper.Get(field.Key))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite the existing configuration file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			exists, err := filesystem.API().Exists(path)
			handleErr(err)
			if exists {
				handleErr(filesystem.API().Remove(path))
			}
		}

		handleErr(viper.SafeWriteConfig())
		success("wrote config to %s", path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		success("deleted config")
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "Configuration key to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	lo.Must0(configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore configuration keys to their default values",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
			handleErr(writeConfig())
			success("reset all config values")
			return
		}

		field, err := lookupField(cmd, nil)
		handleErr(err)

		viper.Set(field.Key, field.Value)
		handleErr(writeConfig())
		success("reset %s to default value %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(field.Value)))
	},
}
