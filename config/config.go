// Package config registers the configuration keys with their defaults and
// loads them through viper from the config file and the environment.
package config

import (
	"errors"
	"strings"

	"github.com/nextep-cli/nextep/constant"
	"github.com/nextep-cli/nextep/filesystem"
	"github.com/nextep-cli/nextep/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps a key to the suffix of its environment variable.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, binds environment variables and reads the config
// file. A missing file is not an error.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Nextep)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Nextep)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, k := range EnvExposed {
		viper.MustBindEnv(k)
	}

	viper.SetTypeByDefaultValue(true)
	for k, field := range Default {
		viper.SetDefault(k, field.Value)
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return err
	}
	return nil
}
