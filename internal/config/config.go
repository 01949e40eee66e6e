// Package config manages defaults, the TOML config file and environment
// overrides through viper.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/ytget/yt-downloader-cli/internal/constant"
	"github.com/ytget/yt-downloader-cli/internal/filesystem"
	"github.com/ytget/yt-downloader-cli/internal/where"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// EnvPrefix is prepended to every environment variable.
var EnvPrefix = strings.ToUpper(EnvKeyReplacer.Replace(constant.App))

// Setup registers defaults and env bindings and reads the config file if present.
func Setup() error {
	return setup(viper.GetViper(), where.Config())
}

func setup(v *viper.Viper, dir string) error {
	v.SetConfigName(constant.App)
	v.SetConfigType("toml")
	v.SetFs(filesystem.API())
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, k := range EnvExposed {
		if err := v.BindEnv(k); err != nil {
			return err
		}
	}

	v.SetTypeByDefaultValue(true)
	for name, field := range Default {
		v.SetDefault(name, field.Value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}
