// Package where resolves the application's filesystem locations.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/ytget/yt-downloader-cli/internal/constant"
	"github.com/ytget/yt-downloader-cli/internal/filesystem"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "YT_DOWNLOADER_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honoring YT_DOWNLOADER_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(".", ".config")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs returns the directory for log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// ConfigFile returns the expected path of the TOML config file.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}
