package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ytget/yt-downloader-cli/internal/key"
)

// OnErrorPolicy decides what a playlist run does after a failed item.
type OnErrorPolicy string

const (
	OnErrorContinue OnErrorPolicy = "continue"
	OnErrorAbort    OnErrorPolicy = "abort"
)

// Default values
const (
	DefaultDownloadDir      = "./downloads"
	DefaultQuality          = "best"
	DefaultFormat           = "mp4"
	DefaultFilenameTemplate = "%(title)s.%(ext)s"
	DefaultOnError          = OnErrorContinue
)

// Settings gives typed access to the configuration
type Settings struct {
	v *viper.Viper
}

// NewSettings creates a settings accessor over v, or over the global viper when v is nil
func NewSettings(v *viper.Viper) *Settings {
	if v == nil {
		v = viper.GetViper()
	}
	return &Settings{v: v}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := strings.TrimSpace(s.v.GetString(key.DownloadDirectory))
	if dir == "" {
		return DefaultDownloadDir
	}
	return dir
}

// GetQuality returns the configured quality token
func (s *Settings) GetQuality() string {
	q := strings.TrimSpace(s.v.GetString(key.DownloadQuality))
	if q == "" {
		return DefaultQuality
	}
	return q
}

// GetFormat returns the configured output format token
func (s *Settings) GetFormat() string {
	f := strings.TrimSpace(s.v.GetString(key.DownloadFormat))
	if f == "" {
		return DefaultFormat
	}
	return f
}

// GetFilenameTemplate returns the filename template
func (s *Settings) GetFilenameTemplate() string {
	template := s.v.GetString(key.DownloadFilenameTemplate)
	if template == "" {
		return DefaultFilenameTemplate
	}
	return template
}

// GetOnError returns the playlist failure policy; unknown values fall back to continue
func (s *Settings) GetOnError() OnErrorPolicy {
	switch p := OnErrorPolicy(strings.ToLower(strings.TrimSpace(s.v.GetString(key.DownloadOnError)))); p {
	case OnErrorAbort, OnErrorContinue:
		return p
	default:
		return DefaultOnError
	}
}

// GetFFmpegLocation returns the configured ffmpeg path, empty for PATH lookup
func (s *Settings) GetFFmpegLocation() string {
	return strings.TrimSpace(s.v.GetString(key.FFmpegLocation))
}

// GetOnErrorOptions returns available failure policies
func (s *Settings) GetOnErrorOptions() []OnErrorPolicy {
	return []OnErrorPolicy{OnErrorContinue, OnErrorAbort}
}

// IsColored reports whether console output should be colored
func (s *Settings) IsColored() bool { return s.getBool(key.CliColored) }

// PromptURL reports whether a missing URL should be asked for interactively
func (s *Settings) PromptURL() bool { return s.getBool(key.CliPromptURL) }

// ShowBanner reports whether the banner is printed
func (s *Settings) ShowBanner() bool { return s.getBool(key.CliBanner) }

// BindPFlag makes flag the highest priority source of k
func (s *Settings) BindPFlag(k string, flag *pflag.Flag) error {
	return s.v.BindPFlag(k, flag)
}

// getBool falls back to the registered default when k was never set
func (s *Settings) getBool(k string) bool {
	if s.v.IsSet(k) {
		return s.v.GetBool(k)
	}
	if b, ok := Default[k].Value.(bool); ok {
		return b
	}
	return false
}

// Get returns the raw value of k
func (s *Settings) Get(k string) any {
	return s.v.Get(k)
}
