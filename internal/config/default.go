package config

import (
	"sort"
	"strings"

	"github.com/ytget/yt-downloader-cli/internal/key"
)

// Field is a registered configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides this field.
func (f *Field) Env() string {
	return EnvPrefix + "_" + strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
}

// FieldValue is a field next to the value currently in effect.
type FieldValue struct {
	Key         string `json:"key"`
	Value       any    `json:"value"`
	Default     any    `json:"default"`
	Description string `json:"description"`
	Env         string `json:"env"`
}

// Resolve reads the current value of f from s.
func (f *Field) Resolve(s *Settings) FieldValue {
	return FieldValue{
		Key:         f.Key,
		Value:       s.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Env:         f.Env(),
	}
}

// Default holds every known configuration field keyed by name.
var Default = make(map[string]Field)

// EnvExposed lists keys bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.DownloadDirectory, DefaultDownloadDir, "Directory downloaded files are written to")
	register(key.DownloadQuality, DefaultQuality, "Default video quality (best, worst, 144p ... 2160p)")
	register(key.DownloadFormat, DefaultFormat, "Default output format (mp4, webm, mkv, mp3, ...)")
	register(key.DownloadFilenameTemplate, DefaultFilenameTemplate, "yt-dlp output template, relative to the download directory")
	register(key.DownloadOnError, string(DefaultOnError), "What to do when a playlist item fails: continue or abort")
	register(key.FFmpegLocation, "", "Path to the ffmpeg binary or its directory.\nEmpty means look it up in PATH")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliPromptURL, true, "Ask for the URL when it is missing and stdin is a terminal")
	register(key.CliBanner, true, "Print the banner before downloading")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJSON, false, "Use json format for logs")
}

// Fields returns the registered fields sorted by key.
func Fields() []Field {
	fields := make([]Field, 0, len(Default))
	for _, f := range Default {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields
}
