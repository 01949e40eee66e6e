package cli

import (
	"context"
	"io"
	"os"

	"github.com/ytget/yt-downloader-cli/internal/config"
	"github.com/ytget/yt-downloader-cli/internal/download"
	"github.com/ytget/yt-downloader-cli/internal/platform"
	"github.com/ytget/yt-downloader-cli/internal/transcode"
)

// Dependencies are the adapters commands run against
type Dependencies struct {
	Settings *config.Settings
	Out      io.Writer
	Err      io.Writer

	NewExtractor  func(ffmpegLocation string) download.Extractor
	NewTranscoder func(ffmpegLocation string) transcode.Transcoder
	Inspector     download.Inspector
	Playlists     download.PlaylistResolver

	// PromptURL asks the user for a URL; nil disables prompting
	PromptURL func() (string, error)
	// Install fetches external tools
	Install func(ctx context.Context, onStep func(name string)) error
	// LookupTool returns the path of a binary or ""
	LookupTool func(name string) string
}

// DefaultDependencies wires the real adapters
func DefaultDependencies() *Dependencies {
	return &Dependencies{
		Settings: config.NewSettings(nil),
		Out:      os.Stdout,
		Err:      os.Stderr,
		NewExtractor: func(location string) download.Extractor {
			return platform.NewDownloader(location)
		},
		NewTranscoder: func(location string) transcode.Transcoder {
			return transcode.NewService(location)
		},
		Inspector:  platform.NewInspector(),
		Playlists:  platform.NewPlaylistResolver(),
		PromptURL:  promptURL,
		Install:    platform.InstallTools,
		LookupTool: platform.ToolPath,
	}
}
