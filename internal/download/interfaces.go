package download

import (
	"context"

	"github.com/ytget/yt-downloader-cli/internal/model"
	"github.com/ytget/yt-downloader-cli/internal/options"
)

// Extractor downloads a single video according to a plan.
type Extractor interface {
	Download(ctx context.Context, url string, plan *options.Plan, onProgress func(model.Progress)) (string, error)
}

// Inspector reads metadata without downloading.
type Inspector interface {
	VideoInfo(ctx context.Context, url string) (*model.VideoInfo, error)
	Formats(ctx context.Context, url string) ([]model.FormatInfo, error)
}

// PlaylistResolver expands playlist URLs into their entries.
type PlaylistResolver interface {
	IsPlaylistURL(url string) bool
	ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error)
}

// Reporter receives user facing events.
type Reporter interface {
	Info(msg string)
	Warn(msg string)
	VideoInfo(info *model.VideoInfo)
	Playlist(playlist *model.Playlist)
	TaskStarted(task *model.DownloadTask, total int)
	TaskProgress(task *model.DownloadTask)
	TaskFinished(task *model.DownloadTask)
	Formats(formats []model.FormatInfo)
	Summary(summary *model.Summary)
}
