package transcode

import (
	"context"

	"github.com/ytget/yt-downloader-cli/internal/model"
)

// Transcoder converts downloaded media into another container with ffmpeg.
type Transcoder interface {
	// Available reports whether the ffmpeg binary can be found.
	Available() bool
	// Transcode converts inputPath into target (an extension without dot) and
	// returns the finished job. onProgress may be nil.
	Transcode(ctx context.Context, inputPath, target string, onProgress func(*model.TranscodeJob)) (*model.TranscodeJob, error)
}
