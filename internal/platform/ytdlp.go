package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/samber/lo"

	"github.com/ytget/yt-downloader-cli/internal/log"
	"github.com/ytget/yt-downloader-cli/internal/model"
	"github.com/ytget/yt-downloader-cli/internal/options"
)

// Tool binaries
const (
	YtDlpCommand   = "yt-dlp"
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
)

// SingleItem is the --playlist-items range used for every download
const SingleItem = "1"

// DefaultProgressInterval is how often yt-dlp progress is sampled
const DefaultProgressInterval = 500 * time.Millisecond

// ErrNoOutputFile is returned when yt-dlp finished but the file can't be located
var ErrNoOutputFile = errors.New("could not determine downloaded file")

// Downloader runs yt-dlp for a single video through go-ytdlp
type Downloader struct {
	ffmpegLocation   string
	progressInterval time.Duration
}

// NewDownloader creates a downloader. ffmpegLocation may be empty to let
// yt-dlp search PATH.
func NewDownloader(ffmpegLocation string) *Downloader {
	return &Downloader{
		ffmpegLocation:   ffmpegLocation,
		progressInterval: DefaultProgressInterval,
	}
}

// Download fetches url according to plan and returns the path of the file
// yt-dlp produced, after postprocessing.
func (d *Downloader) Download(ctx context.Context, url string, plan *options.Plan, onProgress func(model.Progress)) (string, error) {
	dl := d.command(plan)

	if onProgress != nil {
		dl.ProgressFunc(d.progressInterval, func(update ytdlp.ProgressUpdate) {
			onProgress(progressFromUpdate(update))
		})
	}

	log.WithFields(map[string]any{
		"url":      url,
		"selector": plan.Selector,
		"output":   plan.OutputTemplate,
	}).Debug("running yt-dlp")

	result, err := dl.Run(ctx, url)
	if err != nil {
		return "", fmt.Errorf("yt-dlp failed: %w", err)
	}

	info, err := result.GetExtractedInfo()
	if err != nil {
		return "", fmt.Errorf("failed to read yt-dlp result: %w", err)
	}

	var filename string
	for _, i := range info {
		if i.Filename != nil && *i.Filename != "" {
			filename = *i.Filename
			break
		}
	}
	if filename == "" {
		return "", ErrNoOutputFile
	}

	if path := FindFirstExisting(outputCandidates(filename, plan)...); path != "" {
		return path, nil
	}
	// postprocessors may have renamed the file in a way we can't predict
	return filename, nil
}

func (d *Downloader) command(plan *options.Plan) *ytdlp.Command {
	// a playlist-only URL ignores --no-playlist, so the item range caps it at one video
	dl := ytdlp.New().
		PrintJSON().
		NoPlaylist().
		PlaylistItems(SingleItem).
		Format(plan.Selector).
		Output(plan.OutputTemplate)

	if d.ffmpegLocation != "" {
		dl = dl.FFmpegLocation(d.ffmpegLocation)
	}
	if plan.ExtractAudio {
		dl = dl.ExtractAudio().AudioFormat(string(plan.AudioCodec))
	}
	if plan.MergeFormat != "" {
		dl = dl.MergeOutputFormat(string(plan.MergeFormat))
	}
	return dl
}

// outputCandidates lists where the final file may be, most specific first.
// Audio extraction and merging change the extension after download.
func outputCandidates(filename string, plan *options.Plan) []string {
	var candidates []string
	if plan.ExtractAudio && plan.AudioCodec != "" {
		candidates = append(candidates, SwapExtension(filename, string(plan.AudioCodec)))
	}
	if plan.MergeFormat != "" {
		candidates = append(candidates, SwapExtension(filename, string(plan.MergeFormat)))
	}
	return append(candidates, filename)
}

func progressFromUpdate(update ytdlp.ProgressUpdate) model.Progress {
	p := model.Progress{
		DownloadedBytes: update.DownloadedBytes,
		TotalBytes:      update.TotalBytes,
		Started:         update.Started,
		ETA:             update.ETA(),
	}
	if update.Info != nil && update.Info.Title != nil {
		p.Title = *update.Info.Title
	}
	return p
}

// ToolPath returns the resolved path of a binary or "" when missing
func ToolPath(name string) string {
	path, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return path
}

type installStep struct {
	name    string
	install func(ctx context.Context)
}

var installSteps = []installStep{
	{YtDlpCommand, func(ctx context.Context) { ytdlp.MustInstall(ctx, nil) }},
	{FFmpegCommand, func(ctx context.Context) { ytdlp.MustInstallFFmpeg(ctx, nil) }},
	{FFprobeCommand, func(ctx context.Context) { ytdlp.MustInstallFFprobe(ctx, nil) }},
}

// InstallTools downloads yt-dlp, ffmpeg and ffprobe into the go-ytdlp cache.
// onStep is called before each tool is installed.
func InstallTools(ctx context.Context, onStep func(name string)) error {
	for _, step := range installSteps {
		if onStep != nil {
			onStep(step.name)
		}
		value, ok := lo.TryWithErrorValue(func() error {
			step.install(ctx)
			return nil
		})
		if !ok {
			return fmt.Errorf("failed to install %s: %v", step.name, value)
		}
		log.Infof("installed %s", step.name)
	}
	return nil
}
