package platform

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kkdai/youtube/v2"

	"github.com/ytget/yt-downloader-cli/internal/model"
)

// Sentinel errors for metadata lookups
var (
	ErrVideoUnavailable = errors.New("video is unavailable")
	ErrNoFormats        = errors.New("no formats available")
)

const audioOnlyResolution = "audio only"

// Inspector reads video metadata and stream lists without downloading
type Inspector struct {
	client *youtube.Client
}

// NewInspector creates an inspector with a default youtube client
func NewInspector() *Inspector {
	return &Inspector{client: &youtube.Client{}}
}

// VideoInfo returns title, author and duration of the video at url
func (i *Inspector) VideoInfo(ctx context.Context, url string) (*model.VideoInfo, error) {
	video, err := i.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, classifyYouTubeError(err)
	}
	return &model.VideoInfo{
		ID:       video.ID,
		Title:    video.Title,
		Author:   video.Author,
		Duration: video.Duration,
	}, nil
}

// Formats lists the streams offered for the video at url
func (i *Inspector) Formats(ctx context.Context, url string) ([]model.FormatInfo, error) {
	video, err := i.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, classifyYouTubeError(err)
	}
	if len(video.Formats) == 0 {
		return nil, ErrNoFormats
	}

	formats := make([]model.FormatInfo, 0, len(video.Formats))
	for _, f := range video.Formats {
		formats = append(formats, formatFromYouTube(f))
	}
	return formats, nil
}

func formatFromYouTube(f youtube.Format) model.FormatInfo {
	info := model.FormatInfo{
		ID:     fmt.Sprint(f.ItagNo),
		Ext:    extFromMimeType(f.MimeType),
		Height: f.Height,
		Size:   f.ContentLength,
	}

	if f.Width > 0 && f.Height > 0 {
		info.Resolution = fmt.Sprintf("%dx%d", f.Width, f.Height)
	} else {
		info.Resolution = audioOnlyResolution
	}

	var notes []string
	if f.QualityLabel != "" {
		notes = append(notes, f.QualityLabel)
	} else if f.Quality != "" {
		notes = append(notes, f.Quality)
	}
	if f.FPS > 0 && f.Height > 0 {
		notes = append(notes, fmt.Sprintf("%dfps", f.FPS))
	}
	if f.AudioQuality != "" {
		notes = append(notes, strings.ToLower(strings.TrimPrefix(f.AudioQuality, "AUDIO_QUALITY_")))
	}
	if f.AudioChannels == 0 && f.Height > 0 {
		notes = append(notes, "video only")
	}
	info.Note = strings.Join(notes, ", ")

	return info
}

// extFromMimeType maps `video/mp4; codecs="..."` to mp4
func extFromMimeType(mime string) string {
	kind, rest, ok := strings.Cut(mime, "/")
	if !ok {
		return "unknown"
	}
	sub, _, _ := strings.Cut(rest, ";")
	sub = strings.TrimSpace(sub)
	if kind == "audio" && sub == "mp4" {
		return "m4a"
	}
	if sub == "" {
		return "unknown"
	}
	return sub
}

func classifyYouTubeError(err error) error {
	var status youtube.ErrPlayabiltyStatus
	switch {
	case errors.Is(err, youtube.ErrVideoPrivate):
		return fmt.Errorf("%w: video is private", ErrVideoUnavailable)
	case errors.Is(err, youtube.ErrLoginRequired):
		return fmt.Errorf("%w: login required to confirm age", ErrVideoUnavailable)
	case errors.As(err, &status):
		return fmt.Errorf("%w: %s", ErrVideoUnavailable, status.Reason)
	}
	return fmt.Errorf("failed to fetch video info: %w", err)
}
