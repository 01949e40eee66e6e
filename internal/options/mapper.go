package options

import (
	"fmt"
	"path/filepath"
	"strings"
)

// yt-dlp format selectors
const (
	SelectorMP4   = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"
	SelectorAny   = "bestvideo+bestaudio/best"
	SelectorWorst = "worst"
	SelectorAudio = "bestaudio/best"
)

// DefaultAudioCodec is used when audio is extracted for a non-audio format.
const DefaultAudioCodec = FormatMP3

// DefaultOutputTemplate names files after the video title.
const DefaultOutputTemplate = "%(title)s.%(ext)s"

// Input is the raw user request before validation.
type Input struct {
	OutputDir        string
	Quality          string
	Format           string
	AudioOnly        bool
	Playlist         bool
	FilenameTemplate string
	// FormatID is a raw yt-dlp format id that replaces the quality mapping.
	FormatID string
	// HasFFmpeg tells the mapper whether postprocessing and conversion can run.
	HasFFmpeg bool
}

// Plan is the validated set of options handed to the extraction library.
type Plan struct {
	Quality   Quality
	Format    Format
	AudioOnly bool
	Playlist  bool

	// Selector is the yt-dlp format selector (-f).
	Selector string
	// FormatID is set when Selector came from an explicit format id.
	FormatID string
	// OutputTemplate is the yt-dlp output template including the directory.
	OutputTemplate string

	// ExtractAudio asks yt-dlp to extract audio into AudioCodec.
	ExtractAudio bool
	AudioCodec   Format

	// MergeFormat is passed as --merge-output-format when yt-dlp can produce
	// the container itself.
	MergeFormat Format
	// TranscodeTo is the container the downloaded file is converted to with
	// ffmpeg when it does not already have that extension.
	TranscodeTo Format

	// Warnings describe degraded behavior, e.g. missing ffmpeg.
	Warnings []string
}

// NeedsTranscode reports whether a file at path still has to be converted.
func (p *Plan) NeedsTranscode(path string) bool {
	if p.TranscodeTo == "" {
		return false
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return ext != string(p.TranscodeTo)
}

// natively merged by yt-dlp
var mergeFormats = map[Format]bool{
	FormatMP4:  true,
	FormatWebM: true,
	FormatMKV:  true,
}

// Map validates the input tokens and builds the download plan. Unknown tokens
// return an *UnsupportedError wrapping ErrUnsupportedQuality or ErrUnsupportedFormat.
// A FormatID overrides the selector derived from the quality.
func Map(in Input) (*Plan, error) {
	quality, err := ParseQuality(in.Quality)
	if err != nil {
		return nil, err
	}
	format, err := ParseFormat(in.Format)
	if err != nil {
		return nil, err
	}
	formatID := strings.TrimSpace(in.FormatID)
	if strings.ContainsAny(formatID, " \t\n") {
		return nil, fmt.Errorf("%w %q", ErrInvalidFormatID, in.FormatID)
	}

	tpl := in.FilenameTemplate
	if tpl == "" {
		tpl = DefaultOutputTemplate
	}

	plan := &Plan{
		Quality:        quality,
		Format:         format,
		AudioOnly:      in.AudioOnly || format.IsAudio(),
		Playlist:       in.Playlist,
		OutputTemplate: filepath.Join(in.OutputDir, tpl),
	}

	if plan.AudioOnly {
		mapAudio(plan, in.HasFFmpeg)
	} else {
		mapVideo(plan, in.HasFFmpeg)
	}

	if formatID != "" {
		plan.FormatID = formatID
		plan.Selector = formatID
	}

	return plan, nil
}

func mapAudio(plan *Plan, hasFFmpeg bool) {
	plan.Selector = SelectorAudio

	if !hasFFmpeg {
		plan.Warnings = append(plan.Warnings, "Downloading in original audio format (no FFmpeg for conversion)")
		return
	}

	plan.ExtractAudio = true
	plan.AudioCodec = plan.Format
	if !plan.Format.IsAudio() {
		plan.AudioCodec = DefaultAudioCodec
	}
}

func mapVideo(plan *Plan, hasFFmpeg bool) {
	base := SelectorAny
	if plan.Format == FormatMP4 {
		base = SelectorMP4
	}

	switch plan.Quality {
	case QualityBest:
		plan.Selector = base
	case QualityWorst:
		plan.Selector = SelectorWorst
	default:
		plan.Selector = LimitHeight(base, plan.Quality.Height())
	}

	if plan.Format == FormatMP4 {
		return
	}

	if !hasFFmpeg {
		plan.Warnings = append(plan.Warnings,
			fmt.Sprintf("Cannot convert to %s - FFmpeg not found. Downloading in original format.", plan.Format))
		return
	}

	if mergeFormats[plan.Format] {
		plan.MergeFormat = plan.Format
	}
	plan.TranscodeTo = plan.Format
}

// LimitHeight constrains the video stream of every alternative in a yt-dlp
// selector to frames no taller than height. Audio-only parts are left alone.
func LimitHeight(selector string, height int) string {
	if height <= 0 {
		return selector
	}
	filter := fmt.Sprintf("[height<=%d]", height)

	alternatives := strings.Split(selector, "/")
	for i, alt := range alternatives {
		parts := strings.Split(alt, "+")
		parts[0] += filter
		alternatives[i] = strings.Join(parts, "+")
	}
	return strings.Join(alternatives, "/")
}
