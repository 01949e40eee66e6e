package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Quality is a user-facing quality token such as "best" or "720p".
type Quality string

const (
	QualityBest  Quality = "best"
	QualityWorst Quality = "worst"
	Quality144p  Quality = "144p"
	Quality240p  Quality = "240p"
	Quality360p  Quality = "360p"
	Quality480p  Quality = "480p"
	Quality720p  Quality = "720p"
	Quality1080p Quality = "1080p"
	Quality1440p Quality = "1440p"
	Quality2160p Quality = "2160p"
)

// Qualities lists every supported quality in display order.
var Qualities = []Quality{
	QualityBest, QualityWorst,
	Quality144p, Quality240p, Quality360p, Quality480p,
	Quality720p, Quality1080p, Quality1440p, Quality2160p,
}

// Height returns the maximum frame height for resolution tokens, 0 for best/worst.
func (q Quality) Height() int {
	h, err := strconv.Atoi(strings.TrimSuffix(string(q), "p"))
	if err != nil || !strings.HasSuffix(string(q), "p") {
		return 0
	}
	return h
}

// Format is a user-facing output container or audio codec.
type Format string

const (
	FormatMP4  Format = "mp4"
	FormatWebM Format = "webm"
	FormatFLV  Format = "flv"
	FormatOGG  Format = "ogg"
	FormatMKV  Format = "mkv"
	FormatAVI  Format = "avi"

	FormatMP3    Format = "mp3"
	FormatAAC    Format = "aac"
	FormatFLAC   Format = "flac"
	FormatM4A    Format = "m4a"
	FormatWAV    Format = "wav"
	FormatOpus   Format = "opus"
	FormatVorbis Format = "vorbis"
)

// VideoFormats are containers a video download can end up in.
var VideoFormats = []Format{FormatMP4, FormatWebM, FormatFLV, FormatOGG, FormatMKV, FormatAVI}

// AudioFormats are codecs yt-dlp's audio extraction can produce.
var AudioFormats = []Format{FormatMP3, FormatAAC, FormatFLAC, FormatM4A, FormatWAV, FormatOpus, FormatVorbis}

// Formats lists every supported format, video first.
var Formats = append(append([]Format{}, VideoFormats...), AudioFormats...)

// IsAudio reports whether f is an audio codec.
func (f Format) IsAudio() bool {
	return lo.Contains(AudioFormats, f)
}

// Sentinel errors for unrecognized tokens.
var (
	ErrUnsupportedQuality = errors.New("unsupported quality")
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrInvalidFormatID    = errors.New("invalid format id")
)

// UnsupportedError names the rejected token and the valid choices.
type UnsupportedError struct {
	Value   string
	Choices []string
	kind    error
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s %q (valid choices: %s)", e.kind, e.Value, strings.Join(e.Choices, ", "))
}

func (e *UnsupportedError) Unwrap() error {
	return e.kind
}

// ParseQuality validates a quality token, case-insensitively.
func ParseQuality(s string) (Quality, error) {
	q := Quality(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Qualities, q) {
		return "", &UnsupportedError{Value: s, Choices: QualityChoices(), kind: ErrUnsupportedQuality}
	}
	return q, nil
}

// ParseFormat validates a format token, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Formats, f) {
		return "", &UnsupportedError{Value: s, Choices: FormatChoices(), kind: ErrUnsupportedFormat}
	}
	return f, nil
}

// QualityChoices returns the quality tokens as strings, for help text and completion.
func QualityChoices() []string {
	return lo.Map(Qualities, func(q Quality, _ int) string { return string(q) })
}

// FormatChoices returns the format tokens as strings, for help text and completion.
func FormatChoices() []string {
	return lo.Map(Formats, func(f Format, _ int) string { return string(f) })
}
