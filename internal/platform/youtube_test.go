package platform

import (
	"errors"
	"strings"
	"testing"

	"github.com/kkdai/youtube/v2"
)

func TestExtFromMimeType(t *testing.T) {
	tests := []struct {
		mime     string
		expected string
	}{
		{`video/mp4; codecs="avc1.640028"`, "mp4"},
		{`video/webm; codecs="vp9"`, "webm"},
		{`audio/mp4; codecs="mp4a.40.2"`, "m4a"},
		{`audio/webm; codecs="opus"`, "webm"},
		{"garbage", "unknown"},
		{"video/", "unknown"},
	}

	for _, test := range tests {
		if got := extFromMimeType(test.mime); got != test.expected {
			t.Errorf("extFromMimeType(%q) = %q, expected %q", test.mime, got, test.expected)
		}
	}
}

func TestFormatFromYouTube(t *testing.T) {
	video := formatFromYouTube(youtube.Format{
		ItagNo:        137,
		MimeType:      `video/mp4; codecs="avc1.640028"`,
		Width:         1920,
		Height:        1080,
		FPS:           30,
		QualityLabel:  "1080p",
		ContentLength: 1024,
	})

	if video.ID != "137" || video.Ext != "mp4" || video.Resolution != "1920x1080" {
		t.Errorf("Unexpected video format: %+v", video)
	}
	if video.Note != "1080p, 30fps, video only" {
		t.Errorf("Unexpected note: %q", video.Note)
	}
	if video.Size != 1024 || video.Height != 1080 {
		t.Errorf("Unexpected size/height: %+v", video)
	}

	audio := formatFromYouTube(youtube.Format{
		ItagNo:        140,
		MimeType:      `audio/mp4; codecs="mp4a.40.2"`,
		Quality:       "tiny",
		AudioQuality:  "AUDIO_QUALITY_MEDIUM",
		AudioChannels: 2,
	})

	if audio.Resolution != audioOnlyResolution || audio.Ext != "m4a" {
		t.Errorf("Unexpected audio format: %+v", audio)
	}
	if audio.Note != "tiny, medium" {
		t.Errorf("Unexpected audio note: %q", audio.Note)
	}
}

func TestClassifyYouTubeError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
		contains    string
	}{
		{"private", youtube.ErrVideoPrivate, true, "private"},
		{"login", youtube.ErrLoginRequired, true, "login required"},
		{"playability", youtube.ErrPlayabiltyStatus{Status: "ERROR", Reason: "removed"}, true, "removed"},
		{"other", errors.New("boom"), false, "boom"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := classifyYouTubeError(test.err)
			if errors.Is(err, ErrVideoUnavailable) != test.unavailable {
				t.Errorf("errors.Is(ErrVideoUnavailable) = %v, expected %v", !test.unavailable, test.unavailable)
			}
			if !strings.Contains(err.Error(), test.contains) {
				t.Errorf("Expected %q in %q", test.contains, err.Error())
			}
		})
	}
}
