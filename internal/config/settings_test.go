package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ytget/yt-downloader-cli/internal/key"
)

func newTestSettings(t *testing.T) (*Settings, *viper.Viper) {
	t.Helper()
	v := viper.New()
	for name, field := range Default {
		v.SetDefault(name, field.Value)
	}
	return NewSettings(v), v
}

func TestNewSettings(t *testing.T) {
	v := viper.New()
	settings := NewSettings(v)

	if settings.v != v {
		t.Error("Settings viper reference should match provided instance")
	}

	if NewSettings(nil).v != viper.GetViper() {
		t.Error("nil viper should fall back to the global instance")
	}
}

func TestDownloadDirectory(t *testing.T) {
	settings, v := newTestSettings(t)

	if dir := settings.GetDownloadDirectory(); dir != DefaultDownloadDir {
		t.Errorf("Expected default download directory %s, got %s", DefaultDownloadDir, dir)
	}

	v.Set(key.DownloadDirectory, "/custom/downloads")
	if dir := settings.GetDownloadDirectory(); dir != "/custom/downloads" {
		t.Errorf("Expected download directory /custom/downloads, got %s", dir)
	}

	v.Set(key.DownloadDirectory, "   ")
	if dir := settings.GetDownloadDirectory(); dir != DefaultDownloadDir {
		t.Errorf("Blank directory should fall back to default, got %s", dir)
	}
}

func TestQualityAndFormat(t *testing.T) {
	settings, v := newTestSettings(t)

	if q := settings.GetQuality(); q != DefaultQuality {
		t.Errorf("Expected default quality %s, got %s", DefaultQuality, q)
	}
	if f := settings.GetFormat(); f != DefaultFormat {
		t.Errorf("Expected default format %s, got %s", DefaultFormat, f)
	}

	v.Set(key.DownloadQuality, "720p")
	v.Set(key.DownloadFormat, "mkv")

	if q := settings.GetQuality(); q != "720p" {
		t.Errorf("Expected quality 720p, got %s", q)
	}
	if f := settings.GetFormat(); f != "mkv" {
		t.Errorf("Expected format mkv, got %s", f)
	}
}

func TestFilenameTemplate(t *testing.T) {
	settings, v := newTestSettings(t)

	if tpl := settings.GetFilenameTemplate(); tpl != DefaultFilenameTemplate {
		t.Errorf("Expected default template %s, got %s", DefaultFilenameTemplate, tpl)
	}

	v.Set(key.DownloadFilenameTemplate, "%(id)s.%(ext)s")
	if tpl := settings.GetFilenameTemplate(); tpl != "%(id)s.%(ext)s" {
		t.Errorf("Expected custom template, got %s", tpl)
	}

	v.Set(key.DownloadFilenameTemplate, "")
	if tpl := settings.GetFilenameTemplate(); tpl != DefaultFilenameTemplate {
		t.Errorf("Empty template should fall back to default, got %s", tpl)
	}
}

func TestOnError(t *testing.T) {
	tests := []struct {
		value    string
		expected OnErrorPolicy
	}{
		{"continue", OnErrorContinue},
		{"abort", OnErrorAbort},
		{" ABORT ", OnErrorAbort},
		{"retry", OnErrorContinue},
		{"", OnErrorContinue},
	}

	for _, test := range tests {
		settings, v := newTestSettings(t)
		v.Set(key.DownloadOnError, test.value)
		if got := settings.GetOnError(); got != test.expected {
			t.Errorf("GetOnError() with %q = %s, expected %s", test.value, got, test.expected)
		}
	}

	settings, _ := newTestSettings(t)
	if len(settings.GetOnErrorOptions()) != 2 {
		t.Errorf("Expected 2 policies, got %d", len(settings.GetOnErrorOptions()))
	}
}

func TestCliToggles(t *testing.T) {
	settings := NewSettings(viper.New())

	if !settings.IsColored() || !settings.PromptURL() || !settings.ShowBanner() {
		t.Error("CLI toggles should default to the registered values")
	}

	settings.v.Set(key.CliBanner, false)
	if settings.ShowBanner() {
		t.Error("Explicit false should override the default")
	}
}

func TestBindPFlag(t *testing.T) {
	settings, _ := newTestSettings(t)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("quality", "q", DefaultQuality, "")
	if err := settings.BindPFlag(key.DownloadQuality, flags.Lookup("quality")); err != nil {
		t.Fatalf("Failed to bind flag: %v", err)
	}

	if q := settings.GetQuality(); q != DefaultQuality {
		t.Errorf("Unchanged flag should keep default, got %s", q)
	}

	if err := flags.Parse([]string{"-q", "720p"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	if q := settings.GetQuality(); q != "720p" {
		t.Errorf("Expected flag value 720p, got %s", q)
	}
}
