package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ytget/yt-downloader-cli/internal/model"
)

func newTestConsole() (*Console, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewConsole(out, errOut, false), out, errOut
}

func TestProgressLine(t *testing.T) {
	tests := []struct {
		name     string
		task     model.DownloadTask
		expected string
	}{
		{
			name:     "known values",
			task:     model.DownloadTask{Status: model.TaskStatusDownloading, Percent: 45, Speed: "1.2 MB/s", ETASec: 3},
			expected: "Progress: 45% | Speed: 1.2 MB/s | ETA: 00:03",
		},
		{
			name:     "unknown speed and eta",
			task:     model.DownloadTask{Status: model.TaskStatusDownloading, Percent: 0, ETASec: -1},
			expected: "Progress: 0% | Speed: N/A | ETA: N/A",
		},
		{
			name:     "converting",
			task:     model.DownloadTask{Status: model.TaskStatusConverting, Percent: 70},
			expected: "Converting: 70%",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ProgressLine(&test.task); got != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestFormatLine(t *testing.T) {
	got := FormatLine(model.FormatInfo{ID: "137", Ext: "mp4", Resolution: "1920x1080", Note: "1080p"})
	if got != "ID: 137 | MP4 | 1920x1080 | 1080p" {
		t.Errorf("Unexpected line: %q", got)
	}

	withSize := FormatLine(model.FormatInfo{ID: "140", Ext: "m4a", Resolution: "audio only", Size: 3_000_000})
	if !strings.HasSuffix(withSize, "| 3.0 MB") {
		t.Errorf("Expected size suffix, got %q", withSize)
	}
}

func TestConsoleProgressSteps(t *testing.T) {
	c, out, _ := newTestConsole()
	task := &model.DownloadTask{ID: "t1", Status: model.TaskStatusDownloading, ETASec: -1}

	for _, p := range []int{0, 3, 9, 12, 15, 55, 100} {
		task.Percent = p
		c.TaskProgress(task)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Errorf("Expected 4 progress lines (0, 12, 55, 100), got %d: %v", len(lines), lines)
	}
}

func TestConsoleProgressIgnoresInactiveTasks(t *testing.T) {
	c, out, _ := newTestConsole()

	for _, status := range []model.TaskStatus{model.TaskStatusPending, model.TaskStatusCompleted, model.TaskStatusSkipped} {
		c.TaskProgress(&model.DownloadTask{ID: "t1", Status: status, Percent: 50, ETASec: -1})
	}
	if out.Len() != 0 {
		t.Errorf("Expected no progress for inactive tasks, got %q", out.String())
	}
}

func TestConsoleWarnAndPlaylist(t *testing.T) {
	c, out, _ := newTestConsole()

	c.Warn("FFmpeg not found")
	c.Playlist(&model.Playlist{Title: "Mix"})

	if !strings.Contains(out.String(), IconWarning+" Warning: FFmpeg not found") {
		t.Errorf("Expected warning icon, got %q", out.String())
	}
	if !strings.Contains(out.String(), IconInfo+" Playlist: Mix") {
		t.Errorf("Expected playlist line, got %q", out.String())
	}
}

func TestConsoleTaskFinished(t *testing.T) {
	c, out, errOut := newTestConsole()

	c.TaskFinished(&model.DownloadTask{Status: model.TaskStatusCompleted, OutputPath: "/d/v.mp4"})
	if !strings.Contains(out.String(), "Download complete!") || !strings.Contains(out.String(), "Saved to: /d/v.mp4") {
		t.Errorf("Unexpected output: %q", out.String())
	}

	c.TaskFinished(&model.DownloadTask{Status: model.TaskStatusError, LastError: "boom"})
	if !strings.Contains(errOut.String(), "Download Error: boom") {
		t.Errorf("Expected error on stderr, got %q", errOut.String())
	}
}

func TestConsoleSummary(t *testing.T) {
	c, out, errOut := newTestConsole()

	c.Summary(&model.Summary{OutputDir: "/d", Tasks: []*model.DownloadTask{
		{Status: model.TaskStatusCompleted},
		{Status: model.TaskStatusError, Title: "Broken", LastError: "gone"},
		{Status: model.TaskStatusSkipped},
	}})

	if !strings.Contains(errOut.String(), "Summary: 1 of 3 succeeded, 1 failed, 1 skipped") {
		t.Errorf("Unexpected summary: %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "Broken: gone") {
		t.Errorf("Expected failed item listed, got %q", errOut.String())
	}
	if !strings.Contains(out.String(), "Output directory: /d") {
		t.Errorf("Expected output directory, got %q", out.String())
	}
}

func TestConsoleVideoInfo(t *testing.T) {
	c, out, _ := newTestConsole()
	c.VideoInfo(&model.VideoInfo{Title: "Clip", Duration: 95 * time.Second})

	if !strings.Contains(out.String(), "Title: Clip") || !strings.Contains(out.String(), "Duration: 01:35") {
		t.Errorf("Unexpected output: %q", out.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("A buffer is not a terminal")
	}
}
