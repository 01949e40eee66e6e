package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DownloadTask is one item of a run: a single video or one playlist entry
type DownloadTask struct {
	ID         string
	Index      int // 1-based position in the run
	URL        string
	Title      string
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	Speed      string  // human readable speed (e.g., "1.2MB/s")
	ETASec     int     // ETA in seconds, -1 if unknown
	LastError  string
	OutputPath string
	StartedAt  time.Time
	FinishedAt time.Time
}

// TranscodeJob is a single ffmpeg conversion
type TranscodeJob struct {
	ID         string
	InputPath  string
	OutputPath string
	Target     string // container extension without dot
	Status     TaskStatus
	Progress   float64
	Percent    int
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetETAString returns ETA formatted as hh:mm:ss, or "N/A" if unknown
func (dt *DownloadTask) GetETAString() string {
	if dt.ETASec <= 0 {
		return "N/A"
	}
	return FormatSeconds(dt.ETASec)
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}

	if dt.OutputPath != "" {
		name := filepath.Base(dt.OutputPath)
		if idx := strings.LastIndex(name, "."); idx > 0 {
			name = name[:idx]
		}
		return name
	}

	return dt.URL
}

// FormatSeconds renders seconds as mm:ss, or hh:mm:ss past an hour
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
