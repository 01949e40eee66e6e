// Package transcode runs ffmpeg as a subprocess for conversions yt-dlp
// cannot perform while merging.
package transcode

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-downloader-cli/internal/filesystem"
	"github.com/ytget/yt-downloader-cli/internal/log"
	"github.com/ytget/yt-downloader-cli/internal/model"
)

// Executable and I/O constants
const (
	FFmpegCommand       = "ffmpeg"
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"
	ProgressPipeTarget  = "pipe:2"
	ProgressTimePrefix  = "out_time_us="
	TaskIDPrefix        = "transcode-"
	FastStartFlag       = "+faststart"
)

// ErrUnsupportedTarget is returned for containers without a codec profile.
var ErrUnsupportedTarget = errors.New("unsupported transcode target")

// codecProfile holds the ffmpeg codec arguments for a target container.
type codecProfile struct {
	Video []string
	Audio []string
	Extra []string
}

var profiles = map[string]codecProfile{
	"mp4":  {Video: []string{"-c:v", "libx264", "-preset", "medium", "-crf", "23"}, Audio: []string{"-c:a", "aac", "-b:a", "128k"}, Extra: []string{"-movflags", FastStartFlag}},
	"mkv":  {Video: []string{"-c:v", "copy"}, Audio: []string{"-c:a", "copy"}},
	"webm": {Video: []string{"-c:v", "libvpx-vp9", "-crf", "32", "-b:v", "0"}, Audio: []string{"-c:a", "libopus", "-b:a", "128k"}},
	"avi":  {Video: []string{"-c:v", "mpeg4", "-q:v", "5"}, Audio: []string{"-c:a", "libmp3lame", "-q:a", "4"}},
	"flv":  {Video: []string{"-c:v", "libx264", "-preset", "medium", "-crf", "23"}, Audio: []string{"-c:a", "aac", "-b:a", "128k", "-ar", "44100"}},
	"ogg":  {Video: []string{"-c:v", "libtheora", "-q:v", "7"}, Audio: []string{"-c:a", "libvorbis", "-q:a", "5"}},
}

// Targets returns the containers Transcode accepts.
func Targets() []string {
	return []string{"mp4", "mkv", "webm", "avi", "flv", "ogg"}
}

// Service runs ffmpeg synchronously, one job at a time
type Service struct {
	ffmpegPath  string
	ffprobePath string
}

// NewService creates a transcoder. location is the ffmpeg binary or the
// directory containing it; empty means PATH lookup.
func NewService(location string) *Service {
	ffmpeg, ffprobe := resolveBinaries(location)
	return &Service{ffmpegPath: ffmpeg, ffprobePath: ffprobe}
}

func resolveBinaries(location string) (string, string) {
	if location == "" {
		return FFmpegCommand, FFprobeCommand
	}
	if isDir, _ := filesystem.API().DirExists(location); isDir {
		return filepath.Join(location, FFmpegCommand), filepath.Join(location, FFprobeCommand)
	}
	return location, filepath.Join(filepath.Dir(location), FFprobeCommand)
}

// Available reports whether ffmpeg can be executed
func (s *Service) Available() bool {
	_, err := exec.LookPath(s.ffmpegPath)
	return err == nil
}

// Transcode converts inputPath into target, removing the source on success
func (s *Service) Transcode(ctx context.Context, inputPath, target string, onProgress func(*model.TranscodeJob)) (*model.TranscodeJob, error) {
	target = strings.ToLower(strings.TrimPrefix(target, "."))
	outputPath := generateOutputPath(inputPath, target)

	args, err := BuildFFmpegArgs(inputPath, outputPath, target)
	if err != nil {
		return nil, err
	}

	if exists, _ := filesystem.API().Exists(inputPath); !exists {
		return nil, fmt.Errorf("input file does not exist: %s", inputPath)
	}

	job := &model.TranscodeJob{
		ID:         generateJobID(),
		InputPath:  inputPath,
		OutputPath: outputPath,
		Target:     target,
		Status:     model.TaskStatusConverting,
		StartedAt:  time.Now(),
	}
	notify := func() {
		if onProgress != nil {
			onProgress(job)
		}
	}
	notify()

	logger := log.WithFields(map[string]any{"job": job.ID, "input": inputPath, "target": target})

	duration, err := s.getVideoDuration(ctx, inputPath)
	if err != nil {
		// progress is unknown but the conversion can still run
		logger.Warnf("ffprobe failed: %v", err)
	}

	cmd := exec.CommandContext(ctx, s.ffmpegPath, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return s.fail(job, fmt.Errorf("failed to create stderr pipe: %w", err))
	}

	if err := cmd.Start(); err != nil {
		return s.fail(job, fmt.Errorf("failed to start ffmpeg: %w", err))
	}

	// stderr must be drained before Wait closes it
	lastLine := <-s.monitorProgress(stderr, job, duration, notify)

	if err := cmd.Wait(); err != nil {
		_ = filesystem.API().Remove(job.OutputPath)
		if ctx.Err() != nil {
			return s.fail(job, ctx.Err())
		}
		if line := lastLine; line != "" {
			err = fmt.Errorf("%w: %s", err, line)
		}
		return s.fail(job, fmt.Errorf("ffmpeg failed: %w", err))
	}

	if err := filesystem.API().Remove(job.InputPath); err != nil {
		logger.Warnf("failed to remove source after conversion: %v", err)
	}

	job.Status = model.TaskStatusCompleted
	job.Progress = 1.0
	job.Percent = 100
	job.FinishedAt = time.Now()
	notify()
	logger.Infof("converted to %s", job.OutputPath)

	return job, nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments for target
func BuildFFmpegArgs(inputPath, outputPath, target string) ([]string, error) {
	profile, ok := profiles[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTarget, target)
	}

	args := []string{"-y", "-i", inputPath}
	args = append(args, profile.Video...)
	args = append(args, profile.Audio...)
	args = append(args, profile.Extra...)
	args = append(args, "-progress", ProgressPipeTarget, "-nostats", outputPath)
	return args, nil
}

// getVideoDuration returns the input duration in seconds using ffprobe
func (s *Service) getVideoDuration(ctx context.Context, filePath string) (float64, error) {
	cmd := exec.CommandContext(ctx, s.ffprobePath, "-v", FFprobeLogLevel, "-show_entries", FFprobeShowEntries, "-of", FFprobeOutputFormat, filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}

	return duration, nil
}

// monitorProgress parses ffmpeg -progress output. The returned channel
// yields the last non-progress line once stderr closes.
func (s *Service) monitorProgress(stderr io.ReadCloser, job *model.TranscodeJob, totalDuration float64, notify func()) <-chan string {
	done := make(chan string, 1)

	go func() {
		defer stderr.Close()
		var last string
		scanner := bufio.NewScanner(stderr)

		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if progress, ok := parseProgressLine(line, totalDuration); ok {
				job.Progress = progress
				job.Percent = int(progress * 100)
				notify()
				continue
			}
			if line != "" && !strings.Contains(line, "=") {
				last = line
			}
		}
		done <- last
	}()

	return done
}

// parseProgressLine converts "out_time_us=N" into a 0..1 fraction of totalDuration
func parseProgressLine(line string, totalDuration float64) (float64, bool) {
	if !strings.HasPrefix(line, ProgressTimePrefix) || totalDuration <= 0 {
		return 0, false
	}

	us, err := strconv.ParseInt(strings.TrimPrefix(line, ProgressTimePrefix), 10, 64)
	if err != nil {
		return 0, false
	}

	progress := float64(us) / 1000000.0 / totalDuration
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0 {
		progress = 0
	}
	return progress, true
}

func (s *Service) fail(job *model.TranscodeJob, err error) (*model.TranscodeJob, error) {
	job.Status = model.TaskStatusError
	job.LastError = err.Error()
	job.FinishedAt = time.Now()
	return job, err
}

// generateOutputPath swaps the extension of inputPath for target
func generateOutputPath(inputPath, target string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "." + target
}

// generateJobID generates a unique, time-ordered job ID using UUID v7
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
