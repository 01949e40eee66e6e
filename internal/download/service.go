package download

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-downloader-cli/internal/config"
	"github.com/ytget/yt-downloader-cli/internal/log"
	"github.com/ytget/yt-downloader-cli/internal/model"
	"github.com/ytget/yt-downloader-cli/internal/options"
	"github.com/ytget/yt-downloader-cli/internal/platform"
	"github.com/ytget/yt-downloader-cli/internal/transcode"
)

// TaskIDPrefix prefixes every download task id
const TaskIDPrefix = "task-"

// Errors returned by Run and ListFormats
var (
	ErrMissingURL     = errors.New("no URL given")
	ErrMissingPlan    = errors.New("no download plan")
	ErrEmptyPlaylist  = errors.New("playlist has no videos")
	ErrDownloadFailed = errors.New("download failed")
)

// Request describes one run
type Request struct {
	URL       string
	Plan      *options.Plan
	OutputDir string
	OnError   config.OnErrorPolicy
}

// Service handles download operations
type Service struct {
	extractor  Extractor
	inspector  Inspector
	playlists  PlaylistResolver
	transcoder transcode.Transcoder
	reporter   Reporter
	now        func() time.Time
}

// NewService creates a new download service. inspector and transcoder may be nil.
func NewService(extractor Extractor, inspector Inspector, playlists PlaylistResolver, transcoder transcode.Transcoder, reporter Reporter) *Service {
	return &Service{
		extractor:  extractor,
		inspector:  inspector,
		playlists:  playlists,
		transcoder: transcoder,
		reporter:   reporter,
		now:        time.Now,
	}
}

// Run downloads every item of the request in order and returns the summary.
// The error is non-nil when any item failed, even if others succeeded.
func (s *Service) Run(ctx context.Context, req Request) (*model.Summary, error) {
	if req.URL == "" {
		return nil, ErrMissingURL
	}
	if req.Plan == nil {
		return nil, ErrMissingPlan
	}

	if err := platform.CreateDirectoryIfNotExists(req.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, w := range req.Plan.Warnings {
		s.reporter.Warn(w)
	}

	tasks, err := s.resolveTasks(ctx, req)
	if err != nil {
		return nil, err
	}

	summary := &model.Summary{OutputDir: req.OutputDir, Tasks: tasks}

	for _, task := range tasks {
		if ctx.Err() != nil {
			break
		}

		s.runTask(ctx, task, req.Plan, len(tasks))

		if task.Status == model.TaskStatusError && req.OnError == config.OnErrorAbort {
			break
		}
	}

	// items never reached after an abort or cancellation
	for _, task := range tasks {
		if !task.Status.IsFinished() {
			task.Status = model.TaskStatusSkipped
		}
	}

	s.reporter.Summary(summary)

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	if failed := summary.Failed(); failed > 0 {
		return summary, fmt.Errorf("%w: %d of %d item(s) failed", ErrDownloadFailed, failed, len(tasks))
	}
	return summary, nil
}

// resolveTasks expands the URL into one task per video
func (s *Service) resolveTasks(ctx context.Context, req Request) ([]*model.DownloadTask, error) {
	if req.Plan.Playlist {
		if s.playlists != nil && s.playlists.IsPlaylistURL(req.URL) {
			return s.playlistTasks(ctx, req.URL)
		}
		s.reporter.Warn("URL does not reference a playlist, downloading a single video")
	}

	task := newTask(1, req.URL)
	if s.inspector != nil {
		info, err := s.inspector.VideoInfo(ctx, req.URL)
		if err != nil {
			log.WithFields(logrus.Fields{"url": req.URL, "error": err}).Warn("failed to fetch video info")
		} else {
			task.Title = info.Title
			s.reporter.VideoInfo(info)
		}
	}
	return []*model.DownloadTask{task}, nil
}

func (s *Service) playlistTasks(ctx context.Context, url string) ([]*model.DownloadTask, error) {
	playlist, err := s.playlists.ParsePlaylist(ctx, url)
	if err != nil {
		return nil, err
	}
	if len(playlist.Videos) == 0 {
		return nil, ErrEmptyPlaylist
	}

	s.reporter.Playlist(playlist)

	tasks := make([]*model.DownloadTask, 0, len(playlist.Videos))
	for i, v := range playlist.Videos {
		task := newTask(i+1, v.URL)
		task.Title = v.Title
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// runTask downloads and, if needed, converts a single item
func (s *Service) runTask(ctx context.Context, task *model.DownloadTask, plan *options.Plan, total int) {
	task.Status = model.TaskStatusDownloading
	task.StartedAt = s.now()
	s.reporter.TaskStarted(task, total)

	logger := log.WithFields(logrus.Fields{"task": task.ID, "url": task.URL})
	logger.Info("download started")

	path, err := s.extractor.Download(ctx, task.URL, plan, func(p model.Progress) {
		s.updateTaskProgress(task, p)
		s.reporter.TaskProgress(task)
	})
	if err != nil {
		s.failTask(task, err)
		logger.WithField("error", err).Error("download failed")
		return
	}
	task.OutputPath = path

	if plan.NeedsTranscode(path) {
		if err := s.convert(ctx, task, plan); err != nil {
			s.failTask(task, err)
			logger.WithField("error", err).Error("conversion failed")
			return
		}
	}

	task.Status = model.TaskStatusCompleted
	task.Progress = 1.0
	task.Percent = 100
	task.FinishedAt = s.now()
	s.reporter.TaskFinished(task)
	logger.WithField("output", task.OutputPath).Info("download finished")
}

func (s *Service) convert(ctx context.Context, task *model.DownloadTask, plan *options.Plan) error {
	if s.transcoder == nil || !s.transcoder.Available() {
		s.reporter.Warn(fmt.Sprintf("Cannot convert to %s - FFmpeg not found. Keeping %s", plan.TranscodeTo, task.OutputPath))
		return nil
	}

	task.Status = model.TaskStatusConverting
	task.Progress = 0
	task.Percent = 0
	task.Speed = ""
	task.ETASec = -1
	s.reporter.TaskProgress(task)

	job, err := s.transcoder.Transcode(ctx, task.OutputPath, string(plan.TranscodeTo), func(job *model.TranscodeJob) {
		task.Progress = job.Progress
		task.Percent = job.Percent
		s.reporter.TaskProgress(task)
	})
	if err != nil {
		return fmt.Errorf("failed to convert to %s: %w", plan.TranscodeTo, err)
	}
	task.OutputPath = job.OutputPath
	return nil
}

func (s *Service) failTask(task *model.DownloadTask, err error) {
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = s.now()
	s.reporter.TaskFinished(task)
}

// updateTaskProgress updates task progress from a yt-dlp sample
func (s *Service) updateTaskProgress(task *model.DownloadTask, p model.Progress) {
	if f := p.Fraction(); f >= 0 {
		task.Progress = f
		task.Percent = int(f * 100)
	}

	if bps := p.BytesPerSecond(s.now()); bps > 0 {
		task.Speed = humanize.Bytes(uint64(bps)) + "/s"
	}

	if p.ETA > 0 {
		task.ETASec = int(p.ETA.Seconds())
	}

	if p.Title != "" && task.Title == "" {
		task.Title = p.Title
	}
}

// ListFormats prints the streams available for url without downloading
func (s *Service) ListFormats(ctx context.Context, url string) ([]model.FormatInfo, error) {
	if url == "" {
		return nil, ErrMissingURL
	}
	if s.inspector == nil {
		return nil, errors.New("format listing is not available")
	}

	formats, err := s.inspector.Formats(ctx, url)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(formats, func(i, j int) bool {
		return formats[i].Height < formats[j].Height
	})

	s.reporter.Formats(formats)
	return formats, nil
}

func newTask(index int, url string) *model.DownloadTask {
	return &model.DownloadTask{
		ID:     generateTaskID(),
		Index:  index,
		URL:    url,
		Status: model.TaskStatusPending,
		ETASec: -1,
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return TaskIDPrefix + uuid.Must(uuid.NewV7()).String()
}
