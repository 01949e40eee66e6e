package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/ytget/yt-downloader-cli/internal/model"
)

// Console prints run events for a human. Progress is rewritten in place when
// out is a terminal and printed in ProgressStep increments otherwise.
type Console struct {
	out         io.Writer
	errOut      io.Writer
	style       palette
	interactive bool

	progressOpen bool
	lastStep     map[string]int
}

// NewConsole creates a console writing to out and errOut
func NewConsole(out, errOut io.Writer, colored bool) *Console {
	return &Console{
		out:         out,
		errOut:      errOut,
		style:       newPalette(colored),
		interactive: IsTerminal(out),
		lastStep:    make(map[string]int),
	}
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (c *Console) println(w io.Writer, s string) {
	c.endProgress()
	fmt.Fprintln(w, s)
}

// endProgress terminates an in-place progress line
func (c *Console) endProgress() {
	if c.progressOpen {
		fmt.Fprintln(c.out)
		c.progressOpen = false
	}
}

// Banner prints the program banner
func (c *Console) Banner() {
	c.println(c.out, c.style.accent(Banner))
}

// Success prints a green line
func (c *Console) Success(msg string) { c.println(c.out, c.style.success(msg)) }

// Info prints a blue line
func (c *Console) Info(msg string) { c.println(c.out, c.style.info(msg)) }

// Warn prints a yellow line
func (c *Console) Warn(msg string) { c.println(c.out, c.style.warning(IconWarning+" Warning: "+msg)) }

// Error prints a red line to the error stream
func (c *Console) Error(msg string) { c.println(c.errOut, c.style.error(msg)) }

// Plain prints msg without styling
func (c *Console) Plain(msg string) { c.println(c.out, msg) }

// VideoInfo prints the metadata of a single video
func (c *Console) VideoInfo(info *model.VideoInfo) {
	c.Info("Title: " + info.Title)
	if info.Author != "" {
		c.Info("Author: " + info.Author)
	}
	if info.Duration > 0 {
		c.Info("Duration: " + model.FormatSeconds(int(info.Duration.Seconds())))
	} else {
		c.Info("Duration: " + NotAvailable)
	}
}

// Playlist prints the playlist header
func (c *Console) Playlist(playlist *model.Playlist) {
	c.Info(IconInfo + " Playlist: " + playlist.Title)
	c.Info(fmt.Sprintf("Videos in playlist: %d", len(playlist.Videos)))
}

// TaskStarted announces an item
func (c *Console) TaskStarted(task *model.DownloadTask, total int) {
	counter := ""
	if total > 1 {
		counter = fmt.Sprintf(ItemCounterFormat, task.Index, total)
	}
	name := task.URL
	if task.Title != "" {
		name = task.Title
	}
	c.Plain("")
	c.Info(counter + "Downloading: " + name)
}

// TaskProgress renders the current progress line
func (c *Console) TaskProgress(task *model.DownloadTask) {
	if !task.Status.IsActive() {
		return
	}
	line := ProgressLine(task)

	if c.interactive {
		fmt.Fprint(c.out, "\r"+line+LineClear)
		c.progressOpen = true
		return
	}

	step := task.Percent / ProgressStep
	key := task.ID + string(task.Status)
	if last, ok := c.lastStep[key]; ok && last >= step {
		return
	}
	c.lastStep[key] = step
	fmt.Fprintln(c.out, line)
}

// ProgressLine formats task progress as "Progress: 45% | Speed: 1.2 MB/s | ETA: 00:03"
func ProgressLine(task *model.DownloadTask) string {
	percent := fmt.Sprintf(ProgressLabelFormat, task.Percent)
	if task.Status == model.TaskStatusConverting {
		return "Converting: " + percent
	}

	speed := task.Speed
	if speed == "" {
		speed = NotAvailable
	}
	return strings.Join([]string{
		"Progress: " + percent,
		"Speed: " + speed,
		"ETA: " + task.GetETAString(),
	}, SeparatorPipe)
}

// TaskFinished prints the outcome of an item
func (c *Console) TaskFinished(task *model.DownloadTask) {
	delete(c.lastStep, task.ID+string(model.TaskStatusDownloading))
	delete(c.lastStep, task.ID+string(model.TaskStatusConverting))

	if task.Status == model.TaskStatusError {
		c.Error(IconError + " Download Error: " + task.LastError)
		return
	}
	c.Success(IconSuccess + " Download complete!")
	if task.OutputPath != "" {
		c.Info("Saved to: " + task.OutputPath)
	}
}

// Formats prints the available streams
func (c *Console) Formats(formats []model.FormatInfo) {
	c.Plain("")
	c.Plain("Available Formats:")
	for _, f := range formats {
		c.Plain(FormatLine(f))
	}
}

// FormatLine formats a stream as "ID: 137 | MP4 | 1920x1080 | 1080p"
func FormatLine(f model.FormatInfo) string {
	line := strings.Join([]string{
		"ID: " + f.ID,
		strings.ToUpper(f.Ext),
		f.Resolution,
		f.Note,
	}, SeparatorPipe)
	if f.Size > 0 {
		line += SeparatorPipe + humanize.Bytes(uint64(f.Size))
	}
	return line
}

// Summary prints totals after a run
func (c *Console) Summary(summary *model.Summary) {
	c.Plain("")
	total := len(summary.Tasks)
	line := fmt.Sprintf("Summary: %d of %d succeeded", summary.Succeeded(), total)
	if failed := summary.Failed(); failed > 0 {
		line += fmt.Sprintf(", %d failed", failed)
	}
	if skipped := summary.Skipped(); skipped > 0 {
		line += fmt.Sprintf(", %d skipped", skipped)
	}

	if summary.OK() {
		c.Success(line)
	} else {
		c.Error(line)
		for _, t := range summary.Tasks {
			if t.Status == model.TaskStatusError {
				c.Error(fmt.Sprintf("  %s %s: %s", IconError, t.GetDisplayTitle(), t.LastError))
			}
		}
	}
	c.Info("Output directory: " + summary.OutputDir)
}
