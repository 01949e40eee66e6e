package model

// TaskStatus represents the status of a download item or transcode job
type TaskStatus string

const (
	// TaskStatusPending means the item is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means the extraction library is fetching the item
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusConverting means ffmpeg is converting the downloaded file
	TaskStatusConverting TaskStatus = "Converting"

	// TaskStatusCompleted means the item finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the item failed
	TaskStatusError TaskStatus = "Error"

	// TaskStatusSkipped means the item was never attempted because the run was aborted
	TaskStatusSkipped TaskStatus = "Skipped"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the item is being worked on
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusDownloading || ts == TaskStatusConverting
}

// IsFinished returns true if the item reached a terminal state
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError || ts == TaskStatusSkipped
}
