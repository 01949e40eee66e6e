package model

// Summary is the outcome of a run
type Summary struct {
	OutputDir string
	Tasks     []*DownloadTask
}

// Count returns how many tasks ended in status
func (s *Summary) Count(status TaskStatus) int {
	n := 0
	for _, t := range s.Tasks {
		if t.Status == status {
			n++
		}
	}
	return n
}

// Succeeded returns the number of completed tasks
func (s *Summary) Succeeded() int { return s.Count(TaskStatusCompleted) }

// Failed returns the number of failed tasks
func (s *Summary) Failed() int { return s.Count(TaskStatusError) }

// Skipped returns the number of tasks never attempted
func (s *Summary) Skipped() int { return s.Count(TaskStatusSkipped) }

// OK reports whether every task completed
func (s *Summary) OK() bool {
	return len(s.Tasks) > 0 && s.Succeeded() == len(s.Tasks)
}
