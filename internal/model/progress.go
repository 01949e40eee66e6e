package model

import "time"

// Progress is a download progress sample reported by the extraction library
type Progress struct {
	DownloadedBytes int
	TotalBytes      int
	Started         time.Time
	ETA             time.Duration
	Title           string
}

// Fraction returns progress as 0..1, or -1 when the total is unknown
func (p Progress) Fraction() float64 {
	if p.TotalBytes <= 0 {
		return -1
	}
	f := float64(p.DownloadedBytes) / float64(p.TotalBytes)
	if f > 1 {
		f = 1
	}
	return f
}

// BytesPerSecond returns the average speed since the download started
func (p Progress) BytesPerSecond(now time.Time) float64 {
	if p.Started.IsZero() {
		return 0
	}
	elapsed := now.Sub(p.Started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(p.DownloadedBytes) / elapsed
}
