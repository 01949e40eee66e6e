package model

import "time"

// VideoInfo is the metadata shown before a download starts
type VideoInfo struct {
	ID       string
	Title    string
	Author   string
	Duration time.Duration
}

// FormatInfo describes one stream offered by the source
type FormatInfo struct {
	ID         string
	Ext        string
	Resolution string
	Note       string
	Height     int
	Size       int64 // bytes, 0 if unknown
}
