package model

import "testing"

func TestDownloadTask_GetETAString(t *testing.T) {
	tests := []struct {
		etaSec   int
		expected string
	}{
		{-1, "N/A"},
		{0, "N/A"},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323, "02:02:03"},
	}

	for _, test := range tests {
		task := &DownloadTask{ETASec: test.etaSec}
		result := task.GetETAString()
		if result != test.expected {
			t.Errorf("GetETAString() with ETASec=%d = %s, expected %s", test.etaSec, result, test.expected)
		}
	}
}

func TestDownloadTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title      string
		outputPath string
		url        string
		expected   string
	}{
		{"Video Title", "", "https://youtube.com/watch?v=123", "Video Title"},
		{"", "", "https://youtube.com/watch?v=123", "https://youtube.com/watch?v=123"},
		{"", "/downloads/My Clip.mp4", "https://youtube.com/watch?v=1", "My Clip"},
		{"https://youtube.com/watch?v=1", "/downloads/clip.webm", "https://youtube.com/watch?v=1", "clip"},
		{"", "", "", ""},
	}

	for _, test := range tests {
		task := &DownloadTask{Title: test.title, OutputPath: test.outputPath, URL: test.url}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title=%q path=%q = %q, expected %q", test.title, test.outputPath, result, test.expected)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{-5, "00:00"},
		{59, "00:59"},
		{213, "03:33"},
		{3725, "01:02:05"},
	}

	for _, test := range tests {
		if result := FormatSeconds(test.seconds); result != test.expected {
			t.Errorf("FormatSeconds(%d) = %s, expected %s", test.seconds, result, test.expected)
		}
	}
}
