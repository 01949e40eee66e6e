package model

import "testing"

func TestTaskStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusDownloading, true},
		{TaskStatusConverting, true},
		{TaskStatusCompleted, false},
		{TaskStatusError, false},
		{TaskStatusSkipped, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("TaskStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTaskStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusDownloading, false},
		{TaskStatusConverting, false},
		{TaskStatusCompleted, true},
		{TaskStatusError, true},
		{TaskStatusSkipped, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("TaskStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTaskStatus_String(t *testing.T) {
	if TaskStatusConverting.String() != "Converting" {
		t.Errorf("TaskStatus.String() = %s, expected Converting", TaskStatusConverting.String())
	}
}
