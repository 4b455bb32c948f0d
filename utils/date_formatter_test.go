package utils

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{"0초", 0, "0:00:00"},
		{"1분", 60, "0:01:00"},
		{"1시간", 3600, "1:00:00"},
		{"복합", 3661, "1:01:01"},
		{"2시간 반", 9000, "2:30:00"},
		{"음수는 0으로", -30, "0:00:00"},
		{"긴 대회", 180*60 + 59, "3:00:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatClock(tt.seconds)
			if result != tt.expected {
				t.Errorf("FormatClock(%d) = %q, 기대값 %q", tt.seconds, result, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{30, "30분"},
		{60, "1시간"},
		{90, "1시간 30분"},
		{180, "3시간"},
	}

	for _, tt := range tests {
		if result := FormatDuration(tt.minutes); result != tt.expected {
			t.Errorf("FormatDuration(%d) = %q, 기대값 %q", tt.minutes, result, tt.expected)
		}
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

	if result := FormatDate(date); result != "2026-09-01" {
		t.Errorf("FormatDate = %q, 기대값 %q", result, "2026-09-01")
	}
	if result := FormatDateTime(date); result != "2026-09-01 14:30:00" {
		t.Errorf("FormatDateTime = %q, 기대값 %q", result, "2026-09-01 14:30:00")
	}
}
