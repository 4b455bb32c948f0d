package utils

import (
	"fmt"
	"time"

	"github.com/codearena/arenabot/constants"
)

// FormatDate 단일 날짜를 포맷팅합니다
func FormatDate(date time.Time) string {
	return date.Format(constants.DateFormat)
}

// FormatDateTime 날짜와 시간을 포맷팅합니다
func FormatDateTime(dateTime time.Time) string {
	return dateTime.Format(constants.DateTimeFormat)
}

// FormatClock 잔여 초를 H:MM:SS 형식으로 표시합니다. 음수는 0으로 처리합니다.
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// FormatDuration 분 단위 길이를 사람이 읽기 쉬운 형태로 표시합니다
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d분", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%d시간", hours)
	}
	return fmt.Sprintf("%d시간 %d분", hours, rest)
}
