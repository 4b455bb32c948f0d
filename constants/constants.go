package constants

import "time"

// API 관련 상수
const (
	DefaultArenaBaseURL = "http://localhost:4000"
	DefaultHTTPPort     = "8080"
)

// 카운트다운 관련 상수
const (
	CountdownTickInterval = 1 * time.Second
	SecondsPerMinute      = 60
	MillisPerMinute       = 60000
)

// 랭킹 관련 상수
const (
	HighlightPollInterval = 10 * time.Second
	HighlightDuration     = 3 * time.Second
	RankingEnrichTopCount = 3
)

// 스케줄러 관련 상수
const (
	SchedulerInterval  = 24 * time.Hour
	DailyRankingHour   = 21
	DailyRankingMinute = 0
)

// Discord 관련 상수
const (
	CommandPrefix       = "!"
	CommandPrefixLength = 1
	BotStatusMessage    = "!help | 팀 코딩 대회"
)

// 난이도별 색상 상수
const (
	ColorEasy    = 0x22C55E
	ColorMedium  = 0xEAB308
	ColorHard    = 0xEF4444
	ColorNeutral = 0x36393F
	ColorGold    = 0xE09E37
)

// 이모지 상수
const (
	EmojiSuccess = "✅"
	EmojiError   = "❌"
	EmojiInfo    = "ℹ️"
	EmojiWarning = "⚠️"
)

// 날짜/시간 포맷 상수
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// 랭킹 보드 출력 폭 상수
const (
	BoardRankWidth  = 4
	BoardNameWidth  = 16
	BoardScoreWidth = 6
	BoardSolveWidth = 5
	BoardMaxEntries = 20
	BoardSeparator  = "----------------------------------"
)
