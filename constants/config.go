package constants

import "time"

// 캐시 설정 상수
const (
	CompetitionCacheTTL     = 5 * time.Minute  // 대회 정의 캐시 만료 시간
	CompetitionListCacheTTL = 1 * time.Minute  // 대회 목록 캐시 만료 시간
	CacheCleanupInterval    = 5 * time.Minute  // 캐시 정리 간격
	CacheCleanupBatchSize   = 100              // 한 번에 정리할 항목 수
	MaxCacheCleanupDuration = 50 * time.Millisecond
)

// Discord API 재시도 설정
const (
	MaxDiscordRetries = 3
	BaseRetryDelay    = 1 * time.Second
)

// 성능 및 메모리 관리
const (
	DefaultSliceCapacity  = 64
	MaxConcurrentRequests = 5
	MaxPoolSliceCapacity  = 512
)

// 적응형 동시성 설정
const (
	AdaptiveConcurrencyMinLimit    = 2
	AdaptiveConcurrencyMaxLimit    = 10
	ResponseTimeWindowSize         = 20
	MinResponseTimeWindowSize      = 5
	ConcurrencyAdjustmentThreshold = 500 * time.Millisecond
	ConcurrencyDecreaseThreshold   = 1 * time.Second
	ConcurrencyAdjustmentCooldown  = 5 * time.Second
	MaxSuccessiveIncreases         = 3
)

// 환경변수 키
const (
	EnvArenaBaseURL     = "ARENA_BASE_URL"
	EnvArenaCompetition = "ARENA_COMPETITION_ID"
	EnvSubmitPassphrase = "ARENA_SUBMIT_PASSPHRASE"
	EnvSessionFile      = "ARENA_SESSION_FILE"
	EnvDiscordToken     = "DISCORD_BOT_TOKEN"
	EnvChannelID        = "DISCORD_CHANNEL_ID"
	EnvLogLevel         = "LOG_LEVEL"
	EnvDebugMode        = "DEBUG_MODE"
	EnvSpreadsheetID    = "RANKING_SPREADSHEET_ID"
)

// 로그 레벨 문자열
const (
	LogLevelDebug = "DEBUG"
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)
