package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/codearena/arenabot/constants"
)

// Config 애플리케이션의 전체 설정을 관리합니다
type Config struct {
	Arena     ArenaConfig
	Discord   DiscordConfig
	Session   SessionConfig
	Schedule  ScheduleConfig
	Logging   LoggingConfig
	Features  FeatureFlags
	Telemetry TelemetryConfig
	Sheets    SheetsConfig
}

type ArenaConfig struct {
	BaseURL          string
	CompetitionID    string
	SubmitPassphrase string
}

type DiscordConfig struct {
	Token     string
	ChannelID string
}

type SessionConfig struct {
	FilePath string
}

type ScheduleConfig struct {
	RankingHour   int
	RankingMinute int
	Enabled       bool
}

type LoggingConfig struct {
	Level     string
	DebugMode bool
}

type FeatureFlags struct {
	EnableAutoRanking    bool
	EnableDetailedErrors bool
	EnableHighlightWatch bool
}

type TelemetryConfig struct {
	Enabled   bool
	ProjectID string
}

type SheetsConfig struct {
	SpreadsheetID string
}

// Load는 .env 파일과 환경변수에서 설정을 로드합니다
func Load() *Config {
	// .env 파일이 없어도 환경변수만으로 동작합니다
	_ = godotenv.Load()

	return &Config{
		Arena: ArenaConfig{
			BaseURL:          getEnv(constants.EnvArenaBaseURL, constants.DefaultArenaBaseURL),
			CompetitionID:    getEnv(constants.EnvArenaCompetition, ""),
			SubmitPassphrase: getEnv(constants.EnvSubmitPassphrase, ""),
		},
		Discord: DiscordConfig{
			Token:     getEnv(constants.EnvDiscordToken, ""),
			ChannelID: getEnv(constants.EnvChannelID, ""),
		},
		Session: SessionConfig{
			FilePath: getEnv(constants.EnvSessionFile, "session.json"),
		},
		Schedule: ScheduleConfig{
			RankingHour:   getEnvInt("RANKING_HOUR", constants.DailyRankingHour),
			RankingMinute: getEnvInt("RANKING_MINUTE", constants.DailyRankingMinute),
			Enabled:       getEnv(constants.EnvChannelID, "") != "",
		},
		Logging: LoggingConfig{
			Level:     getEnv(constants.EnvLogLevel, constants.LogLevelInfo),
			DebugMode: getEnvBool(constants.EnvDebugMode, false),
		},
		Features: FeatureFlags{
			EnableAutoRanking:    getEnvBool("ENABLE_AUTO_RANKING", true),
			EnableDetailedErrors: getEnvBool("ENABLE_DETAILED_ERRORS", false),
			EnableHighlightWatch: getEnvBool("ENABLE_HIGHLIGHT_WATCH", true),
		},
		Telemetry: TelemetryConfig{
			Enabled:   getEnvBool("TELEMETRY_ENABLED", false),
			ProjectID: getEnv("GOOGLE_CLOUD_PROJECT", ""),
		},
		Sheets: SheetsConfig{
			SpreadsheetID: getEnv(constants.EnvSpreadsheetID, ""),
		},
	}
}

// Validate 설정의 유효성을 검사합니다
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return &ConfigError{
			Field:   "Discord.Token",
			Message: "Discord bot token is required",
		}
	}

	if c.Arena.BaseURL == "" {
		return &ConfigError{
			Field:   "Arena.BaseURL",
			Message: "ARENA_BASE_URL is required",
		}
	}
	if !strings.HasPrefix(c.Arena.BaseURL, "http://") && !strings.HasPrefix(c.Arena.BaseURL, "https://") {
		return &ConfigError{
			Field:   "Arena.BaseURL",
			Message: "ARENA_BASE_URL must start with http:// or https:// (got: " + c.Arena.BaseURL + ")",
		}
	}

	// 로그 레벨 검증
	validLogLevels := map[string]bool{
		constants.LogLevelDebug: true,
		constants.LogLevelInfo:  true,
		constants.LogLevelWarn:  true,
		constants.LogLevelError: true,
	}
	if !validLogLevels[strings.ToUpper(c.Logging.Level)] {
		return &ConfigError{
			Field:   "Logging.Level",
			Message: "LOG_LEVEL must be one of: DEBUG, INFO, WARN, ERROR (got: " + c.Logging.Level + ")",
		}
	}

	// 스케줄 설정 검증 (활성화된 경우에만)
	if c.Schedule.Enabled {
		if c.Schedule.RankingHour < 0 || c.Schedule.RankingHour > 23 {
			return &ConfigError{
				Field:   "Schedule.RankingHour",
				Message: "RANKING_HOUR must be between 0 and 23 (got: " + strconv.Itoa(c.Schedule.RankingHour) + ")",
			}
		}

		if c.Schedule.RankingMinute < 0 || c.Schedule.RankingMinute > 59 {
			return &ConfigError{
				Field:   "Schedule.RankingMinute",
				Message: "RANKING_MINUTE must be between 0 and 59 (got: " + strconv.Itoa(c.Schedule.RankingMinute) + ")",
			}
		}
	}

	return nil
}

// IsDebugMode 디버그 모드 여부를 반환합니다
func (c *Config) IsDebugMode() bool {
	return c.Logging.DebugMode || strings.ToUpper(c.Logging.Level) == constants.LogLevelDebug
}

// ConfigError 설정 관련 오류를 나타냅니다
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in " + e.Field + ": " + e.Message
}

// 헬퍼 함수들
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
