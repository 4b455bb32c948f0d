package config

import (
	"testing"

	"github.com/codearena/arenabot/constants"
)

func validConfig() *Config {
	return &Config{
		Arena: ArenaConfig{
			BaseURL: "https://arena.example.com/api",
		},
		Discord: DiscordConfig{
			Token:     "valid_token",
			ChannelID: "123456789",
		},
		Schedule: ScheduleConfig{
			RankingHour:   12,
			RankingMinute: 30,
			Enabled:       true,
		},
		Logging: LoggingConfig{
			Level:     constants.LogLevelInfo,
			DebugMode: false,
		},
	}
}

func TestConfigValidation(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("유효한 설정이 오류를 반환했습니다: %v", err)
	}

	// Discord 토큰 누락
	noToken := validConfig()
	noToken.Discord.Token = ""
	if err := noToken.Validate(); err == nil {
		t.Error("토큰이 없는 설정이 허용되었습니다")
	}

	// 백엔드 주소 누락
	noBase := validConfig()
	noBase.Arena.BaseURL = ""
	if err := noBase.Validate(); err == nil {
		t.Error("백엔드 주소가 없는 설정이 허용되었습니다")
	}

	// 스킴 없는 백엔드 주소
	badScheme := validConfig()
	badScheme.Arena.BaseURL = "arena.example.com"
	if err := badScheme.Validate(); err == nil {
		t.Error("http/https 스킴이 없는 주소가 허용되었습니다")
	}

	// 잘못된 로그 레벨
	badLevel := validConfig()
	badLevel.Logging.Level = "INVALID_LEVEL"
	if err := badLevel.Validate(); err == nil {
		t.Error("잘못된 로그 레벨이 허용되었습니다")
	}

	// 잘못된 스케줄 시각 (25시)
	badHour := validConfig()
	badHour.Schedule.RankingHour = 25
	if err := badHour.Validate(); err == nil {
		t.Error("25시가 허용되었습니다")
	}

	// 잘못된 스케줄 분 (60분)
	badMinute := validConfig()
	badMinute.Schedule.RankingMinute = 60
	if err := badMinute.Validate(); err == nil {
		t.Error("60분이 허용되었습니다")
	}

	// 스케줄이 비활성화되면 시각 검증을 건너뜁니다
	disabled := validConfig()
	disabled.Schedule.Enabled = false
	disabled.Schedule.RankingHour = 99
	if err := disabled.Validate(); err != nil {
		t.Errorf("비활성화된 스케줄의 시각이 검증되었습니다: %v", err)
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "Discord.Token", Message: "required"}
	expected := "config error in Discord.Token: required"
	if err.Error() != expected {
		t.Errorf("Error() = %q, 기대값 %q", err.Error(), expected)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(constants.EnvDiscordToken, "env-token")
	t.Setenv(constants.EnvArenaBaseURL, "https://arena.example.com")
	t.Setenv(constants.EnvArenaCompetition, "comp-42")
	t.Setenv(constants.EnvChannelID, "987654321")
	t.Setenv("RANKING_HOUR", "9")
	t.Setenv("RANKING_MINUTE", "15")

	cfg := Load()

	if cfg.Discord.Token != "env-token" {
		t.Errorf("Discord.Token = %q", cfg.Discord.Token)
	}
	if cfg.Arena.BaseURL != "https://arena.example.com" {
		t.Errorf("Arena.BaseURL = %q", cfg.Arena.BaseURL)
	}
	if cfg.Arena.CompetitionID != "comp-42" {
		t.Errorf("Arena.CompetitionID = %q", cfg.Arena.CompetitionID)
	}
	if !cfg.Schedule.Enabled {
		t.Error("채널이 설정되면 스케줄이 활성화되어야 합니다")
	}
	if cfg.Schedule.RankingHour != 9 || cfg.Schedule.RankingMinute != 15 {
		t.Errorf("스케줄 시각 = %d:%d, 기대값 9:15", cfg.Schedule.RankingHour, cfg.Schedule.RankingMinute)
	}
}

func TestIsDebugMode(t *testing.T) {
	cfg := validConfig()
	if cfg.IsDebugMode() {
		t.Error("INFO 레벨 설정이 디버그 모드로 판단되었습니다")
	}

	cfg.Logging.Level = constants.LogLevelDebug
	if !cfg.IsDebugMode() {
		t.Error("DEBUG 레벨 설정이 디버그 모드로 판단되지 않았습니다")
	}

	cfg.Logging.Level = constants.LogLevelInfo
	cfg.Logging.DebugMode = true
	if !cfg.IsDebugMode() {
		t.Error("DebugMode 플래그가 무시되었습니다")
	}
}
