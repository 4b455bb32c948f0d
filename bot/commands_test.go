package bot

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/codearena/arenabot/competition"
	"github.com/codearena/arenabot/models"
	"github.com/codearena/arenabot/ranking"
)

func messageWithContent(content, guildID string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			Content: content,
			GuildID: guildID,
		},
	}
}

func TestParseMessage(t *testing.T) {
	handler := NewCommandHandler(&CommandDependencies{})

	tests := []struct {
		name           string
		content        string
		guildID        string
		expectedCmd    string
		expectedParams []string
		expectedDM     bool
	}{
		{"기본 명령어", "!help", "guild-1", "help", []string{}, false},
		{"매개변수 포함", "!team join ABC-123", "guild-1", "team", []string{"join", "ABC-123"}, false},
		{"DM 메시지", "!login user pw", "", "login", []string{"user", "pw"}, true},
		{"한글 명령어", "!대회 list", "guild-1", "대회", []string{"list"}, false},
		{"접두사 없음", "help", "guild-1", "", nil, false},
		{"앞뒤 공백", "  !ping  ", "guild-1", "ping", []string{}, false},
		{"빈 메시지", "", "guild-1", "", nil, false},
		{"연속 공백 구분", "!submit  comp-1   p1  pass", "guild-1", "submit", []string{"comp-1", "p1", "pass"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, params, isDM := handler.parseMessage(messageWithContent(tt.content, tt.guildID))

			if cmd != tt.expectedCmd {
				t.Errorf("command = %q, 기대값 %q", cmd, tt.expectedCmd)
			}
			if isDM != tt.expectedDM {
				t.Errorf("isDM = %v, 기대값 %v", isDM, tt.expectedDM)
			}
			if len(params) != len(tt.expectedParams) {
				t.Fatalf("params = %v, 기대값 %v", params, tt.expectedParams)
			}
			for i := range params {
				if params[i] != tt.expectedParams[i] {
					t.Errorf("params[%d] = %q, 기대값 %q", i, params[i], tt.expectedParams[i])
				}
			}
		})
	}
}

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name     string
		params   []string
		expected competition.Filters
	}{
		{
			"빈 매개변수",
			nil,
			competition.Filters{Difficulty: models.DifficultyAll},
		},
		{
			"난이도만",
			[]string{"easy"},
			competition.Filters{Difficulty: models.DifficultyEasy},
		},
		{
			"난이도와 숨김",
			[]string{"hard", "숨김"},
			competition.Filters{Difficulty: models.DifficultyHard, HideSolved: true},
		},
		{
			"영문 숨김 키워드",
			[]string{"all", "hide"},
			competition.Filters{Difficulty: models.DifficultyAll, HideSolved: true},
		},
		{
			"검색어까지 전체",
			[]string{"medium", "숨김", "binary", "search"},
			competition.Filters{Difficulty: models.DifficultyMedium, HideSolved: true, Search: "binary search"},
		},
		{
			"숨김 없이 검색어",
			[]string{"easy", "two", "sum"},
			competition.Filters{Difficulty: models.DifficultyEasy, Search: "two sum"},
		},
		{
			"알 수 없는 난이도는 전체",
			[]string{"extreme"},
			competition.Filters{Difficulty: models.DifficultyAll},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseFilters(tt.params)
			if result != tt.expected {
				t.Errorf("parseFilters(%v) = %+v, 기대값 %+v", tt.params, result, tt.expected)
			}
		})
	}
}

func TestPadDisplay(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"ab", 5, "ab   "},
		{"abcde", 5, "abcde "},
		{"한글", 6, "한글  "},
		{"", 3, "   "},
	}

	for _, tt := range tests {
		if result := padDisplay(tt.input, tt.width); result != tt.expected {
			t.Errorf("padDisplay(%q, %d) = %q, 기대값 %q", tt.input, tt.width, result, tt.expected)
		}
	}
}

func TestFormatIndividualBoard(t *testing.T) {
	rm := NewRankingManager(nil, nil, "comp-1", true)
	board := &ranking.IndividualBoard{
		Entries: []models.IndividualEntry{
			{ID: "u1", Name: "김참가", Team: "알고팀", Points: 50, Solves: 2},
			{ID: "u2", Name: "이해결", Team: "코드팀", Points: 45, Solves: 2},
		},
	}

	embed := rm.formatIndividualBoard(board, "comp-1")

	if embed.Title != "🏅 comp-1 개인 랭킹" {
		t.Errorf("임베드 제목 = %q", embed.Title)
	}
	if !strings.Contains(embed.Description, "김참가") || !strings.Contains(embed.Description, "알고팀") {
		t.Error("개인 랭킹 본문에 이름과 팀이 포함되어야 합니다")
	}
	if !strings.Contains(embed.Description, "이름") || !strings.Contains(embed.Description, "팀") {
		t.Error("개인 랭킹 본문에 머리글이 포함되어야 합니다")
	}
}
