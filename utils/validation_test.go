package utils

import (
	"strings"
	"testing"
)

func TestFormatTeamCode(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		format   string
		expected string
	}{
		{"기본 형식", "abc123", "XXX-XXX", "ABC-123"},
		{"이미 대문자", "ABC123", "XXX-XXX", "ABC-123"},
		{"대시 포함 입력", "abc-123", "XXX-XXX", "ABC-123"},
		{"짧은 입력은 잘림", "ab", "XXX-XXX", "AB"},
		{"형식보다 긴 입력", "abc123xyz", "XXX-XXX", "ABC-123"},
		{"빈 입력", "", "XXX-XXX", ""},
		{"공백 포함", " abc123 ", "XXX-XXX", "ABC-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatTeamCode(tt.raw, tt.format)
			if result != tt.expected {
				t.Errorf("FormatTeamCode(%q, %q) = %q, 기대값 %q", tt.raw, tt.format, result, tt.expected)
			}
		})
	}
}

func TestIsValidTeamCode(t *testing.T) {
	validCodes := []string{"ABC-123", "XYZ-999", "A1B-2C3"}
	for _, code := range validCodes {
		if !IsValidTeamCode(code) {
			t.Errorf("유효한 팀 코드 %q가 거부되었습니다", code)
		}
	}

	invalidCodes := []string{"abc-123", "ABC123", "AB-123", "ABC-12", "", "ABC-1234", "AB!-123"}
	for _, code := range invalidCodes {
		if IsValidTeamCode(code) {
			t.Errorf("잘못된 팀 코드 %q가 허용되었습니다", code)
		}
	}
}

func TestNormalizeTeamCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ABC-123", "ABC123"},
		{"abc-123", "ABC123"},
		{" abc123 ", "ABC123"},
		{"", ""},
	}

	for _, tt := range tests {
		if result := NormalizeTeamCode(tt.input); result != tt.expected {
			t.Errorf("NormalizeTeamCode(%q) = %q, 기대값 %q", tt.input, result, tt.expected)
		}
	}
}

func TestIsValidTeamName(t *testing.T) {
	validNames := []string{"알고리즘팀", "Team Alpha", "코드 마스터즈"}
	for _, name := range validNames {
		if !IsValidTeamName(name) {
			t.Errorf("유효한 팀 이름 %q가 거부되었습니다", name)
		}
	}

	invalidNames := []string{
		"",
		"a",
		strings.Repeat("긴이름", 30),
		"이름  중복공백",
		strings.Repeat("a", 12),
	}
	for _, name := range invalidNames {
		if IsValidTeamName(name) {
			t.Errorf("잘못된 팀 이름 %q가 허용되었습니다", name)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"hello", 10, "hello"},
		{"hello world", 5, "he..."},
		{"한글문자열", 3, "..."},
		{"", 5, ""},
	}

	for _, tt := range tests {
		if result := TruncateString(tt.input, tt.maxLen); result != tt.expected {
			t.Errorf("TruncateString(%q, %d) = %q, 기대값 %q", tt.input, tt.maxLen, result, tt.expected)
		}
	}
}

func TestGetDisplayWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"abc", 3},
		{"한글", 4},
		{"a한b글", 6},
		{"", 0},
	}

	for _, tt := range tests {
		if result := GetDisplayWidth(tt.input); result != tt.expected {
			t.Errorf("GetDisplayWidth(%q) = %d, 기대값 %d", tt.input, result, tt.expected)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"마크다운 제거", "**bold** text"},
		{"멘션 제거", "@everyone hello"},
		{"백틱 제거", "`code`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeString(tt.input)
			if strings.Contains(result, "**") || strings.Contains(result, "@everyone") || strings.Contains(result, "`") {
				t.Errorf("SanitizeString(%q) = %q, 위험 문자가 남아 있습니다", tt.input, result)
			}
		})
	}
}

func TestIsValidSearchQuery(t *testing.T) {
	if !IsValidSearchQuery("") {
		t.Error("빈 검색어는 허용되어야 합니다")
	}
	if !IsValidSearchQuery("binary search") {
		t.Error("일반 검색어가 거부되었습니다")
	}
	if IsValidSearchQuery(strings.Repeat("a", 300)) {
		t.Error("과도하게 긴 검색어가 허용되었습니다")
	}
}

func TestParseDateWithValidation(t *testing.T) {
	if _, err := ParseDateWithValidation("2026-09-01", "start"); err != nil {
		t.Errorf("유효한 날짜가 거부되었습니다: %v", err)
	}
	if _, err := ParseDateWithValidation("not-a-date", "start"); err == nil {
		t.Error("잘못된 날짜 형식이 허용되었습니다")
	}
	if _, err := ParseDateWithValidation("", "start"); err == nil {
		t.Error("빈 날짜가 허용되었습니다")
	}
}
