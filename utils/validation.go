package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/codearena/arenabot/constants"
)

var teamCodePattern = regexp.MustCompile(`^[A-Z0-9]{3}-[A-Z0-9]{3}$`)

// IsValidTeamCode 표시 형식(XXX-XXX)의 팀 코드인지 검증합니다
func IsValidTeamCode(code string) bool {
	return teamCodePattern.MatchString(code)
}

// NormalizeTeamCode 팀 코드에서 구분자를 제거하고 대문자로 정규화합니다
func NormalizeTeamCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	return strings.ReplaceAll(code, "-", "")
}

// FormatTeamCode 원시 팀 코드를 표시 형식에 맞춰 변환합니다.
// 원시 코드는 대문자로 변환되고, 형식의 X 자리에 순서대로 채워집니다.
// 형식보다 긴 코드는 잘라내고, 짧은 코드는 채워진 만큼만 표시합니다.
func FormatTeamCode(raw, format string) string {
	normalized := NormalizeTeamCode(raw)

	var b strings.Builder
	pos := 0
	for _, r := range format {
		if r == 'X' {
			if pos >= len(normalized) {
				break
			}
			b.WriteByte(normalized[pos])
			pos++
		} else {
			if pos >= len(normalized) {
				break
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidTeamName 팀 이름 유효성 검사
func IsValidTeamName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) == 0 || len(trimmed) != len(name) {
		return false
	}

	if len(name) < constants.MinTeamNameLength || len(name) > constants.MaxTeamNameLength {
		return false
	}

	if GetDisplayWidth(name) > constants.MaxUsernameDisplayWidth {
		return false
	}

	if containsMaliciousPattern(name) {
		return false
	}

	// 특수문자 제한
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9가-힣ㄱ-ㅎ\s\-_.]+$`, name)
	if !matched {
		return false
	}

	// 연속된 공백이나 특수문자 방지
	if strings.Contains(name, "  ") ||
		strings.Contains(name, "--") ||
		strings.Contains(name, "__") {
		return false
	}

	return true
}

// IsValidHandle 외부 저지 핸들 유효성 검사
func IsValidHandle(handle string) bool {
	if len(handle) < constants.MinHandleLength || len(handle) > constants.MaxHandleLength {
		return false
	}

	if containsMaliciousPattern(handle) {
		return false
	}

	// 영문, 숫자, 언더스코어, 하이픈만 허용
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9_\-]+$`, handle)
	if !matched {
		return false
	}

	// 영문으로 시작해야 함
	if !regexp.MustCompile(`^[a-zA-Z]`).MatchString(handle) {
		return false
	}

	return true
}

// IsValidSearchQuery 검색어 길이와 제어 문자를 검사합니다
func IsValidSearchQuery(query string) bool {
	if len(query) > constants.MaxSearchQueryLength {
		return false
	}
	return !containsMaliciousPattern(query)
}

// containsMaliciousPattern 악의적인 패턴을 감지합니다
func containsMaliciousPattern(input string) bool {
	// 과도한 반복 문자 방지
	if hasExcessiveRepeats(input, constants.MaxCharacterRepeats) {
		return true
	}

	// 제어 문자 방지
	for _, char := range input {
		if char < constants.ControlCharMin && char != constants.ControlCharTab && char != constants.ControlCharLF && char != constants.ControlCharCR {
			return true
		}
	}

	return false
}

// hasExcessiveRepeats 과도한 문자 반복을 감지합니다
func hasExcessiveRepeats(input string, maxRepeats int) bool {
	if len(input) == 0 {
		return false
	}

	count := 1
	prev := rune(0)

	for _, char := range input {
		if char == prev {
			count++
			if count > maxRepeats {
				return true
			}
		} else {
			count = 1
			prev = char
		}
	}

	return false
}

// ParseDateWithValidation 날짜 문자열을 파싱하고 유효성을 검사합니다
func ParseDateWithValidation(dateStr, fieldName string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("%s 날짜가 비어있습니다", fieldName)
	}

	parsedDate, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s 날짜 형식이 올바르지 않습니다: %s (YYYY-MM-DD 형식으로 입력하세요)", fieldName, dateStr)
	}

	return parsedDate, nil
}

// TruncateString 문자열이 최대 길이를 넘으면 잘라냅니다
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= len(constants.TruncateIndicator) {
		return constants.TruncateIndicator[:maxLen]
	}
	return s[:maxLen-len(constants.TruncateIndicator)] + constants.TruncateIndicator
}

// GetDisplayWidth 한글과 영어 문자 폭을 고려한 문자열 길이 계산
func GetDisplayWidth(s string) int {
	width := 0
	for _, r := range s {
		if r >= constants.UnicodeHangulJamoStart && r <= constants.UnicodeHangulJamoEnd ||
			r >= constants.UnicodeHangulCompatStart && r <= constants.UnicodeHangulCompatEnd ||
			r >= constants.UnicodeHangulSyllableStart && r <= constants.UnicodeHangulSyllableEnd ||
			r >= constants.UnicodeCJKStart && r <= constants.UnicodeCJKEnd ||
			r >= constants.UnicodeFullwidthPrintableStart && r <= constants.UnicodeFullwidthPrintableEnd {
			width += 2
		} else {
			width += 1
		}
	}
	return width
}

func SanitizeString(s string) string {
	// Discord 메시지에서 문제가 될 수 있는 특수문자 제거/변경
	s = strings.ReplaceAll(s, "`", "'")
	s = strings.ReplaceAll(s, "<@", "(at)")
	s = strings.ReplaceAll(s, "<#", "(channel)")
	s = strings.ReplaceAll(s, "<:", "(emoji)")
	s = strings.ReplaceAll(s, "@", "(at)")
	s = strings.ReplaceAll(s, "||", "")
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "~~", "")
	s = strings.ReplaceAll(s, "*", "")

	// 제어 문자 제거
	var cleaned strings.Builder
	for _, r := range s {
		if r >= 32 || r == '\n' || r == '\t' {
			cleaned.WriteRune(r)
		}
	}

	return strings.TrimSpace(cleaned.String())
}
