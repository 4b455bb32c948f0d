package constants

// 팀 코드 검증 상수
const (
	TeamCodeLength    = 6
	TeamCodePattern   = "XXX-XXX"
	MinTeamNameLength = 2
	MaxTeamNameLength = 50
)

// 외부 핸들(LeetCode 사용자명) 검증 상수
const (
	MinHandleLength = 1
	MaxHandleLength = 30
)

// 검색어 제한
const (
	MaxSearchQueryLength = 100
)

// 문자열 표시 관련 상수
const (
	TruncateIndicator       = "..."
	MaxUsernameDisplayWidth = 24
	MaxCharacterRepeats     = 10
)

// 제어 문자 경계값
const (
	ControlCharMin = 32
	ControlCharTab = 9
	ControlCharLF  = 10
	ControlCharCR  = 13
)

// 유니코드 표시 폭 계산용 범위 (한글/한자/전각 문자는 2칸)
const (
	UnicodeHangulJamoStart         = 0x1100
	UnicodeHangulJamoEnd           = 0x11FF
	UnicodeHangulCompatStart       = 0x3130
	UnicodeHangulCompatEnd         = 0x318F
	UnicodeHangulSyllableStart     = 0xAC00
	UnicodeHangulSyllableEnd       = 0xD7AF
	UnicodeCJKStart                = 0x4E00
	UnicodeCJKEnd                  = 0x9FFF
	UnicodeFullwidthPrintableStart = 0xFF01
	UnicodeFullwidthPrintableEnd   = 0xFF60
)
