package interfaces

// SessionStore 세션과 팀 소속 정보를 위한 저장소 인터페이스입니다.
// 팀 코드는 "소속 없음"을 빈 문자열로 구분하여 저장합니다.
type SessionStore interface {
	// 인증 정보
	Authenticated() bool
	SetAuthenticated() error
	Token() (string, bool)
	SetToken(token string) error

	// 팀 소속
	TeamCode() (string, bool)
	SetTeamCode(code string) error
	ClearTeam() error

	// 세션 정리
	Clear() error

	// 저장소 상태 점검
	Check() error
}
