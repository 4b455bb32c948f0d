package models

// LoginResult 로그인 응답을 나타냅니다.
// 팀이 없는 사용자는 TeamCode가 빈 문자열로 내려옵니다.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TeamCode    string `json:"teamCode"`
}
