package utils

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/errors"
)

// ValidationErrorHelper 검증 에러 처리를 위한 헬퍼
type ValidationErrorHelper struct {
	session   *discordgo.Session
	channelID string
}

// NewValidationErrorHelper ValidationErrorHelper 생성자
func NewValidationErrorHelper(session *discordgo.Session, channelID string) *ValidationErrorHelper {
	return &ValidationErrorHelper{
		session:   session,
		channelID: channelID,
	}
}

// HandleInvalidParams 잘못된 매개변수 에러 처리
func (v *ValidationErrorHelper) HandleInvalidParams(code, message, userMsg string) {
	err := errors.NewValidationError(code, message, userMsg)
	errors.HandleDiscordError(v.session, v.channelID, err)
}

// HandleInvalidTeamCode 잘못된 팀 코드 형식 에러 처리
func (v *ValidationErrorHelper) HandleInvalidTeamCode(code string) {
	err := errors.NewValidationError("INVALID_TEAM_CODE",
		fmt.Sprintf("팀 코드 형식이 올바르지 않습니다: %s", code),
		fmt.Sprintf(constants.MsgTeamInvalidCode, constants.TeamCodePattern))
	errors.HandleDiscordError(v.session, v.channelID, err)
}

// HandleInsufficientPermissions 권한 부족 에러 처리
func (v *ValidationErrorHelper) HandleInsufficientPermissions() {
	err := errors.NewValidationError("INSUFFICIENT_PERMISSIONS",
		"사용자가 필수 권한을 가지고 있지 않습니다",
		constants.MsgInsufficientPermissions)
	errors.HandleDiscordError(v.session, v.channelID, err)
}

// SessionErrorHelper 세션 상태 관련 에러 처리를 위한 헬퍼
type SessionErrorHelper struct {
	session   *discordgo.Session
	channelID string
}

// NewSessionErrorHelper SessionErrorHelper 생성자
func NewSessionErrorHelper(session *discordgo.Session, channelID string) *SessionErrorHelper {
	return &SessionErrorHelper{
		session:   session,
		channelID: channelID,
	}
}

// HandleNotLoggedIn 로그인이 필요한 작업에 대한 에러 처리
func (s *SessionErrorHelper) HandleNotLoggedIn() {
	err := errors.NewValidationError("NOT_LOGGED_IN",
		"세션에 액세스 토큰이 없습니다",
		constants.MsgNotLoggedIn)
	errors.HandleDiscordError(s.session, s.channelID, err)
}

// HandleNoTeam 팀 소속이 필요한 작업에 대한 에러 처리
func (s *SessionErrorHelper) HandleNoTeam() {
	err := errors.NewTeamScopeError("NO_TEAM",
		"세션에 팀 코드가 없습니다",
		constants.MsgTeamNone)
	errors.HandleDiscordError(s.session, s.channelID, err)
}

// SystemErrorHelper 시스템 에러 처리를 위한 헬퍼
type SystemErrorHelper struct {
	session   *discordgo.Session
	channelID string
}

// NewSystemErrorHelper SystemErrorHelper 생성자
func NewSystemErrorHelper(session *discordgo.Session, channelID string) *SystemErrorHelper {
	return &SystemErrorHelper{
		session:   session,
		channelID: channelID,
	}
}

// HandleSystemError 시스템 에러 처리
func (s *SystemErrorHelper) HandleSystemError(code, message, userMsg string, err error) {
	botErr := errors.NewSystemError(code, message, err)
	botErr.UserMsg = userMsg
	errors.HandleDiscordError(s.session, s.channelID, botErr)
}

// HandleSnapshotLoadFailed 대회 스냅샷 적재 실패 에러 처리
func (s *SystemErrorHelper) HandleSnapshotLoadFailed(competitionID string, err error) {
	botErr := errors.NewSystemError("SNAPSHOT_LOAD_FAILED",
		fmt.Sprintf("대회 '%s' 스냅샷 적재에 실패했습니다", competitionID), err)
	botErr.UserMsg = "대회 정보를 불러오지 못했습니다."
	errors.HandleDiscordError(s.session, s.channelID, botErr)
}

// HandleBoardGenerationFailed 랭킹 보드 생성 실패 에러 처리
func (s *SystemErrorHelper) HandleBoardGenerationFailed(err error) {
	botErr := errors.NewSystemError("BOARD_GENERATION_FAILED",
		"랭킹 보드 생성에 실패했습니다", err)
	botErr.UserMsg = "랭킹 보드 생성에 실패했습니다."
	errors.HandleDiscordError(s.session, s.channelID, botErr)
}

// ErrorHandlerFactory 에러 핸들러들을 생성하는 팩토리
type ErrorHandlerFactory struct {
	session   *discordgo.Session
	channelID string
}

// NewErrorHandlerFactory ErrorHandlerFactory 생성자
func NewErrorHandlerFactory(session *discordgo.Session, channelID string) *ErrorHandlerFactory {
	return &ErrorHandlerFactory{
		session:   session,
		channelID: channelID,
	}
}

// Validation ValidationErrorHelper 반환
func (f *ErrorHandlerFactory) Validation() *ValidationErrorHelper {
	return NewValidationErrorHelper(f.session, f.channelID)
}

// Session SessionErrorHelper 반환
func (f *ErrorHandlerFactory) Session() *SessionErrorHelper {
	return NewSessionErrorHelper(f.session, f.channelID)
}

// System SystemErrorHelper 반환
func (f *ErrorHandlerFactory) System() *SystemErrorHelper {
	return NewSystemErrorHelper(f.session, f.channelID)
}
