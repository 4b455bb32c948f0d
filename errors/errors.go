package errors

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/codearena/arenabot/constants"
)

var detailedErrors atomic.Bool

// SetDetailedErrors 사용자 메시지에 내부 오류 상세를 포함할지 설정합니다
func SetDetailedErrors(enabled bool) {
	detailedErrors.Store(enabled)
}

// ErrorType 오류의 종류를 나타냅니다
type ErrorType int

const (
	TypeValidation ErrorType = iota
	TypeTransport
	TypeRequest
	TypeNotFound
	TypeTeamScope
	TypeGate
	TypeSystem
)

// AppError 애플리케이션에서 발생하는 구조화된 오류를 표현합니다
type AppError struct {
	Type     ErrorType
	Code     string
	Message  string
	UserMsg  string
	Internal error
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// GetUserMessage 사용자에게 표시할 메시지를 반환합니다
func (e *AppError) GetUserMessage() string {
	if e.UserMsg != "" {
		return e.UserMsg
	}
	return e.Message
}

// 오류 생성 함수들

// NewValidationError 입력값 검증 오류를 생성합니다
func NewValidationError(code, message, userMsg string) *AppError {
	return &AppError{
		Type:    TypeValidation,
		Code:    code,
		Message: message,
		UserMsg: userMsg,
	}
}

// NewTransportError 백엔드에 도달하지 못한 네트워크 오류를 생성합니다
func NewTransportError(code, message string, err error) *AppError {
	return &AppError{
		Type:     TypeTransport,
		Code:     code,
		Message:  message,
		UserMsg:  "서버에 연결할 수 없습니다. 잠시 후 다시 시도해주세요.",
		Internal: err,
	}
}

// NewRequestError 백엔드가 실패 응답을 반환한 오류를 생성합니다
func NewRequestError(code, message, userMsg string, err error) *AppError {
	return &AppError{
		Type:     TypeRequest,
		Code:     code,
		Message:  message,
		UserMsg:  userMsg,
		Internal: err,
	}
}

// NewNotFoundError 리소스를 찾을 수 없는 오류를 생성합니다
func NewNotFoundError(code, message, userMsg string) *AppError {
	return &AppError{
		Type:    TypeNotFound,
		Code:    code,
		Message: message,
		UserMsg: userMsg,
	}
}

// NewTeamScopeError 팀 소속이 필요한 작업에 대한 오류를 생성합니다
func NewTeamScopeError(code, message, userMsg string) *AppError {
	return &AppError{
		Type:    TypeTeamScope,
		Code:    code,
		Message: message,
		UserMsg: userMsg,
	}
}

// NewGateError 제출 확인암호 불일치 오류를 생성합니다
func NewGateError(code, message string) *AppError {
	return &AppError{
		Type:    TypeGate,
		Code:    code,
		Message: message,
		UserMsg: constants.MsgSubmitGateFailed,
	}
}

// NewSystemError 시스템 내부 오류를 생성합니다
func NewSystemError(code, message string, err error) *AppError {
	return &AppError{
		Type:     TypeSystem,
		Code:     code,
		Message:  message,
		UserMsg:  "시스템 오류가 발생했습니다. 관리자에게 문의해주세요.",
		Internal: err,
	}
}

// userMessage 상세 오류 설정을 반영한 사용자 메시지를 만듭니다
func userMessage(appErr *AppError) string {
	msg := appErr.GetUserMessage()
	if detailedErrors.Load() && appErr.Internal != nil {
		msg = fmt.Sprintf("%s\n`%s: %v`", msg, appErr.Code, appErr.Internal)
	}
	return msg
}

// Discord 메시지 관련 헬퍼 함수들

// HandleDiscordError 오류를 처리하고 Discord 채널에 메시지를 전송합니다
func HandleDiscordError(s *discordgo.Session, channelID string, err error) {
	if appErr, ok := err.(*AppError); ok {
		// 로그에 상세 정보 기록
		if appErr.Internal != nil {
			fmt.Printf("ERROR: %s - %s: %v\n", appErr.Code, appErr.Message, appErr.Internal)
		} else {
			fmt.Printf("ERROR: %s - %s\n", appErr.Code, appErr.Message)
		}

		if discordErr := SendDiscordMessageWithRetry(s, channelID, constants.EmojiError+" "+userMessage(appErr)); discordErr != nil {
			fmt.Printf("DISCORD API ERROR: Failed to send error message after retries: %v\n", discordErr)
		}
	} else {
		// 예상치 못한 오류 로깅
		fmt.Printf("UNEXPECTED ERROR: %v\n", err)
		if discordErr := SendDiscordMessageWithRetry(s, channelID, constants.EmojiError+" 예상치 못한 오류가 발생했습니다."); discordErr != nil {
			fmt.Printf("DISCORD API ERROR: Failed to send error message after retries: %v\n", discordErr)
		}
	}
}

// SendDiscordSuccess 성공 메시지를 Discord 채널에 전송합니다
func SendDiscordSuccess(s *discordgo.Session, channelID, message string) error {
	return SendDiscordMessageWithRetry(s, channelID, constants.EmojiSuccess+" "+message)
}

// SendDiscordInfo 정보 메시지를 Discord 채널에 전송합니다
func SendDiscordInfo(s *discordgo.Session, channelID, message string) error {
	return SendDiscordMessageWithRetry(s, channelID, constants.EmojiInfo+" "+message)
}

// SendDiscordWarning 경고 메시지를 Discord 채널에 전송합니다
func SendDiscordWarning(s *discordgo.Session, channelID, message string) error {
	return SendDiscordMessageWithRetry(s, channelID, constants.EmojiWarning+" "+message)
}

// SendDiscordMessageWithRetry Discord 메시지 전송을 재시도 로직과 함께 수행합니다
func SendDiscordMessageWithRetry(s *discordgo.Session, channelID, message string) error {
	const maxRetries = constants.MaxDiscordRetries
	const baseDelay = constants.BaseRetryDelay

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := s.ChannelMessageSend(channelID, message)
		if err == nil {
			if attempt > 0 {
				fmt.Printf("Discord message sent successfully after %d retries\n", attempt)
			}
			return nil
		}

		lastErr = err
		if attempt < maxRetries-1 {
			delay := time.Duration(1<<attempt) * baseDelay // Exponential backoff: 1s, 2s, 4s
			fmt.Printf("Discord API call failed (attempt %d/%d): %v. Retrying in %v...\n",
				attempt+1, maxRetries, err, delay)
			time.Sleep(delay)
		}
	}

	fmt.Printf("DISCORD API ERROR: All retry attempts failed: %v\n", lastErr)
	return lastErr
}
