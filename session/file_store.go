package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/codearena/arenabot/utils"
)

// sessionData 디스크에 기록되는 세션 레코드입니다.
// Auth는 로그인 여부를 나타내는 "true" 플래그이며, 로그아웃 시 키 자체가 사라집니다.
// TeamCode의 nil 포인터는 "저장된 값 없음"을, 빈 문자열은 "소속 없음"을 의미합니다.
type sessionData struct {
	Auth     *string `json:"auth,omitempty"`
	Token    *string `json:"token,omitempty"`
	TeamCode *string `json:"teamCode,omitempty"`
}

// FileStore JSON 파일 기반 세션 저장소 구현
type FileStore struct {
	mu       sync.RWMutex
	path     string
	data     sessionData
	hydrated bool
}

// NewFileStore 새 파일 기반 세션 저장소 생성
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// hydrate 파일에서 세션을 지연 로딩합니다. 잠금을 보유한 상태에서 호출해야 합니다.
func (s *FileStore) hydrate() {
	if s.hydrated {
		return
	}
	s.hydrated = true

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.Warn("Failed to read session file %s: %v", s.path, err)
		}
		return
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		utils.Warn("Session file %s is corrupted, starting with empty session: %v", s.path, err)
		s.data = sessionData{}
	}
}

// persist 현재 세션을 파일에 기록합니다. 잠금을 보유한 상태에서 호출해야 합니다.
func (s *FileStore) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Authenticated 로그인 플래그가 기록되어 있는지 확인합니다
func (s *FileStore) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate()
	return s.data.Auth != nil && *s.data.Auth == "true"
}

// SetAuthenticated 로그인 플래그를 기록합니다
func (s *FileStore) SetAuthenticated() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate()
	flag := "true"
	s.data.Auth = &flag
	return s.persist()
}

// Token 저장된 액세스 토큰을 반환합니다
func (s *FileStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate()
	if s.data.Token == nil || *s.data.Token == "" {
		return "", false
	}
	return *s.data.Token, true
}

// SetToken 액세스 토큰을 저장합니다
func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate()
	s.data.Token = &token
	return s.persist()
}

// TeamCode 저장된 팀 코드를 반환합니다.
// 빈 문자열이 저장된 경우 "소속 없음"으로 확정된 상태이며 (code="", ok=true)를 반환합니다.
func (s *FileStore) TeamCode() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate()
	if s.data.TeamCode == nil {
		return "", false
	}
	return *s.data.TeamCode, true
}

// SetTeamCode 팀 코드를 저장합니다
func (s *FileStore) SetTeamCode(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate()
	s.data.TeamCode = &code
	return s.persist()
}

// ClearTeam 팀 소속을 "없음"으로 확정합니다
func (s *FileStore) ClearTeam() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate()
	empty := ""
	s.data.TeamCode = &empty
	return s.persist()
}

// Check 세션 파일이 읽을 수 있는 상태인지 점검합니다.
// 파일이 아직 없는 것은 정상 상태입니다.
func (s *FileStore) Check() error {
	if _, err := os.ReadFile(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Clear 세션 전체를 초기화합니다
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrated = true
	s.data = sessionData{}
	return s.persist()
}
