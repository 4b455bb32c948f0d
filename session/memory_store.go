package session

import "sync"

// MemoryStore 테스트/개발용 비영구 세션 저장소 구현
type MemoryStore struct {
	mu       sync.RWMutex
	auth     bool
	token    *string
	teamCode *string
}

// NewMemoryStore 새 인메모리 세션 저장소 생성
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth
}

func (s *MemoryStore) SetAuthenticated() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = true
	return nil
}

func (s *MemoryStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == nil || *s.token == "" {
		return "", false
	}
	return *s.token, true
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = &token
	return nil
}

func (s *MemoryStore) TeamCode() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.teamCode == nil {
		return "", false
	}
	return *s.teamCode, true
}

func (s *MemoryStore) SetTeamCode(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teamCode = &code
	return nil
}

func (s *MemoryStore) ClearTeam() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	empty := ""
	s.teamCode = &empty
	return nil
}

func (s *MemoryStore) Check() error {
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = false
	s.token = nil
	s.teamCode = nil
	return nil
}
