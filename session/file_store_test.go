package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewFileStore(path), path
}

func TestFileStoreEmptySession(t *testing.T) {
	store, _ := newTestStore(t)

	if store.Authenticated() {
		t.Error("빈 세션이 로그인 상태로 조회되었습니다")
	}
	if _, ok := store.Token(); ok {
		t.Error("빈 세션에서 토큰이 조회되었습니다")
	}
	if _, ok := store.TeamCode(); ok {
		t.Error("빈 세션에서 팀 코드가 조회되었습니다")
	}
}

func TestFileStorePersistence(t *testing.T) {
	store, path := newTestStore(t)

	if err := store.SetAuthenticated(); err != nil {
		t.Fatalf("로그인 플래그 저장 실패: %v", err)
	}
	if err := store.SetToken("access-token"); err != nil {
		t.Fatalf("토큰 저장 실패: %v", err)
	}
	if err := store.SetTeamCode("ABC123"); err != nil {
		t.Fatalf("팀 코드 저장 실패: %v", err)
	}

	// 새 인스턴스가 같은 파일에서 복원하는지 확인합니다
	reopened := NewFileStore(path)

	if !reopened.Authenticated() {
		t.Error("복원된 세션이 로그인 상태가 아닙니다")
	}
	if token, ok := reopened.Token(); !ok || token != "access-token" {
		t.Errorf("복원된 토큰 = %q (%v)", token, ok)
	}
	if code, ok := reopened.TeamCode(); !ok || code != "ABC123" {
		t.Errorf("복원된 팀 코드 = %q (%v)", code, ok)
	}
}

func TestFileStoreTeamCodeSentinel(t *testing.T) {
	store, path := newTestStore(t)
	store.SetToken("token")

	// 저장된 값이 없을 때
	if _, ok := store.TeamCode(); ok {
		t.Error("저장되지 않은 팀 코드가 확정 상태로 조회되었습니다")
	}

	// 빈 문자열은 "소속 없음"으로 확정된 상태입니다
	if err := store.SetTeamCode(""); err != nil {
		t.Fatalf("빈 팀 코드 저장 실패: %v", err)
	}
	if code, ok := store.TeamCode(); !ok || code != "" {
		t.Errorf("소속 없음 상태가 (%q, %v)로 조회되었습니다, 기대값 (\"\", true)", code, ok)
	}

	// 복원 후에도 구분이 유지되어야 합니다
	reopened := NewFileStore(path)
	if code, ok := reopened.TeamCode(); !ok || code != "" {
		t.Errorf("복원된 소속 없음 상태가 (%q, %v)로 조회되었습니다", code, ok)
	}
}

func TestFileStoreClearTeam(t *testing.T) {
	store, _ := newTestStore(t)
	store.SetTeamCode("ABC123")

	if err := store.ClearTeam(); err != nil {
		t.Fatalf("팀 탈퇴 기록 실패: %v", err)
	}

	code, ok := store.TeamCode()
	if !ok || code != "" {
		t.Errorf("탈퇴 후 팀 코드 = (%q, %v), 기대값 (\"\", true)", code, ok)
	}
}

func TestFileStoreClear(t *testing.T) {
	store, _ := newTestStore(t)
	store.SetAuthenticated()
	store.SetToken("token")
	store.SetTeamCode("ABC123")

	if err := store.Clear(); err != nil {
		t.Fatalf("세션 초기화 실패: %v", err)
	}

	if store.Authenticated() {
		t.Error("초기화 후 로그인 플래그가 남아 있습니다")
	}
	if _, ok := store.Token(); ok {
		t.Error("초기화 후 토큰이 남아 있습니다")
	}
	if _, ok := store.TeamCode(); ok {
		t.Error("초기화 후 팀 코드가 남아 있습니다")
	}
}

func TestFileStoreEmptyTokenIsMissing(t *testing.T) {
	store, _ := newTestStore(t)
	store.SetToken("")

	if _, ok := store.Token(); ok {
		t.Error("빈 토큰이 유효한 토큰으로 조회되었습니다")
	}
}

func TestFileStoreCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not-json"), 0o600); err != nil {
		t.Fatalf("테스트 파일 작성 실패: %v", err)
	}

	store := NewFileStore(path)

	// 손상된 파일은 빈 세션으로 복구되어야 합니다
	if _, ok := store.Token(); ok {
		t.Error("손상된 파일에서 토큰이 조회되었습니다")
	}
	if err := store.SetToken("fresh"); err != nil {
		t.Fatalf("복구 후 저장 실패: %v", err)
	}
	if token, ok := store.Token(); !ok || token != "fresh" {
		t.Errorf("복구 후 토큰 = %q (%v)", token, ok)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	if _, ok := store.Token(); ok {
		t.Error("빈 저장소에서 토큰이 조회되었습니다")
	}

	store.SetToken("token")
	store.SetTeamCode("ABC123")

	if token, ok := store.Token(); !ok || token != "token" {
		t.Errorf("토큰 = %q (%v)", token, ok)
	}
	if code, ok := store.TeamCode(); !ok || code != "ABC123" {
		t.Errorf("팀 코드 = %q (%v)", code, ok)
	}

	store.ClearTeam()
	if code, ok := store.TeamCode(); !ok || code != "" {
		t.Errorf("탈퇴 후 팀 코드 = (%q, %v), 기대값 (\"\", true)", code, ok)
	}

	store.Clear()
	if _, ok := store.Token(); ok {
		t.Error("초기화 후 토큰이 남아 있습니다")
	}
}

func TestFileStoreAuthFlagFormat(t *testing.T) {
	store, path := newTestStore(t)

	if err := store.SetAuthenticated(); err != nil {
		t.Fatalf("로그인 플래그 저장 실패: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("세션 파일 읽기 실패: %v", err)
	}

	var record map[string]string
	if err := json.Unmarshal(raw, &record); err != nil {
		t.Fatalf("세션 파일 파싱 실패: %v", err)
	}

	// 로그인 플래그는 "true" 문자열로만 기록됩니다
	if record["auth"] != "true" {
		t.Errorf("auth 키 = %q, 기대값 \"true\"", record["auth"])
	}
}

func TestMemoryStoreAuthFlag(t *testing.T) {
	store := NewMemoryStore()

	if store.Authenticated() {
		t.Error("빈 저장소가 로그인 상태로 조회되었습니다")
	}

	store.SetAuthenticated()
	if !store.Authenticated() {
		t.Error("로그인 플래그가 기록되지 않았습니다")
	}

	store.Clear()
	if store.Authenticated() {
		t.Error("초기화 후 로그인 플래그가 남아 있습니다")
	}
}
