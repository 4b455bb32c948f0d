package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandlerReportsCheckers(t *testing.T) {
	RegisterChecker("ok_component", func() error { return nil })
	RegisterChecker("bad_component", func() error { return fmt.Errorf("down") })
	defer func() { checkers = map[string]Checker{} }()

	rec := httptest.NewRecorder()
	healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var status HealthStatus
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("헬스 응답 파싱 실패: %v", err)
	}

	if status.Status != "degraded" {
		t.Errorf("전체 상태 = %q, 실패한 검사가 있으면 degraded여야 합니다", status.Status)
	}
	if status.Checks["ok_component"] != "ok" {
		t.Errorf("ok_component = %q, 기대값 \"ok\"", status.Checks["ok_component"])
	}
	if status.Checks["bad_component"] != "down" {
		t.Errorf("bad_component = %q, 기대값 \"down\"", status.Checks["bad_component"])
	}
}

func TestHealthHandlerHealthyWithoutCheckers(t *testing.T) {
	rec := httptest.NewRecorder()
	healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var status HealthStatus
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("헬스 응답 파싱 실패: %v", err)
	}
	if status.Status != "healthy" {
		t.Errorf("전체 상태 = %q, 기대값 \"healthy\"", status.Status)
	}
}
