package performance

import (
	"testing"
	"time"

	"github.com/codearena/arenabot/constants"
)

func TestNewAdaptiveConcurrencyManager(t *testing.T) {
	manager := NewAdaptiveConcurrencyManager()

	if manager.GetCurrentLimit() != constants.MaxConcurrentRequests {
		t.Errorf("초기 동시성 제한 = %d, 기대값 %d", manager.GetCurrentLimit(), constants.MaxConcurrentRequests)
	}
}

func TestRecordResponseTimeWindow(t *testing.T) {
	manager := NewAdaptiveConcurrencyManager()

	for i := 0; i < constants.ResponseTimeWindowSize+5; i++ {
		manager.RecordResponseTime(100 * time.Millisecond)
	}

	stats := manager.GetStats()
	if stats.WindowSize != constants.ResponseTimeWindowSize {
		t.Errorf("윈도우 크기 = %d, 기대값 %d", stats.WindowSize, constants.ResponseTimeWindowSize)
	}
}

func TestConcurrencyDecreaseOnSlowResponses(t *testing.T) {
	manager := NewAdaptiveConcurrencyManager()
	manager.adjustmentCooldown = 0

	initial := manager.GetCurrentLimit()

	// 느린 응답을 충분히 기록해 감소를 유도합니다
	for i := 0; i < constants.MinResponseTimeWindowSize+1; i++ {
		manager.RecordResponseTime(5 * time.Second)
	}

	if manager.GetCurrentLimit() >= initial {
		t.Errorf("느린 응답에도 동시성이 감소하지 않았습니다: %d -> %d", initial, manager.GetCurrentLimit())
	}
	if manager.GetCurrentLimit() < manager.GetStats().MinLimit {
		t.Error("동시성이 하한 아래로 내려갔습니다")
	}
}

func TestConcurrencyNeverExceedsBounds(t *testing.T) {
	manager := NewAdaptiveConcurrencyManager()
	manager.adjustmentCooldown = 0

	// 매우 빠른 응답을 대량 기록해도 상한을 넘지 않아야 합니다
	for i := 0; i < 200; i++ {
		manager.RecordResponseTime(time.Millisecond)
	}

	stats := manager.GetStats()
	if stats.CurrentLimit > stats.MaxLimit {
		t.Errorf("동시성 %d이 상한 %d을 초과했습니다", stats.CurrentLimit, stats.MaxLimit)
	}
}

func TestCalculateStats(t *testing.T) {
	manager := NewAdaptiveConcurrencyManager()

	manager.RecordResponseTime(100 * time.Millisecond)
	manager.RecordResponseTime(200 * time.Millisecond)
	manager.RecordResponseTime(300 * time.Millisecond)

	stats := manager.GetStats()
	if stats.AverageResponse != 200*time.Millisecond {
		t.Errorf("평균 응답 시간 = %v, 기대값 200ms", stats.AverageResponse)
	}
	if stats.SlowestResponse != 300*time.Millisecond {
		t.Errorf("최대 응답 시간 = %v, 기대값 300ms", stats.SlowestResponse)
	}
}
