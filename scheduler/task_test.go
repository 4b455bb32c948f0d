package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestEveryFires(t *testing.T) {
	var calls int32
	task := Every(10*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})
	defer task.Stop()

	time.Sleep(55 * time.Millisecond)

	if got := atomic.LoadInt32(&calls); got < 2 {
		t.Errorf("주기 실행 횟수 = %d, 최소 2회 이상이어야 합니다", got)
	}
}

func TestTaskStopHaltsExecution(t *testing.T) {
	var calls int32
	task := Every(10*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	time.Sleep(25 * time.Millisecond)
	task.Stop()

	after := atomic.LoadInt32(&calls)
	time.Sleep(50 * time.Millisecond)

	if got := atomic.LoadInt32(&calls); got != after {
		t.Errorf("중지 이후에도 실행이 계속되었습니다: %d -> %d", after, got)
	}
}

func TestTaskStopIdempotent(t *testing.T) {
	task := Every(time.Hour, func() {})

	task.Stop()
	task.Stop()
	task.Stop()
}
