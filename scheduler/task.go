package scheduler

import (
	"sync"
	"time"
)

// Task 주기적으로 실행되는 작업 핸들입니다
type Task struct {
	ticker   *time.Ticker
	stopChan chan bool
	stopOnce sync.Once
}

// Every 지정된 간격으로 fn을 반복 실행하는 작업을 시작합니다.
// 반환된 Task의 Stop을 호출하기 전까지 실행이 계속됩니다.
func Every(interval time.Duration, fn func()) *Task {
	task := &Task{
		ticker:   time.NewTicker(interval),
		stopChan: make(chan bool),
	}

	go func() {
		for {
			select {
			case <-task.ticker.C:
				fn()
			case <-task.stopChan:
				return
			}
		}
	}()

	return task
}

// Stop 작업을 중지합니다. 여러 번 호출해도 안전합니다.
func (t *Task) Stop() {
	t.stopOnce.Do(func() {
		t.ticker.Stop()
		close(t.stopChan)
	})
}
