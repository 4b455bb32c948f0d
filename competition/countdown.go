package competition

import (
	"sync"

	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/scheduler"
	"github.com/codearena/arenabot/utils"
)

// CountdownState 카운트다운의 진행 상태입니다
type CountdownState int

const (
	CountdownRunning CountdownState = iota
	CountdownExpired
)

// Countdown 대회 잔여 시간을 1초 간격으로 감소시키는 엔진입니다.
// 내부적으로 초 단위로 동작하며, 0에 도달하면 만료 콜백을 한 번만 호출합니다.
// 사용이 끝나면 반드시 Stop을 호출해야 합니다.
type Countdown struct {
	mu               sync.Mutex
	totalSeconds     int
	remainingSeconds int
	state            CountdownState
	onExpire         func()
	task             *scheduler.Task
}

// NewCountdown 새 카운트다운을 생성합니다.
// totalMinutes는 대회 전체 길이, remainingMinutes는 적재 시점의 잔여 시간입니다.
func NewCountdown(totalMinutes, remainingMinutes int, onExpire func()) *Countdown {
	if remainingMinutes < 0 {
		remainingMinutes = 0
	}

	c := &Countdown{
		totalSeconds:     totalMinutes * constants.SecondsPerMinute,
		remainingSeconds: remainingMinutes * constants.SecondsPerMinute,
		state:            CountdownRunning,
		onExpire:         onExpire,
	}
	if c.remainingSeconds == 0 {
		c.state = CountdownExpired
	}
	return c
}

// Start 1초 간격의 감소 틱을 시작합니다
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.task != nil {
		return
	}
	c.task = scheduler.Every(constants.CountdownTickInterval, c.tick)
	utils.Debug("Countdown started with %d seconds remaining", c.remainingSeconds)
}

// tick 잔여 시간을 1초 감소시킵니다. 0 밑으로는 내려가지 않습니다.
func (c *Countdown) tick() {
	c.mu.Lock()

	if c.remainingSeconds > 0 {
		c.remainingSeconds--
	}

	var fire func()
	if c.remainingSeconds == 0 && c.state == CountdownRunning {
		c.state = CountdownExpired
		fire = c.onExpire
	}
	c.mu.Unlock()

	// 콜백은 잠금 밖에서 호출합니다
	if fire != nil {
		utils.Info("Countdown expired")
		fire()
	}
}

// Remaining 잔여 시간을 초 단위로 반환합니다
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remainingSeconds
}

// State 현재 상태를 반환합니다
func (c *Countdown) State() CountdownState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Clock 잔여 시간을 H:MM:SS 형식으로 반환합니다
func (c *Countdown) Clock() string {
	return utils.FormatClock(c.Remaining())
}

// Progress 경과 비율을 0~100 사이의 백분율로 반환합니다
func (c *Countdown) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.totalSeconds <= 0 {
		return 100
	}
	elapsed := c.totalSeconds - c.remainingSeconds
	progress := float64(elapsed) / float64(c.totalSeconds) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// Stop 틱을 중지합니다. 여러 번 호출해도 안전합니다.
func (c *Countdown) Stop() {
	c.mu.Lock()
	task := c.task
	c.task = nil
	c.mu.Unlock()

	if task != nil {
		task.Stop()
	}
}
