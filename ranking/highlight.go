package ranking

import (
	"context"
	"sync"
	"time"

	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/models"
	"github.com/codearena/arenabot/scheduler"
	"github.com/codearena/arenabot/utils"
)

// Highlighter 최근 해결 팀 강조 표시를 관리합니다.
// 10초 간격으로 보드를 조회해 새로운 해결 팀을 찾고,
// 강조는 3초 후에 자동으로 해제됩니다. 보드 순위 자체는 갱신하지 않습니다.
type Highlighter struct {
	loader        *Loader
	competitionID string
	onHighlight   func(entry models.RankingEntry)
	onClear       func()

	mu         sync.Mutex
	task       *scheduler.Task
	clearTimer *time.Timer
	lastCode   string
}

// NewHighlighter 새 Highlighter를 생성합니다
func NewHighlighter(loader *Loader, competitionID string, onHighlight func(models.RankingEntry), onClear func()) *Highlighter {
	return &Highlighter{
		loader:        loader,
		competitionID: competitionID,
		onHighlight:   onHighlight,
		onClear:       onClear,
	}
}

// Start 주기적 강조 감시를 시작합니다
func (h *Highlighter) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.task != nil {
		return
	}
	h.task = scheduler.Every(constants.HighlightPollInterval, h.poll)
	utils.Info("Ranking highlight watch started for competition %s", h.competitionID)
}

// poll 보드를 조회해 최근 해결 팀을 찾습니다
func (h *Highlighter) poll() {
	board, err := h.loader.Load(context.Background(), h.competitionID)
	if err != nil {
		utils.Warn("Highlight poll failed: %v", err)
		return
	}

	for _, entry := range board.Entries {
		if entry.IsLastSolver {
			h.highlight(entry)
			return
		}
	}
}

// highlight 강조를 표시하고 해제 타이머를 재설정합니다
func (h *Highlighter) highlight(entry models.RankingEntry) {
	h.mu.Lock()

	if entry.Code == h.lastCode {
		h.mu.Unlock()
		return
	}
	h.lastCode = entry.Code

	if h.clearTimer != nil {
		h.clearTimer.Stop()
	}
	h.clearTimer = time.AfterFunc(constants.HighlightDuration, func() {
		h.mu.Lock()
		h.lastCode = ""
		h.mu.Unlock()
		if h.onClear != nil {
			h.onClear()
		}
	})
	h.mu.Unlock()

	if h.onHighlight != nil {
		h.onHighlight(entry)
	}
}

// Stop 감시와 대기 중인 해제 타이머를 중지합니다
func (h *Highlighter) Stop() {
	h.mu.Lock()
	task := h.task
	h.task = nil
	if h.clearTimer != nil {
		h.clearTimer.Stop()
		h.clearTimer = nil
	}
	h.mu.Unlock()

	if task != nil {
		task.Stop()
		utils.Info("Ranking highlight watch stopped")
	}
}
