package ranking

import (
	"context"
	"sync"
	"time"

	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/errors"
	"github.com/codearena/arenabot/interfaces"
	"github.com/codearena/arenabot/models"
	"github.com/codearena/arenabot/performance"
	"github.com/codearena/arenabot/utils"
)

// Board 랭킹 화면 한 장면에 필요한 데이터입니다
type Board struct {
	Entries  []models.RankingEntry
	Stats    *models.CompetitionStats
	LoadedAt time.Time
}

// IndividualBoard 개인 랭킹 화면에 필요한 데이터입니다
type IndividualBoard struct {
	Entries  []models.IndividualEntry
	LoadedAt time.Time
}

// Loader 랭킹 보드 적재를 담당합니다.
// 보드는 수동 갱신 전용이며, 상위 팀의 구성원 정보는 별도 조회로 보강합니다.
type Loader struct {
	api         interfaces.ArenaAPI
	concurrency *performance.AdaptiveConcurrencyManager
}

// NewLoader 새 랭킹 Loader를 생성합니다
func NewLoader(api interfaces.ArenaAPI) *Loader {
	return &Loader{
		api:         api,
		concurrency: performance.NewAdaptiveConcurrencyManager(),
	}
}

// Load 랭킹과 요약 통계를 적재하고 상위 팀 구성원 정보를 보강합니다
func (l *Loader) Load(ctx context.Context, competitionID string) (*Board, error) {
	entries, stats, err := l.api.GetRanking(ctx, competitionID)
	if err != nil {
		return nil, errors.NewSystemError("RANKING_LOAD_FAILED",
			"랭킹을 불러오지 못했습니다", err)
	}

	l.enrichTopTeams(ctx, entries)

	return &Board{
		Entries:  entries,
		Stats:    stats,
		LoadedAt: time.Now(),
	}, nil
}

// LoadIndividual 개인별 랭킹을 적재합니다. 팀 보드와 달리 보강 조회가 없습니다.
func (l *Loader) LoadIndividual(ctx context.Context, competitionID string) (*IndividualBoard, error) {
	entries, err := l.api.GetIndividualRanking(ctx, competitionID)
	if err != nil {
		return nil, errors.NewSystemError("RANKING_LOAD_FAILED",
			"개인 랭킹을 불러오지 못했습니다", err)
	}

	return &IndividualBoard{
		Entries:  entries,
		LoadedAt: time.Now(),
	}, nil
}

// enrichTopTeams 상위 팀들의 구성원 정보를 동시성 제한 하에 병렬로 조회합니다.
// 개별 조회 실패는 보드 전체를 막지 않습니다.
func (l *Loader) enrichTopTeams(ctx context.Context, entries []models.RankingEntry) {
	count := constants.RankingEnrichTopCount
	if count > len(entries) {
		count = len(entries)
	}
	if count == 0 {
		return
	}

	semaphore := make(chan struct{}, l.concurrency.GetCurrentLimit())
	var wg sync.WaitGroup

	for i := 0; i < count; i++ {
		if len(entries[i].Members) > 0 {
			continue
		}

		wg.Add(1)
		go func(entry *models.RankingEntry) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			started := time.Now()
			team, err := l.api.GetTeam(ctx, entry.Code)
			l.concurrency.RecordResponseTime(time.Since(started))

			if err != nil {
				utils.Warn("Failed to enrich ranking entry for team %s: %v", entry.Code, err)
				return
			}

			entry.Members = team.Members
			if entry.MemberCount == 0 {
				entry.MemberCount = len(team.Members)
			}
		}(&entries[i])
	}

	wg.Wait()
}

// ConcurrencyStats 팀 보강 조회의 동시성 통계를 반환합니다
func (l *Loader) ConcurrencyStats() performance.ConcurrencyStats {
	return l.concurrency.GetStats()
}
