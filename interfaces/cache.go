package interfaces

import (
	"context"
	"time"

	"github.com/codearena/arenabot/cache"
)

// SnapshotCache 대회 정의 캐시 인터페이스를 정의합니다
type SnapshotCache interface {
	// 대회 정의 캐시
	GetCompetition(competitionID string) (interface{}, bool)
	SetCompetition(competitionID string, competition interface{})

	// 대회 목록 캐시
	GetCompetitionList() (interface{}, bool)
	SetCompetitionList(list interface{})

	// 통계 및 관리
	GetStats() cache.CacheStats
	Clear()
}

// CleanupWorkerInterface 정리 워커 인터페이스
type CleanupWorkerInterface interface {
	StartCleanupWorker(interval time.Duration) context.CancelFunc
}
