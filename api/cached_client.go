package api

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/codearena/arenabot/cache"
	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/interfaces"
	"github.com/codearena/arenabot/models"
	"github.com/codearena/arenabot/utils"
)

// CachedArenaClient 대회 정의 조회에 캐시를 적용한 클라이언트입니다.
// 대회 정의와 목록만 캐시하며, 팀/제출/랭킹처럼 실시간성이 필요한 호출은
// 항상 백엔드로 직접 전달합니다.
type CachedArenaClient struct {
	*ArenaClient
	cache         interfaces.SnapshotCache
	cleanupCancel context.CancelFunc

	// 성능 메트릭
	cacheHits   int64
	cacheMisses int64
	totalCalls  int64
}

// NewCachedArenaClient 새로운 CachedArenaClient 인스턴스를 생성합니다
func NewCachedArenaClient(baseURL string, session interfaces.SessionStore) *CachedArenaClient {
	utils.Info("Creating cached arena API client")

	competitionCache := cache.NewCompetitionCache()

	client := &CachedArenaClient{
		ArenaClient: NewArenaClient(baseURL, session),
		cache:       competitionCache,
	}

	client.cleanupCancel = competitionCache.StartCleanupWorker(constants.CacheCleanupInterval)
	return client
}

// Close 캐시 정리 워커를 중지시킵니다.
func (cachedClient *CachedArenaClient) Close() {
	if cachedClient.cleanupCancel != nil {
		cachedClient.cleanupCancel()
		utils.Info("Cache cleanup worker stopped.")
	}
}

// GetCompetition 캐시를 통해 대회 정의를 조회합니다
func (cachedClient *CachedArenaClient) GetCompetition(ctx context.Context, competitionID string) (*models.Competition, error) {
	atomic.AddInt64(&cachedClient.totalCalls, 1)

	// 캐시에서 먼저 조회
	if cachedData, found := cachedClient.cache.GetCompetition(competitionID); found {
		atomic.AddInt64(&cachedClient.cacheHits, 1)
		utils.Debug("Cache hit for competition: %s", competitionID)
		return cachedData.(*models.Competition), nil
	}

	// 캐시 미스 - API 호출
	atomic.AddInt64(&cachedClient.cacheMisses, 1)
	utils.Debug("Cache miss for competition: %s, calling API", competitionID)

	competition, err := cachedClient.ArenaClient.GetCompetition(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	cachedClient.cache.SetCompetition(competitionID, competition)
	return competition, nil
}

// ListCompetitions 캐시를 통해 대회 목록을 조회합니다
func (cachedClient *CachedArenaClient) ListCompetitions(ctx context.Context) ([]models.Competition, error) {
	atomic.AddInt64(&cachedClient.totalCalls, 1)

	if cachedData, found := cachedClient.cache.GetCompetitionList(); found {
		atomic.AddInt64(&cachedClient.cacheHits, 1)
		utils.Debug("Cache hit for competition list")
		return cachedData.([]models.Competition), nil
	}

	atomic.AddInt64(&cachedClient.cacheMisses, 1)
	utils.Debug("Cache miss for competition list, calling API")

	list, err := cachedClient.ArenaClient.ListCompetitions(ctx)
	if err != nil {
		return nil, err
	}

	cachedClient.cache.SetCompetitionList(list)
	return list, nil
}

// GetCacheStats 캐시 통계를 반환합니다
func (cachedClient *CachedArenaClient) GetCacheStats() CacheMetrics {
	cacheStats := cachedClient.cache.GetStats()

	totalCalls := atomic.LoadInt64(&cachedClient.totalCalls)
	hits := atomic.LoadInt64(&cachedClient.cacheHits)
	misses := atomic.LoadInt64(&cachedClient.cacheMisses)

	var hitRate float64
	if totalCalls > 0 {
		hitRate = float64(hits) / float64(totalCalls) * 100
	}

	return CacheMetrics{
		TotalCalls:        totalCalls,
		CacheHits:         hits,
		CacheMisses:       misses,
		HitRate:           hitRate,
		CompetitionCached: cacheStats.CompetitionCount,
		ListCached:        cacheStats.CompetitionListCount,
	}
}

// CacheMetrics 캐시 성능 메트릭을 나타냅니다
type CacheMetrics struct {
	TotalCalls        int64
	CacheHits         int64
	CacheMisses       int64
	HitRate           float64
	CompetitionCached int
	ListCached        int
}

// String CacheMetrics의 문자열 표현을 반환합니다
func (metrics CacheMetrics) String() string {
	return fmt.Sprintf("API Cache Stats: Calls=%d, Hits=%d, Misses=%d, Hit Rate=%.2f%%, Cached Items: Competitions=%d, Lists=%d",
		metrics.TotalCalls, metrics.CacheHits, metrics.CacheMisses, metrics.HitRate,
		metrics.CompetitionCached, metrics.ListCached)
}

// ClearCache 모든 캐시를 삭제합니다
func (cachedClient *CachedArenaClient) ClearCache() {
	cachedClient.cache.Clear()
	atomic.StoreInt64(&cachedClient.cacheHits, 0)
	atomic.StoreInt64(&cachedClient.cacheMisses, 0)
	atomic.StoreInt64(&cachedClient.totalCalls, 0)
	utils.Info("API cache cleared")
}
