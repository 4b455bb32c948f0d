package cache

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/codearena/arenabot/constants"
)

// CacheItem 캐시에 저장되는 개별 아이템을 나타냅니다
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// IsExpired 캐시 아이템이 만료되었는지 확인합니다
func (item *CacheItem) IsExpired() bool {
	return time.Now().After(item.ExpiresAt)
}

// CacheStats 캐시 통계 정보를 나타냅니다
type CacheStats struct {
	CompetitionCount     int
	CompetitionListCount int
	Hits                 int64
	Misses               int64
}

// ExpirationEntry 만료 시간 기반 우선순위 큐의 항목
type ExpirationEntry struct {
	Key       string
	CacheType string // "competition", "competitionList"
	ExpiresAt time.Time
	Index     int // 힙에서의 인덱스
}

// ExpirationQueue 만료 시간 기반 우선순위 큐 (최소 힙)
type ExpirationQueue []*ExpirationEntry

func (priorityQueue ExpirationQueue) Len() int { return len(priorityQueue) }

func (priorityQueue ExpirationQueue) Less(i, j int) bool {
	return priorityQueue[i].ExpiresAt.Before(priorityQueue[j].ExpiresAt)
}

func (priorityQueue ExpirationQueue) Swap(i, j int) {
	priorityQueue[i], priorityQueue[j] = priorityQueue[j], priorityQueue[i]
	priorityQueue[i].Index = i
	priorityQueue[j].Index = j
}

func (priorityQueue *ExpirationQueue) Push(x interface{}) {
	n := len(*priorityQueue)
	entry := x.(*ExpirationEntry)
	entry.Index = n
	*priorityQueue = append(*priorityQueue, entry)
}

func (priorityQueue *ExpirationQueue) Pop() interface{} {
	old := *priorityQueue
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.Index = -1
	*priorityQueue = old[0 : n-1]
	return entry
}

const competitionListKey = "__list__"

// CompetitionCache 우선순위 큐를 사용한 대회 정의 캐시
type CompetitionCache struct {
	competitionCache map[string]*CacheItem
	listCache        map[string]*CacheItem

	// 만료 시간 추적을 위한 우선순위 큐와 인덱스
	expirationQueue *ExpirationQueue
	keyToEntry      map[string]*ExpirationEntry

	mu sync.RWMutex

	hits   int64
	misses int64

	// 캐시 설정
	competitionTTL time.Duration
	listTTL        time.Duration

	// 효율적인 정리를 위한 설정
	lastCleanup        time.Time
	cleanupBatchSize   int
	maxCleanupDuration time.Duration
}

// NewCompetitionCache 새로운 CompetitionCache 인스턴스를 생성합니다
func NewCompetitionCache() *CompetitionCache {
	priorityQueue := &ExpirationQueue{}
	heap.Init(priorityQueue)

	return &CompetitionCache{
		competitionCache: make(map[string]*CacheItem),
		listCache:        make(map[string]*CacheItem),

		expirationQueue: priorityQueue,
		keyToEntry:      make(map[string]*ExpirationEntry),

		competitionTTL: constants.CompetitionCacheTTL,
		listTTL:        constants.CompetitionListCacheTTL,

		cleanupBatchSize:   constants.CacheCleanupBatchSize,
		maxCleanupDuration: constants.MaxCacheCleanupDuration,
		lastCleanup:        time.Now(),
	}
}

// setWithExpiration 공통 저장 로직 (우선순위 큐에도 추가)
func (cache *CompetitionCache) setWithExpiration(cacheType, key string, data interface{}, ttl time.Duration) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	expiresAt := time.Now().Add(ttl)
	item := &CacheItem{
		Data:      data,
		ExpiresAt: expiresAt,
	}

	// 기존 항목이 있다면 우선순위 큐에서 무효화 처리
	if existingEntry, exists := cache.keyToEntry[key]; exists {
		existingEntry.ExpiresAt = time.Time{} // 무효화 마크
	}

	switch cacheType {
	case "competition":
		cache.competitionCache[key] = item
	case "competitionList":
		cache.listCache[key] = item
	}

	entry := &ExpirationEntry{
		Key:       key,
		CacheType: cacheType,
		ExpiresAt: expiresAt,
	}
	heap.Push(cache.expirationQueue, entry)
	cache.keyToEntry[key] = entry
}

// GetCompetition 캐시에서 대회 정의를 조회합니다
func (cache *CompetitionCache) GetCompetition(competitionID string) (interface{}, bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	item, exists := cache.competitionCache[competitionID]
	if !exists || item.IsExpired() {
		cache.misses++
		return nil, false
	}

	cache.hits++
	return item.Data, true
}

// SetCompetition 대회 정의를 캐시에 저장합니다
func (cache *CompetitionCache) SetCompetition(competitionID string, competition interface{}) {
	cache.setWithExpiration("competition", competitionID, competition, cache.competitionTTL)
}

// GetCompetitionList 캐시에서 대회 목록을 조회합니다
func (cache *CompetitionCache) GetCompetitionList() (interface{}, bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	item, exists := cache.listCache[competitionListKey]
	if !exists || item.IsExpired() {
		cache.misses++
		return nil, false
	}

	cache.hits++
	return item.Data, true
}

// SetCompetitionList 대회 목록을 캐시에 저장합니다
func (cache *CompetitionCache) SetCompetitionList(list interface{}) {
	cache.setWithExpiration("competitionList", competitionListKey, list, cache.listTTL)
}

// Invalidate 특정 대회의 캐시 항목을 제거합니다
func (cache *CompetitionCache) Invalidate(competitionID string) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	delete(cache.competitionCache, competitionID)
	if entry, exists := cache.keyToEntry[competitionID]; exists {
		entry.ExpiresAt = time.Time{}
	}
}

// ClearExpiredEfficient 우선순위 큐를 사용하여 효율적으로 만료된 항목을 정리합니다
func (cache *CompetitionCache) ClearExpiredEfficient() int {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	now := time.Now()
	startTime := time.Now()
	cleaned := 0

	// 시간 제한과 배치 크기 제한으로 정리
	for cleaned < cache.cleanupBatchSize && time.Since(startTime) < cache.maxCleanupDuration {
		if cache.expirationQueue.Len() == 0 {
			break
		}

		// 가장 빨리 만료되는 항목 확인
		entry := (*cache.expirationQueue)[0]

		if entry.ExpiresAt.IsZero() || now.Before(entry.ExpiresAt) {
			if entry.ExpiresAt.IsZero() {
				// 무효화된 항목은 제거
				heap.Pop(cache.expirationQueue)
				delete(cache.keyToEntry, entry.Key)
				cleaned++
			} else {
				// 아직 만료되지 않았으므로 정리 중단
				break
			}
			continue
		}

		// 만료된 항목 제거
		heap.Pop(cache.expirationQueue)
		delete(cache.keyToEntry, entry.Key)

		switch entry.CacheType {
		case "competition":
			delete(cache.competitionCache, entry.Key)
		case "competitionList":
			delete(cache.listCache, entry.Key)
		}

		cleaned++
	}

	cache.lastCleanup = now
	return cleaned
}

// GetStats 캐시 통계를 반환합니다
func (cache *CompetitionCache) GetStats() CacheStats {
	cache.mu.RLock()
	defer cache.mu.RUnlock()

	return CacheStats{
		CompetitionCount:     len(cache.competitionCache),
		CompetitionListCount: len(cache.listCache),
		Hits:                 cache.hits,
		Misses:               cache.misses,
	}
}

// Clear 모든 캐시를 삭제합니다
func (cache *CompetitionCache) Clear() {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.competitionCache = make(map[string]*CacheItem)
	cache.listCache = make(map[string]*CacheItem)

	cache.expirationQueue = &ExpirationQueue{}
	heap.Init(cache.expirationQueue)
	cache.keyToEntry = make(map[string]*ExpirationEntry)
}

// StartCleanupWorker 캐시 정리 워커를 시작합니다
func (cache *CompetitionCache) StartCleanupWorker(interval time.Duration) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cache.ClearExpiredEfficient()
			case <-ctx.Done():
				return
			}
		}
	}()

	return cancel
}
