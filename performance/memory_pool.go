package performance

import (
	"strings"
	"sync"

	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/models"
)

var (
	// RankingEntrySlicePool 랭킹 항목 슬라이스 풀
	RankingEntrySlicePool = sync.Pool{
		New: func() interface{} {
			slice := make([]models.RankingEntry, 0, constants.DefaultSliceCapacity)
			return &slice
		},
	}

	// StringBuilderPool 문자열 빌더 풀 (보드 및 메시지 생성용)
	StringBuilderPool = sync.Pool{
		New: func() interface{} {
			return &strings.Builder{}
		},
	}
)

// GetRankingEntrySlice 재사용 가능한 랭킹 항목 슬라이스를 가져옵니다
func GetRankingEntrySlice() *[]models.RankingEntry {
	slice := RankingEntrySlicePool.Get().(*[]models.RankingEntry)
	*slice = (*slice)[:0]
	return slice
}

// PutRankingEntrySlice 랭킹 항목 슬라이스를 풀에 반환합니다.
// 메모리 누수 방지를 위해 큰 슬라이스는 풀에 반환하지 않습니다.
func PutRankingEntrySlice(slice *[]models.RankingEntry) {
	if cap(*slice) <= constants.MaxPoolSliceCapacity {
		RankingEntrySlicePool.Put(slice)
	}
}

// GetStringBuilder 재사용 가능한 문자열 빌더를 가져옵니다
func GetStringBuilder() *strings.Builder {
	builder := StringBuilderPool.Get().(*strings.Builder)
	builder.Reset()
	return builder
}

// PutStringBuilder 문자열 빌더를 풀에 반환합니다
func PutStringBuilder(builder *strings.Builder) {
	StringBuilderPool.Put(builder)
}
