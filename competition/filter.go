package competition

import (
	"strings"

	"github.com/codearena/arenabot/models"
)

// Filters 문제 목록에 적용되는 표시 조건입니다
type Filters struct {
	Difficulty models.Difficulty
	HideSolved bool
	Search     string
}

// VisibleProblems 필터 조건을 순서대로 적용해 표시할 문제 목록을 반환합니다.
// 난이도, 해결 문제 숨김, 제목 검색 순으로 적용되며 원본 순서를 유지합니다.
func VisibleProblems(problems []models.Problem, filters Filters, submissions []models.Submission) []models.Problem {
	result := problems

	// 1. 난이도 필터
	if filters.Difficulty != "" && filters.Difficulty != models.DifficultyAll {
		filtered := make([]models.Problem, 0, len(result))
		for _, p := range result {
			if p.Difficulty == filters.Difficulty {
				filtered = append(filtered, p)
			}
		}
		result = filtered
	}

	// 2. 해결한 문제 숨김
	if filters.HideSolved {
		solved := make(map[string]bool, len(submissions))
		for _, sub := range submissions {
			if sub.IsAccepted() {
				solved[sub.Problem] = true
			}
		}

		filtered := make([]models.Problem, 0, len(result))
		for _, p := range result {
			if !solved[p.ID] {
				filtered = append(filtered, p)
			}
		}
		result = filtered
	}

	// 3. 제목 부분 일치 검색 (대소문자 무시)
	if query := strings.ToLower(strings.TrimSpace(filters.Search)); query != "" {
		filtered := make([]models.Problem, 0, len(result))
		for _, p := range result {
			if strings.Contains(strings.ToLower(p.Title), query) {
				filtered = append(filtered, p)
			}
		}
		result = filtered
	}

	return result
}
