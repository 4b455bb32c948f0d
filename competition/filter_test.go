package competition

import (
	"testing"

	"github.com/codearena/arenabot/models"
)

func sampleProblems() []models.Problem {
	return []models.Problem{
		{ID: "p1", Title: "Two Sum", Difficulty: models.DifficultyEasy},
		{ID: "p2", Title: "Binary Search Tree", Difficulty: models.DifficultyMedium},
		{ID: "p3", Title: "Median of Two Sorted Arrays", Difficulty: models.DifficultyHard},
		{ID: "p4", Title: "Valid Parentheses", Difficulty: models.DifficultyEasy},
	}
}

func sampleSubmissions() []models.Submission {
	return []models.Submission{
		{ID: "s1", Problem: "p1", Status: models.StatusAccepted, Points: 100},
		{ID: "s2", Problem: "p2", Status: models.StatusWrongAnswer},
		{ID: "s3", Problem: "p3", Status: models.StatusTimeLimitExceeded},
	}
}

func problemIDs(problems []models.Problem) []string {
	ids := make([]string, len(problems))
	for i, p := range problems {
		ids[i] = p.ID
	}
	return ids
}

func TestVisibleProblems(t *testing.T) {
	tests := []struct {
		name     string
		filters  Filters
		expected []string
	}{
		{
			"필터 없음",
			Filters{},
			[]string{"p1", "p2", "p3", "p4"},
		},
		{
			"전체 난이도",
			Filters{Difficulty: models.DifficultyAll},
			[]string{"p1", "p2", "p3", "p4"},
		},
		{
			"쉬움만",
			Filters{Difficulty: models.DifficultyEasy},
			[]string{"p1", "p4"},
		},
		{
			"어려움만",
			Filters{Difficulty: models.DifficultyHard},
			[]string{"p3"},
		},
		{
			"해결 문제 숨김은 정답 제출만 제외",
			Filters{HideSolved: true},
			[]string{"p2", "p3", "p4"},
		},
		{
			"제목 검색은 대소문자 무시",
			Filters{Search: "TWO"},
			[]string{"p1", "p3"},
		},
		{
			"검색어 앞뒤 공백 무시",
			Filters{Search: "  tree  "},
			[]string{"p2"},
		},
		{
			"난이도와 숨김과 검색 결합",
			Filters{Difficulty: models.DifficultyEasy, HideSolved: true, Search: "valid"},
			[]string{"p4"},
		},
		{
			"일치 없음",
			Filters{Search: "dijkstra"},
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := VisibleProblems(sampleProblems(), tt.filters, sampleSubmissions())
			ids := problemIDs(result)

			if len(ids) != len(tt.expected) {
				t.Fatalf("결과 개수 %d, 기대값 %d (%v)", len(ids), len(tt.expected), ids)
			}
			for i := range ids {
				if ids[i] != tt.expected[i] {
					t.Errorf("결과[%d] = %s, 기대값 %s", i, ids[i], tt.expected[i])
				}
			}
		})
	}
}

func TestVisibleProblemsPreservesOrder(t *testing.T) {
	problems := sampleProblems()
	result := VisibleProblems(problems, Filters{}, nil)

	for i := range result {
		if result[i].ID != problems[i].ID {
			t.Errorf("문제 순서가 변경되었습니다: 위치 %d에서 %s, 기대값 %s", i, result[i].ID, problems[i].ID)
		}
	}
}

func TestVisibleProblemsEmptyInput(t *testing.T) {
	result := VisibleProblems(nil, Filters{Difficulty: models.DifficultyEasy}, nil)
	if len(result) != 0 {
		t.Errorf("빈 입력에 대해 %d개 문제가 반환되었습니다", len(result))
	}
}
