package models

// SubmissionStatus 제출 검증 결과를 나타냅니다
type SubmissionStatus string

const (
	StatusAccepted          SubmissionStatus = "AC"
	StatusWrongAnswer       SubmissionStatus = "WA"
	StatusTimeLimitExceeded SubmissionStatus = "TLE"
)

// Submission 팀이 기록한 제출 한 건을 나타냅니다
type Submission struct {
	ID      string           `json:"id"`
	Problem string           `json:"problem"`
	Status  SubmissionStatus `json:"status"`
	Time    string           `json:"time"`
	Member  string           `json:"member"`
	Points  int              `json:"points"`
}

// IsAccepted 제출이 정답 처리되었는지 확인합니다
func (s Submission) IsAccepted() bool {
	return s.Status == StatusAccepted
}

// Member 팀 구성원을 나타냅니다
type Member struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"`
	Avatar string `json:"avatar"`
}

// TeamSnapshot 대회 범위의 팀 상태를 나타냅니다
type TeamSnapshot struct {
	Code           string       `json:"code"`
	Name           string       `json:"teamName"`
	Avatar         string       `json:"avatar"`
	Color          string       `json:"color"`
	MaxMembers     int          `json:"maxMembers"`
	CurrentMembers int          `json:"currentMembers"`
	Members        []Member     `json:"members"`
	Submissions    []Submission `json:"submissions"`
	Points         int          `json:"points"`
}

// SolvedProblemSet 정답 처리된 문제 ID들의 집합을 반환합니다
func (t *TeamSnapshot) SolvedProblemSet() map[string]bool {
	solved := make(map[string]bool, len(t.Submissions))
	for _, sub := range t.Submissions {
		if sub.IsAccepted() {
			solved[sub.Problem] = true
		}
	}
	return solved
}

// EmptyTeamSnapshot 팀 데이터가 없을 때 사용하는 빈 스냅샷을 반환합니다
func EmptyTeamSnapshot() *TeamSnapshot {
	return &TeamSnapshot{
		Members:     []Member{},
		Submissions: []Submission{},
	}
}
