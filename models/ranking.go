package models

// RankingEntry 랭킹 보드의 한 행을 나타냅니다
type RankingEntry struct {
	Code         string   `json:"code"`
	Name         string   `json:"teamName"`
	Avatar       string   `json:"avatar"`
	Color        string   `json:"color"`
	MemberCount  int      `json:"memberCount"`
	Members      []Member `json:"members,omitempty"`
	Points       int      `json:"points"`
	Solves       int      `json:"solves"`
	TotalTime    string   `json:"totalTime"`
	Penalties    int      `json:"penalties"`
	Achievements []string `json:"achievements,omitempty"`
	IsLastSolver bool     `json:"isLastSolver"`
}

// IndividualEntry 개인 랭킹 보드의 한 행을 나타냅니다
type IndividualEntry struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Team          string   `json:"team"`
	Avatar        string   `json:"avatar"`
	Points        int      `json:"points"`
	Solves        int      `json:"solves"`
	TotalTime     string   `json:"totalTime"`
	LastSolve     string   `json:"lastSolve"`
	LastSolveTime string   `json:"lastSolveTime"`
	Achievements  []string `json:"achievements,omitempty"`
}

// CompetitionStats 랭킹 화면에 함께 표시되는 대회 요약 통계입니다
type CompetitionStats struct {
	Teams       int    `json:"teams"`
	TotalSolved int    `json:"totalSolved"`
	TimeLeft    string `json:"timeLeft"`
}
