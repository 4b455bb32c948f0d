package models

import "testing"

func TestSubmissionIsAccepted(t *testing.T) {
	tests := []struct {
		status   SubmissionStatus
		expected bool
	}{
		{StatusAccepted, true},
		{StatusWrongAnswer, false},
		{StatusTimeLimitExceeded, false},
	}

	for _, tt := range tests {
		sub := Submission{Status: tt.status}
		if sub.IsAccepted() != tt.expected {
			t.Errorf("IsAccepted(%q) = %v, 기대값 %v", tt.status, sub.IsAccepted(), tt.expected)
		}
	}
}

func TestSolvedProblemSet(t *testing.T) {
	team := &TeamSnapshot{
		Submissions: []Submission{
			{Problem: "p1", Status: StatusAccepted},
			{Problem: "p2", Status: StatusWrongAnswer},
			{Problem: "p2", Status: StatusAccepted},
			{Problem: "p3", Status: StatusTimeLimitExceeded},
		},
	}

	solved := team.SolvedProblemSet()

	if len(solved) != 2 {
		t.Errorf("해결 문제 수 = %d, 기대값 2", len(solved))
	}
	if !solved["p1"] || !solved["p2"] {
		t.Error("정답 처리된 문제가 집합에 없습니다")
	}
	if solved["p3"] {
		t.Error("오답 문제가 해결 집합에 포함되었습니다")
	}
}

func TestEmptyTeamSnapshot(t *testing.T) {
	team := EmptyTeamSnapshot()

	if team == nil {
		t.Fatal("EmptyTeamSnapshot이 nil을 반환했습니다")
	}
	if team.Code != "" {
		t.Errorf("빈 스냅샷의 팀 코드 = %q", team.Code)
	}
	if team.Members == nil || team.Submissions == nil {
		t.Error("빈 스냅샷의 슬라이스는 nil이 아니어야 합니다")
	}
	if len(team.SolvedProblemSet()) != 0 {
		t.Error("빈 스냅샷에 해결 문제가 있습니다")
	}
}
