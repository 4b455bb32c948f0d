package ranking

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/codearena/arenabot/models"
)

// fakeRankingAPI 랭킹 테스트용 백엔드 대역입니다
type fakeRankingAPI struct {
	mu           sync.Mutex
	entries       []models.RankingEntry
	stats         *models.CompetitionStats
	individuals   []models.IndividualEntry
	teams         map[string]*models.TeamSnapshot
	rankingErr    error
	individualErr error
	teamErr       error
	getTeamCalls  int
}

func (f *fakeRankingAPI) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	return nil, nil
}

func (f *fakeRankingAPI) Register(ctx context.Context, name, email, password string) error {
	return nil
}

func (f *fakeRankingAPI) ListCompetitions(ctx context.Context) ([]models.Competition, error) {
	return nil, nil
}

func (f *fakeRankingAPI) GetCompetition(ctx context.Context, competitionID string) (*models.Competition, error) {
	return nil, nil
}

func (f *fakeRankingAPI) GetPrivateCompetition(ctx context.Context, competitionID string) (*models.Competition, *models.TeamSnapshot, error) {
	return nil, nil, nil
}

func (f *fakeRankingAPI) CreateCompetition(ctx context.Context, title string, date string, duration int) (*models.Competition, error) {
	return nil, nil
}

func (f *fakeRankingAPI) JoinCompetition(ctx context.Context, teamCode, competitionID string) error {
	return nil
}

func (f *fakeRankingAPI) GetTeam(ctx context.Context, teamCode string) (*models.TeamSnapshot, error) {
	f.mu.Lock()
	f.getTeamCalls++
	f.mu.Unlock()

	if f.teamErr != nil {
		return nil, f.teamErr
	}
	team, ok := f.teams[teamCode]
	if !ok {
		return nil, fmt.Errorf("team not found: %s", teamCode)
	}
	return team, nil
}

func (f *fakeRankingAPI) CreateTeam(ctx context.Context, name, avatar, color string) (*models.TeamSnapshot, error) {
	return nil, nil
}

func (f *fakeRankingAPI) JoinTeam(ctx context.Context, teamCode string) error {
	return nil
}

func (f *fakeRankingAPI) LeaveTeam(ctx context.Context) error {
	return nil
}

func (f *fakeRankingAPI) Submit(ctx context.Context, competitionID, problemID string) (*models.Submission, error) {
	return nil, nil
}

func (f *fakeRankingAPI) GetRanking(ctx context.Context, competitionID string) ([]models.RankingEntry, *models.CompetitionStats, error) {
	if f.rankingErr != nil {
		return nil, nil, f.rankingErr
	}
	return f.entries, f.stats, nil
}

func (f *fakeRankingAPI) GetIndividualRanking(ctx context.Context, competitionID string) ([]models.IndividualEntry, error) {
	if f.individualErr != nil {
		return nil, f.individualErr
	}
	return f.individuals, nil
}

func fiveEntries() []models.RankingEntry {
	return []models.RankingEntry{
		{Code: "AAA111", Name: "1위팀", Points: 500},
		{Code: "BBB222", Name: "2위팀", Points: 400},
		{Code: "CCC333", Name: "3위팀", Points: 300},
		{Code: "DDD444", Name: "4위팀", Points: 200},
		{Code: "EEE555", Name: "5위팀", Points: 100},
	}
}

func TestLoaderLoad(t *testing.T) {
	api := &fakeRankingAPI{
		entries: fiveEntries(),
		stats:   &models.CompetitionStats{Teams: 5, TotalSolved: 12, TimeLeft: "42분"},
		teams: map[string]*models.TeamSnapshot{
			"AAA111": {Code: "AAA111", Members: []models.Member{{ID: "u1"}, {ID: "u2"}}},
			"BBB222": {Code: "BBB222", Members: []models.Member{{ID: "u3"}}},
			"CCC333": {Code: "CCC333", Members: []models.Member{{ID: "u4"}}},
		},
	}
	loader := NewLoader(api)

	board, err := loader.Load(context.Background(), "comp-1")
	if err != nil {
		t.Fatalf("보드 적재 실패: %v", err)
	}

	if len(board.Entries) != 5 {
		t.Fatalf("보드 항목 수 = %d, 기대값 5", len(board.Entries))
	}
	if board.Stats == nil || board.Stats.Teams != 5 {
		t.Error("통계가 전달되지 않았습니다")
	}
}

func TestLoaderEnrichesTopTeamsOnly(t *testing.T) {
	api := &fakeRankingAPI{
		entries: fiveEntries(),
		teams: map[string]*models.TeamSnapshot{
			"AAA111": {Code: "AAA111", Members: []models.Member{{ID: "u1"}, {ID: "u2"}}},
			"BBB222": {Code: "BBB222", Members: []models.Member{{ID: "u3"}}},
			"CCC333": {Code: "CCC333", Members: []models.Member{{ID: "u4"}}},
		},
	}
	loader := NewLoader(api)

	board, err := loader.Load(context.Background(), "comp-1")
	if err != nil {
		t.Fatalf("보드 적재 실패: %v", err)
	}

	// 상위 3팀만 구성원이 보강됩니다
	for i := 0; i < 3; i++ {
		if len(board.Entries[i].Members) == 0 {
			t.Errorf("상위 %d위 팀의 구성원이 보강되지 않았습니다", i+1)
		}
	}
	for i := 3; i < 5; i++ {
		if len(board.Entries[i].Members) != 0 {
			t.Errorf("%d위 팀은 보강 대상이 아닙니다", i+1)
		}
	}
	if api.getTeamCalls != 3 {
		t.Errorf("팀 조회 호출 수 = %d, 기대값 3", api.getTeamCalls)
	}
}

func TestLoaderEnrichSkipsPopulatedEntries(t *testing.T) {
	entries := fiveEntries()
	entries[0].Members = []models.Member{{ID: "already"}}

	api := &fakeRankingAPI{
		entries: entries,
		teams: map[string]*models.TeamSnapshot{
			"BBB222": {Code: "BBB222", Members: []models.Member{{ID: "u3"}}},
			"CCC333": {Code: "CCC333", Members: []models.Member{{ID: "u4"}}},
		},
	}
	loader := NewLoader(api)

	if _, err := loader.Load(context.Background(), "comp-1"); err != nil {
		t.Fatalf("보드 적재 실패: %v", err)
	}

	if api.getTeamCalls != 2 {
		t.Errorf("이미 채워진 항목에 대해 조회가 수행되었습니다: %d회", api.getTeamCalls)
	}
}

func TestLoaderEnrichFailureIsNotFatal(t *testing.T) {
	api := &fakeRankingAPI{
		entries: fiveEntries(),
		teamErr: fmt.Errorf("team service down"),
	}
	loader := NewLoader(api)

	board, err := loader.Load(context.Background(), "comp-1")
	if err != nil {
		t.Fatalf("보강 실패가 보드 적재를 막았습니다: %v", err)
	}
	if len(board.Entries) != 5 {
		t.Errorf("보드 항목 수 = %d, 기대값 5", len(board.Entries))
	}
}

func TestLoaderRankingErrorIsFatal(t *testing.T) {
	api := &fakeRankingAPI{rankingErr: fmt.Errorf("backend down")}
	loader := NewLoader(api)

	if _, err := loader.Load(context.Background(), "comp-1"); err == nil {
		t.Fatal("랭킹 조회 실패가 오류로 반환되지 않았습니다")
	}
}

func TestLoaderEmptyBoard(t *testing.T) {
	api := &fakeRankingAPI{}
	loader := NewLoader(api)

	board, err := loader.Load(context.Background(), "comp-1")
	if err != nil {
		t.Fatalf("빈 보드 적재 실패: %v", err)
	}
	if len(board.Entries) != 0 {
		t.Errorf("빈 보드에 %d개 항목이 있습니다", len(board.Entries))
	}
	if api.getTeamCalls != 0 {
		t.Error("빈 보드에 대해 보강 조회가 수행되었습니다")
	}
}

func TestLoaderLoadIndividual(t *testing.T) {
	api := &fakeRankingAPI{
		individuals: []models.IndividualEntry{
			{ID: "u1", Name: "김참가", Team: "알고팀", Points: 50, Solves: 2, TotalTime: "1:25:30"},
			{ID: "u2", Name: "이해결", Team: "코드팀", Points: 45, Solves: 2, TotalTime: "1:12:45"},
		},
	}
	loader := NewLoader(api)

	board, err := loader.LoadIndividual(context.Background(), "comp-1")
	if err != nil {
		t.Fatalf("개인 랭킹 적재 실패: %v", err)
	}

	if len(board.Entries) != 2 {
		t.Fatalf("개인 랭킹 항목 수 = %d, 기대값 2", len(board.Entries))
	}
	if board.Entries[0].Name != "김참가" || board.Entries[0].Team != "알고팀" {
		t.Errorf("첫 번째 항목이 올바르지 않습니다: %+v", board.Entries[0])
	}
	if api.getTeamCalls != 0 {
		t.Error("개인 랭킹에 팀 보강 조회가 수행되었습니다")
	}
}

func TestLoaderLoadIndividualError(t *testing.T) {
	api := &fakeRankingAPI{individualErr: fmt.Errorf("backend down")}
	loader := NewLoader(api)

	if _, err := loader.LoadIndividual(context.Background(), "comp-1"); err == nil {
		t.Fatal("개인 랭킹 조회 실패가 오류로 반환되지 않았습니다")
	}
}
