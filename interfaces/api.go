package interfaces

import (
	"context"

	"github.com/codearena/arenabot/models"
)

// ArenaAPI 대회 백엔드와의 통신을 위한 인터페이스입니다
type ArenaAPI interface {
	// 인증
	Login(ctx context.Context, username, password string) (*models.LoginResult, error)
	Register(ctx context.Context, name, email, password string) error

	// 대회 조회
	ListCompetitions(ctx context.Context) ([]models.Competition, error)
	GetCompetition(ctx context.Context, competitionID string) (*models.Competition, error)
	GetPrivateCompetition(ctx context.Context, competitionID string) (*models.Competition, *models.TeamSnapshot, error)
	CreateCompetition(ctx context.Context, title string, date string, duration int) (*models.Competition, error)
	JoinCompetition(ctx context.Context, teamCode, competitionID string) error

	// 팀
	GetTeam(ctx context.Context, teamCode string) (*models.TeamSnapshot, error)
	CreateTeam(ctx context.Context, name, avatar, color string) (*models.TeamSnapshot, error)
	JoinTeam(ctx context.Context, teamCode string) error
	LeaveTeam(ctx context.Context) error

	// 제출과 랭킹
	Submit(ctx context.Context, competitionID, problemID string) (*models.Submission, error)
	GetRanking(ctx context.Context, competitionID string) ([]models.RankingEntry, *models.CompetitionStats, error)
	GetIndividualRanking(ctx context.Context, competitionID string) ([]models.IndividualEntry, error)
}
