package competition

import (
	"context"
	"time"

	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/errors"
	"github.com/codearena/arenabot/interfaces"
	"github.com/codearena/arenabot/models"
	"github.com/codearena/arenabot/utils"
)

// Snapshot 대회 화면 한 장면에 필요한 모든 데이터입니다
type Snapshot struct {
	Competition      *models.Competition
	Team             *models.TeamSnapshot
	RemainingMinutes int
	TeamDegraded     bool
	LoadedAt         time.Time
}

// Loader 대회 스냅샷 적재를 담당합니다.
// 세션에 토큰이 있으면 인증 전용 변형을 사용해 팀 데이터까지 함께 가져옵니다.
type Loader struct {
	api     interfaces.ArenaAPI
	session interfaces.SessionStore
}

// NewLoader 새 Loader를 생성합니다
func NewLoader(api interfaces.ArenaAPI, session interfaces.SessionStore) *Loader {
	return &Loader{
		api:     api,
		session: session,
	}
}

// Load 대회 정의와 팀 스냅샷을 적재합니다.
// 대회 정의 조회 실패는 치명적 오류로 반환하고,
// 팀 조회 실패는 빈 팀 스냅샷으로 완화하여 TeamDegraded를 표시합니다.
func (l *Loader) Load(ctx context.Context, competitionID string) (*Snapshot, error) {
	_, authenticated := l.session.Token()

	if !authenticated {
		comp, err := l.api.GetCompetition(ctx, competitionID)
		if err != nil {
			return nil, errors.NewSystemError("COMPETITION_LOAD_FAILED",
				"대회 정의를 불러오지 못했습니다", err)
		}
		return l.buildSnapshot(comp, nil, false), nil
	}

	comp, team, err := l.api.GetPrivateCompetition(ctx, competitionID)
	if err != nil {
		return nil, errors.NewSystemError("COMPETITION_LOAD_FAILED",
			"대회 정의를 불러오지 못했습니다", err)
	}

	degraded := false
	if team == nil || team.Code == "" {
		team, degraded = l.recoverTeam(ctx)
	}

	return l.buildSnapshot(comp, team, degraded), nil
}

// recoverTeam 응답에 팀 데이터가 없을 때 세션의 팀 코드로 별도 조회를 시도합니다.
// 실패해도 화면은 계속 떠야 하므로 빈 스냅샷으로 완화합니다.
func (l *Loader) recoverTeam(ctx context.Context) (*models.TeamSnapshot, bool) {
	code, ok := l.session.TeamCode()
	if !ok || code == "" {
		return models.EmptyTeamSnapshot(), false
	}

	team, err := l.api.GetTeam(ctx, code)
	if err != nil {
		utils.Warn("Failed to load team %s, continuing without team data: %v", code, err)
		return models.EmptyTeamSnapshot(), true
	}
	return team, false
}

func (l *Loader) buildSnapshot(comp *models.Competition, team *models.TeamSnapshot, degraded bool) *Snapshot {
	if team == nil {
		team = models.EmptyTeamSnapshot()
	}
	return &Snapshot{
		Competition:      comp,
		Team:             team,
		RemainingMinutes: RemainingMinutes(comp, time.Now()),
		TeamDegraded:     degraded,
		LoadedAt:         time.Now(),
	}
}

// RemainingMinutes 대회 종료까지 남은 시간을 분 단위로 계산합니다.
// 이미 종료된 대회는 0을 반환합니다.
func RemainingMinutes(comp *models.Competition, now time.Time) int {
	endMillis := comp.Date.UnixMilli() + int64(comp.Duration)*constants.MillisPerMinute
	remaining := (endMillis - now.UnixMilli()) / constants.MillisPerMinute
	if remaining < 0 {
		return 0
	}
	return int(remaining)
}
