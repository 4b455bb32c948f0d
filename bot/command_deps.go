package bot

import (
	"github.com/codearena/arenabot/competition"
	"github.com/codearena/arenabot/config"
	"github.com/codearena/arenabot/interfaces"
	"github.com/codearena/arenabot/sheets"
	"github.com/codearena/arenabot/telemetry"
)

// CommandDependencies 명령어 핸들러가 필요로 하는 모든 의존성을 묶어서 관리합니다
type CommandDependencies struct {
	API            interfaces.ArenaAPI
	Session        interfaces.SessionStore
	Loader         *competition.Loader
	Dispatcher     *competition.Dispatcher
	RankingManager *RankingManager
	MetricsClient  *telemetry.MetricsClient
	SheetsClient   *sheets.SheetsClient
	Config         *config.Config
}

// NewCommandDependencies 새로운 CommandDependencies 인스턴스를 생성합니다
func NewCommandDependencies(
	apiClient interfaces.ArenaAPI,
	session interfaces.SessionStore,
	loader *competition.Loader,
	dispatcher *competition.Dispatcher,
	rankingManager *RankingManager,
	metricsClient *telemetry.MetricsClient,
	sheetsClient *sheets.SheetsClient,
	cfg *config.Config,
) *CommandDependencies {
	return &CommandDependencies{
		API:            apiClient,
		Session:        session,
		Loader:         loader,
		Dispatcher:     dispatcher,
		RankingManager: rankingManager,
		MetricsClient:  metricsClient,
		SheetsClient:   sheetsClient,
		Config:         cfg,
	}
}
