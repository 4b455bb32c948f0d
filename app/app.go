package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/codearena/arenabot/api"
	"github.com/codearena/arenabot/bot"
	"github.com/codearena/arenabot/competition"
	"github.com/codearena/arenabot/config"
	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/errors"
	"github.com/codearena/arenabot/health"
	"github.com/codearena/arenabot/interfaces"
	"github.com/codearena/arenabot/ranking"
	"github.com/codearena/arenabot/scheduler"
	"github.com/codearena/arenabot/session"
	"github.com/codearena/arenabot/sheets"
	"github.com/codearena/arenabot/telemetry"
	"github.com/codearena/arenabot/utils"
)

type Application struct {
	config         *config.Config
	session        *discordgo.Session
	sessionStore   interfaces.SessionStore
	apiClient      interfaces.ArenaAPI
	loader         *competition.Loader
	dispatcher     *competition.Dispatcher
	rankingLoader  *ranking.Loader
	rankingManager *bot.RankingManager
	metricsClient  *telemetry.MetricsClient
	sheetsClient   *sheets.SheetsClient
	commandHandler *bot.CommandHandler
	scheduler      *scheduler.Scheduler
}

func New() (*Application, error) {
	app := &Application{}

	if err := app.loadConfig(); err != nil {
		return nil, err
	}

	app.initializeDependencies()

	if err := app.initializeDiscord(); err != nil {
		return nil, err
	}

	app.setupHandlers()
	app.initializeScheduler()

	return app, nil
}

func (app *Application) loadConfig() error {
	app.config = config.Load()
	if err := app.config.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	errors.SetDetailedErrors(app.config.Features.EnableDetailedErrors)
	return nil
}

func (app *Application) initializeDependencies() {
	app.sessionStore = session.NewFileStore(app.config.Session.FilePath)

	// 캐시된 API 클라이언트 인스턴스 생성
	app.apiClient = api.NewCachedArenaClient(app.config.Arena.BaseURL, app.sessionStore)

	app.loader = competition.NewLoader(app.apiClient, app.sessionStore)
	app.dispatcher = competition.NewDispatcher(app.apiClient, app.loader, app.config.Arena.SubmitPassphrase)
	app.rankingLoader = ranking.NewLoader(app.apiClient)

	if app.config.Telemetry.Enabled {
		app.metricsClient = telemetry.NewMetricsClient(app.config.Telemetry.ProjectID)
	}

	if app.config.Sheets.SpreadsheetID != "" {
		sheetsClient, err := sheets.NewSheetsClient(app.config.Sheets.SpreadsheetID)
		if err != nil {
			utils.Warn("Sheets export disabled: %v", err)
		} else {
			app.sheetsClient = sheetsClient
		}
	}

	app.rankingManager = bot.NewRankingManager(app.rankingLoader, app.sheetsClient,
		app.config.Arena.CompetitionID, app.config.Features.EnableHighlightWatch)

	app.registerHealthCheckers()
}

// registerHealthCheckers 헬스 엔드포인트에 구성요소 상태 검사를 등록합니다
func (app *Application) registerHealthCheckers() {
	store := app.sessionStore
	health.RegisterChecker("session_store", func() error {
		return store.Check()
	})

	health.RegisterChecker("discord_gateway", func() error {
		if app.session == nil || app.session.State == nil || app.session.State.User == nil {
			return fmt.Errorf("gateway not connected")
		}
		return nil
	})
}

func (app *Application) initializeDiscord() error {
	discordSession, err := discordgo.New("Bot " + app.config.Discord.Token)
	if err != nil {
		return fmt.Errorf("디스코드 세션 생성 실패: %w", err)
	}

	discordSession.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent | discordgo.IntentsGuilds | discordgo.IntentsDirectMessages
	app.session = discordSession
	return nil
}

func (app *Application) setupHandlers() {
	deps := bot.NewCommandDependencies(
		app.apiClient,
		app.sessionStore,
		app.loader,
		app.dispatcher,
		app.rankingManager,
		app.metricsClient,
		app.sheetsClient,
		app.config,
	)
	app.commandHandler = bot.NewCommandHandler(deps)

	app.session.AddHandler(app.commandHandler.HandleMessage)
	app.session.AddHandler(app.handleReady)
}

func (app *Application) initializeScheduler() {
	app.scheduler = scheduler.NewScheduler(app.session, app.config, app.rankingManager)
}

func (app *Application) Start() error {
	if err := app.session.Open(); err != nil {
		return fmt.Errorf("웹소켓 연결 실패: %w", err)
	}

	if app.config.Schedule.Enabled && app.config.Features.EnableAutoRanking {
		app.scheduler.StartDailySchedule()
		utils.Info("매일 %02d:%02d에 자동으로 랭킹 보드가 전송됩니다.",
			app.config.Schedule.RankingHour, app.config.Schedule.RankingMinute)
	} else {
		utils.Warn("자동 랭킹 전송이 비활성화되었습니다.")
	}

	app.printStartupMessage()
	return nil
}

func (app *Application) printStartupMessage() {
	utils.Info("Arena Bot v0.1.0")
	utils.Info("📋 사용 가능한 명령어: !help")
}

func (app *Application) Run() error {
	if err := app.Start(); err != nil {
		return err
	}

	// 종료 신호 대기
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return app.Stop()
}

func (app *Application) handleReady(s *discordgo.Session, event *discordgo.Ready) {
	utils.Info("Discord bot connected successfully as %s#%s", event.User.Username, event.User.Discriminator)
	utils.Info("Bot is serving %d guilds", len(event.Guilds))

	if err := s.UpdateGameStatus(0, constants.BotStatusMessage); err != nil {
		utils.Warn("Failed to set bot status: %v", err)
	}
}

// printCacheStats 캐시 통계를 출력합니다
func (app *Application) printCacheStats() {
	if cachedClient, ok := app.apiClient.(*api.CachedArenaClient); ok {
		stats := cachedClient.GetCacheStats()
		utils.Info("📊 %s", stats.String())

		if app.metricsClient != nil {
			app.metricsClient.SendCacheMetrics(stats.TotalCalls, stats.CacheHits, stats.CacheMisses, stats.HitRate)
		}
	}
}

func (app *Application) Stop() error {
	utils.Info("🔄 봇을 종료하는 중...")

	// 종료 전 캐시 통계 출력
	app.printCacheStats()

	if app.commandHandler != nil {
		app.commandHandler.Stop()
	}

	if app.scheduler != nil {
		app.scheduler.Stop()
	}

	if app.apiClient != nil {
		if cachedClient, ok := app.apiClient.(*api.CachedArenaClient); ok {
			cachedClient.Close()
		}
	}

	if app.metricsClient != nil {
		if err := app.metricsClient.Close(); err != nil {
			utils.Warn("Failed to close metrics client: %v", err)
		}
	}

	if app.session != nil {
		app.session.Close()
	}

	utils.Info("봇이 정상적으로 종료되었습니다.")
	return nil
}
