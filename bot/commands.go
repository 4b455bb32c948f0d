package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/codearena/arenabot/api"
	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/errors"
	"github.com/codearena/arenabot/utils"
)

type CommandHandler struct {
	deps               *CommandDependencies
	competitionHandler *CompetitionHandler
	teamHandler        *TeamHandler
}

func NewCommandHandler(deps *CommandDependencies) *CommandHandler {
	ch := &CommandHandler{
		deps: deps,
	}
	ch.competitionHandler = NewCompetitionHandler(ch)
	ch.teamHandler = NewTeamHandler(ch)
	return ch
}

// HandleMessage Discord 메시지를 처리합니다
func (ch *CommandHandler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if ch.shouldIgnoreMessage(s, m) {
		return
	}

	command, params, isDM := ch.parseMessage(m)
	if command == "" {
		return
	}

	ch.routeCommand(s, m, command, params, isDM)
}

// shouldIgnoreMessage 메시지를 무시해야 하는지 확인합니다
func (ch *CommandHandler) shouldIgnoreMessage(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	// 봇 자신의 메시지는 무시
	if m.Author.ID == s.State.User.ID {
		return true
	}

	if m.GuildID == "" {
		utils.Debug("DM received from %s", m.Author.Username)
	}

	return false
}

// parseMessage 메시지를 파싱하여 명령어와 매개변수를 추출합니다
func (ch *CommandHandler) parseMessage(m *discordgo.MessageCreate) (command string, params []string, isDM bool) {
	content := strings.TrimSpace(m.Content)
	if !strings.HasPrefix(content, constants.CommandPrefix) {
		return "", nil, false
	}

	args := strings.Fields(content)
	if len(args) == 0 {
		return "", nil, false
	}

	command = args[0][constants.CommandPrefixLength:]
	params = args[1:]
	isDM = m.GuildID == ""

	return command, params, isDM
}

// routeCommand 명령어를 해당 핸들러로 라우팅합니다
func (ch *CommandHandler) routeCommand(s *discordgo.Session, m *discordgo.MessageCreate, command string, params []string, isDM bool) {
	if ch.deps.MetricsClient != nil {
		ch.deps.MetricsClient.SendCommandMetric(command)
	}

	switch command {
	case "help", "도움말":
		ch.handleHelp(s, m)
	case "ping":
		ch.handlePing(s, m)
	case "login", "로그인":
		ch.handleLogin(s, m, params, isDM)
	case "register", "가입":
		ch.handleRegister(s, m, params, isDM)
	case "team", "팀":
		ch.teamHandler.HandleTeam(s, m, params)
	case "competition", "대회":
		ch.competitionHandler.HandleCompetition(s, m, params)
	case "submit", "제출":
		ch.competitionHandler.HandleSubmit(s, m, params)
	case "ranking", "랭킹":
		ch.deps.RankingManager.HandleRanking(s, m, params, ch.isAdmin(s, m))
	case "cache", "캐시":
		ch.handleCacheStats(s, m)
	}
}

// handlePing ping 명령어를 처리합니다
func (ch *CommandHandler) handlePing(s *discordgo.Session, m *discordgo.MessageCreate) {
	if err := errors.SendDiscordInfo(s, m.ChannelID, constants.MsgPong); err != nil {
		utils.Error("Failed to send ping response: %v", err)
	}
}

func (ch *CommandHandler) handleHelp(s *discordgo.Session, m *discordgo.MessageCreate) {
	if _, err := s.ChannelMessageSend(m.ChannelID, constants.HelpMessage); err != nil {
		utils.Error("DISCORD API ERROR: Failed to send help message: %v", err)
	}
}

// handleLogin 로그인 명령어를 처리합니다. 비밀번호 노출 방지를 위해 DM 전용입니다.
func (ch *CommandHandler) handleLogin(s *discordgo.Session, m *discordgo.MessageCreate, params []string, isDM bool) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	if !isDM {
		if _, err := s.ChannelMessageSend(m.ChannelID, constants.MsgLoginDMOnly); err != nil {
			utils.Error("Failed to send DM-only warning: %v", err)
		}
		return
	}

	if len(params) < 2 {
		errorHandlers.Validation().HandleInvalidParams("LOGIN_INVALID_PARAMS",
			"Invalid login parameters",
			constants.MsgLoginUsage)
		return
	}

	username, password := params[0], params[1]
	if ch.deps.Session.Authenticated() {
		utils.Debug("Existing session will be replaced by new login")
	}
	result, err := ch.deps.API.Login(context.Background(), username, password)
	if err != nil {
		errors.HandleDiscordError(s, m.ChannelID, err)
		return
	}

	if err := ch.deps.Session.SetAuthenticated(); err != nil {
		utils.Error("Failed to persist auth flag: %v", err)
	}
	if err := ch.deps.Session.SetToken(result.AccessToken); err != nil {
		utils.Error("Failed to persist token: %v", err)
	}
	// 팀이 없는 사용자도 "소속 없음"으로 확정해 저장합니다
	if err := ch.deps.Session.SetTeamCode(result.TeamCode); err != nil {
		utils.Error("Failed to persist team code: %v", err)
	}

	response := fmt.Sprintf(constants.MsgLoginSuccess, username)
	if err := errors.SendDiscordSuccess(s, m.ChannelID, response); err != nil {
		utils.Error("Failed to send login response: %v", err)
	}
}

// handleRegister 계정 생성 명령어를 처리합니다. DM 전용입니다.
func (ch *CommandHandler) handleRegister(s *discordgo.Session, m *discordgo.MessageCreate, params []string, isDM bool) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	if !isDM {
		if _, err := s.ChannelMessageSend(m.ChannelID, constants.MsgLoginDMOnly); err != nil {
			utils.Error("Failed to send DM-only warning: %v", err)
		}
		return
	}

	if len(params) < 3 {
		errorHandlers.Validation().HandleInvalidParams("REGISTER_INVALID_PARAMS",
			"Invalid register parameters",
			constants.MsgRegisterUsage)
		return
	}

	name, email, password := params[0], params[1], params[2]
	if err := ch.deps.API.Register(context.Background(), name, email, password); err != nil {
		errors.HandleDiscordError(s, m.ChannelID, err)
		return
	}

	if err := errors.SendDiscordSuccess(s, m.ChannelID, constants.MsgRegisterDone); err != nil {
		utils.Error("Failed to send register response: %v", err)
	}
}

// isAdmin 사용자가 서버 관리자 권한을 가지고 있는지 확인합니다
func (ch *CommandHandler) isAdmin(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	// DM에서는 관리자 권한 없음
	if m.GuildID == "" {
		return false
	}

	guild, err := s.State.Guild(m.GuildID)
	if err != nil || guild == nil {
		utils.Warn("Cannot get guild information: %v", err)
		return false
	}

	if m.Author.ID == guild.OwnerID {
		return true
	}

	member, err := s.GuildMember(m.GuildID, m.Author.ID)
	if err != nil || member == nil {
		utils.Warn("Cannot get member information for %s: %v", m.Author.Username, err)
		return false
	}

	for _, roleID := range member.Roles {
		role, err := s.State.Role(m.GuildID, roleID)
		if err != nil {
			utils.Warn("Cannot get role %s: %v", roleID, err)
			continue
		}

		if role.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}

	return false
}

// handleCacheStats 캐시 통계를 조회합니다
func (ch *CommandHandler) handleCacheStats(s *discordgo.Session, m *discordgo.MessageCreate) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	// 관리자 권한 확인
	if !ch.isAdmin(s, m) {
		errorHandlers.Validation().HandleInsufficientPermissions()
		return
	}

	if cachedClient, ok := ch.deps.API.(*api.CachedArenaClient); ok {
		stats := cachedClient.GetCacheStats()

		message := fmt.Sprintf("```\n📊 API Cache Statistics\n\n"+
			"Total API Calls: %d\n"+
			"Cache Hits: %d\n"+
			"Cache Misses: %d\n"+
			"Hit Rate: %.2f%%\n\n"+
			"Cached Items:\n"+
			"  - Competitions: %d\n"+
			"  - Competition Lists: %d\n```",
			stats.TotalCalls, stats.CacheHits, stats.CacheMisses, stats.HitRate,
			stats.CompetitionCached, stats.ListCached)

		if err := errors.SendDiscordInfo(s, m.ChannelID, message); err != nil {
			utils.Error("Failed to send cache stats response: %v", err)
		}
	} else {
		if err := errors.SendDiscordWarning(s, m.ChannelID, "캐시가 비활성화되어 있습니다."); err != nil {
			utils.Error("Failed to send cache disabled warning: %v", err)
		}
	}
}

// Stop 핸들러가 관리하는 백그라운드 작업을 정리합니다
func (ch *CommandHandler) Stop() {
	ch.competitionHandler.StopCountdowns()
	ch.deps.RankingManager.Stop()
}
