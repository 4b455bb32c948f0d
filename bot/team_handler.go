package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/errors"
	"github.com/codearena/arenabot/utils"
)

// TeamHandler 팀 관련 명령어를 처리합니다
type TeamHandler struct {
	parent *CommandHandler
}

// NewTeamHandler 새로운 TeamHandler 인스턴스를 생성합니다
func NewTeamHandler(parent *CommandHandler) *TeamHandler {
	return &TeamHandler{parent: parent}
}

// HandleTeam 팀 하위 명령어를 라우팅합니다
func (th *TeamHandler) HandleTeam(s *discordgo.Session, m *discordgo.MessageCreate, params []string) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	if _, ok := th.parent.deps.Session.Token(); !ok {
		errorHandlers.Session().HandleNotLoggedIn()
		return
	}

	if len(params) == 0 {
		errorHandlers.Validation().HandleInvalidParams("TEAM_INVALID_PARAMS",
			"Missing team subcommand",
			constants.MsgTeamUsage)
		return
	}

	switch params[0] {
	case "create":
		th.handleCreate(s, m, params[1:])
	case "join":
		th.handleJoin(s, m, params[1:])
	case "leave":
		th.handleLeave(s, m)
	case "code":
		th.handleCode(s, m)
	default:
		errorHandlers.Validation().HandleInvalidParams("TEAM_UNKNOWN_SUBCOMMAND",
			fmt.Sprintf("Unknown team subcommand: %s", params[0]),
			constants.MsgTeamUsage)
	}
}

// handleCreate 새 팀을 생성하고 팀 코드를 세션에 저장합니다
func (th *TeamHandler) handleCreate(s *discordgo.Session, m *discordgo.MessageCreate, params []string) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	if len(params) < 1 {
		errorHandlers.Validation().HandleInvalidParams("TEAM_CREATE_INVALID_PARAMS",
			"Missing team name",
			constants.MsgTeamCreateUsage)
		return
	}

	name := params[0]
	if !utils.IsValidTeamName(name) {
		errorHandlers.Validation().HandleInvalidParams("TEAM_CREATE_INVALID_NAME",
			fmt.Sprintf("Invalid team name: %s", name),
			fmt.Sprintf(constants.MsgTeamInvalidName, constants.MinTeamNameLength, constants.MaxTeamNameLength))
		return
	}

	avatar, color := "", ""
	if len(params) > 1 {
		avatar = params[1]
	}
	if len(params) > 2 {
		color = params[2]
	}

	team, err := th.parent.deps.API.CreateTeam(context.Background(), utils.SanitizeString(name), avatar, color)
	if err != nil {
		errors.HandleDiscordError(s, m.ChannelID, err)
		return
	}

	if err := th.parent.deps.Session.SetTeamCode(team.Code); err != nil {
		utils.Error("Failed to persist team code: %v", err)
	}

	displayCode := utils.FormatTeamCode(team.Code, constants.TeamCodePattern)
	response := fmt.Sprintf(constants.MsgTeamCreated, team.Avatar, team.Name, displayCode)
	if _, err := s.ChannelMessageSend(m.ChannelID, response); err != nil {
		utils.Error("DISCORD API ERROR: Failed to send team create response: %v", err)
	}
}

// handleJoin 팀 코드로 기존 팀에 합류합니다
func (th *TeamHandler) handleJoin(s *discordgo.Session, m *discordgo.MessageCreate, params []string) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	if len(params) < 1 {
		errorHandlers.Validation().HandleInvalidParams("TEAM_JOIN_INVALID_PARAMS",
			"Missing team code",
			fmt.Sprintf(constants.MsgTeamJoinUsage, constants.TeamCodePattern))
		return
	}

	displayCode := utils.FormatTeamCode(params[0], constants.TeamCodePattern)
	if !utils.IsValidTeamCode(displayCode) {
		errorHandlers.Validation().HandleInvalidTeamCode(params[0])
		return
	}

	code := utils.NormalizeTeamCode(displayCode)
	if err := th.parent.deps.API.JoinTeam(context.Background(), code); err != nil {
		errors.HandleDiscordError(s, m.ChannelID, err)
		return
	}

	if err := th.parent.deps.Session.SetTeamCode(code); err != nil {
		utils.Error("Failed to persist team code: %v", err)
	}

	response := fmt.Sprintf(constants.MsgTeamJoined, displayCode)
	if err := errors.SendDiscordSuccess(s, m.ChannelID, response); err != nil {
		utils.Error("Failed to send team join response: %v", err)
	}
}

// handleLeave 현재 팀에서 탈퇴하고 세션의 소속을 "없음"으로 확정합니다
func (th *TeamHandler) handleLeave(s *discordgo.Session, m *discordgo.MessageCreate) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	code, ok := th.parent.deps.Session.TeamCode()
	if !ok || code == "" {
		errorHandlers.Session().HandleNoTeam()
		return
	}

	if err := th.parent.deps.API.LeaveTeam(context.Background()); err != nil {
		errors.HandleDiscordError(s, m.ChannelID, err)
		return
	}

	if err := th.parent.deps.Session.ClearTeam(); err != nil {
		utils.Error("Failed to clear team code: %v", err)
	}

	if err := errors.SendDiscordSuccess(s, m.ChannelID, constants.MsgTeamLeft); err != nil {
		utils.Error("Failed to send team leave response: %v", err)
	}
}

// handleCode 현재 팀 코드를 표시 형식으로 안내합니다
func (th *TeamHandler) handleCode(s *discordgo.Session, m *discordgo.MessageCreate) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	code, ok := th.parent.deps.Session.TeamCode()
	if !ok || code == "" {
		errorHandlers.Session().HandleNoTeam()
		return
	}

	displayCode := utils.FormatTeamCode(code, constants.TeamCodePattern)
	response := fmt.Sprintf(constants.MsgTeamCode, displayCode)
	if err := errors.SendDiscordInfo(s, m.ChannelID, response); err != nil {
		utils.Error("Failed to send team code response: %v", err)
	}
}
