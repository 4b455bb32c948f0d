package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/codearena/arenabot/competition"
	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/errors"
	"github.com/codearena/arenabot/models"
	"github.com/codearena/arenabot/utils"
)

// CompetitionHandler 대회 관련 명령어를 처리합니다
type CompetitionHandler struct {
	parent *CommandHandler

	mu         sync.Mutex
	snapshots  map[string]*competition.Snapshot
	countdowns map[string]*competition.Countdown
}

// NewCompetitionHandler 새로운 CompetitionHandler 인스턴스를 생성합니다
func NewCompetitionHandler(parent *CommandHandler) *CompetitionHandler {
	return &CompetitionHandler{
		parent:     parent,
		snapshots:  make(map[string]*competition.Snapshot),
		countdowns: make(map[string]*competition.Countdown),
	}
}

// HandleCompetition 대회 하위 명령어를 라우팅합니다
func (comp *CompetitionHandler) HandleCompetition(s *discordgo.Session, m *discordgo.MessageCreate, params []string) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	if len(params) == 0 {
		errorHandlers.Validation().HandleInvalidParams("COMPETITION_INVALID_PARAMS",
			"Missing competition subcommand",
			constants.MsgCompetitionUsage)
		return
	}

	switch params[0] {
	case "list":
		comp.handleList(s, m)
	case "status":
		comp.handleStatus(s, m, params[1:])
	case "problems":
		comp.handleProblems(s, m, params[1:])
	case "join":
		comp.handleJoin(s, m, params[1:])
	case "time":
		comp.handleTime(s, m, params[1:])
	case "create":
		comp.handleCreate(s, m, params[1:])
	default:
		errorHandlers.Validation().HandleInvalidParams("COMPETITION_UNKNOWN_SUBCOMMAND",
			fmt.Sprintf("Unknown competition subcommand: %s", params[0]),
			constants.MsgCompetitionUsage)
	}
}

// resolveCompetitionID 매개변수 또는 설정에서 대회 ID를 결정합니다
func (comp *CompetitionHandler) resolveCompetitionID(params []string) string {
	if len(params) > 0 && params[0] != "" {
		return params[0]
	}
	return comp.parent.deps.Config.Arena.CompetitionID
}

// loadSnapshot 스냅샷을 적재하고 내부 상태에 보관합니다
func (comp *CompetitionHandler) loadSnapshot(s *discordgo.Session, channelID, competitionID string) *competition.Snapshot {
	errorHandlers := utils.NewErrorHandlerFactory(s, channelID)

	if competitionID == "" {
		errorHandlers.Validation().HandleInvalidParams("COMPETITION_ID_MISSING",
			"Competition ID not provided and no default configured",
			constants.MsgCompetitionUsage)
		return nil
	}

	snapshot, err := comp.parent.deps.Loader.Load(context.Background(), competitionID)
	if err != nil {
		errorHandlers.System().HandleSnapshotLoadFailed(competitionID, err)
		return nil
	}

	if snapshot.TeamDegraded {
		if err := errors.SendDiscordWarning(s, channelID, constants.MsgCompetitionTeamSoftErr); err != nil {
			utils.Error("Failed to send degraded team warning: %v", err)
		}
	}

	comp.mu.Lock()
	comp.snapshots[competitionID] = snapshot
	comp.mu.Unlock()

	return snapshot
}

// handleList 전체 대회 목록을 표시합니다
func (comp *CompetitionHandler) handleList(s *discordgo.Session, m *discordgo.MessageCreate) {
	list, err := comp.parent.deps.API.ListCompetitions(context.Background())
	if err != nil {
		errors.HandleDiscordError(s, m.ChannelID, err)
		return
	}

	if len(list) == 0 {
		if err := errors.SendDiscordInfo(s, m.ChannelID, constants.MsgCompetitionListEmpty); err != nil {
			utils.Error("Failed to send empty list response: %v", err)
		}
		return
	}

	var sb strings.Builder
	for _, c := range list {
		sb.WriteString(fmt.Sprintf("**%s** (`%s`)\n대상: %s | 시작: %s | 길이: %s | 팀 %d개\n\n",
			c.Title, c.ID, c.Status,
			utils.FormatDateTime(c.Date),
			utils.FormatDuration(c.Duration),
			len(c.Teams)))
	}

	embed := &discordgo.MessageEmbed{
		Title:       constants.MsgCompetitionListTitle,
		Description: sb.String(),
		Color:       constants.ColorNeutral,
	}
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		utils.Error("DISCORD API ERROR: Failed to send competition list: %v", err)
	}
}

// handleStatus 대회 상태와 팀 현황을 표시합니다
func (comp *CompetitionHandler) handleStatus(s *discordgo.Session, m *discordgo.MessageCreate, params []string) {
	competitionID := comp.resolveCompetitionID(params)
	snapshot := comp.loadSnapshot(s, m.ChannelID, competitionID)
	if snapshot == nil {
		return
	}

	c := snapshot.Competition
	team := snapshot.Team

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n\n", c.Description))
	sb.WriteString(fmt.Sprintf("상태: **%s**\n", c.Status))
	sb.WriteString(fmt.Sprintf("시작: %s\n", utils.FormatDateTime(c.Date)))
	sb.WriteString(fmt.Sprintf("길이: %s\n", utils.FormatDuration(c.Duration)))
	sb.WriteString(fmt.Sprintf("남은 시간: %d분\n", snapshot.RemainingMinutes))
	sb.WriteString(fmt.Sprintf("문제 수: %d | 참가 팀: %d\n", len(c.Problems), len(c.Teams)))

	if team != nil && team.Code != "" {
		solved := len(team.SolvedProblemSet())
		sb.WriteString(fmt.Sprintf("\n**%s** (`%s`)\n점수: %d | 해결: %d/%d | 구성원: %d/%d\n",
			team.Name,
			utils.FormatTeamCode(team.Code, constants.TeamCodePattern),
			team.Points, solved, len(c.Problems),
			team.CurrentMembers, team.MaxMembers))
	}

	embed := &discordgo.MessageEmbed{
		Title:       c.Title,
		Description: sb.String(),
		Color:       constants.ColorGold,
	}
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		utils.Error("DISCORD API ERROR: Failed to send competition status: %v", err)
	}
}

// parseFilters problems 명령어 매개변수에서 필터 조건을 추출합니다
func parseFilters(params []string) competition.Filters {
	filters := competition.Filters{Difficulty: models.DifficultyAll}

	if len(params) > 0 {
		filters.Difficulty = models.ParseDifficulty(params[0])
	}

	rest := params
	if len(rest) > 0 {
		rest = rest[1:]
	}
	if len(rest) > 0 && (rest[0] == "숨김" || rest[0] == "hide") {
		filters.HideSolved = true
		rest = rest[1:]
	}
	if len(rest) > 0 {
		filters.Search = strings.Join(rest, " ")
	}

	return filters
}

// handleProblems 필터가 적용된 문제 목록을 표시합니다
func (comp *CompetitionHandler) handleProblems(s *discordgo.Session, m *discordgo.MessageCreate, params []string) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	competitionID := comp.resolveCompetitionID(params)
	snapshot := comp.loadSnapshot(s, m.ChannelID, competitionID)
	if snapshot == nil {
		return
	}

	var filterParams []string
	if len(params) > 1 {
		filterParams = params[1:]
	}
	filters := parseFilters(filterParams)

	if !utils.IsValidSearchQuery(filters.Search) {
		errorHandlers.Validation().HandleInvalidParams("PROBLEMS_INVALID_SEARCH",
			"Search query too long or malformed",
			constants.MsgProblemsUsage)
		return
	}

	visible := competition.VisibleProblems(snapshot.Competition.Problems, filters, snapshot.Team.Submissions)
	if len(visible) == 0 {
		if err := errors.SendDiscordInfo(s, m.ChannelID, constants.MsgProblemsEmpty); err != nil {
			utils.Error("Failed to send empty problems response: %v", err)
		}
		return
	}

	solved := snapshot.Team.SolvedProblemSet()
	scoring := snapshot.Competition.Scoring

	var sb strings.Builder
	for _, p := range visible {
		marker := "  "
		if solved[p.ID] {
			marker = constants.EmojiSuccess + " "
		}
		sb.WriteString(fmt.Sprintf("%s[%s](%s) | `%s` %d점\n",
			marker, p.Title, p.ExternalURL(), p.Difficulty, scoring.PointsFor(p.Difficulty)))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📋 %s 문제 (%d개)", snapshot.Competition.Title, len(visible)),
		Description: sb.String(),
		Color:       difficultyColor(filters.Difficulty),
	}
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		utils.Error("DISCORD API ERROR: Failed to send problems list: %v", err)
	}
}

// difficultyColor 난이도에 맞는 임베드 색상을 반환합니다
func difficultyColor(d models.Difficulty) int {
	switch d {
	case models.DifficultyEasy:
		return constants.ColorEasy
	case models.DifficultyMedium:
		return constants.ColorMedium
	case models.DifficultyHard:
		return constants.ColorHard
	default:
		return constants.ColorNeutral
	}
}

// handleJoin 현재 팀으로 대회에 참가합니다
func (comp *CompetitionHandler) handleJoin(s *discordgo.Session, m *discordgo.MessageCreate, params []string) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	if _, ok := comp.parent.deps.Session.Token(); !ok {
		errorHandlers.Session().HandleNotLoggedIn()
		return
	}

	teamCode, ok := comp.parent.deps.Session.TeamCode()
	if !ok || teamCode == "" {
		errorHandlers.Session().HandleNoTeam()
		return
	}

	competitionID := comp.resolveCompetitionID(params)
	if competitionID == "" {
		errorHandlers.Validation().HandleInvalidParams("COMPETITION_JOIN_INVALID_PARAMS",
			"Missing competition ID",
			constants.MsgCompetitionJoinUsage)
		return
	}

	if err := comp.parent.deps.API.JoinCompetition(context.Background(), teamCode, competitionID); err != nil {
		errors.HandleDiscordError(s, m.ChannelID, err)
		return
	}

	displayCode := utils.FormatTeamCode(teamCode, constants.TeamCodePattern)
	response := fmt.Sprintf(constants.MsgCompetitionJoined, displayCode)
	if err := errors.SendDiscordSuccess(s, m.ChannelID, response); err != nil {
		utils.Error("Failed to send competition join response: %v", err)
	}
}

// handleTime 남은 시간 카운트다운을 시작하고 현재 잔여 시간을 안내합니다
func (comp *CompetitionHandler) handleTime(s *discordgo.Session, m *discordgo.MessageCreate, params []string) {
	competitionID := comp.resolveCompetitionID(params)
	snapshot := comp.loadSnapshot(s, m.ChannelID, competitionID)
	if snapshot == nil {
		return
	}

	channelID := m.ChannelID
	countdown := competition.NewCountdown(snapshot.Competition.Duration, snapshot.RemainingMinutes, func() {
		if err := errors.SendDiscordInfo(s, channelID, constants.MsgCompetitionTimeExpired); err != nil {
			utils.Error("Failed to send expiry notice: %v", err)
		}
	})

	comp.mu.Lock()
	if previous, exists := comp.countdowns[competitionID]; exists {
		previous.Stop()
	}
	comp.countdowns[competitionID] = countdown
	comp.mu.Unlock()

	countdown.Start()

	response := fmt.Sprintf("⏱️ **%s**\n남은 시간: `%s` | 진행률: %.1f%%",
		snapshot.Competition.Title, countdown.Clock(), countdown.Progress())
	if _, err := s.ChannelMessageSend(m.ChannelID, response); err != nil {
		utils.Error("DISCORD API ERROR: Failed to send time response: %v", err)
	}
}

// handleCreate 새 대회를 생성합니다 (관리자 전용)
func (comp *CompetitionHandler) handleCreate(s *discordgo.Session, m *discordgo.MessageCreate, params []string) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	if !comp.parent.isAdmin(s, m) {
		errorHandlers.Validation().HandleInsufficientPermissions()
		return
	}

	if len(params) < 3 {
		errorHandlers.Validation().HandleInvalidParams("COMPETITION_CREATE_INVALID_PARAMS",
			"Invalid create parameters",
			constants.MsgCompetitionCreateUsage)
		return
	}

	title := params[0]
	if _, err := utils.ParseDateWithValidation(params[1], "start"); err != nil {
		errorHandlers.Validation().HandleInvalidParams("COMPETITION_CREATE_INVALID_DATE",
			err.Error(),
			constants.MsgCompetitionCreateUsage)
		return
	}

	duration, err := strconv.Atoi(params[2])
	if err != nil || duration <= 0 {
		errorHandlers.Validation().HandleInvalidParams("COMPETITION_CREATE_INVALID_DURATION",
			"Duration must be a positive number of minutes",
			constants.MsgCompetitionCreateUsage)
		return
	}

	created, err := comp.parent.deps.API.CreateCompetition(context.Background(), utils.SanitizeString(title), params[1], duration)
	if err != nil {
		errors.HandleDiscordError(s, m.ChannelID, err)
		return
	}

	response := fmt.Sprintf(constants.MsgCompetitionCreated,
		created.Title, utils.FormatDate(created.Date), created.Duration)
	if _, err := s.ChannelMessageSend(m.ChannelID, response); err != nil {
		utils.Error("DISCORD API ERROR: Failed to send create response: %v", err)
	}
}

// HandleSubmit 제출 명령어를 처리합니다
func (comp *CompetitionHandler) HandleSubmit(s *discordgo.Session, m *discordgo.MessageCreate, params []string) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	if _, ok := comp.parent.deps.Session.Token(); !ok {
		errorHandlers.Session().HandleNotLoggedIn()
		return
	}

	if len(params) < 3 {
		errorHandlers.Validation().HandleInvalidParams("SUBMIT_INVALID_PARAMS",
			"Invalid submit parameters",
			constants.MsgSubmitUsage)
		return
	}

	competitionID, problemID, passphrase := params[0], params[1], params[2]

	comp.mu.Lock()
	snapshot := comp.snapshots[competitionID]
	comp.mu.Unlock()

	if snapshot == nil {
		snapshot = comp.loadSnapshot(s, m.ChannelID, competitionID)
		if snapshot == nil {
			return
		}
	}

	submission, updated, err := comp.parent.deps.Dispatcher.Submit(
		context.Background(), snapshot, competitionID, problemID, passphrase)
	if err != nil {
		errors.HandleDiscordError(s, m.ChannelID, err)
		return
	}

	comp.mu.Lock()
	comp.snapshots[competitionID] = updated
	comp.mu.Unlock()

	if comp.parent.deps.MetricsClient != nil {
		comp.parent.deps.MetricsClient.SendSubmissionMetric(string(submission.Status), submission.Points)
	}

	problem, _ := updated.Competition.FindProblem(problemID)
	response := fmt.Sprintf(constants.MsgSubmitAccepted, problem.Title, submission.Status, submission.Points)
	if err := errors.SendDiscordSuccess(s, m.ChannelID, response); err != nil {
		utils.Error("Failed to send submit response: %v", err)
	}
}

// StopCountdowns 실행 중인 모든 카운트다운을 중지합니다
func (comp *CompetitionHandler) StopCountdowns() {
	comp.mu.Lock()
	defer comp.mu.Unlock()

	for id, countdown := range comp.countdowns {
		countdown.Stop()
		delete(comp.countdowns, id)
	}
}
