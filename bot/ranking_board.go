package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/errors"
	"github.com/codearena/arenabot/models"
	"github.com/codearena/arenabot/performance"
	"github.com/codearena/arenabot/ranking"
	"github.com/codearena/arenabot/sheets"
	"github.com/codearena/arenabot/utils"
)

// RankingManager 랭킹 보드 표시와 최근 해결 팀 감시를 담당합니다
type RankingManager struct {
	loader               *ranking.Loader
	sheetsClient         *sheets.SheetsClient
	defaultCompetitionID string
	highlightEnabled     bool

	mu          sync.Mutex
	highlighter *ranking.Highlighter
}

// NewRankingManager 새로운 RankingManager 인스턴스를 생성합니다
func NewRankingManager(loader *ranking.Loader, sheetsClient *sheets.SheetsClient, defaultCompetitionID string, highlightEnabled bool) *RankingManager {
	return &RankingManager{
		loader:               loader,
		sheetsClient:         sheetsClient,
		defaultCompetitionID: defaultCompetitionID,
		highlightEnabled:     highlightEnabled,
	}
}

// HandleRanking 랭킹 하위 명령어를 라우팅합니다
func (rm *RankingManager) HandleRanking(s *discordgo.Session, m *discordgo.MessageCreate, params []string, isAdmin bool) {
	errorHandlers := utils.NewErrorHandlerFactory(s, m.ChannelID)

	if len(params) == 0 {
		if rm.defaultCompetitionID == "" {
			errorHandlers.Validation().HandleInvalidParams("RANKING_INVALID_PARAMS",
				"Missing competition ID and no default configured",
				constants.MsgRankingUsage)
			return
		}
		rm.showBoard(s, m.ChannelID, rm.defaultCompetitionID)
		return
	}

	switch params[0] {
	case "개인", "individual":
		rm.showIndividualBoard(s, m.ChannelID, rm.resolveCompetitionID(params[1:]))
	case "export":
		if !isAdmin {
			errorHandlers.Validation().HandleInsufficientPermissions()
			return
		}
		rm.handleExport(s, m.ChannelID, rm.resolveCompetitionID(params[1:]))
	case "감시", "watch":
		if !isAdmin {
			errorHandlers.Validation().HandleInsufficientPermissions()
			return
		}
		if !rm.highlightEnabled {
			if err := errors.SendDiscordInfo(s, m.ChannelID, constants.MsgRankingWatchDisabled); err != nil {
				utils.Error("Failed to send watch-disabled response: %v", err)
			}
			return
		}
		rm.startWatch(s, m.ChannelID, rm.resolveCompetitionID(params[1:]))
	case "중지", "stop":
		if !isAdmin {
			errorHandlers.Validation().HandleInsufficientPermissions()
			return
		}
		rm.stopWatch(s, m.ChannelID)
	default:
		rm.showBoard(s, m.ChannelID, params[0])
	}
}

func (rm *RankingManager) resolveCompetitionID(params []string) string {
	if len(params) > 0 && params[0] != "" {
		return params[0]
	}
	return rm.defaultCompetitionID
}

// showBoard 랭킹 보드를 적재하여 채널에 전송합니다
func (rm *RankingManager) showBoard(s *discordgo.Session, channelID, competitionID string) {
	errorHandlers := utils.NewErrorHandlerFactory(s, channelID)

	board, err := rm.loader.Load(context.Background(), competitionID)
	if err != nil {
		errorHandlers.System().HandleBoardGenerationFailed(err)
		return
	}

	if len(board.Entries) == 0 {
		if err := errors.SendDiscordInfo(s, channelID, constants.MsgRankingEmpty); err != nil {
			utils.Error("Failed to send empty ranking response: %v", err)
		}
		return
	}

	embed := rm.formatBoard(board, competitionID)
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		utils.Error("DISCORD API ERROR: Failed to send ranking board: %v", err)
	}
}

// SendDailyBoard 스케줄러가 호출하는 정기 랭킹 전송입니다
func (rm *RankingManager) SendDailyBoard(s *discordgo.Session, channelID, competitionID string) error {
	board, err := rm.loader.Load(context.Background(), competitionID)
	if err != nil {
		return err
	}

	if len(board.Entries) == 0 {
		_, err := s.ChannelMessageSend(channelID, constants.MsgRankingEmpty)
		return err
	}

	_, err = s.ChannelMessageSendEmbed(channelID, rm.formatBoard(board, competitionID))
	return err
}

// formatBoard 랭킹 보드를 고정폭 임베드로 구성합니다.
// 메시지 길이 제한 때문에 상위 팀만 표시합니다.
func (rm *RankingManager) formatBoard(board *ranking.Board, competitionID string) *discordgo.MessageEmbed {
	visible := performance.GetRankingEntrySlice()
	defer performance.PutRankingEntrySlice(visible)

	for i, entry := range board.Entries {
		if i >= constants.BoardMaxEntries {
			break
		}
		*visible = append(*visible, entry)
	}

	sb := performance.GetStringBuilder()
	defer performance.PutStringBuilder(sb)

	sb.WriteString("```\n")
	sb.WriteString(padDisplay("순위", constants.BoardRankWidth))
	sb.WriteString(padDisplay("팀", constants.BoardNameWidth))
	sb.WriteString(padDisplay("점수", constants.BoardScoreWidth))
	sb.WriteString(padDisplay("해결", constants.BoardSolveWidth))
	sb.WriteString("\n")
	sb.WriteString(constants.BoardSeparator)
	sb.WriteString("\n")

	for i, entry := range *visible {
		marker := ""
		if entry.IsLastSolver {
			marker = " ◀"
		}
		sb.WriteString(padDisplay(fmt.Sprintf("%d", i+1), constants.BoardRankWidth))
		sb.WriteString(padDisplay(utils.TruncateString(entry.Name, constants.BoardNameWidth-1), constants.BoardNameWidth))
		sb.WriteString(padDisplay(fmt.Sprintf("%d", entry.Points), constants.BoardScoreWidth))
		sb.WriteString(padDisplay(fmt.Sprintf("%d", entry.Solves), constants.BoardSolveWidth))
		sb.WriteString(marker)
		sb.WriteString("\n")
	}
	sb.WriteString("```")

	title := fmt.Sprintf(constants.MsgRankingTitle, competitionID)
	footer := ""
	if board.Stats != nil {
		footer = fmt.Sprintf("참가 팀 %d개 | 총 해결 %d문제 | 남은 시간 %s",
			board.Stats.Teams, board.Stats.TotalSolved, board.Stats.TimeLeft)
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: sb.String(),
		Color:       constants.ColorGold,
	}
	if footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	}
	return embed
}

// showIndividualBoard 개인 랭킹 보드를 적재하여 채널에 전송합니다
func (rm *RankingManager) showIndividualBoard(s *discordgo.Session, channelID, competitionID string) {
	errorHandlers := utils.NewErrorHandlerFactory(s, channelID)

	board, err := rm.loader.LoadIndividual(context.Background(), competitionID)
	if err != nil {
		errorHandlers.System().HandleBoardGenerationFailed(err)
		return
	}

	if len(board.Entries) == 0 {
		if err := errors.SendDiscordInfo(s, channelID, constants.MsgRankingEmpty); err != nil {
			utils.Error("Failed to send empty ranking response: %v", err)
		}
		return
	}

	embed := rm.formatIndividualBoard(board, competitionID)
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		utils.Error("DISCORD API ERROR: Failed to send individual ranking board: %v", err)
	}
}

// formatIndividualBoard 개인 랭킹을 고정폭 임베드로 구성합니다
func (rm *RankingManager) formatIndividualBoard(board *ranking.IndividualBoard, competitionID string) *discordgo.MessageEmbed {
	sb := performance.GetStringBuilder()
	defer performance.PutStringBuilder(sb)

	sb.WriteString("```\n")
	sb.WriteString(padDisplay("순위", constants.BoardRankWidth))
	sb.WriteString(padDisplay("이름", constants.BoardNameWidth))
	sb.WriteString(padDisplay("팀", constants.BoardNameWidth))
	sb.WriteString(padDisplay("점수", constants.BoardScoreWidth))
	sb.WriteString(padDisplay("해결", constants.BoardSolveWidth))
	sb.WriteString("\n")
	sb.WriteString(constants.BoardSeparator)
	sb.WriteString("\n")

	for i, entry := range board.Entries {
		if i >= constants.BoardMaxEntries {
			break
		}
		sb.WriteString(padDisplay(fmt.Sprintf("%d", i+1), constants.BoardRankWidth))
		sb.WriteString(padDisplay(utils.TruncateString(entry.Name, constants.BoardNameWidth-1), constants.BoardNameWidth))
		sb.WriteString(padDisplay(utils.TruncateString(entry.Team, constants.BoardNameWidth-1), constants.BoardNameWidth))
		sb.WriteString(padDisplay(fmt.Sprintf("%d", entry.Points), constants.BoardScoreWidth))
		sb.WriteString(padDisplay(fmt.Sprintf("%d", entry.Solves), constants.BoardSolveWidth))
		sb.WriteString("\n")
	}
	sb.WriteString("```")

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf(constants.MsgIndividualTitle, competitionID),
		Description: sb.String(),
		Color:       constants.ColorGold,
	}
}

// padDisplay 한글 폭을 고려하여 문자열을 오른쪽 공백으로 채웁니다
func padDisplay(s string, width int) string {
	displayWidth := utils.GetDisplayWidth(s)
	if displayWidth >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-displayWidth)
}

// handleExport 현재 랭킹을 스프레드시트로 내보냅니다
func (rm *RankingManager) handleExport(s *discordgo.Session, channelID, competitionID string) {
	errorHandlers := utils.NewErrorHandlerFactory(s, channelID)

	if rm.sheetsClient == nil {
		errorHandlers.System().HandleSystemError("SHEETS_NOT_CONFIGURED",
			"Sheets client not configured",
			"스프레드시트 내보내기가 설정되어 있지 않습니다.", nil)
		return
	}

	board, err := rm.loader.Load(context.Background(), competitionID)
	if err != nil {
		errorHandlers.System().HandleBoardGenerationFailed(err)
		return
	}

	title := fmt.Sprintf(constants.MsgRankingTitle, competitionID)
	if err := rm.sheetsClient.ExportBoard(title, board.Entries); err != nil {
		errorHandlers.System().HandleSystemError("SHEETS_EXPORT_FAILED",
			"Failed to export ranking board",
			"랭킹 내보내기에 실패했습니다.", err)
		return
	}

	if err := errors.SendDiscordSuccess(s, channelID, constants.MsgRankingExported); err != nil {
		utils.Error("Failed to send export response: %v", err)
	}
}

// startWatch 최근 해결 팀 감시를 시작합니다
func (rm *RankingManager) startWatch(s *discordgo.Session, channelID, competitionID string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if rm.highlighter != nil {
		rm.highlighter.Stop()
	}

	rm.highlighter = ranking.NewHighlighter(rm.loader, competitionID,
		func(entry models.RankingEntry) {
			message := fmt.Sprintf(constants.MsgRankingLastSolver, entry.Name)
			if _, err := s.ChannelMessageSend(channelID, message); err != nil {
				utils.Error("DISCORD API ERROR: Failed to send highlight: %v", err)
			}
		},
		func() {
			utils.Debug("Last solver highlight cleared")
		})
	rm.highlighter.Start()

	if err := errors.SendDiscordInfo(s, channelID, constants.MsgRankingWatchOn); err != nil {
		utils.Error("Failed to send watch response: %v", err)
	}
}

// stopWatch 감시를 중지합니다
func (rm *RankingManager) stopWatch(s *discordgo.Session, channelID string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if rm.highlighter != nil {
		rm.highlighter.Stop()
		rm.highlighter = nil
	}

	if err := errors.SendDiscordInfo(s, channelID, constants.MsgRankingWatchOff); err != nil {
		utils.Error("Failed to send watch response: %v", err)
	}
}

// Stop 실행 중인 감시 작업을 정리합니다
func (rm *RankingManager) Stop() {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if rm.highlighter != nil {
		rm.highlighter.Stop()
		rm.highlighter = nil
	}
}
