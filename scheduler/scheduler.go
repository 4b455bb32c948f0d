package scheduler

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/codearena/arenabot/config"
	"github.com/codearena/arenabot/utils"
)

// BoardSender 정기 랭킹 전송을 수행하는 대상입니다
type BoardSender interface {
	SendDailyBoard(s *discordgo.Session, channelID, competitionID string) error
}

// Scheduler 매일 지정한 시각에 랭킹 보드를 전송합니다
type Scheduler struct {
	session  *discordgo.Session
	config   *config.Config
	sender   BoardSender
	ticker   *time.Ticker
	stopChan chan bool
}

// NewScheduler 새로운 Scheduler 인스턴스를 생성합니다
func NewScheduler(session *discordgo.Session, cfg *config.Config, sender BoardSender) *Scheduler {
	return &Scheduler{
		session:  session,
		config:   cfg,
		sender:   sender,
		stopChan: make(chan bool),
	}
}

// StartDailySchedule 설정된 시각에 맞춰 정기 전송을 시작합니다
func (s *Scheduler) StartDailySchedule() {
	hour := s.config.Schedule.RankingHour
	minute := s.config.Schedule.RankingMinute

	now := time.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	firstDelay := next.Sub(now)

	utils.Info("Daily ranking schedule set for %02d:%02d (first run in %v)", hour, minute, firstDelay.Round(time.Second))

	go func() {
		select {
		case <-time.After(firstDelay):
			s.sendDailyRanking()
		case <-s.stopChan:
			return
		}

		s.ticker = time.NewTicker(24 * time.Hour)
		defer s.ticker.Stop()

		for {
			select {
			case <-s.ticker.C:
				s.sendDailyRanking()
			case <-s.stopChan:
				return
			}
		}
	}()
}

func (s *Scheduler) sendDailyRanking() {
	channelID := s.config.Discord.ChannelID
	competitionID := s.config.Arena.CompetitionID

	if channelID == "" || competitionID == "" {
		utils.Warn("Daily ranking skipped: channel or competition not configured")
		return
	}

	utils.Info("Sending daily ranking board for competition %s", competitionID)
	if err := s.sender.SendDailyBoard(s.session, channelID, competitionID); err != nil {
		utils.Error("Failed to send daily ranking board: %v", err)
	}
}

// Stop 정기 전송을 중지합니다
func (s *Scheduler) Stop() {
	select {
	case s.stopChan <- true:
	default:
	}
	if s.ticker != nil {
		s.ticker.Stop()
	}
}
