package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/codearena/arenabot/models"
	"github.com/codearena/arenabot/utils"
)

// 응답 봉투 구조체들

type competitionListEnvelope struct {
	List []models.Competition `json:"list"`
}

type competitionEnvelope struct {
	Competition models.Competition `json:"competition"`
}

type privateCompetitionEnvelope struct {
	Competition models.Competition `json:"competition"`
	Team        struct {
		Team models.TeamSnapshot `json:"team"`
	} `json:"team"`
}

type teamEnvelope struct {
	Members []models.Member `json:"members"`
	Team    struct {
		models.TeamSnapshot
	} `json:"team"`
}

type submissionEnvelope struct {
	Submission models.Submission `json:"submission"`
}

type rankingEnvelope struct {
	Ranking     []models.RankingEntry   `json:"ranking"`
	Competition models.CompetitionStats `json:"competition"`
}

type individualRankingEnvelope struct {
	Ranking []models.IndividualEntry `json:"ranking"`
}

// Login 아이디와 비밀번호로 로그인합니다.
// 팀이 없는 사용자는 TeamCode가 빈 문자열로 내려옵니다.
func (client *ArenaClient) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	body, err := client.Request(ctx, "/auth/login", RequestOptions{
		Method: http.MethodPost,
		Body: map[string]string{
			"username": username,
			"password": password,
		},
	})
	if err != nil {
		return nil, err
	}

	var result models.LoginResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("로그인 응답 파싱 실패: %w", err)
	}

	utils.Info("User %s logged in", username)
	return &result, nil
}

// Register 새 계정을 생성합니다
func (client *ArenaClient) Register(ctx context.Context, name, email, password string) error {
	_, err := client.Request(ctx, "/users/register", RequestOptions{
		Method: http.MethodPost,
		Body: map[string]string{
			"name":     name,
			"email":    email,
			"password": password,
		},
	})
	return err
}

// ListCompetitions 전체 대회 목록을 가져옵니다
func (client *ArenaClient) ListCompetitions(ctx context.Context) ([]models.Competition, error) {
	body, err := client.Request(ctx, "/competition/all", RequestOptions{})
	if err != nil {
		return nil, err
	}

	var envelope competitionListEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("대회 목록 파싱 실패: %w", err)
	}

	utils.Debug("Fetched %d competitions", len(envelope.List))
	return envelope.List, nil
}

// GetCompetition 공개 대회 정의를 가져옵니다
func (client *ArenaClient) GetCompetition(ctx context.Context, competitionID string) (*models.Competition, error) {
	body, err := client.Request(ctx, "/competition/"+competitionID, RequestOptions{})
	if err != nil {
		return nil, err
	}

	var envelope competitionEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("대회 정보 파싱 실패: %w", err)
	}

	return &envelope.Competition, nil
}

// GetPrivateCompetition 인증된 사용자의 대회 정의와 팀 스냅샷을 함께 가져옵니다
func (client *ArenaClient) GetPrivateCompetition(ctx context.Context, competitionID string) (*models.Competition, *models.TeamSnapshot, error) {
	body, err := client.Request(ctx, "/competition/private/"+competitionID, RequestOptions{Token: true})
	if err != nil {
		return nil, nil, err
	}

	var envelope privateCompetitionEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, nil, fmt.Errorf("대회 정보 파싱 실패: %w", err)
	}

	team := envelope.Team.Team
	return &envelope.Competition, &team, nil
}

// CreateCompetition 새 대회를 생성합니다 (관리자 전용)
func (client *ArenaClient) CreateCompetition(ctx context.Context, title string, date string, duration int) (*models.Competition, error) {
	body, err := client.Request(ctx, "/competition/create", RequestOptions{
		Method: http.MethodPost,
		Token:  true,
		Body: map[string]interface{}{
			"title":    title,
			"date":     date,
			"duration": duration,
		},
	})
	if err != nil {
		return nil, err
	}

	var envelope competitionEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("대회 생성 응답 파싱 실패: %w", err)
	}

	return &envelope.Competition, nil
}

// JoinCompetition 팀 코드로 대회에 참가합니다
func (client *ArenaClient) JoinCompetition(ctx context.Context, teamCode, competitionID string) error {
	_, err := client.Request(ctx, "/competition/join", RequestOptions{
		Method: http.MethodPost,
		Token:  true,
		Body: map[string]string{
			"teamCode":      teamCode,
			"competitionId": competitionID,
		},
	})
	return err
}

// GetTeam 팀 코드로 팀 스냅샷을 가져옵니다
func (client *ArenaClient) GetTeam(ctx context.Context, teamCode string) (*models.TeamSnapshot, error) {
	body, err := client.Request(ctx, "/teams/"+teamCode, RequestOptions{Token: true})
	if err != nil {
		return nil, err
	}

	var envelope teamEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("팀 정보 파싱 실패: %w", err)
	}

	team := envelope.Team.TeamSnapshot
	if len(envelope.Members) > 0 {
		team.Members = envelope.Members
	}
	return &team, nil
}

// CreateTeam 새 팀을 생성합니다
func (client *ArenaClient) CreateTeam(ctx context.Context, name, avatar, color string) (*models.TeamSnapshot, error) {
	body, err := client.Request(ctx, "/teams/create", RequestOptions{
		Method:    http.MethodPost,
		Token:     true,
		Multipart: true,
		Body: map[string]string{
			"teamName": name,
			"avatar":   avatar,
			"color":    color,
		},
	})
	if err != nil {
		return nil, err
	}

	var envelope teamEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("팀 생성 응답 파싱 실패: %w", err)
	}

	team := envelope.Team.TeamSnapshot
	utils.Info("Created team %s", team.Code)
	return &team, nil
}

// JoinTeam 팀 코드로 팀에 합류합니다
func (client *ArenaClient) JoinTeam(ctx context.Context, teamCode string) error {
	_, err := client.Request(ctx, "/teams/join", RequestOptions{
		Method: http.MethodPost,
		Token:  true,
		Body: map[string]string{
			"teamCode": teamCode,
		},
	})
	return err
}

// LeaveTeam 현재 팀에서 탈퇴합니다
func (client *ArenaClient) LeaveTeam(ctx context.Context) error {
	_, err := client.Request(ctx, "/teams/delete", RequestOptions{
		Method: http.MethodDelete,
		Token:  true,
	})
	return err
}

// Submit 문제 풀이 검증을 요청합니다.
// 중복 기록 방지를 위해 요청마다 고유한 멱등성 키를 부여합니다.
func (client *ArenaClient) Submit(ctx context.Context, competitionID, problemID string) (*models.Submission, error) {
	endpoint := fmt.Sprintf("/competition/submission/%s/%s", competitionID, problemID)
	body, err := client.Request(ctx, endpoint, RequestOptions{
		Method: http.MethodPost,
		Token:  true,
		Headers: map[string]string{
			"Idempotency-Key": uuid.NewString(),
		},
	})
	if err != nil {
		return nil, err
	}

	var envelope submissionEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("제출 응답 파싱 실패: %w", err)
	}

	utils.Info("Submission recorded for problem %s (status: %s)", problemID, envelope.Submission.Status)
	return &envelope.Submission, nil
}

// GetRanking 대회 랭킹과 요약 통계를 가져옵니다
func (client *ArenaClient) GetRanking(ctx context.Context, competitionID string) ([]models.RankingEntry, *models.CompetitionStats, error) {
	body, err := client.Request(ctx, "/ranking/"+competitionID, RequestOptions{Token: true})
	if err != nil {
		return nil, nil, err
	}

	var envelope rankingEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, nil, fmt.Errorf("랭킹 파싱 실패: %w", err)
	}

	utils.Debug("Fetched ranking with %d entries", len(envelope.Ranking))
	return envelope.Ranking, &envelope.Competition, nil
}

// GetIndividualRanking 대회의 개인별 랭킹을 가져옵니다
func (client *ArenaClient) GetIndividualRanking(ctx context.Context, competitionID string) ([]models.IndividualEntry, error) {
	body, err := client.Request(ctx, "/ranking/"+competitionID+"/individual", RequestOptions{Token: true})
	if err != nil {
		return nil, err
	}

	var envelope individualRankingEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("개인 랭킹 파싱 실패: %w", err)
	}

	utils.Debug("Fetched individual ranking with %d entries", len(envelope.Ranking))
	return envelope.Ranking, nil
}
