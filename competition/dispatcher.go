package competition

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/errors"
	"github.com/codearena/arenabot/interfaces"
	"github.com/codearena/arenabot/models"
	"github.com/codearena/arenabot/utils"
)

// Dispatcher 제출 요청을 처리합니다.
// 확인암호는 실수로 인한 제출을 막기 위한 화면 수준의 안전장치이며,
// 접근 제어는 백엔드의 인증이 담당합니다.
type Dispatcher struct {
	api        interfaces.ArenaAPI
	loader     *Loader
	passphrase string
}

// NewDispatcher 새 Dispatcher를 생성합니다
func NewDispatcher(api interfaces.ArenaAPI, loader *Loader, passphrase string) *Dispatcher {
	return &Dispatcher{
		api:        api,
		loader:     loader,
		passphrase: passphrase,
	}
}

// CheckGate 입력된 확인암호가 설정값과 일치하는지 검사합니다
func (d *Dispatcher) CheckGate(input string) bool {
	if d.passphrase == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(input), []byte(d.passphrase)) == 1
}

// Submit 확인암호 검사 후 제출을 전송하고 갱신된 스냅샷을 반환합니다.
// 확인암호가 틀리거나 전송이 실패하면 스냅샷은 변경되지 않습니다.
// 전송이 성공하면 반환된 제출 기록이 팀 스냅샷에 정확히 한 번 추가되고,
// 이후 로더를 다시 실행해 백엔드 기준의 최신 스냅샷으로 교체합니다.
func (d *Dispatcher) Submit(ctx context.Context, snapshot *Snapshot, competitionID, problemID, passphrase string) (*models.Submission, *Snapshot, error) {
	if !d.CheckGate(passphrase) {
		utils.Warn("Submission gate check failed for problem %s", problemID)
		return nil, snapshot, errors.NewGateError("SUBMIT_GATE_FAILED",
			"제출 확인암호가 일치하지 않습니다")
	}

	if snapshot != nil && snapshot.Competition != nil {
		if _, found := snapshot.Competition.FindProblem(problemID); !found {
			return nil, snapshot, errors.NewNotFoundError("PROBLEM_NOT_FOUND",
				fmt.Sprintf("대회에 편성되지 않은 문제입니다: %s", problemID),
				fmt.Sprintf(constants.MsgSubmitUnknown, problemID))
		}
	}

	submission, err := d.api.Submit(ctx, competitionID, problemID)
	if err != nil {
		return nil, snapshot, err
	}

	// 검증된 제출을 즉시 반영한 뒤 백엔드 기준으로 재적재합니다
	if snapshot != nil && snapshot.Team != nil {
		snapshot.Team.Submissions = append(snapshot.Team.Submissions, *submission)
	}

	reloaded, reloadErr := d.loader.Load(ctx, competitionID)
	if reloadErr != nil {
		utils.Warn("Snapshot reload after submission failed, keeping local state: %v", reloadErr)
		return submission, snapshot, nil
	}

	return submission, reloaded, nil
}
