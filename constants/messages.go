package constants

// 사용자 인터페이스 메시지
const (
	// 인증 관련
	MsgLoginUsage     = "사용법: `!로그인 <아이디> <비밀번호>` (DM에서만 가능합니다)"
	MsgLoginSuccess   = "로그인되었습니다. 환영합니다, %s님!"
	MsgLoginDMOnly    = "❌ 로그인은 DM에서만 가능합니다. 비밀번호를 채널에 입력하지 마세요."
	MsgRegisterUsage  = "사용법: `!가입 <이름> <이메일> <비밀번호>` (DM에서만 가능합니다)"
	MsgRegisterDone   = "계정이 생성되었습니다. 이제 팀을 만들거나 참가할 수 있습니다."
	MsgNotLoggedIn    = "먼저 로그인해주세요. (`!로그인`)"

	// 팀 관련
	MsgTeamUsage        = "사용법: `!팀 <create|join|leave|code>`"
	MsgTeamCreateUsage  = "사용법: `!팀 create <팀이름> [아바타] [색상]`"
	MsgTeamCreated      = "**팀 생성 완료**\n%s 팀 이름: %s\n🔑 팀 코드: `%s`"
	MsgTeamJoinUsage    = "사용법: `!팀 join <팀코드>` (형식: %s)"
	MsgTeamJoined       = "팀 `%s`에 참가했습니다!"
	MsgTeamLeft         = "팀에서 탈퇴했습니다."
	MsgTeamNone         = "아직 소속된 팀이 없습니다. `!팀 create` 또는 `!팀 join`을 사용하세요."
	MsgTeamCode         = "현재 팀 코드: `%s`"
	MsgTeamInvalidCode  = "유효하지 않은 팀 코드 형식입니다. (형식: %s)"
	MsgTeamInvalidName  = "유효하지 않은 팀 이름입니다. (%d~%d자)"

	// 대회 관련
	MsgCompetitionUsage       = "사용법: `!대회 <list|status|problems|join|time|create>`"
	MsgCompetitionNotFound    = "대회를 찾을 수 없습니다."
	MsgCompetitionListEmpty   = "등록된 대회가 없습니다."
	MsgCompetitionListTitle   = "🏆 대회 목록"
	MsgCompetitionJoinUsage   = "사용법: `!대회 join <대회ID>`"
	MsgCompetitionJoined      = "팀 `%s`(으)로 대회에 참가했습니다!"
	MsgCompetitionNeedTeam    = "대회에 참가하려면 먼저 팀이 필요합니다."
	MsgCompetitionTimeExpired = "⏰ 대회가 종료되었습니다."
	MsgCompetitionTeamSoftErr = "⚠️ 팀 정보를 불러오지 못해 팀 데이터 없이 표시합니다."
	MsgCompetitionCreateUsage = "사용법: `!대회 create <제목> <시작일> <길이(분)>` (날짜 형식: YYYY-MM-DD)"
	MsgCompetitionCreated     = "**대회 생성 완료**\n🏆 제목: %s\n📅 시작: %s\n⏱️ 길이: %d분"

	// 문제 관련
	MsgProblemsUsage = "사용법: `!대회 problems <대회ID> [all|easy|medium|hard] [숨김] [검색어]`"
	MsgProblemsEmpty = "조건에 맞는 문제가 없습니다."

	// 제출 관련
	MsgSubmitUsage      = "사용법: `!제출 <대회ID> <문제ID> <확인암호>`"
	MsgSubmitGateFailed = "확인암호가 일치하지 않습니다. 제출이 취소되었습니다."
	MsgSubmitAccepted   = "**%s** 검증 결과: %s (+%d점)"
	MsgSubmitUnknown    = "해당 대회에 존재하지 않는 문제입니다: %s"

	// 랭킹 관련
	MsgRankingUsage         = "사용법: `!랭킹 <대회ID> [개인|export|감시|중지]`"
	MsgRankingTitle         = "🏆 %s 랭킹"
	MsgIndividualTitle      = "🏅 %s 개인 랭킹"
	MsgRankingEmpty         = "아직 랭킹 데이터가 없습니다."
	MsgRankingExported      = "랭킹을 스프레드시트로 내보냈습니다."
	MsgRankingWatchOn       = "랭킹 하이라이트 감시를 시작했습니다. (10초 주기)"
	MsgRankingWatchOff      = "랭킹 하이라이트 감시를 중지했습니다."
	MsgRankingWatchDisabled = "랭킹 하이라이트 감시 기능이 비활성화되어 있습니다."
	MsgRankingLastSolver    = "🔥 최근 해결: %s"

	// 권한 관련
	MsgInsufficientPermissions = "❌ 관리자 권한이 필요합니다."

	// 기본 응답
	MsgPong = "Pong! 🏓"
)

// 도움말 메시지
const HelpMessage = `🤖 **CodeArena 대회 봇 명령어**

**계정 명령어 (DM 전용):**
• ` + "`!로그인 <아이디> <비밀번호>`" + ` - 로그인
• ` + "`!가입 <이름> <이메일> <비밀번호>`" + ` - 계정 생성

**팀 명령어:**
• ` + "`!팀 create <팀이름>`" + ` - 새 팀 생성
• ` + "`!팀 join <팀코드>`" + ` - 코드로 팀 참가 (형식: XXX-XXX)
• ` + "`!팀 leave`" + ` - 팀 탈퇴
• ` + "`!팀 code`" + ` - 내 팀 코드 확인

**대회 명령어:**
• ` + "`!대회 list`" + ` - 대회 목록
• ` + "`!대회 status <대회ID>`" + ` - 대회 상태와 팀 현황
• ` + "`!대회 problems <대회ID> [난이도] [숨김] [검색어]`" + ` - 문제 목록 (필터 적용)
• ` + "`!대회 join <대회ID>`" + ` - 팀으로 대회 참가
• ` + "`!대회 time <대회ID>`" + ` - 남은 시간과 진행률
• ` + "`!제출 <대회ID> <문제ID> <확인암호>`" + ` - 풀이 검증 요청
• ` + "`!랭킹 <대회ID>`" + ` - 랭킹 보드 (수동 갱신)`
