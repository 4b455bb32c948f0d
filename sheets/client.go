package sheets

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/codearena/arenabot/models"
	"github.com/codearena/arenabot/utils"
)

// SheetsClient 랭킹 내보내기용 Google Sheets API 클라이언트
type SheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewSheetsClient 새로운 Google Sheets 클라이언트를 생성합니다
func NewSheetsClient(spreadsheetID string) (*SheetsClient, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID not configured")
	}

	credentialsJSON := os.Getenv("GOOGLE_SHEETS_CREDENTIALS_JSON")
	if credentialsJSON == "" {
		return nil, fmt.Errorf("GOOGLE_SHEETS_CREDENTIALS_JSON environment variable is not set")
	}

	ctx := context.Background()
	service, err := sheets.NewService(ctx, option.WithCredentialsJSON([]byte(credentialsJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	utils.Info("Google Sheets client initialized successfully")
	return &SheetsClient{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

// ExportBoard 랭킹 보드를 스프레드시트에 기록합니다
func (c *SheetsClient) ExportBoard(competitionTitle string, entries []models.RankingEntry) error {
	values := BoardValues(competitionTitle, entries)

	valueRange := &sheets.ValueRange{
		Values: values,
	}

	_, err := c.service.Spreadsheets.Values.Update(
		c.spreadsheetID,
		"A1",
		valueRange,
	).ValueInputOption("RAW").Do()
	if err != nil {
		return fmt.Errorf("failed to update spreadsheet: %w", err)
	}

	utils.Info("Exported %d ranking entries to spreadsheet", len(entries))
	return nil
}

// BoardValues 랭킹 항목들을 스프레드시트 행으로 변환합니다
func BoardValues(competitionTitle string, entries []models.RankingEntry) [][]interface{} {
	values := make([][]interface{}, 0, len(entries)+2)
	values = append(values, []interface{}{competitionTitle})
	values = append(values, []interface{}{"순위", "팀 코드", "팀 이름", "점수", "해결", "총 시간", "페널티"})

	for i, entry := range entries {
		values = append(values, []interface{}{
			i + 1,
			entry.Code,
			entry.Name,
			entry.Points,
			entry.Solves,
			entry.TotalTime,
			entry.Penalties,
		})
	}

	return values
}
