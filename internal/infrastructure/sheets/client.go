package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/yourusername/telegram-price-bot/internal/domain/repository"
)

type sheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewClient yangi Google Sheets client yaratish (service account creds)
func NewClient(ctx context.Context, credsJSON []byte, spreadsheetID string) (repository.PriceSource, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, fmt.Errorf("spreadsheet ID bo'sh")
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credsJSON),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets client: %w", err)
	}

	return &sheetsClient{service: service, spreadsheetID: spreadsheetID}, nil
}

// Grid butun listni matn katakchalari sifatida o'qiydi
func (c *sheetsClient) Grid(ctx context.Context, sheetName string) ([][]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, quoteSheetRange(sheetName)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	grid := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// quoteSheetRange A1 notatsiyada list nomini qo'shtirnoqqa oladi
func quoteSheetRange(sheetName string) string {
	return "'" + strings.ReplaceAll(sheetName, "'", "''") + "'"
}
