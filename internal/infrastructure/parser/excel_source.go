package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/telegram-price-bot/internal/domain/repository"
)

type excelSource struct {
	path string
}

// NewExcelSource lokal XLSX fayldan narx jadvalini o'qiydigan manba.
// Fayl har bir so'rovda qaytadan ochiladi, shuning uchun uni almashtirib
// qo'yish restart talab qilmaydi.
func NewExcelSource(path string) repository.PriceSource {
	return &excelSource{path: path}
}

// Grid berilgan listning barcha qatorlarini qaytaradi
func (s *excelSource) Grid(ctx context.Context, sheetName string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть файл %s: %w", s.path, err)
	}
	defer f.Close()

	if sheetIndex, err := f.GetSheetIndex(sheetName); err != nil || sheetIndex < 0 {
		return nil, fmt.Errorf("лист %q не найден", sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		for j, cell := range row {
			rows[i][j] = strings.TrimSpace(cell)
		}
	}
	return rows, nil
}
