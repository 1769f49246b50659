package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tmcrae/batstat/internal/domain/model"
)

// XLSXLoader reads a batting table from a spreadsheet workbook.
type XLSXLoader struct {
	path  string
	sheet string
}

// NewXLSXLoader creates a loader for a workbook. Blank sheet means the
// first sheet in the workbook.
func NewXLSXLoader(path, sheet string) *XLSXLoader {
	return &XLSXLoader{path: path, sheet: sheet}
}

// Load reads the sheet into raw rows.
func (l *XLSXLoader) Load(ctx context.Context) ([]model.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	defer f.Close()

	sheet := l.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, fmt.Errorf("%s: %w", l.path, ErrNoSheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q in %s: %w", sheet, l.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", l.path, ErrMissingHeader)
	}
	return decode(rows[0], rows[1:]), nil
}
