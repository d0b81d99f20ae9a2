package sheet

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/jo-hoe/visittrack/internal/common"
)

const workbookSheetName = "Visits"

// WorkbookAppender appends rows to a local XLSX workbook. It serves
// air-gapped trials and tests with the same one-row-per-call contract as
// the spreadsheet API sink. Appends on the same path are serialized;
// concurrent processes sharing one workbook file are not supported.
type WorkbookAppender struct {
	path   string
	header []string

	mu sync.Mutex
}

func NewWorkbookAppender(path string, header []string) *WorkbookAppender {
	return &WorkbookAppender{
		path:   path,
		header: header,
	}
}

func (a *WorkbookAppender) AppendRow(ctx context.Context, row []any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	file, err := a.openWorkbook()
	if err != nil {
		return common.NewUpstreamFailure(err)
	}
	defer func() {
		_ = file.Close()
	}()

	rows, err := file.GetRows(workbookSheetName)
	if err != nil {
		return common.NewUpstreamFailure(fmt.Errorf("failed to read workbook rows: %w", err))
	}

	target := len(rows) + 1
	for column, value := range row {
		cell, err := excelize.CoordinatesToCellName(column+1, target)
		if err != nil {
			return common.NewUpstreamFailure(err)
		}
		if err := file.SetCellValue(workbookSheetName, cell, value); err != nil {
			return common.NewUpstreamFailure(err)
		}
	}

	if err := file.SaveAs(a.path); err != nil {
		return common.NewUpstreamFailure(fmt.Errorf("failed to save workbook %s: %w", a.path, err))
	}
	return nil
}

// openWorkbook opens the workbook at the configured path, creating it
// with the sheet and header row when it does not exist yet.
func (a *WorkbookAppender) openWorkbook() (*excelize.File, error) {
	if _, err := os.Stat(a.path); err == nil {
		file, err := excelize.OpenFile(a.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook %s: %w", a.path, err)
		}
		return file, nil
	}

	file := excelize.NewFile()
	index, err := file.NewSheet(workbookSheetName)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for column, title := range a.header {
		cell, err := excelize.CoordinatesToCellName(column+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(workbookSheetName, cell, title); err != nil {
			return nil, err
		}
	}
	return file, nil
}
