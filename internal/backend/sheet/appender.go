package sheet

import (
	"context"
	"fmt"
)

// RowAppender appends exactly one row per call to the tabular sink of
// record. Implementations perform no batching, no retries, and carry no
// idempotency key; a caller retry after a timeout can produce a duplicate
// row.
type RowAppender interface {
	AppendRow(ctx context.Context, row []any) error
}

// Settings carries the sink parameters from configuration. Which fields
// are used depends on the sink type.
type Settings struct {
	SpreadsheetID   string
	AppendRange     string
	CredentialsFile string
	WorkbookPath    string
	Header          []string
}

func NewRowAppender(sinkType string, settings Settings) (RowAppender, error) {
	switch sinkType {
	case "google":
		return NewGoogleSheetsAppender(settings.CredentialsFile, settings.SpreadsheetID, settings.AppendRange), nil
	case "workbook":
		return NewWorkbookAppender(settings.WorkbookPath, settings.Header), nil
	default:
		return nil, fmt.Errorf("unsupported sheet sink type: %s", sinkType)
	}
}
