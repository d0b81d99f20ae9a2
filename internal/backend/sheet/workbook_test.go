package sheet

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

var testHeader = []string{"Timestamp", "SR Name", "Store Name"}

func testRow(timestamp, sr, store string) []any {
	return []any{timestamp, sr, store}
}

func TestWorkbookAppender_AppendRow_CreatesWorkbookWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visits.xlsx")
	appender := NewWorkbookAppender(path, testHeader)

	if err := appender.AppendRow(context.Background(), testRow("1/2/2024, 3:04:05 PM", "Alice", "Corner Store")); err != nil {
		t.Fatalf("AppendRow error: %v", err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	t.Cleanup(func() { _ = file.Close() })

	rows, err := file.GetRows(workbookSheetName)
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one data row, got %d rows", len(rows))
	}
	for column, want := range testHeader {
		if rows[0][column] != want {
			t.Errorf("header[%d] = %q; want %q", column, rows[0][column], want)
		}
	}
	if rows[1][1] != "Alice" {
		t.Errorf("data row SR Name = %q; want %q", rows[1][1], "Alice")
	}
}

func TestWorkbookAppender_AppendRow_AppendsBelowExistingRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visits.xlsx")
	appender := NewWorkbookAppender(path, testHeader)

	if err := appender.AppendRow(context.Background(), testRow("t1", "Alice", "Store A")); err != nil {
		t.Fatalf("AppendRow #1 error: %v", err)
	}
	if err := appender.AppendRow(context.Background(), testRow("t2", "Bob", "Store B")); err != nil {
		t.Fatalf("AppendRow #2 error: %v", err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	t.Cleanup(func() { _ = file.Close() })

	rows, err := file.GetRows(workbookSheetName)
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus two data rows, got %d rows", len(rows))
	}
	if rows[1][1] != "Alice" || rows[2][1] != "Bob" {
		t.Errorf("rows out of order: %q then %q; want Alice then Bob", rows[1][1], rows[2][1])
	}
}

// Two identical appends are two rows. Duplicates are the documented
// at-least-once behavior of the pipeline, not a bug.
func TestWorkbookAppender_AppendRow_NoDeduplication(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visits.xlsx")
	appender := NewWorkbookAppender(path, testHeader)

	row := testRow("t1", "Alice", "Store A")
	if err := appender.AppendRow(context.Background(), row); err != nil {
		t.Fatalf("AppendRow #1 error: %v", err)
	}
	if err := appender.AppendRow(context.Background(), row); err != nil {
		t.Fatalf("AppendRow #2 error: %v", err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	t.Cleanup(func() { _ = file.Close() })

	rows, err := file.GetRows(workbookSheetName)
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected two identical data rows, got %d data rows", len(rows)-1)
	}
}
