package core

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jo-hoe/visittrack/internal/backend/journal"
	"github.com/jo-hoe/visittrack/internal/backend/recent"
	"github.com/jo-hoe/visittrack/internal/backend/sheet"
	"github.com/jo-hoe/visittrack/internal/backend/storage"
	"github.com/jo-hoe/visittrack/internal/common"
)

// timestampLayout approximates a locale datetime, matching what the sheet
// columns historically contained.
const timestampLayout = "1/2/2006, 3:04:05 PM"

type CoreService struct {
	config   *ServiceConfig
	store    *storage.FileStore
	appender sheet.RowAppender
	journal  journal.JournalService // nil when journaling is disabled
	recent   *recent.RecentLog      // nil when the recent log is disabled
	now      func() time.Time
}

func NewCoreService(config *ServiceConfig) *CoreService {
	appender, err := sheet.NewRowAppender(config.Sheet.Type, sheet.Settings{
		SpreadsheetID:   config.Sheet.SpreadsheetID,
		AppendRange:     config.Sheet.AppendRange,
		CredentialsFile: config.Sheet.CredentialsFile,
		WorkbookPath:    config.Sheet.WorkbookPath,
		Header:          RowHeader,
	})
	if err != nil {
		slog.Error("failed to initialize sheet sink", "error", err)
		panic(err)
	}
	slog.Info("sheet sink initialized successfully", "type", config.Sheet.Type)

	service := &CoreService{
		config:   config,
		store:    storage.NewFileStore(config.Storage.UploadDir, storage.NewNameGenerator()),
		appender: appender,
		now:      time.Now,
	}

	if config.Journal.Type != "" && config.Journal.Type != JournalTypeNone {
		journalService, err := journal.NewJournal(config.Journal.Type, config.Journal.ConnectionString)
		if err != nil {
			slog.Error("failed to initialize submission journal", "error", err)
			panic(err)
		}
		slog.Info("submission journal initialized successfully", "type", config.Journal.Type)
		service.journal = journalService
	}

	if config.Recent.Enabled {
		service.recent = recent.NewRecentLog(config.Recent.Address, config.Recent.Size)
		slog.Info("recent submission log enabled", "address", config.Recent.Address, "size", config.Recent.Size)
	}

	return service
}

// SubmitVisit runs the full ingestion path for one submission: validate
// the fields, persist the photograph, build the canonical record, and
// append it as one row to the sheet. Each call is a single attempt; no
// step is retried. A failed append after the photograph was stored leaves
// the file in place without a referencing row.
func (service *CoreService) SubmitVisit(ctx context.Context, fields *SubmissionFields, photo io.Reader, originalName, baseURL string) (*SubmissionRecord, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	if !storage.AllowedExtension(originalName) {
		return nil, common.NewValidationError("unsupported photograph file type: %s", originalName)
	}

	fileName, err := service.store.Save(photo, originalName)
	if err != nil {
		return nil, fmt.Errorf("failed to store photograph: %w", err)
	}

	imageURL := fmt.Sprintf("%s/uploads/%s", strings.TrimRight(baseURL, "/"), fileName)
	record := NewSubmissionRecord(fields, service.now().Format(timestampLayout), imageURL)

	if err := service.appender.AppendRow(ctx, record.Row()); err != nil {
		// The stored photograph is intentionally kept; there is no
		// compensation transaction.
		slog.Warn("row append failed after photograph was stored",
			"file_name", fileName, "error", err)
		return nil, err
	}

	service.recordAftermath(ctx, record, fileName)
	return record, nil
}

// recordAftermath updates journal and recent log after a successful
// append. Both are best effort; the sheet already holds the row.
func (service *CoreService) recordAftermath(ctx context.Context, record *SubmissionRecord, fileName string) {
	rowJSON, err := json.Marshal(record)
	if err != nil {
		slog.Warn("failed to serialize submission record", "error", err)
		return
	}

	if service.journal != nil {
		if _, err := service.journal.RecordSubmission(fileName, rowJSON); err != nil {
			slog.Warn("failed to journal submission", "file_name", fileName, "error", err)
		}
	}

	if service.recent != nil {
		if err := service.recent.Push(ctx, record); err != nil {
			slog.Warn("failed to push submission to recent log", "error", err)
		}
	}
}

// RecentSubmissions returns the latest submissions newest-first, from the
// Redis log when enabled, falling back to the journal.
func (service *CoreService) RecentSubmissions(ctx context.Context) ([]json.RawMessage, error) {
	if service.recent != nil {
		return service.recent.List(ctx)
	}

	if service.journal != nil {
		entries, err := service.journal.RecentSubmissions(service.config.Recent.Size)
		if err != nil {
			return nil, err
		}
		records := make([]json.RawMessage, 0, len(entries))
		for _, entry := range entries {
			records = append(records, json.RawMessage(entry.RowJSON))
		}
		return records, nil
	}

	return []json.RawMessage{}, nil
}

// Photograph returns the stored photograph content by generated name.
func (service *CoreService) Photograph(name string) ([]byte, error) {
	return service.store.Read(name)
}

func (service *CoreService) UploadDir() string {
	return service.store.Dir()
}

func (service *CoreService) ThumbnailWidth() int {
	return service.config.Storage.ThumbnailWidth
}

func (service *CoreService) Close() error {
	var firstErr error
	if service.journal != nil {
		if err := service.journal.Close(); err != nil {
			firstErr = err
		}
	}
	if service.recent != nil {
		if err := service.recent.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
