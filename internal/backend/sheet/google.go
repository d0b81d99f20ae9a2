package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jo-hoe/visittrack/internal/common"
)

// valueInputUserEntered lets the sink parse cell values as if a user had
// typed them, so date- and number-looking strings may be reinterpreted.
const valueInputUserEntered = "USER_ENTERED"

// GoogleSheetsAppender appends rows to a fixed spreadsheet range through
// the Google Sheets API, authenticating with a service-account credential
// file. The credential file's existence is checked before any network
// call; the authorized client is built lazily and cached for the process
// lifetime.
type GoogleSheetsAppender struct {
	credentialsFile string
	spreadsheetID   string
	appendRange     string

	mu      sync.Mutex
	service *sheets.Service
}

func NewGoogleSheetsAppender(credentialsFile, spreadsheetID, appendRange string) *GoogleSheetsAppender {
	return &GoogleSheetsAppender{
		credentialsFile: credentialsFile,
		spreadsheetID:   spreadsheetID,
		appendRange:     appendRange,
	}
}

func (a *GoogleSheetsAppender) sheetsService(ctx context.Context) (*sheets.Service, error) {
	if _, err := os.Stat(a.credentialsFile); err != nil {
		return nil, common.NewConfigurationError(
			fmt.Sprintf("service account credentials file %s not found, please provision the Google service account key", a.credentialsFile), err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.service != nil {
		return a.service, nil
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(a.credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, common.NewConfigurationError("failed to create authorized sheets client", err)
	}
	a.service = service
	return service, nil
}

func (a *GoogleSheetsAppender) AppendRow(ctx context.Context, row []any) error {
	service, err := a.sheetsService(ctx)
	if err != nil {
		return err
	}

	values := &sheets.ValueRange{
		Values: [][]any{row},
	}

	_, err = service.Spreadsheets.Values.
		Append(a.spreadsheetID, a.appendRange, values).
		ValueInputOption(valueInputUserEntered).
		Context(ctx).
		Do()
	if err != nil {
		return common.NewUpstreamFailure(err)
	}

	slog.Info("appended row to spreadsheet",
		"spreadsheet_id", a.spreadsheetID, "range", a.appendRange)
	return nil
}
