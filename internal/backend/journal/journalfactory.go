package journal

import (
	"fmt"
	"log"
)

func NewJournal(journalType, connectionString string) (service JournalService, err error) {
	switch journalType {
	case "sqlite":
		service, err = NewSQLiteJournal(connectionString)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported journal driver: %s", journalType)
	}

	// Ensure journal schema exists (idempotent), important for in-memory SQLite
	log.Print("initializing journal schema (ensuring tables exist)")
	if err = service.CreateSchema(); err != nil {
		return nil, fmt.Errorf("failed to create journal schema: %w", err)
	}

	return service, nil
}
