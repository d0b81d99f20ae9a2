package journal

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// timeLayout keeps a fixed fraction width so received_at strings sort
// chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteJournal struct {
	db               *sql.DB
	connectionString string
}

func NewSQLiteJournal(connectionString string) (JournalService, error) {
	db, err := sql.Open("sqlite", connectionString)
	if err != nil {
		return nil, err
	}

	return &SQLiteJournal{
		db:               db,
		connectionString: connectionString,
	}, nil
}

func (s *SQLiteJournal) CreateSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		received_at TEXT NOT NULL,
		file_name TEXT NOT NULL,
		row_json BLOB NOT NULL
	)`)
	return err
}

func (s *SQLiteJournal) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteJournal) RecordSubmission(fileName string, rowJSON []byte) (*Entry, error) {
	entry := &Entry{
		ID:         uuid.NewString(),
		ReceivedAt: time.Now().UTC(),
		FileName:   fileName,
		RowJSON:    rowJSON,
	}

	_, err := s.db.Exec(
		"INSERT INTO submissions (id, received_at, file_name, row_json) VALUES (?, ?, ?, ?)",
		entry.ID, entry.ReceivedAt.Format(timeLayout), entry.FileName, entry.RowJSON)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *SQLiteJournal) RecentSubmissions(limit int) ([]*Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, received_at, file_name, row_json FROM submissions ORDER BY received_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close() // Explicitly ignore error as we're already returning an error from the function
	}()

	var entries []*Entry
	for rows.Next() {
		var entry Entry
		var receivedAt string
		if err := rows.Scan(&entry.ID, &receivedAt, &entry.FileName, &entry.RowJSON); err != nil {
			return nil, err
		}
		if entry.ReceivedAt, err = time.Parse(timeLayout, receivedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
