package journal

import "time"

// Entry is one journaled submission: the generated photograph file name
// plus the appended row serialized as JSON.
type Entry struct {
	ID         string    `db:"id"`
	ReceivedAt time.Time `db:"received_at"`
	FileName   string    `db:"file_name"`
	RowJSON    []byte    `db:"row_json"`
}

// JournalService keeps a local durable copy of every row appended to the
// sheet. The sheet stays the system of record; the journal exists for
// operator inspection when the sheet is unreachable after the fact.
type JournalService interface {
	CreateSchema() error
	Close() error

	RecordSubmission(fileName string, rowJSON []byte) (*Entry, error)
	RecentSubmissions(limit int) ([]*Entry, error)
}
