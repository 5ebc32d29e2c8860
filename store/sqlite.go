package store

import (
	"database/sql"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

const effectSeparator = ";"

// SQLiteSummaryStore persists records to a sqlite database so history
// survives restarts.
type SQLiteSummaryStore struct {
	db *sql.DB
	m  *sync.Mutex
}

// NewSQLiteSummaryStore opens (creating if necessary) the database at
// path and ensures the summaries table exists.
func NewSQLiteSummaryStore(path string) (*SQLiteSummaryStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	sqlStmt := `
	create table if not exists summaries (
		id string not null primary key,
		created_at string,
		points real,
		effects string,
		card_count integer
	);
	`
	if _, err := db.Exec(sqlStmt); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteSummaryStore{db: db, m: &sync.Mutex{}}, nil
}

func (s *SQLiteSummaryStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteSummaryStore) Save(record Record) error {
	s.m.Lock()
	defer s.m.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO summaries (id, created_at, points, effects, card_count) VALUES (?, ?, ?, ?, ?)",
		record.ID,
		record.CreatedAt,
		record.Points,
		strings.Join(record.Effects, effectSeparator),
		record.CardCount,
	)
	return err
}

func (s *SQLiteSummaryStore) Find(id string) (Record, error) {
	s.m.Lock()
	defer s.m.Unlock()

	var record Record
	var effects string
	err := s.db.QueryRow(
		"SELECT id, created_at, points, effects, card_count FROM summaries WHERE id = ?", id,
	).Scan(&record.ID, &record.CreatedAt, &record.Points, &effects, &record.CardCount)
	if err == sql.ErrNoRows {
		return Record{}, ErrUnknownSummaryID
	}
	if err != nil {
		return Record{}, err
	}

	record.Effects = splitEffects(effects)
	return record, nil
}

func (s *SQLiteSummaryStore) Recent(n int) ([]Record, error) {
	s.m.Lock()
	defer s.m.Unlock()

	rows, err := s.db.Query(
		"SELECT id, created_at, points, effects, card_count FROM summaries ORDER BY created_at DESC LIMIT ?", n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var record Record
		var effects string
		if err := rows.Scan(&record.ID, &record.CreatedAt, &record.Points, &effects, &record.CardCount); err != nil {
			return nil, err
		}
		record.Effects = splitEffects(effects)
		records = append(records, record)
	}

	return records, rows.Err()
}

func splitEffects(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, effectSeparator)
}
