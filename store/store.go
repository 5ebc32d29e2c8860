// Package store keeps a history of scored turns.
package store

import (
	"errors"
	"sync"
)

var ErrUnknownSummaryID = errors.New("unknown summary ID")

// Record is one scored turn as kept in history
type Record struct {
	ID        string   `json:"id"`
	CreatedAt string   `json:"created_at"`
	Points    float64  `json:"points"`
	Effects   []string `json:"effects"`
	CardCount int      `json:"card_count"`
}

// SummaryStore persists scored turns
type SummaryStore interface {
	Save(record Record) error
	Find(id string) (Record, error)
	Recent(n int) ([]Record, error)
}

// InMemorySummaryStore keeps records for the lifetime of the process
type InMemorySummaryStore struct {
	mu      sync.Mutex
	records []Record
}

// NewInMemorySummaryStore constructs an InMemorySummaryStore
func NewInMemorySummaryStore() *InMemorySummaryStore {
	return &InMemorySummaryStore{}
}

func (s *InMemorySummaryStore) Save(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	return nil
}

func (s *InMemorySummaryStore) Find(id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, ErrUnknownSummaryID
}

// Recent returns up to n records, most recent first
func (s *InMemorySummaryStore) Recent(n int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := []Record{}
	for i := len(s.records) - 1; i >= 0 && len(records) < n; i-- {
		records = append(records, s.records[i])
	}
	return records, nil
}
