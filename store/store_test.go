package store

import (
	"errors"
	"path/filepath"
	"testing"

	utils "github.com/WendlandAlex/sea-salt-and-paper-calculator/internal"
)

func someRecord(id, createdAt string, points float64) Record {
	return Record{
		ID:        id,
		CreatedAt: createdAt,
		Points:    points,
		Effects:   []string{"pair of crabs: take a card from a discard pile"},
		CardCount: 4,
	}
}

func TestInMemorySummaryStore(t *testing.T) {
	t.Run("save and find", func(t *testing.T) {
		s := NewInMemorySummaryStore()
		record := someRecord("abc", "2024-01-01T00:00:00Z", 3)

		utils.AssertNoError(t, s.Save(record))

		found, err := s.Find("abc")
		utils.AssertNoError(t, err)
		utils.AssertDeepEqual(t, found, record)
	})

	t.Run("unknown id", func(t *testing.T) {
		s := NewInMemorySummaryStore()

		_, err := s.Find("nope")
		if !errors.Is(err, ErrUnknownSummaryID) {
			t.Errorf("expected ErrUnknownSummaryID, got %v", err)
		}
	})

	t.Run("recent returns newest first, capped at n", func(t *testing.T) {
		s := NewInMemorySummaryStore()
		utils.AssertNoError(t, s.Save(someRecord("a", "2024-01-01T00:00:00Z", 1)))
		utils.AssertNoError(t, s.Save(someRecord("b", "2024-01-02T00:00:00Z", 2)))
		utils.AssertNoError(t, s.Save(someRecord("c", "2024-01-03T00:00:00Z", 3)))

		records, err := s.Recent(2)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(records), 2)
		utils.AssertEqual(t, records[0].ID, "c")
		utils.AssertEqual(t, records[1].ID, "b")
	})
}

func TestSQLiteSummaryStore(t *testing.T) {
	newStore := func(t *testing.T) *SQLiteSummaryStore {
		t.Helper()
		s, err := NewSQLiteSummaryStore(filepath.Join(t.TempDir(), "summaries.db"))
		utils.AssertNoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	}

	t.Run("round trip", func(t *testing.T) {
		s := newStore(t)
		record := someRecord("abc", "2024-01-01T00:00:00Z", 7.5)

		utils.AssertNoError(t, s.Save(record))

		found, err := s.Find("abc")
		utils.AssertNoError(t, err)
		utils.AssertDeepEqual(t, found, record)
	})

	t.Run("unknown id", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Find("nope")
		if !errors.Is(err, ErrUnknownSummaryID) {
			t.Errorf("expected ErrUnknownSummaryID, got %v", err)
		}
	})

	t.Run("recent orders by created_at descending", func(t *testing.T) {
		s := newStore(t)
		utils.AssertNoError(t, s.Save(someRecord("a", "2024-01-01T00:00:00Z", 1)))
		utils.AssertNoError(t, s.Save(someRecord("b", "2024-01-03T00:00:00Z", 2)))
		utils.AssertNoError(t, s.Save(someRecord("c", "2024-01-02T00:00:00Z", 3)))

		records, err := s.Recent(2)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(records), 2)
		utils.AssertEqual(t, records[0].ID, "b")
		utils.AssertEqual(t, records[1].ID, "c")
	})

	t.Run("a record without effects round-trips to nil", func(t *testing.T) {
		s := newStore(t)
		record := Record{ID: "bare", CreatedAt: "2024-01-01T00:00:00Z"}

		utils.AssertNoError(t, s.Save(record))

		found, err := s.Find("bare")
		utils.AssertNoError(t, err)
		if found.Effects != nil {
			t.Errorf("expected nil effects, got %v", found.Effects)
		}
	})
}
