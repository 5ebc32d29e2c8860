// Package reader loads card lists from delimited text. Each record is
// a "name,color" pair; tokens are free text and get normalized on the
// way in.
package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/WendlandAlex/sea-salt-and-paper-calculator/deck"
	"github.com/WendlandAlex/sea-salt-and-paper-calculator/normalize"
)

// ReadCards reads one card per record from r, tagging every card with
// the given state.
func ReadCards(r io.Reader, state deck.State) ([]deck.Card, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var cards []deck.Card
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading card record: %w", err)
		}

		cards = append(cards, deck.Card{
			Name:  normalize.Name(record[0]),
			Color: normalize.Color(record[1]),
			State: state,
		})
	}

	return cards, nil
}

// ReadFile reads a card list from a file on disk
func ReadFile(path string, state deck.State) ([]deck.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCards(f, state)
}
