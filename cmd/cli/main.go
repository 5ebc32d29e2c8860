package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/WendlandAlex/sea-salt-and-paper-calculator/deck"
	"github.com/WendlandAlex/sea-salt-and-paper-calculator/reader"
	"github.com/WendlandAlex/sea-salt-and-paper-calculator/scoring"
	"github.com/WendlandAlex/sea-salt-and-paper-calculator/server"
	"github.com/WendlandAlex/sea-salt-and-paper-calculator/store"
)

func main() {
	handPath := flag.String("hand", "", "path to the hand card list (name,color per line)")
	playedPath := flag.String("played", "", "path to the played card list (name,color per line)")
	dbPath := flag.String("db", "", "optional sqlite file to append the summary to")
	verbose := flag.Bool("v", false, "print the per-card-type breakdown")
	flag.Parse()

	if *handPath == "" && *playedPath == "" {
		log.Fatal("at least one of -hand or -played is required")
	}

	hand, err := loadCards(*handPath, deck.InHand)
	if err != nil {
		log.Fatal(err.Error())
	}
	played, err := loadCards(*playedPath, deck.Played)
	if err != nil {
		log.Fatal(err.Error())
	}

	var observe func(scoring.Evaluation)
	if *verbose {
		observe = func(ev scoring.Evaluation) {
			fmt.Printf("  %-14s %5.1f  %v\n", ev.Name, ev.Points, ev.Effects)
		}
	}

	summary := scoring.ScoreObserved(hand, played, observe)

	fmt.Printf("points: %g\n", summary.Points)

	effects := make([]string, 0, len(summary.Effects))
	for effect := range summary.Effects {
		effects = append(effects, effect)
	}
	sort.Strings(effects)
	for _, effect := range effects {
		fmt.Printf("effect: %s\n", effect)
	}

	for _, color := range deck.AllColors() {
		if count := summary.ColorFrequency[color]; count > 0 {
			fmt.Printf("color: %-12s %d\n", color, count)
		}
	}

	if *dbPath != "" {
		if err := record(*dbPath, summary, effects, len(hand)+len(played)); err != nil {
			log.Fatal(err.Error())
		}
	}
}

func loadCards(path string, state deck.State) ([]deck.Card, error) {
	if path == "" {
		return nil, nil
	}
	return reader.ReadFile(path, state)
}

func record(path string, summary scoring.TurnSummary, effects []string, cardCount int) error {
	summaries, err := store.NewSQLiteSummaryStore(path)
	if err != nil {
		return err
	}
	defer summaries.Close()

	return summaries.Save(store.Record{
		ID:        server.NewID(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Points:    summary.Points,
		Effects:   effects,
		CardCount: cardCount,
	})
}
