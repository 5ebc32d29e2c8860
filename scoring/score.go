package scoring

import "github.com/WendlandAlex/sea-salt-and-paper-calculator/deck"

// EffectStopRound is offered once the whole hand is worth seven points
// or more.
const EffectStopRound = "seven points or more: you may stop the round or call last chance"

const stopThreshold = 7

// TurnSummary is the result of one scoring pass. Effects are a set:
// duplicates reported by several evaluators collapse to one entry.
type TurnSummary struct {
	Points         float64
	Effects        map[string]struct{}
	ColorFrequency map[deck.Color]int
}

// Score runs one scoring pass over the player's hand and played cards.
// Each call is independent; no state survives between calls.
func Score(hand, played []deck.Card) TurnSummary {
	return ScoreObserved(hand, played, nil)
}

// ScoreObserved is Score with a diagnostic hook: observe (if non-nil)
// receives each card type's Evaluation as it is computed. The hook is
// a side observation only and must not mutate the Evaluation.
func ScoreObserved(hand, played []deck.Card, observe func(Evaluation)) TurnSummary {
	cards := make([]deck.Card, 0, len(hand)+len(played))
	for _, c := range hand {
		c.State = deck.InHand
		cards = append(cards, c)
	}
	for _, c := range played {
		c.State = deck.Played
		cards = append(cards, c)
	}

	// fresh cache per pass, never shared across passes
	pairs := &PairCache{}

	summary := TurnSummary{Effects: map[string]struct{}{}}

	evaluated := map[deck.Name]bool{}
	for _, c := range cards {
		if evaluated[c.Name] {
			continue
		}
		evaluated[c.Name] = true

		ev := catalog[c.Name](cards, pairs)
		if observe != nil {
			observe(ev)
		}

		summary.Points += ev.Points
		for _, effect := range ev.Effects {
			summary.Effects[effect] = struct{}{}
		}
	}

	if summary.Points >= stopThreshold {
		summary.Effects[EffectStopRound] = struct{}{}
	}

	summary.ColorFrequency = TallyColors(cards)

	return summary
}
