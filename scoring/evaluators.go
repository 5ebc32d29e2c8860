package scoring

import "github.com/WendlandAlex/sea-salt-and-paper-calculator/deck"

// Advisory effect strings surfaced alongside points. The engine only
// reports them; acting on them is the player's business.
const (
	EffectCrabPair     = "pair of crabs: take a card from a discard pile"
	EffectBoatPair     = "pair of boats: immediately take another turn"
	EffectFishPair     = "pair of fish: draw the top card of the deck"
	EffectSharkSwimmer = "swimmer and shark: steal a random card from an opponent"
	EffectMermaidWin   = "four mermaids: you win the game immediately"
)

func countByState(cards []deck.Card, name deck.Name) (hand, played int) {
	for _, c := range cards {
		if c.Name != name {
			continue
		}
		if c.State == deck.InHand {
			hand++
		} else {
			played++
		}
	}
	return hand, played
}

func countTotal(cards []deck.Card, name deck.Name) int {
	hand, played := countByState(cards, name)
	return hand + played
}

// duoEvaluator scores a pair card: one point per completed pair across
// hand and played. The pair effect is only available when a whole pair
// still sits in the hand; pairs already on the table unlock nothing.
func duoEvaluator(name deck.Name, effect string) Evaluator {
	return func(cards []deck.Card, _ *PairCache) Evaluation {
		hand, played := countByState(cards, name)

		ev := Evaluation{Name: name, Points: float64((hand + played) / 2)}
		if hand/2 >= 1 {
			ev.Effects = append(ev.Effects, effect)
		}
		return ev
	}
}

// sharkEvaluator and swimmerEvaluator each contribute half a point per
// completed shark/swimmer pair, so their contributions sum to exactly
// one point per pair whichever order they run in.
func sharkEvaluator(cards []deck.Card, pairs *PairCache) Evaluation {
	return pairHalfEvaluation(deck.Shark, pairs.get(cards))
}

func swimmerEvaluator(cards []deck.Card, pairs *PairCache) Evaluation {
	return pairHalfEvaluation(deck.Swimmer, pairs.get(cards))
}

func pairHalfEvaluation(name deck.Name, counts pairCounts) Evaluation {
	ev := Evaluation{Name: name, Points: float64(counts.pairs()) / 2}
	if counts.SharkHand >= 1 && counts.SwimmerHand >= 1 {
		ev.Effects = append(ev.Effects, EffectSharkSwimmer)
	}
	return ev
}

// mermaidEvaluator allocates each mermaid to one distinct colour in
// descending frequency order over the non-mermaid cards; a mermaid
// scores the full count of its colour. Four mermaids end the game
// instead of scoring.
func mermaidEvaluator(cards []deck.Card, _ *PairCache) Evaluation {
	ev := Evaluation{Name: deck.Mermaid}

	mermaids := 0
	rest := make([]deck.Card, 0, len(cards))
	for _, c := range cards {
		if c.Name == deck.Mermaid {
			mermaids++
		} else {
			rest = append(rest, c)
		}
	}

	if mermaids == 4 {
		ev.Effects = append(ev.Effects, EffectMermaidWin)
		return ev
	}

	counts := TallyColors(rest)
	for _, color := range rankColors(counts) {
		if mermaids == 0 {
			break
		}
		ev.Points += float64(counts[color])
		mermaids--
	}
	// mermaids beyond the number of distinct colours score nothing

	return ev
}

// collectorEvaluator scores by a saturating table indexed by the total
// count of the card. Out-of-range counts (zero, or more copies than
// the table covers) score zero rather than erroring.
func collectorEvaluator(name deck.Name, table []int) Evaluator {
	return func(cards []deck.Card, _ *PairCache) Evaluation {
		ev := Evaluation{Name: name}
		if total := countTotal(cards, name); total >= 1 && total <= len(table) {
			ev.Points = float64(table[total-1])
		}
		return ev
	}
}

// multiplierEvaluator scores a fixed factor per copy of a different,
// referenced card. The multiplier's own count never enters the
// formula; the aggregator only runs this when at least one copy is
// present anyway.
func multiplierEvaluator(name, counted deck.Name, factor int) Evaluator {
	return func(cards []deck.Card, _ *PairCache) Evaluation {
		return Evaluation{
			Name:   name,
			Points: float64(factor * countTotal(cards, counted)),
		}
	}
}
