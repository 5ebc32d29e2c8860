package scoring

import "github.com/WendlandAlex/sea-salt-and-paper-calculator/deck"

// pairCounts holds the shark and swimmer counts shared by both
// evaluators, split by card state.
type pairCounts struct {
	SharkHand     int
	SharkPlayed   int
	SwimmerHand   int
	SwimmerPlayed int
}

func (pc pairCounts) sharkTotal() int {
	return pc.SharkHand + pc.SharkPlayed
}

func (pc pairCounts) swimmerTotal() int {
	return pc.SwimmerHand + pc.SwimmerPlayed
}

// pairs returns the number of completed shark/swimmer pairs
func (pc pairCounts) pairs() int {
	return min(pc.sharkTotal(), pc.swimmerTotal())
}

// PairCache memoizes the shark/swimmer scan for one scoring pass, so
// both evaluators see identical counts and the scan happens at most
// once no matter which of the two runs first. A fresh cache must be
// constructed for every pass; it must never outlive one.
type PairCache struct {
	done   bool
	counts pairCounts
}

func (p *PairCache) get(cards []deck.Card) pairCounts {
	if p.done {
		return p.counts
	}

	for _, c := range cards {
		switch {
		case c.Name == deck.Shark && c.State == deck.InHand:
			p.counts.SharkHand++
		case c.Name == deck.Shark:
			p.counts.SharkPlayed++
		case c.Name == deck.Swimmer && c.State == deck.InHand:
			p.counts.SwimmerHand++
		case c.Name == deck.Swimmer:
			p.counts.SwimmerPlayed++
		}
	}

	p.done = true
	return p.counts
}
