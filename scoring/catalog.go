package scoring

import (
	"fmt"

	"github.com/WendlandAlex/sea-salt-and-paper-calculator/deck"
)

// Evaluator scores one card type against the full card list for the
// pass. Evaluators are pure: the PairCache is the only shared state
// they may touch, and only through its counts method.
type Evaluator func(cards []deck.Card, pairs *PairCache) Evaluation

// Evaluation is the result of running one card type's evaluator.
// Points may be a half-integer (shark and swimmer each contribute half
// a point per completed pair).
type Evaluation struct {
	Name    deck.Name
	Points  float64
	Effects []string
}

// catalog maps every card type to its evaluator. Built once at package
// init and never mutated.
var catalog = mustCatalog()

func newCatalog() (map[deck.Name]Evaluator, error) {
	c := map[deck.Name]Evaluator{
		deck.Crab:          duoEvaluator(deck.Crab, EffectCrabPair),
		deck.Boat:          duoEvaluator(deck.Boat, EffectBoatPair),
		deck.Fish:          duoEvaluator(deck.Fish, EffectFishPair),
		deck.Shark:         sharkEvaluator,
		deck.Swimmer:       swimmerEvaluator,
		deck.Mermaid:       mermaidEvaluator,
		deck.Shell:         collectorEvaluator(deck.Shell, []int{0, 2, 4, 6, 8, 10}),
		deck.Octopus:       collectorEvaluator(deck.Octopus, []int{0, 3, 6, 9, 12}),
		deck.Penguin:       collectorEvaluator(deck.Penguin, []int{1, 3, 5}),
		deck.Sailor:        collectorEvaluator(deck.Sailor, []int{0, 5}),
		deck.Lighthouse:    multiplierEvaluator(deck.Lighthouse, deck.Boat, 1),
		deck.ShoalOfFish:   multiplierEvaluator(deck.ShoalOfFish, deck.Fish, 1),
		deck.PenguinColony: multiplierEvaluator(deck.PenguinColony, deck.Penguin, 2),
		deck.Captain:       multiplierEvaluator(deck.Captain, deck.Sailor, 3),
	}

	for _, name := range deck.AllNames() {
		if _, ok := c[name]; !ok {
			return nil, fmt.Errorf("no evaluator registered for %q", name)
		}
	}

	return c, nil
}

// mustCatalog panics on an incomplete catalog. A missing evaluator is a
// build defect, not a runtime condition.
func mustCatalog() map[deck.Name]Evaluator {
	c, err := newCatalog()
	if err != nil {
		panic(err)
	}
	return c
}
