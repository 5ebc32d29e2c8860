package scoring

import (
	"sort"

	"github.com/WendlandAlex/sea-salt-and-paper-calculator/deck"
)

// TallyColors frequency-counts colours over a card subset. Colours
// with zero occurrences are absent from the result, never present
// with a zero value.
func TallyColors(cards []deck.Card) map[deck.Color]int {
	counts := map[deck.Color]int{}
	for _, c := range cards {
		counts[c.Color]++
	}
	return counts
}

// rankColors orders the tallied colours by descending count. Equal
// counts fall back to ascending canonical colour index, so allocation
// is deterministic.
func rankColors(counts map[deck.Color]int) []deck.Color {
	colors := make([]deck.Color, 0, len(counts))
	for _, c := range deck.AllColors() {
		if counts[c] > 0 {
			colors = append(colors, c)
		}
	}

	sort.SliceStable(colors, func(i, j int) bool {
		return counts[colors[i]] > counts[colors[j]]
	})

	return colors
}
