// Package normalize resolves free-text card tokens to the canonical
// enumerations. It is the engine's only input boundary: everything
// downstream of it sees canonical values only.
package normalize

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/WendlandAlex/sea-salt-and-paper-calculator/deck"
)

// Name resolves a token to the closest canonical card name by edit
// distance. Ties resolve to the name that comes first in canonical
// order. Total over all inputs: even garbage maps to something.
func Name(token string) deck.Name {
	token = clean(token)

	best := deck.Crab
	bestDistance := -1
	for _, name := range deck.AllNames() {
		d := levenshtein.ComputeDistance(token, name.String())
		if bestDistance == -1 || d < bestDistance {
			best = name
			bestDistance = d
		}
	}
	return best
}

// Color resolves a token to the closest canonical colour, with the
// same tie-break as Name.
func Color(token string) deck.Color {
	token = clean(token)

	best := deck.Blue
	bestDistance := -1
	for _, color := range deck.AllColors() {
		d := levenshtein.ComputeDistance(token, color.String())
		if bestDistance == -1 || d < bestDistance {
			best = color
			bestDistance = d
		}
	}
	return best
}

// clean lowercases and squashes separators so "Shoal of Fish" and
// "shoal_of_fish" both land on "shoal-of-fish" for free.
func clean(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	token = strings.ReplaceAll(token, " ", "-")
	token = strings.ReplaceAll(token, "_", "-")
	return token
}
