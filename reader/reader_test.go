package reader

import (
	"strings"
	"testing"

	"github.com/WendlandAlex/sea-salt-and-paper-calculator/deck"
	utils "github.com/WendlandAlex/sea-salt-and-paper-calculator/internal"
)

func TestReadCards(t *testing.T) {
	t.Run("reads and normalizes one card per line", func(t *testing.T) {
		input := "crab, blue\nshoal of fish, light grey\nswimer, yelow\n"

		cards, err := ReadCards(strings.NewReader(input), deck.InHand)

		utils.AssertNoError(t, err)
		utils.AssertDeepEqual(t, cards, []deck.Card{
			deck.NewHandCard(deck.Crab, deck.Blue),
			deck.NewHandCard(deck.ShoalOfFish, deck.LightGrey),
			deck.NewHandCard(deck.Swimmer, deck.Yellow),
		})
	})

	t.Run("tags cards with the given state", func(t *testing.T) {
		cards, err := ReadCards(strings.NewReader("boat, green\n"), deck.Played)

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cards[0].State, deck.Played)
	})

	t.Run("empty input yields no cards", func(t *testing.T) {
		cards, err := ReadCards(strings.NewReader(""), deck.InHand)

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(cards), 0)
	})

	t.Run("rejects records with the wrong field count", func(t *testing.T) {
		_, err := ReadCards(strings.NewReader("crab, blue, extra\n"), deck.InHand)

		utils.AssertErrored(t, err)
	})
}

func TestReadFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFile("no-such-file.csv", deck.InHand)

		utils.AssertErrored(t, err)
	})
}
