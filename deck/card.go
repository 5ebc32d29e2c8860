package deck

import "fmt"

// State records where a card currently sits
type State int

const (
	InHand State = iota
	Played
)

var stateNames = []string{"hand", "played"}

func (s State) String() string {
	return stateNames[s]
}

// Card represents a single card. Cards carry no identity beyond their
// fields; two crabs of the same colour are interchangeable.
type Card struct {
	Name  Name
	Color Color
	State State
}

// NewHandCard constructs a card held in the private hand
func NewHandCard(name Name, color Color) Card {
	return Card{Name: name, Color: color, State: InHand}
}

// NewPlayedCard constructs a card in the public played area
func NewPlayedCard(name Name, color Color) Card {
	return Card{Name: name, Color: color, State: Played}
}

func (c Card) String() string {
	return fmt.Sprintf("%s %s (%s)", c.Color, c.Name, c.State)
}
