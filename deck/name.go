package deck

// Name represents one of the card types in the game
type Name int

var nameStrings = []string{
	"crab",
	"boat",
	"fish",
	"swimmer",
	"shark",
	"mermaid",
	"shell",
	"octopus",
	"penguin",
	"sailor",
	"lighthouse",
	"shoal-of-fish",
	"penguin-colony",
	"captain",
}

const (
	Crab Name = iota
	Boat
	Fish
	Swimmer
	Shark
	Mermaid
	Shell
	Octopus
	Penguin
	Sailor
	Lighthouse
	ShoalOfFish
	PenguinColony
	Captain
)

func (n Name) String() string {
	return nameStrings[n]
}

// AllNames returns every card type in canonical order
func AllNames() []Name {
	names := make([]Name, len(nameStrings))
	for i := range nameStrings {
		names[i] = Name(i)
	}
	return names
}
