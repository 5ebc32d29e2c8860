package deck

// Color represents a card's colour. Canonical order is significant:
// it breaks ties in the normalizer and in mermaid colour allocation.
type Color int

var colorStrings = []string{
	"blue",
	"dark-blue",
	"black",
	"grey",
	"light-grey",
	"green",
	"light-green",
	"orange",
	"pink",
	"purple",
	"yellow",
}

const (
	Blue Color = iota
	DarkBlue
	Black
	Grey
	LightGrey
	Green
	LightGreen
	Orange
	Pink
	Purple
	Yellow
)

func (c Color) String() string {
	return colorStrings[c]
}

// AllColors returns every colour in canonical order
func AllColors() []Color {
	colors := make([]Color, len(colorStrings))
	for i := range colorStrings {
		colors[i] = Color(i)
	}
	return colors
}
