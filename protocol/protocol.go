package protocol

// Cmd represents a command sent over the websocket connection
type Cmd int

const (
	Score Cmd = iota
	History
)

var cmdNames = []string{
	"Score",
	"History",
}

func (c Cmd) String() string {
	return cmdNames[c]
}
