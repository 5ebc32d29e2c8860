package protocol

// RawCard is a card as submitted by a client, before normalization
type RawCard struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ScoreRequest asks for one scoring pass over a hand and played area
type ScoreRequest struct {
	Hand   []RawCard `json:"hand"`
	Played []RawCard `json:"played"`
}

// ScoreResponse reports the result of a scoring pass. Effects are
// sorted so the payload is deterministic.
type ScoreResponse struct {
	SummaryID      string         `json:"summary_id"`
	Points         float64        `json:"points"`
	Effects        []string       `json:"effects"`
	ColorFrequency map[string]int `json:"color_frequency"`
}

// HistoryResponse lists recently scored turns
type HistoryResponse struct {
	Summaries []ScoredTurn `json:"summaries"`
}

// ScoredTurn is one history entry
type ScoredTurn struct {
	ID        string   `json:"id"`
	CreatedAt string   `json:"created_at"`
	Points    float64  `json:"points"`
	Effects   []string `json:"effects"`
	CardCount int      `json:"card_count"`
}

// Envelope wraps a websocket message. Exactly one payload field is set
// depending on Cmd.
type Envelope struct {
	Cmd     Cmd           `json:"command"`
	Score   *ScoreRequest `json:"score,omitempty"`
	History int           `json:"history,omitempty"`
}
