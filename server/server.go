package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"

	"github.com/WendlandAlex/sea-salt-and-paper-calculator/deck"
	"github.com/WendlandAlex/sea-salt-and-paper-calculator/normalize"
	"github.com/WendlandAlex/sea-salt-and-paper-calculator/protocol"
	"github.com/WendlandAlex/sea-salt-and-paper-calculator/scoring"
	"github.com/WendlandAlex/sea-salt-and-paper-calculator/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CalcServer serves the calculator over HTTP and websocket
type CalcServer struct {
	store store.SummaryStore
	http.Server
}

// NewID returns a fresh summary id
func NewID() string {
	return uuid.NewV4().String()
}

// NewServer creates a new CalcServer backed by the given history store
func NewServer(summaries store.SummaryStore) *CalcServer {
	s := new(CalcServer)

	router := http.NewServeMux()
	router.Handle("/score", http.HandlerFunc(s.HandleScore))
	router.Handle("/history", http.HandlerFunc(s.HandleHistory))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	s.store = summaries
	s.Handler = handlers.RecoveryHandler()(handlers.LoggingHandler(os.Stdout, router))

	return s
}

// ServeHTTP serves http
func (s *CalcServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Handler.ServeHTTP(w, r)
}

// HandleScore handles a request to score one hand
func (s *CalcServer) HandleScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data protocol.ScoreRequest
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	payload, err := s.scoreAndRecord(data)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(bytes)
}

// HandleHistory handles a request for recently scored turns
func (s *CalcServer) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	n := 10
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("invalid history size"))
			return
		}
		n = parsed
	}

	records, err := s.store.Recent(n)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	payload := protocol.HistoryResponse{Summaries: []protocol.ScoredTurn{}}
	for _, record := range records {
		payload.Summaries = append(payload.Summaries, protocol.ScoredTurn{
			ID:        record.ID,
			CreatedAt: record.CreatedAt,
			Points:    record.Points,
			Effects:   record.Effects,
			CardCount: record.CardCount,
		})
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(bytes)
}

// HandleWS upgrades the connection and scores each incoming message as
// its own pass, so a client can re-submit on every draw or play.
func (s *CalcServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer conn.Close()

	for {
		var envelope protocol.Envelope
		if err := conn.ReadJSON(&envelope); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println(err)
			}
			return
		}

		switch envelope.Cmd {
		case protocol.Score:
			if envelope.Score == nil {
				conn.WriteJSON(map[string]string{"error": "missing score payload"})
				continue
			}
			payload, err := s.scoreAndRecord(*envelope.Score)
			if err != nil {
				log.Println(err.Error())
				conn.WriteJSON(map[string]string{"error": "could not record summary"})
				continue
			}
			if err := conn.WriteJSON(payload); err != nil {
				log.Println(err)
				return
			}

		case protocol.History:
			n := envelope.History
			if n < 1 {
				n = 10
			}
			records, err := s.store.Recent(n)
			if err != nil {
				log.Println(err.Error())
				continue
			}
			if err := conn.WriteJSON(records); err != nil {
				log.Println(err)
				return
			}

		default:
			conn.WriteJSON(map[string]string{"error": "unknown command"})
		}
	}
}

// scoreAndRecord runs one scoring pass over the raw request and saves
// the summary to history.
func (s *CalcServer) scoreAndRecord(req protocol.ScoreRequest) (protocol.ScoreResponse, error) {
	hand := toCards(req.Hand, deck.InHand)
	played := toCards(req.Played, deck.Played)

	summary := scoring.Score(hand, played)

	record := store.Record{
		ID:        NewID(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Points:    summary.Points,
		Effects:   sortedEffects(summary),
		CardCount: len(hand) + len(played),
	}
	if err := s.store.Save(record); err != nil {
		return protocol.ScoreResponse{}, err
	}

	return protocol.ScoreResponse{
		SummaryID:      record.ID,
		Points:         summary.Points,
		Effects:        record.Effects,
		ColorFrequency: colorFrequency(summary),
	}, nil
}

func toCards(raw []protocol.RawCard, state deck.State) []deck.Card {
	cards := make([]deck.Card, 0, len(raw))
	for _, rc := range raw {
		cards = append(cards, deck.Card{
			Name:  normalize.Name(rc.Name),
			Color: normalize.Color(rc.Color),
			State: state,
		})
	}
	return cards
}

func sortedEffects(summary scoring.TurnSummary) []string {
	effects := make([]string, 0, len(summary.Effects))
	for effect := range summary.Effects {
		effects = append(effects, effect)
	}
	sort.Strings(effects)
	return effects
}

func colorFrequency(summary scoring.TurnSummary) map[string]int {
	frequency := map[string]int{}
	for color, count := range summary.ColorFrequency {
		frequency[color.String()] = count
	}
	return frequency
}

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	if err == io.EOF {
		log.Println(err.Error())
		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing body"))
		return
	}
	log.Println(err.Error())
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(http.StatusInternalServerError)
}
