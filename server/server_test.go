package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	utils "github.com/WendlandAlex/sea-salt-and-paper-calculator/internal"
	"github.com/WendlandAlex/sea-salt-and-paper-calculator/protocol"
	"github.com/WendlandAlex/sea-salt-and-paper-calculator/scoring"
	"github.com/WendlandAlex/sea-salt-and-paper-calculator/store"
)

func crabPairRequest() protocol.ScoreRequest {
	return protocol.ScoreRequest{
		Hand: []protocol.RawCard{
			{Name: "crab", Color: "blue"},
			{Name: "crab", Color: "green"},
		},
	}
}

func TestHandleScore(t *testing.T) {
	t.Run("scores a submitted hand and records it", func(t *testing.T) {
		summaries := store.NewInMemorySummaryStore()
		s := NewServer(summaries)

		body, err := json.Marshal(crabPairRequest())
		utils.AssertNoError(t, err)

		response := httptest.NewRecorder()
		s.ServeHTTP(response, httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader(body)))

		utils.AssertEqual(t, response.Code, http.StatusOK)

		var payload protocol.ScoreResponse
		utils.AssertNoError(t, json.NewDecoder(response.Body).Decode(&payload))

		utils.AssertEqual(t, payload.Points, 1.0)
		assert.Contains(t, payload.Effects, scoring.EffectCrabPair)
		utils.AssertDeepEqual(t, payload.ColorFrequency, map[string]int{"blue": 1, "green": 1})

		record, err := summaries.Find(payload.SummaryID)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, record.Points, 1.0)
		utils.AssertEqual(t, record.CardCount, 2)
	})

	t.Run("misspelled tokens are normalized before scoring", func(t *testing.T) {
		s := NewServer(store.NewInMemorySummaryStore())

		body := `{"hand":[{"name":"craab","color":"bleu"},{"name":"crab","color":"blue"}]}`
		response := httptest.NewRecorder()
		s.ServeHTTP(response, httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(body)))

		var payload protocol.ScoreResponse
		utils.AssertNoError(t, json.NewDecoder(response.Body).Decode(&payload))
		utils.AssertEqual(t, payload.Points, 1.0)
	})

	t.Run("rejects non-POST requests", func(t *testing.T) {
		s := NewServer(store.NewInMemorySummaryStore())

		response := httptest.NewRecorder()
		s.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/score", nil))

		utils.AssertEqual(t, response.Code, http.StatusNotFound)
	})

	t.Run("rejects a missing body", func(t *testing.T) {
		s := NewServer(store.NewInMemorySummaryStore())

		response := httptest.NewRecorder()
		s.ServeHTTP(response, httptest.NewRequest(http.MethodPost, "/score", nil))

		utils.AssertEqual(t, response.Code, http.StatusBadRequest)
	})
}

func TestHandleHistory(t *testing.T) {
	t.Run("returns recently scored turns", func(t *testing.T) {
		summaries := store.NewInMemorySummaryStore()
		utils.AssertNoError(t, summaries.Save(store.Record{ID: "abc", Points: 5, CardCount: 3}))

		s := NewServer(summaries)

		response := httptest.NewRecorder()
		s.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/history", nil))

		utils.AssertEqual(t, response.Code, http.StatusOK)

		var payload protocol.HistoryResponse
		utils.AssertNoError(t, json.NewDecoder(response.Body).Decode(&payload))
		utils.AssertEqual(t, len(payload.Summaries), 1)
		utils.AssertEqual(t, payload.Summaries[0].ID, "abc")
	})

	t.Run("rejects an invalid size", func(t *testing.T) {
		s := NewServer(store.NewInMemorySummaryStore())

		response := httptest.NewRecorder()
		s.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/history?n=zero", nil))

		utils.AssertEqual(t, response.Code, http.StatusBadRequest)
	})
}

func TestHandleWS(t *testing.T) {
	t.Run("scores each message as its own pass", func(t *testing.T) {
		summaries := store.NewInMemorySummaryStore()
		srv := httptest.NewServer(NewServer(summaries))
		defer srv.Close()

		url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		utils.AssertNoError(t, err)
		defer conn.Close()

		request := crabPairRequest()
		utils.AssertNoError(t, conn.WriteJSON(protocol.Envelope{Cmd: protocol.Score, Score: &request}))

		var payload protocol.ScoreResponse
		utils.AssertNoError(t, conn.ReadJSON(&payload))
		utils.AssertEqual(t, payload.Points, 1.0)

		// second pass is independent of the first
		utils.AssertNoError(t, conn.WriteJSON(protocol.Envelope{Cmd: protocol.Score, Score: &request}))
		utils.AssertNoError(t, conn.ReadJSON(&payload))
		utils.AssertEqual(t, payload.Points, 1.0)

		records, err := summaries.Recent(10)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(records), 2)
	})
}
