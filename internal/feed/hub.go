package feed

import (
	"net/http"
	"time"

	"sportsbook_api/internal/domain"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Event is one frame pushed to a live-feed connection.
type Event struct {
	Event string             `json:"event"`
	Data  []domain.MatchOdds `json:"data"`
}

// Hub upgrades live-feed connections and pushes the odds listing to
// each one on a fixed cadence. Every connection owns its ticker; the
// ticker stops exactly once, when the connection goes away.
type Hub struct {
	upgrader websocket.Upgrader
	odds     []domain.MatchOdds
	interval time.Duration
}

// NewHub builds a hub pushing odds every interval.
func NewHub(odds []domain.MatchOdds, interval time.Duration, allowOrigin func(r *http.Request) bool) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{CheckOrigin: allowOrigin},
		odds:     odds,
		interval: interval,
	}
}

// HandleWS upgrades the request and serves the connection until the
// peer disconnects or a write fails.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	logrus.WithField("remote", conn.RemoteAddr().String()).Info("Live feed connected")

	// Reads are discarded; a read error is the disconnect signal.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	ev := Event{Event: "liveOdds", Data: h.odds}
	for {
		select {
		case <-done:
			logrus.WithField("remote", conn.RemoteAddr().String()).Info("Live feed disconnected")
			return
		case <-ticker.C:
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		}
	}
}
