package rpc

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"aura/internal/gateway/service/statefeed"
)

// StateFeedHandler streams post-mutation object documents to UI clients
// over a websocket. Delivery is best effort; the dispatch path never waits
// for a client.
type StateFeedHandler struct {
	feed *statefeed.Feed
}

func NewStateFeedHandler(feed *statefeed.Feed) *StateFeedHandler {
	return &StateFeedHandler{feed: feed}
}

const (
	stateWSWriteWait = 10 * time.Second
	stateWSPongWait  = 60 * time.Second
	stateWSPingEvery = (stateWSPongWait * 9) / 10
)

var stateWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type stateWSOutbound struct {
	Event      string         `json:"event"`
	ObjectID   string         `json:"objectId"`
	Method     string         `json:"method"`
	Attributes map[string]any `json:"attributes"`
}

// HandleStateWS upgrades the connection and forwards feed updates until
// the client goes away. An optional object_id query parameter narrows the
// stream to one object.
func (h *StateFeedHandler) HandleStateWS(w http.ResponseWriter, r *http.Request) {
	filterID := strings.TrimSpace(r.URL.Query().Get("object_id"))

	conn, err := stateWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	updates, cancel := h.feed.Subscribe()
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(stateWSPongWait)); err != nil {
		log.Printf("state ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(stateWSPongWait))
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(stateWSPingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if filterID != "" && update.ObjectID != filterID {
				continue
			}
			if err := conn.SetWriteDeadline(time.Now().Add(stateWSWriteWait)); err != nil {
				return
			}
			out := stateWSOutbound{
				Event:      "uvm_state_update",
				ObjectID:   update.ObjectID,
				Method:     update.Method,
				Attributes: update.Attributes,
			}
			if err := conn.WriteJSON(out); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.SetWriteDeadline(time.Now().Add(stateWSWriteWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
