package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/TextRealm_Go/internal/logger"
)

// Handler streams the live game feed
// @Summary Live event feed
// @Description Server-sent events for committed game actions
// @Tags feed
// @Produce text/event-stream
// @Param types query string false "Comma-separated event types"
// @Param player query string false "Only events of this player"
// @Success 200 {string} string "event stream"
// @Router /events [get]
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := http.NewResponseController(w)
		log := logger.FromContext(r.Context())

		var types []string
		if raw := r.URL.Query().Get(QueryTypes); raw != "" {
			for _, t := range strings.Split(raw, ",") {
				if t = strings.TrimSpace(t); t != "" {
					types = append(types, t)
				}
			}
		}
		playerID := r.URL.Query().Get(QueryPlayer)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		client := hub.Register(types, playerID)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", types,
			logger.AttrKeyPlayerID, playerID)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		send := func(e Event) bool {
			msg, err := FormatSSEMessage(e)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Debug(LogMsgWriteError, "error", err)
				return false
			}
			if err := rc.Flush(); err != nil {
				log.Debug(LogMsgWriteError, "error", err)
				return false
			}
			return true
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]any{"client_id": client.ID, "filters": types},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case e, ok := <-client.Events:
				if !ok || !send(e) {
					return
				}
			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
