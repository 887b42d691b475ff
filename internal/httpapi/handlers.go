package httpapi

import (
	"encoding/json"
	"net/http"

	"chessrelay/internal/hub"
)

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// StatsHandler reports live connection, waiting-slot, and session
// counts. Diagnostic only; nothing game-visible depends on it.
func StatsHandler(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan hub.View, 1)
		h.Inbox() <- hub.Stats{Reply: reply}
		view := <-reply

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(struct {
			Connections int  `json:"connections"`
			Sessions    int  `json:"sessions"`
			Waiting     bool `json:"waiting"`
		}{Connections: view.NumConns, Sessions: view.NumSessions, Waiting: view.Waiting})
	}
}
