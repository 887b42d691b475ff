package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"chessrelay/internal/config"
	"chessrelay/internal/hub"
	"chessrelay/internal/ws"
)

func SetupRoutes(h *hub.Hub, log *zap.Logger, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/stats", StatsHandler(h))
	r.Get("/ws", ws.Handler(h, log, cfg.AllowedOrigins))
	return r
}
