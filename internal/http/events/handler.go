// Package events exposes the transaction change feed as server-sent
// events. Clients receive content-free hints and re-fetch whatever they
// display; the recompute is idempotent so over-delivery is harmless.
package events

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/notify"
)

// keepAliveInterval spaces out SSE comments that hold idle connections
// open through proxies.
const keepAliveInterval = 30 * time.Second

type Handler struct {
	listener *notify.Listener
}

func NewHandler(listener *notify.Listener) *Handler {
	return &Handler{listener: listener}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.stream)
}

func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	hints := h.listener.Subscribe()
	defer h.listener.Unsubscribe(hints)

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-hints:
			fmt.Fprint(w, "event: changed\ndata: {}\n\n")
			flusher.Flush()
		case <-keepAlive.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}
