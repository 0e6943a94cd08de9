// Package httpapi exposes the current game snapshot and service health over
// HTTP. It reads only from the snapshot store, never the live state.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/courtside-live/livestats/internal/logging"
	"github.com/courtside-live/livestats/internal/snapshot"
)

// FeedStatus reports whether the upstream feed session is established.
type FeedStatus func() bool

// Handler wires HTTP routes to the snapshot store.
type Handler struct {
	snapshots *snapshot.Store
	logger    *slog.Logger
	feedUp    FeedStatus
}

// NewHandler constructs a Handler.
func NewHandler(snapshots *snapshot.Store, logger *slog.Logger, feedUp FeedStatus) *Handler {
	return &Handler{snapshots: snapshots, logger: logger, feedUp: feedUp}
}

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the feed is connected and a snapshot exists.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	connected := h.feedUp != nil && h.feedUp()
	_, hasSnapshot := h.snapshots.Bytes()

	status := http.StatusOK
	if !connected || !hasSnapshot {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"feedConnected": connected,
		"hasSnapshot":   hasSnapshot,
	})
}

// Game serves the latest game snapshot.
func (h *Handler) Game(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.snapshots.Bytes()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no game snapshot yet"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Last-Modified", h.snapshots.UpdatedAt().UTC().Format(time.RFC1123))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		logging.Warn(h.logger, "snapshot write failed", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/game", handler.Game)
	return mux
}
