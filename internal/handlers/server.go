// Package handlers contains the HTTP handler logic for the EventHub API.
//
// All handler files share the same package so they can use each other's
// helpers; the files are split by domain (auth, events, dashboard) for
// readability. The central type is Server: it holds the two stores every
// handler needs. Handlers stay thin — every mutation goes through a store,
// and the stores are the only writers of persisted state.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/eventhub-app/backend/internal/store"
)

// Server holds shared dependencies for all handlers. Using a struct instead
// of package-level globals means tests can spin up many independent Server
// instances without state leaking between them.
type Server struct {
	Session *store.SessionStore
	Events  *store.EventStore
	Log     *slog.Logger
}

// respond writes v as JSON with the given HTTP status code. Content-Type
// must be set before WriteHeader — once the header is flushed it is fixed.
func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ignoring the encode error: if the client disconnected mid-write
	// there is nothing useful left to do.
	_ = json.NewEncoder(w).Encode(body)
}

// respondError sends a JSON object with a single "error" key,
// e.g. {"error": "event not found"}.
func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, map[string]string{"error": msg})
}

// decode reads and parses a JSON request body into v.
func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
