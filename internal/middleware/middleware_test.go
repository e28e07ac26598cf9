package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventhub-app/backend/internal/storage"
	"github.com/eventhub-app/backend/internal/store"
)

func newSession(t *testing.T) *store.SessionStore {
	t.Helper()
	return store.NewSessionStore(storage.NewMemory(), slog.New(slog.DiscardHandler))
}

// okHandler records whether the inner handler was reached.
func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireUser(t *testing.T) {
	session := newSession(t)
	var called bool
	handler := RequireUser(session)(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("logged out: expected 401, got %d", rec.Code)
	}
	if called {
		t.Error("logged out: inner handler must not run")
	}

	if !session.Login("user@eventhub.com", "user123") {
		t.Fatal("demo login failed")
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || !called {
		t.Errorf("logged in: expected pass-through, got %d", rec.Code)
	}
}

func TestRequireOrganizer(t *testing.T) {
	session := newSession(t)
	var called bool
	handler := RequireOrganizer(session)(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("logged out: expected 401, got %d", rec.Code)
	}

	if !session.Login("user@eventhub.com", "user123") {
		t.Fatal("demo login failed")
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusForbidden {
		t.Errorf("regular user: expected 403, got %d", rec.Code)
	}
	if called {
		t.Error("regular user: inner handler must not run")
	}

	if !session.Login("organizer@eventhub.com", "org123") {
		t.Fatal("demo login failed")
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || !called {
		t.Errorf("organizer: expected pass-through, got %d", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	var called bool
	handler := CORS(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow-origin: got %q", got)
	}
	if !called {
		t.Error("GET should reach the inner handler")
	}

	called = false
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight: expected 204, got %d", rec.Code)
	}
	if called {
		t.Error("preflight must short-circuit before the inner handler")
	}
}

func TestLogging_ReportsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	handler := Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brew", nil))

	line := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("status=418")) {
		t.Errorf("log line missing status: %s", line)
	}
	if !bytes.Contains(buf.Bytes(), []byte("path=/brew")) {
		t.Errorf("log line missing path: %s", line)
	}
}
