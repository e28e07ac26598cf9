// main is the entry point for the EventHub API server.
//
// This file is the composition root — the single place where the storage
// backend, the two stores, and the HTTP routes are wired together. Every
// other package stays easy to test in isolation because the wiring only
// happens here.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/eventhub-app/backend/internal/handlers"
	"github.com/eventhub-app/backend/internal/middleware"
	"github.com/eventhub-app/backend/internal/storage"
	"github.com/eventhub-app/backend/internal/store"
)

func main() {
	// .env is optional — a missing file just means the environment is
	// already set (CI, containers).
	_ = godotenv.Load()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	addr := getenv("ADDR", ":8080")
	// The URI pragma parameters configure every pooled connection:
	//   journal_mode(WAL)  — readers don't block the writer
	//   busy_timeout(5000) — wait up to 5s instead of returning SQLITE_BUSY
	dsn := getenv("DATABASE_PATH",
		"eventhub.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")

	kv, err := storage.OpenSQLite(dsn)
	if err != nil {
		logger.Error("open storage", "error", err)
		os.Exit(1)
	}
	defer kv.Close()
	logger.Info("storage ready", "dsn", dsn)

	// The two state containers. Constructed once, passed everywhere —
	// there are no ambient singletons.
	session := store.NewSessionStore(kv, logger)
	events := store.NewEventStore(kv, logger)

	srv := &handlers.Server{Session: session, Events: events, Log: logger}

	mux := http.NewServeMux()

	// Public routes.
	mux.HandleFunc("POST /api/auth/login", srv.Login)
	mux.HandleFunc("POST /api/auth/register", srv.Register)
	mux.HandleFunc("POST /api/auth/logout", srv.Logout)
	mux.HandleFunc("GET /api/auth/me", srv.Me)
	mux.HandleFunc("GET /api/events", srv.ListEvents)
	mux.HandleFunc("GET /api/events/{id}", srv.GetEvent)
	mux.HandleFunc("GET /api/categories", srv.ListCategories)

	// Guards consult the session store's current identity.
	loggedIn := middleware.RequireUser(session)
	organizer := middleware.RequireOrganizer(session)

	mux.Handle("POST /api/events/{id}/register",
		loggedIn(http.HandlerFunc(srv.RegisterForEvent)))
	mux.Handle("GET /api/users/me/registrations",
		loggedIn(http.HandlerFunc(srv.MyRegistrations)))
	mux.Handle("GET /api/users/me/dashboard",
		loggedIn(http.HandlerFunc(srv.MyDashboard)))
	mux.Handle("GET /api/users/me/calendar",
		loggedIn(http.HandlerFunc(srv.MyCalendar)))

	mux.Handle("POST /api/events",
		organizer(http.HandlerFunc(srv.CreateEvent)))
	mux.Handle("GET /api/events/{id}/registrations",
		organizer(http.HandlerFunc(srv.GetEventRegistrations)))
	mux.Handle("GET /api/organizer/events",
		organizer(http.HandlerFunc(srv.OrganizerEvents)))
	mux.Handle("GET /api/organizer/summary",
		organizer(http.HandlerFunc(srv.OrganizerSummary)))

	handler := middleware.CORS(middleware.Logging(logger)(mux))

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM. The stores persist every
	// mutation as it happens, so there is nothing to flush here.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}

// getenv returns the value of the named environment variable, or fallback
// if the variable is not set or is empty.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
