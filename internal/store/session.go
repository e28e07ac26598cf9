// Package store holds the two state containers that own all mutable
// application state: the session/identity store and the event catalog &
// registration store. Every mutation is persisted to its storage slot in
// the same call, so the in-memory state and the slot never diverge.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eventhub-app/backend/internal/models"
	"github.com/eventhub-app/backend/internal/storage"
)

// UserSlot is the storage key holding the current identity.
const UserSlot = "eventhub_user"

// credential is one entry in the fixed demo login table. Passwords are
// compared as plain text literals — this is a stand-in for a real auth
// backend, not a security design.
type credential struct {
	email    string
	password string
	id       string
	name     string
	role     models.Role
}

var demoCredentials = []credential{
	{email: "organizer@eventhub.com", password: "org123", id: "2", name: "Event Organizer", role: models.RoleOrganizer},
	{email: "user@eventhub.com", password: "user123", id: "3", name: "John Doe", role: models.RoleUser},
}

// SessionStore holds the current authenticated identity, or none. It is
// constructed once at startup and passed to every consumer; the mutex makes
// it safe for concurrent HTTP callers.
type SessionStore struct {
	mu      sync.Mutex
	kv      storage.Store
	log     *slog.Logger
	now     func() time.Time
	current *models.User
}

// NewSessionStore restores any previously persisted identity from kv.
// An absent or unreadable slot means the session starts logged out.
func NewSessionStore(kv storage.Store, log *slog.Logger) *SessionStore {
	s := &SessionStore{kv: kv, log: log, now: time.Now}

	raw, err := kv.Get(UserSlot)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("restore identity", "error", err)
		}
		return s
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Error("restore identity: corrupt slot, starting logged out", "error", err)
		return s
	}
	s.current = &user
	return s
}

// Login checks email and password against the fixed credential table.
// On a match the matching identity becomes current and is persisted; on a
// miss the current identity is left untouched and Login reports false.
func (s *SessionStore) Login(email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range demoCredentials {
		if c.email != email || c.password != password {
			continue
		}
		user := models.User{
			ID:        c.id,
			Name:      c.name,
			Email:     c.email,
			Role:      c.role,
			CreatedAt: s.now().UTC(),
		}
		s.current = &user
		s.persist()
		s.log.Info("login", "user", user.ID, "role", user.Role)
		return true
	}
	return false
}

// Register synthesizes a new identity and makes it current. It always
// succeeds: there is no account directory to collide with, only a
// "last logged-in identity" slot. An empty role defaults to regular user.
func (s *SessionStore) Register(name, email, password string, role models.Role) bool {
	if role == "" {
		role = models.RoleUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: s.now().UTC(),
	}
	s.current = &user
	s.persist()
	s.log.Info("register", "user", user.ID, "role", user.Role)
	return true
}

// Logout clears the current identity and its persisted slot. It cannot fail.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.kv.Remove(UserSlot); err != nil {
		s.log.Error("clear identity slot", "error", err)
	}
}

// Current returns a copy of the current identity, or nil when logged out.
func (s *SessionStore) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// persist writes the current identity to its slot. Callers hold the mutex.
// Persistence failures are logged and otherwise ignored — the in-memory
// identity stays authoritative.
func (s *SessionStore) persist() {
	raw, err := json.Marshal(s.current)
	if err != nil {
		s.log.Error("marshal identity", "error", err)
		return
	}
	if err := s.kv.Set(UserSlot, string(raw)); err != nil {
		s.log.Error("persist identity", "error", err)
	}
}
