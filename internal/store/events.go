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

// Storage keys for the catalog and the registration ledger.
const (
	EventsSlot        = "eventhub_events"
	RegistrationsSlot = "eventhub_registrations"
)

// EventStore owns the event catalog and the registration ledger. It is the
// only writer of both collections; every consumer gets copies.
//
// The mutex serialises the whole check-then-write sequence of
// RegisterForEvent, which is what keeps the capacity and one-registration-
// per-user invariants intact when HTTP callers run concurrently.
type EventStore struct {
	mu    sync.Mutex
	kv    storage.Store
	log   *slog.Logger
	now   func() time.Time
	newID func() string

	events        []models.Event
	registrations []models.Registration
}

// NewEventStore loads the catalog and ledger from kv. A missing catalog
// slot is seeded with the built-in demo catalog (and the seed is persisted
// immediately); a missing ledger slot just means no registrations yet.
func NewEventStore(kv storage.Store, log *slog.Logger) *EventStore {
	s := &EventStore{kv: kv, log: log, now: time.Now, newID: uuid.NewString}

	if !s.loadSlot(EventsSlot, &s.events) {
		s.events = SeedEvents(s.now())
		s.persistEvents()
		log.Info("seeded demo catalog", "events", len(s.events))
	}
	s.loadSlot(RegistrationsSlot, &s.registrations)
	return s
}

// loadSlot unmarshals a slot into dst. It reports whether usable data was
// loaded; absent and corrupt slots both count as "no data".
func (s *EventStore) loadSlot(key string, dst any) bool {
	raw, err := s.kv.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Error("load slot", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Error("load slot: corrupt data", "key", key, "error", err)
		return false
	}
	return true
}

// CreateEvent appends a new event built from draft to the catalog and
// persists it. The store assigns the id and creation timestamp and starts
// the booking count at zero. Field validation is the caller's concern.
func (s *EventStore) CreateEvent(draft models.EventDraft) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := models.Event{
		ID:          s.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		Organizer:   draft.Organizer,
		OrganizerID: draft.OrganizerID,
		Date:        draft.Date,
		Time:        draft.Time,
		Location:    draft.Location,
		Capacity:    draft.Capacity,
		Price:       draft.Price,
		Category:    draft.Category,
		Tags:        draft.Tags,
		Image:       draft.Image,
		Bookings:    0,
		Status:      draft.Status,
		CreatedAt:   s.now().UTC(),
	}
	s.events = append(s.events, event)
	s.persistEvents()
	s.log.Info("event created", "event", event.ID, "organizer", event.OrganizerID)
	return event
}

// RegisterForEvent attempts to register a user for an event. It reports
// false when the event does not exist, the user already holds a
// registration for it, or the requested quantity would exceed capacity —
// deliberately without distinguishing which precondition failed.
//
// On success the registration (with an event snapshot and total price of
// quantity x event price) is appended to the ledger, the event's booking
// count is bumped by quantity, and both slots are persisted.
func (s *EventStore) RegisterForEvent(eventID, userID, userName, userEmail string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.events {
		if s.events[i].ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	event := s.events[idx]

	// One registration per (event, user), regardless of its status.
	for i := range s.registrations {
		if s.registrations[i].EventID == eventID && s.registrations[i].UserID == userID {
			return false
		}
	}

	if event.Bookings+quantity > event.Capacity {
		return false
	}

	snapshot := event
	registration := models.Registration{
		ID:           s.newID(),
		EventID:      eventID,
		UserID:       userID,
		UserName:     userName,
		UserEmail:    userEmail,
		Quantity:     quantity,
		TotalPrice:   event.Price * float64(quantity),
		Status:       models.RegistrationConfirmed,
		RegisteredAt: s.now().UTC(),
		Event:        &snapshot,
	}
	s.registrations = append(s.registrations, registration)
	s.persistRegistrations()

	s.events[idx].Bookings += quantity
	s.persistEvents()

	s.log.Info("registration created",
		"event", eventID, "user", userID, "quantity", quantity)
	return true
}

// Events returns a copy of the full catalog in insertion order.
func (s *EventStore) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Event(nil), s.events...)
}

// GetEvent looks up one event by id.
func (s *EventStore) GetEvent(id string) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			return s.events[i], true
		}
	}
	return models.Event{}, false
}

// GetUserRegistrations returns the user's registrations in ledger order.
func (s *EventStore) GetUserRegistrations(userID string) []models.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Registration{}
	for _, r := range s.registrations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// GetEventRegistrations returns the event's registrations in ledger order.
func (s *EventStore) GetEventRegistrations(eventID string) []models.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Registration{}
	for _, r := range s.registrations {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out
}

// GetOrganizerEvents returns the organizer's events in catalog order.
func (s *EventStore) GetOrganizerEvents(organizerID string) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Event{}
	for _, e := range s.events {
		if e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}
	return out
}

// persistEvents and persistRegistrations write the full collections to
// their slots. Callers hold the mutex. Persistence failures are logged and
// otherwise ignored; the in-memory state stays authoritative.

func (s *EventStore) persistEvents() {
	raw, err := json.Marshal(s.events)
	if err != nil {
		s.log.Error("marshal catalog", "error", err)
		return
	}
	if err := s.kv.Set(EventsSlot, string(raw)); err != nil {
		s.log.Error("persist catalog", "error", err)
	}
}

func (s *EventStore) persistRegistrations() {
	raw, err := json.Marshal(s.registrations)
	if err != nil {
		s.log.Error("marshal ledger", "error", err)
		return
	}
	if err := s.kv.Set(RegistrationsSlot, string(raw)); err != nil {
		s.log.Error("persist ledger", "error", err)
	}
}
