package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/eventhub-app/backend/internal/models"
	"github.com/eventhub-app/backend/internal/store"
)

// eventView decorates an event with its derived available-spot count for
// display. The underlying booking count is reported as stored.
type eventView struct {
	models.Event
	AvailableSpots int `json:"available_spots"`
}

func toView(e models.Event) eventView {
	return eventView{Event: e, AvailableSpots: store.AvailableSpots(e)}
}

// ListEvents handles GET /api/events
// Public — no login required. Supports ?category= and ?q= filters the way
// the browse page uses them; both are optional and ANDed.
func (s *Server) ListEvents(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

	// Initialised to an empty slice, not nil, so JSON encodes as [] not null.
	events := []eventView{}
	for _, e := range s.Events.Events() {
		if category != "" && e.Category != category {
			continue
		}
		if q != "" && !matchesQuery(e, q) {
			continue
		}
		events = append(events, toView(e))
	}
	respond(w, http.StatusOK, events)
}

// matchesQuery does a case-insensitive substring search over the fields the
// browse page's search box covers: title, location, category, and tags.
func matchesQuery(e models.Event, q string) bool {
	if strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Location), q) ||
		strings.Contains(strings.ToLower(e.Category), q) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// GetEvent handles GET /api/events/{id}
// r.PathValue is the Go 1.22+ way to read path parameters from the
// standard library mux.
func (s *Server) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, ok := s.Events.GetEvent(r.PathValue("id"))
	if !ok {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	respond(w, http.StatusOK, toView(event))
}

// ListCategories handles GET /api/categories
// The category enumeration is static configuration, not stored data.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, store.Categories)
}

// CreateEvent handles POST /api/events  (organizer only)
//
// The organizer name and id come from the current identity, never from the
// request body. Beyond well-formed JSON the handler validates nothing —
// field validation is the UI's concern and the store accepts any draft.
func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	user := s.Session.Current()

	var req struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Date        time.Time `json:"date"`
		Time        string    `json:"time"`
		Location    string    `json:"location"`
		Capacity    int       `json:"capacity"`
		Price       float64   `json:"price"`
		Category    string    `json:"category"`
		Tags        []string  `json:"tags"`
		Image       string    `json:"image"`
	}
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.Image == "" {
		req.Image = store.DefaultEventImage
	}

	event := s.Events.CreateEvent(models.EventDraft{
		Title:       req.Title,
		Description: req.Description,
		Organizer:   user.Name,
		OrganizerID: user.ID,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Category:    req.Category,
		Tags:        req.Tags,
		Image:       req.Image,
		Status:      models.EventStatusActive,
	})

	respond(w, http.StatusCreated, toView(event))
}

// RegisterForEvent handles POST /api/events/{id}/register  (logged in)
//
// The store reports plain success or failure; a missing event, a duplicate
// registration, and a capacity overflow all produce the same 409 response
// here, matching the store's boolean contract.
func (s *Server) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	user := s.Session.Current()
	eventID := r.PathValue("id")

	var req models.RegisterForEventRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	if !s.Events.RegisterForEvent(eventID, user.ID, user.Name, user.Email, req.Quantity) {
		respondError(w, http.StatusConflict, "registration failed")
		return
	}

	regs := s.Events.GetUserRegistrations(user.ID)
	respond(w, http.StatusCreated, regs[len(regs)-1])
}

// GetEventRegistrations handles GET /api/events/{id}/registrations
// (organizer only). Ownership is enforced here: even another organizer
// cannot list someone else's attendees.
func (s *Server) GetEventRegistrations(w http.ResponseWriter, r *http.Request) {
	user := s.Session.Current()
	eventID := r.PathValue("id")

	event, ok := s.Events.GetEvent(eventID)
	if !ok {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	if event.OrganizerID != user.ID {
		respondError(w, http.StatusForbidden, "you are not the organizer of this event")
		return
	}

	respond(w, http.StatusOK, s.Events.GetEventRegistrations(eventID))
}
