package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/eventhub-app/backend/internal/models"
	"github.com/eventhub-app/backend/internal/store"
)

// MyRegistrations handles GET /api/users/me/registrations  (logged in)
// Returns the current user's registrations in ledger order, each carrying
// its event snapshot.
func (s *Server) MyRegistrations(w http.ResponseWriter, r *http.Request) {
	user := s.Session.Current()
	respond(w, http.StatusOK, s.Events.GetUserRegistrations(user.ID))
}

// MyDashboard handles GET /api/users/me/dashboard  (logged in)
// Splits the user's registrations into upcoming and past by the snapshot
// event's date. An event dated exactly now is still upcoming.
func (s *Server) MyDashboard(w http.ResponseWriter, r *http.Request) {
	user := s.Session.Current()
	regs := s.Events.GetUserRegistrations(user.ID)

	upcoming, past := store.SplitRegistrations(regs, time.Now())
	respond(w, http.StatusOK, models.Dashboard{Upcoming: upcoming, Past: past})
}

// MyCalendar handles GET /api/users/me/calendar?year=&month=  (logged in)
// Buckets the user's registrations by day of the requested month; the
// current month is the default. The response maps day-of-month to the
// registrations whose event falls on that day.
func (s *Server) MyCalendar(w http.ResponseWriter, r *http.Request) {
	user := s.Session.Current()
	now := time.Now()

	year := now.Year()
	month := now.Month()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			respondError(w, http.StatusBadRequest, "month must be 1-12")
			return
		}
		month = time.Month(parsed)
	}

	regs := s.Events.GetUserRegistrations(user.ID)
	respond(w, http.StatusOK, store.RegistrationsByDay(regs, year, month))
}

// OrganizerEvents handles GET /api/organizer/events  (organizer only)
// The organizer's own events in catalog order, with derived spot counts
// and per-event revenue for the dashboard cards.
func (s *Server) OrganizerEvents(w http.ResponseWriter, r *http.Request) {
	user := s.Session.Current()

	type organizerEventView struct {
		eventView
		Revenue float64 `json:"revenue"`
	}

	events := []organizerEventView{}
	for _, e := range s.Events.GetOrganizerEvents(user.ID) {
		events = append(events, organizerEventView{
			eventView: toView(e),
			Revenue:   float64(e.Bookings) * e.Price,
		})
	}
	respond(w, http.StatusOK, events)
}

// OrganizerSummary handles GET /api/organizer/summary  (organizer only)
func (s *Server) OrganizerSummary(w http.ResponseWriter, r *http.Request) {
	user := s.Session.Current()
	events := s.Events.GetOrganizerEvents(user.ID)
	respond(w, http.StatusOK, store.OrganizerSummary(events))
}
