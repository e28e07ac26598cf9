package store

import (
	"time"

	"github.com/eventhub-app/backend/internal/models"
)

// Derived, read-only computations over the store's collections. These
// encode domain semantics the views rely on, so they live next to the
// stores rather than in the handlers.

// AvailableSpots returns how many tickets remain for an event, floored at
// zero for display. The underlying booking count is never clamped; the
// store's capacity check keeps it within bounds in the first place.
func AvailableSpots(e models.Event) int {
	spots := e.Capacity - e.Bookings
	if spots < 0 {
		return 0
	}
	return spots
}

// IsFull reports whether no spots remain.
func IsFull(e models.Event) bool {
	return e.Bookings >= e.Capacity
}

// IsUpcoming classifies an event against now. The boundary is inclusive:
// an event dated exactly now still counts as upcoming.
func IsUpcoming(e models.Event, now time.Time) bool {
	return !e.Date.Before(now)
}

// OrganizerSummary aggregates an organizer's events: event count, total
// tickets sold, revenue (bookings x price per event), and how many events
// are still active.
func OrganizerSummary(events []models.Event) models.OrganizerSummary {
	var sum models.OrganizerSummary
	sum.TotalEvents = len(events)
	for _, e := range events {
		sum.TotalRegistrations += e.Bookings
		sum.TotalRevenue += float64(e.Bookings) * e.Price
		if e.Status == models.EventStatusActive {
			sum.ActiveEvents++
		}
	}
	return sum
}

// SplitRegistrations partitions registrations into upcoming and past by
// their event snapshot's date, preserving ledger order within each half.
// Registrations without a snapshot cannot be classified and are skipped.
func SplitRegistrations(regs []models.Registration, now time.Time) (upcoming, past []models.Registration) {
	upcoming = []models.Registration{}
	past = []models.Registration{}
	for _, r := range regs {
		if r.Event == nil {
			continue
		}
		if IsUpcoming(*r.Event, now) {
			upcoming = append(upcoming, r)
		} else {
			past = append(past, r)
		}
	}
	return upcoming, past
}

// RegistrationsOn returns the registrations whose event falls on the given
// calendar day, ignoring time-of-day. This is the calendar grid's bucket
// function.
func RegistrationsOn(regs []models.Registration, day time.Time) []models.Registration {
	out := []models.Registration{}
	for _, r := range regs {
		if r.Event == nil {
			continue
		}
		if sameDay(r.Event.Date, day) {
			out = append(out, r)
		}
	}
	return out
}

// RegistrationsByDay buckets a month's registrations by day of month, for
// rendering a calendar in one pass instead of one RegistrationsOn call per
// cell.
func RegistrationsByDay(regs []models.Registration, year int, month time.Month) map[int][]models.Registration {
	out := make(map[int][]models.Registration)
	for _, r := range regs {
		if r.Event == nil {
			continue
		}
		d := r.Event.Date
		if d.Year() == year && d.Month() == month {
			out[d.Day()] = append(out[d.Day()], r)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
