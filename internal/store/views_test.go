package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventhub-app/backend/internal/models"
)

func eventOn(date time.Time) *models.Event {
	return &models.Event{ID: "e", Title: "Some Event", Date: date, Capacity: 10}
}

func regFor(id string, event *models.Event) models.Registration {
	return models.Registration{ID: id, EventID: event.ID, UserID: "3", Quantity: 1, Event: event}
}

func TestAvailableSpots(t *testing.T) {
	assert.Equal(t, 7, AvailableSpots(models.Event{Capacity: 10, Bookings: 3}))
	assert.Equal(t, 0, AvailableSpots(models.Event{Capacity: 10, Bookings: 10}))
	// Display floor: never negative, even for out-of-band data.
	assert.Equal(t, 0, AvailableSpots(models.Event{Capacity: 10, Bookings: 12}))
}

func TestIsFull(t *testing.T) {
	assert.False(t, IsFull(models.Event{Capacity: 10, Bookings: 9}))
	assert.True(t, IsFull(models.Event{Capacity: 10, Bookings: 10}))
}

func TestIsUpcoming_BoundaryIsInclusive(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsUpcoming(models.Event{Date: now}, now), "an event dated exactly now is upcoming")
	assert.True(t, IsUpcoming(models.Event{Date: now.Add(time.Second)}, now))
	assert.False(t, IsUpcoming(models.Event{Date: now.Add(-time.Second)}, now))
}

func TestOrganizerSummary(t *testing.T) {
	events := []models.Event{
		{Bookings: 10, Price: 20, Status: models.EventStatusActive},
		{Bookings: 5, Price: 100, Status: models.EventStatusCompleted},
		{Bookings: 0, Price: 50, Status: models.EventStatusActive},
	}

	sum := OrganizerSummary(events)

	assert.Equal(t, 3, sum.TotalEvents)
	assert.Equal(t, 15, sum.TotalRegistrations)
	assert.Equal(t, 700.0, sum.TotalRevenue)
	assert.Equal(t, 2, sum.ActiveEvents)
}

func TestOrganizerSummary_Empty(t *testing.T) {
	assert.Equal(t, models.OrganizerSummary{}, OrganizerSummary(nil))
}

func TestSplitRegistrations(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	past := regFor("r1", eventOn(now.AddDate(0, 0, -1)))
	today := regFor("r2", eventOn(now))
	future := regFor("r3", eventOn(now.AddDate(0, 0, 7)))
	noSnapshot := models.Registration{ID: "r4"}

	upcoming, gone := SplitRegistrations(
		[]models.Registration{past, today, future, noSnapshot}, now)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "r2", upcoming[0].ID)
	assert.Equal(t, "r3", upcoming[1].ID)
	require.Len(t, gone, 1)
	assert.Equal(t, "r1", gone[0].ID)
}

func TestRegistrationsOn_IgnoresTimeOfDay(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	morning := regFor("r1", eventOn(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)))
	evening := regFor("r2", eventOn(time.Date(2026, 3, 10, 22, 30, 0, 0, time.UTC)))
	nextDay := regFor("r3", eventOn(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))

	got := RegistrationsOn([]models.Registration{morning, evening, nextDay}, day)

	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, "r2", got[1].ID)
}

func TestRegistrationsByDay(t *testing.T) {
	regs := []models.Registration{
		regFor("r1", eventOn(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))),
		regFor("r2", eventOn(time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC))),
		regFor("r3", eventOn(time.Date(2026, 3, 25, 9, 0, 0, 0, time.UTC))),
		regFor("r4", eventOn(time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC))), // wrong month
	}

	buckets := RegistrationsByDay(regs, 2026, time.March)

	require.Len(t, buckets, 2)
	assert.Len(t, buckets[10], 2)
	assert.Len(t, buckets[25], 1)
}
