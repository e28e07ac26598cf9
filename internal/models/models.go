// Package models defines the core domain types shared by the stores and the
// HTTP handlers: identities, events, and registrations, plus the small
// request/response shapes that travel over the API.
package models

import "time"

// Role distinguishes regular attendees from event organizers.
type Role string

const (
	RoleUser      Role = "user"
	RoleOrganizer Role = "organizer"
)

// EventStatus represents the lifecycle state of an event.
type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

// RegistrationStatus represents the state of a registration.
// There is no cancellation flow yet, so every registration the store
// creates is confirmed; the cancelled value exists for persisted data.
type RegistrationStatus string

const (
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

// User is the identity of the current session. At most one User is
// "current" at a time; it is not an account directory entry.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Event is an organizer-published item with finite capacity and a price.
//
// Invariant: 0 <= Bookings <= Capacity at all times. Bookings is mutated
// only by successful registrations through the event store.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Organizer   string      `json:"organizer"`
	OrganizerID string      `json:"organizer_id"`
	Date        time.Time   `json:"date"`
	Time        string      `json:"time"`
	Location    string      `json:"location"`
	Capacity    int         `json:"capacity"`
	Price       float64     `json:"price"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	Image       string      `json:"image"`
	Bookings    int         `json:"bookings"`
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Registration is a confirmed claim by one user on one event for some
// ticket quantity. At most one registration exists per (event, user) pair.
type Registration struct {
	ID           string             `json:"id"`
	EventID      string             `json:"event_id"`
	UserID       string             `json:"user_id"`
	UserName     string             `json:"user_name"`
	UserEmail    string             `json:"user_email"`
	Quantity     int                `json:"quantity"`
	TotalPrice   float64            `json:"total_price"`
	Status       RegistrationStatus `json:"status"`
	RegisteredAt time.Time          `json:"registered_at"`
	// Event is a denormalized snapshot of the event as it looked when the
	// registration was made, attached for display without a catalog lookup.
	Event *Event `json:"event,omitempty"`
}

// EventDraft is the caller-supplied portion of a new event. The store
// assigns the id, creation timestamp, and initial booking count.
type EventDraft struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Organizer   string      `json:"organizer"`
	OrganizerID string      `json:"organizer_id"`
	Date        time.Time   `json:"date"`
	Time        string      `json:"time"`
	Location    string      `json:"location"`
	Capacity    int         `json:"capacity"`
	Price       float64     `json:"price"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	Image       string      `json:"image"`
	Status      EventStatus `json:"status"`
}

// ---- Request / Response DTOs ----

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type RegisterForEventRequest struct {
	Quantity int `json:"quantity"`
}

// OrganizerSummary aggregates an organizer's events for the dashboard.
type OrganizerSummary struct {
	TotalEvents        int     `json:"total_events"`
	TotalRegistrations int     `json:"total_registrations"`
	TotalRevenue       float64 `json:"total_revenue"`
	ActiveEvents       int     `json:"active_events"`
}

// Dashboard is the upcoming/past partition of a user's registrations.
type Dashboard struct {
	Upcoming []Registration `json:"upcoming"`
	Past     []Registration `json:"past"`
}
