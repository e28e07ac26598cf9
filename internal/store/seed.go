package store

import (
	"time"

	"github.com/eventhub-app/backend/internal/models"
)

// Categories is the fixed category enumeration events are filed under.
var Categories = []string{
	"Technology",
	"Music",
	"Art",
	"Business",
	"Food & Drink",
	"Sports",
	"Education",
	"Health & Wellness",
	"Entertainment",
	"Community",
}

// DefaultEventImage is used when an event is created without an image.
const DefaultEventImage = "https://images.pexels.com/photos/2747449/pexels-photo-2747449.jpeg?auto=compress&cs=tinysrgb&w=800"

// Seed identities referenced by the demo catalog. "2" is the demo
// organizer from the login table, so the organizer dashboard has data to
// show right after a fresh seed.
const (
	seedOrganizerID   = "2"
	seedOrganizerName = "Event Organizer"
	seedPartnerID     = "1"
	seedPartnerName   = "Sarah Chen"
)

// SeedEvents builds the demo catalog written to the events slot on first
// run. Dates are offsets from the seed moment so the catalog always
// contains upcoming events, whenever the first run happens. Ids are stable
// so reseeding an emptied store produces the same rows.
func SeedEvents(now time.Time) []models.Event {
	now = now.UTC()
	day := func(offset int, clock string) time.Time {
		d := now.AddDate(0, 0, offset)
		t, _ := time.Parse("15:04", clock)
		return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	}

	return []models.Event{
		{
			ID:          "seed-event-1",
			Title:       "Tech Innovation Summit 2026",
			Description: "A full-day summit on AI, cloud, and the future of software, with talks from local founders and hands-on workshops.",
			Organizer:   seedOrganizerName,
			OrganizerID: seedOrganizerID,
			Date:        day(7, "09:00"),
			Time:        "09:00",
			Location:    "Convention Center, Hall A",
			Capacity:    500,
			Price:       149.99,
			Category:    "Technology",
			Tags:        []string{"ai", "cloud", "networking"},
			Image:       "https://images.pexels.com/photos/2774556/pexels-photo-2774556.jpeg?auto=compress&cs=tinysrgb&w=800",
			Status:      models.EventStatusActive,
			CreatedAt:   now,
		},
		{
			ID:          "seed-event-2",
			Title:       "Indie Music Night",
			Description: "An intimate evening with three up-and-coming indie bands. Doors open an hour before the first set.",
			Organizer:   seedOrganizerName,
			OrganizerID: seedOrganizerID,
			Date:        day(10, "19:30"),
			Time:        "19:30",
			Location:    "The Basement, 42 River St",
			Capacity:    120,
			Price:       25,
			Category:    "Music",
			Tags:        []string{"live", "indie"},
			Image:       "https://images.pexels.com/photos/1105666/pexels-photo-1105666.jpeg?auto=compress&cs=tinysrgb&w=800",
			Status:      models.EventStatusActive,
			CreatedAt:   now,
		},
		{
			ID:          "seed-event-3",
			Title:       "Watercolor for Beginners",
			Description: "A relaxed two-hour workshop covering washes, wet-on-wet technique, and simple landscapes. All materials included.",
			Organizer:   seedPartnerName,
			OrganizerID: seedPartnerID,
			Date:        day(14, "14:00"),
			Time:        "14:00",
			Location:    "City Art Studio, Room 3",
			Capacity:    15,
			Price:       40,
			Category:    "Art",
			Tags:        []string{"workshop", "painting", "beginner"},
			Image:       DefaultEventImage,
			Status:      models.EventStatusActive,
			CreatedAt:   now,
		},
		{
			ID:          "seed-event-4",
			Title:       "Startup Pitch & Pizza",
			Description: "Five early-stage startups pitch to a friendly crowd. Pizza, feedback, and informal investor mingling afterwards.",
			Organizer:   seedOrganizerName,
			OrganizerID: seedOrganizerID,
			Date:        day(21, "18:00"),
			Time:        "18:00",
			Location:    "Hub Coworking, 5th Floor",
			Capacity:    80,
			Price:       0,
			Category:    "Business",
			Tags:        []string{"startups", "pitching", "free"},
			Image:       "https://images.pexels.com/photos/3184465/pexels-photo-3184465.jpeg?auto=compress&cs=tinysrgb&w=800",
			Status:      models.EventStatusActive,
			CreatedAt:   now,
		},
		{
			ID:          "seed-event-5",
			Title:       "Street Food Festival",
			Description: "Thirty food trucks, live cooking demos, and a chili-eating contest. Family friendly, rain or shine.",
			Organizer:   seedPartnerName,
			OrganizerID: seedPartnerID,
			Date:        day(28, "11:00"),
			Time:        "11:00",
			Location:    "Riverside Park",
			Capacity:    1000,
			Price:       10,
			Category:    "Food & Drink",
			Tags:        []string{"festival", "outdoor", "family"},
			Image:       "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=800",
			Status:      models.EventStatusActive,
			CreatedAt:   now,
		},
		{
			ID:          "seed-event-6",
			Title:       "Sunrise Yoga in the Park",
			Description: "A gentle all-levels vinyasa session as the sun comes up. Bring your own mat and a water bottle.",
			Organizer:   seedOrganizerName,
			OrganizerID: seedOrganizerID,
			Date:        day(35, "06:30"),
			Time:        "06:30",
			Location:    "East Lawn, Central Park",
			Capacity:    50,
			Price:       5,
			Category:    "Health & Wellness",
			Tags:        []string{"yoga", "morning", "outdoor"},
			Image:       "https://images.pexels.com/photos/317157/pexels-photo-317157.jpeg?auto=compress&cs=tinysrgb&w=800",
			Status:      models.EventStatusActive,
			CreatedAt:   now,
		},
	}
}
