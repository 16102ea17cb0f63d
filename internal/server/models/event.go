package models

import "time"

type Event struct {
	ID          string
	ClubID      *string
	Title       string
	Description string
	StartsAt    time.Time
	Category    string
	Location    string
	ImageKey    string
	CreatedBy   string
	CreatedAt   time.Time

	// ClubName is the to-one club relation resolved by a LEFT JOIN.
	// Nil when the event is not tied to a club.
	ClubName *string
}
