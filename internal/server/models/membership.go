package models

import "time"

type Membership struct {
	ClubID   string
	UserID   string
	JoinedAt time.Time
}

type Registration struct {
	EventID      string
	UserID       string
	RegisteredAt time.Time
}
