package models

import "time"

type Announcement struct {
	ID        string
	Title     string
	Content   string
	ClubID    *string
	ClubName  *string
	CreatedBy string
	CreatedAt time.Time
}
