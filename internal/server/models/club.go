package models

import "time"

type Club struct {
	ID          string
	Name        string
	Description string
	Category    string
	LogoKey     string
	OwnerID     string
	CreatedAt   time.Time

	// MemberCount is filled by list/get queries, not stored on the row.
	MemberCount int64
}
