package client

import "time"

// Wire types mirroring the server's JSON responses.

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	UserName    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	LogoKey     string    `json:"logo_key,omitempty"`
	OwnerID     string    `json:"owner_id"`
	MemberCount int64     `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	ImageKey    string    `json:"image_key,omitempty"`
	ClubID      *string   `json:"club_id,omitempty"`
	ClubName    *string   `json:"club_name,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ClubID    *string   `json:"club_id,omitempty"`
	ClubName  *string   `json:"club_name,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type SearchResult struct {
	Events        []Event        `json:"events"`
	Clubs         []Club         `json:"clubs"`
	Announcements []Announcement `json:"announcements"`
}

type NewClub struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	LogoKey     string `json:"logo_key"`
}

type NewEvent struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	ImageKey    string    `json:"image_key"`
	ClubID      *string   `json:"club_id"`
}

type NewAnnouncement struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	ClubID  *string `json:"club_id"`
}

type UploadURL struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
