package rest

import (
	"time"

	"campushub/internal/server/models"
)

// --- auth ---

type registerRequest struct {
	Email       string `json:"email"`
	UserName    string `json:"username"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type userResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	UserName    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		UserName:    u.UserName,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type resetRequestRequest struct {
	Email string `json:"email"`
}

type resetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// --- clubs ---

type clubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	LogoKey     string `json:"logo_key"`
}

func (r *clubRequest) toModel() *models.Club {
	return &models.Club{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		LogoKey:     r.LogoKey,
	}
}

type clubResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	LogoKey     string    `json:"logo_key,omitempty"`
	OwnerID     string    `json:"owner_id"`
	MemberCount int64     `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func toClubResponse(c *models.Club) clubResponse {
	return clubResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		LogoKey:     c.LogoKey,
		OwnerID:     c.OwnerID,
		MemberCount: c.MemberCount,
		CreatedAt:   c.CreatedAt,
	}
}

func toClubResponses(clubs []models.Club) []clubResponse {
	out := make([]clubResponse, 0, len(clubs))
	for i := range clubs {
		out = append(out, toClubResponse(&clubs[i]))
	}
	return out
}

// --- events ---

type eventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	ImageKey    string    `json:"image_key"`
	ClubID      *string   `json:"club_id"`
}

func (r *eventRequest) toModel() *models.Event {
	return &models.Event{
		Title:       r.Title,
		Description: r.Description,
		StartsAt:    r.StartsAt,
		Category:    r.Category,
		Location:    r.Location,
		ImageKey:    r.ImageKey,
		ClubID:      r.ClubID,
	}
}

// eventResponse carries the club relation as a single optional value: a
// club-less event has club_id and club_name omitted, never an empty list.
type eventResponse struct {
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

func toEventResponse(e *models.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartsAt:    e.StartsAt,
		Category:    e.Category,
		Location:    e.Location,
		ImageKey:    e.ImageKey,
		ClubID:      e.ClubID,
		ClubName:    e.ClubName,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}

func toEventResponses(events []models.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for i := range events {
		out = append(out, toEventResponse(&events[i]))
	}
	return out
}

// --- announcements ---

type announcementRequest struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	ClubID  *string `json:"club_id"`
}

func (r *announcementRequest) toModel() *models.Announcement {
	return &models.Announcement{
		Title:   r.Title,
		Content: r.Content,
		ClubID:  r.ClubID,
	}
}

type announcementResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ClubID    *string   `json:"club_id,omitempty"`
	ClubName  *string   `json:"club_name,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func toAnnouncementResponse(a *models.Announcement) announcementResponse {
	return announcementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		ClubID:    a.ClubID,
		ClubName:  a.ClubName,
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt,
	}
}

func toAnnouncementResponses(list []models.Announcement) []announcementResponse {
	out := make([]announcementResponse, 0, len(list))
	for i := range list {
		out = append(out, toAnnouncementResponse(&list[i]))
	}
	return out
}

// --- search ---

type searchResponse struct {
	Events        []eventResponse        `json:"events"`
	Clubs         []clubResponse         `json:"clubs"`
	Announcements []announcementResponse `json:"announcements"`
}

func toSearchResponse(r *models.SearchResultSet) searchResponse {
	return searchResponse{
		Events:        toEventResponses(r.Events),
		Clubs:         toClubResponses(r.Clubs),
		Announcements: toAnnouncementResponses(r.Announcements),
	}
}

// --- interests / media ---

type interestsPayload struct {
	Interests []string `json:"interests"`
}

type uploadURLResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type mediaURLResponse struct {
	URL string `json:"url"`
}
