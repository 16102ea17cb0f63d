// Package rest exposes the CampusHub API over HTTP using Echo. Handlers
// translate between JSON DTOs and the service layer; sentinel errors map to
// HTTP status codes in one place.
package rest

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campushub/internal/logging"
	"campushub/internal/server/models"
	"campushub/internal/server/services"
)

// The handler-facing service contracts. *services.UserService etc. satisfy
// these; tests substitute fakes.

type UserService interface {
	Register(ctx context.Context, email, userName, displayName, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetInterests(ctx context.Context, userID string) ([]string, error)
	SetInterests(ctx context.Context, userID string, tags []string) error
}

type SearchService interface {
	Search(ctx context.Context, query string) (*models.SearchResultSet, error)
}

type FeedService interface {
	FeaturedEvents(ctx context.Context, userID string, limit int) []models.Event
}

type ClubService interface {
	Create(ctx context.Context, ownerID string, club *models.Club) (*models.Club, error)
	GetByID(ctx context.Context, id string) (*models.Club, error)
	List(ctx context.Context) ([]models.Club, error)
	Update(ctx context.Context, userID string, club *models.Club) error
	Delete(ctx context.Context, userID, clubID string) error
	Join(ctx context.Context, clubID, userID string) error
	Leave(ctx context.Context, clubID, userID string) error
	ListJoined(ctx context.Context, userID string) ([]models.Club, error)
}

type EventService interface {
	Create(ctx context.Context, creatorID string, event *models.Event) (*models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	ListUpcoming(ctx context.Context, limit int) ([]models.Event, error)
	Update(ctx context.Context, userID string, event *models.Event) error
	Delete(ctx context.Context, userID, eventID string) error
	Register(ctx context.Context, eventID, userID string) error
	Unregister(ctx context.Context, eventID, userID string) error
	AttendeeCount(ctx context.Context, eventID string) (int64, error)
}

type AnnouncementService interface {
	Create(ctx context.Context, authorID string, a *models.Announcement) (*models.Announcement, error)
	GetByID(ctx context.Context, id string) (*models.Announcement, error)
	ListRecent(ctx context.Context, limit int) ([]models.Announcement, error)
	Update(ctx context.Context, userID string, a *models.Announcement) error
	Delete(ctx context.Context, userID, id string) error
}

type MediaService interface {
	GetPresignedPutUrl(ctx context.Context) (string, string, error)
	GetPresignedGetUrl(ctx context.Context, key string) (string, error)
}

// Server wires the Echo engine, the services, and the auth secret.
type Server struct {
	echo      *echo.Echo
	logger    logging.Logger
	jwtSecret []byte

	users         UserService
	search        SearchService
	feed          FeedService
	clubs         ClubService
	events        EventService
	announcements AnnouncementService
	media         MediaService
}

// NewServer builds the HTTP server with all routes registered.
func NewServer(
	logger logging.Logger,
	jwtSecret []byte,
	users UserService,
	search SearchService,
	feed FeedService,
	clubs ClubService,
	events EventService,
	announcements AnnouncementService,
	media MediaService,
) *Server {
	s := &Server{
		logger:        logger,
		jwtSecret:     jwtSecret,
		users:         users,
		search:        search,
		feed:          feed,
		clubs:         clubs,
		events:        events,
		announcements: announcements,
		media:         media,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(s.requestLogMiddleware())
	e.Use(observeMiddleware())

	e.GET("/healthz", s.handleHealthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.handleRegister)
	authGroup.POST("/login", s.handleLogin)
	authGroup.POST("/refresh", s.handleRefresh)
	authGroup.POST("/reset/request", s.handleResetRequest)
	authGroup.POST("/reset/confirm", s.handleResetConfirm)

	api.GET("/search", s.handleSearch)
	api.GET("/feed/featured", s.handleFeaturedFeed, s.optionalAuthMiddleware())

	api.GET("/clubs", s.handleListClubs)
	api.GET("/clubs/:id", s.handleGetClub)
	api.POST("/clubs", s.handleCreateClub, s.authMiddleware())
	api.PUT("/clubs/:id", s.handleUpdateClub, s.authMiddleware())
	api.DELETE("/clubs/:id", s.handleDeleteClub, s.authMiddleware())
	api.POST("/clubs/:id/membership", s.handleJoinClub, s.authMiddleware())
	api.DELETE("/clubs/:id/membership", s.handleLeaveClub, s.authMiddleware())
	api.GET("/clubs/joined", s.handleListJoinedClubs, s.authMiddleware())

	api.GET("/events", s.handleListEvents)
	api.GET("/events/:id", s.handleGetEvent)
	api.POST("/events", s.handleCreateEvent, s.authMiddleware())
	api.PUT("/events/:id", s.handleUpdateEvent, s.authMiddleware())
	api.DELETE("/events/:id", s.handleDeleteEvent, s.authMiddleware())
	api.POST("/events/:id/registration", s.handleRegisterForEvent, s.authMiddleware())
	api.DELETE("/events/:id/registration", s.handleUnregisterFromEvent, s.authMiddleware())

	api.GET("/announcements", s.handleListAnnouncements)
	api.GET("/announcements/:id", s.handleGetAnnouncement)
	api.POST("/announcements", s.handleCreateAnnouncement, s.authMiddleware())
	api.PUT("/announcements/:id", s.handleUpdateAnnouncement, s.authMiddleware())
	api.DELETE("/announcements/:id", s.handleDeleteAnnouncement, s.authMiddleware())

	api.GET("/profile/interests", s.handleGetInterests, s.authMiddleware())
	api.PUT("/profile/interests", s.handleSetInterests, s.authMiddleware())

	api.POST("/media/upload-url", s.handleMediaUploadURL, s.authMiddleware())
	api.GET("/media/url", s.handleMediaGetURL)

	s.echo = e
	return s
}

// Start serves HTTP on the given address until Shutdown is called.
func (s *Server) Start(addr string) error {
	err := s.echo.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying engine, used by tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
