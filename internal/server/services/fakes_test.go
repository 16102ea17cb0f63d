package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"campushub/internal/dbx"
	"campushub/internal/server/models"
	announcementsrepo "campushub/internal/server/repositories/announcements"
	clubsrepo "campushub/internal/server/repositories/clubs"
	eventsrepo "campushub/internal/server/repositories/events"
	membershipsrepo "campushub/internal/server/repositories/memberships"
	refreshtokensrepo "campushub/internal/server/repositories/refreshtokens"
	registrationsrepo "campushub/internal/server/repositories/registrations"
	resettokensrepo "campushub/internal/server/repositories/resettokens"
	usersrepo "campushub/internal/server/repositories/users"
)

// --- shared test doubles ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	updateHashErr error

	interestsOut []string
	interestsErr error

	setInterestsErr error

	createdUser  *models.User
	updatedHash  []byte
	updatedFor   string
	setTags      []string
	interestUser string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createdUser = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) UpdatePasswordHash(ctx context.Context, id string, hash []byte) error {
	f.updatedFor = id
	f.updatedHash = hash
	return f.updateHashErr
}

func (f *fakeUsersRepo) GetInterests(ctx context.Context, userID string) ([]string, error) {
	f.interestUser = userID
	if f.interestsErr != nil {
		return nil, f.interestsErr
	}
	return f.interestsOut, nil
}

func (f *fakeUsersRepo) SetInterests(ctx context.Context, userID string, tags []string) error {
	f.setTags = tags
	return f.setInterestsErr
}

type fakeRefreshRepo struct {
	createErr error
	findOut   *models.RefreshToken
	findErr   error
	delErr    error

	createdToken string
	deletedToken string
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	f.createdToken = token
	return f.createErr
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	f.deletedToken = token
	return f.delErr
}

type fakeResetRepo struct {
	createErr error
	findOut   *models.PasswordResetToken
	findErr   error
	delErr    error

	createdToken string
	deletedToken string
}

func (f *fakeResetRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	f.createdToken = token
	return f.createErr
}

func (f *fakeResetRepo) Find(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeResetRepo) Delete(ctx context.Context, token string) error {
	f.deletedToken = token
	return f.delErr
}

type fakeClubsRepo struct {
	createOut *models.Club
	createErr error

	getOut *models.Club
	getErr error

	listOut []models.Club
	listErr error

	updateErr error
	delErr    error

	searchOut   []models.Club
	searchErr   error
	searchCalls int
	gotQuery    string
	gotLimit    int

	updatedClub *models.Club
}

func (f *fakeClubsRepo) Create(ctx context.Context, c *models.Club) (*models.Club, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return c, nil
}

func (f *fakeClubsRepo) GetByID(ctx context.Context, id string) (*models.Club, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeClubsRepo) List(ctx context.Context) ([]models.Club, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeClubsRepo) Update(ctx context.Context, c *models.Club) error {
	f.updatedClub = c
	return f.updateErr
}

func (f *fakeClubsRepo) Delete(ctx context.Context, id string) error { return f.delErr }

func (f *fakeClubsRepo) SearchByText(ctx context.Context, query string, limit int) ([]models.Club, error) {
	f.searchCalls++
	f.gotQuery = query
	f.gotLimit = limit
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchOut, nil
}

type fakeMembershipsRepo struct {
	joinErr  error
	leaveErr error

	isMemberOut bool
	isMemberErr error

	countOut int64
	countErr error

	clubIDsOut []string
	clubIDsErr error

	joined string
	left   string
}

func (f *fakeMembershipsRepo) Join(ctx context.Context, clubID, userID string) error {
	f.joined = clubID
	return f.joinErr
}

func (f *fakeMembershipsRepo) Leave(ctx context.Context, clubID, userID string) error {
	f.left = clubID
	return f.leaveErr
}

func (f *fakeMembershipsRepo) IsMember(ctx context.Context, clubID, userID string) (bool, error) {
	return f.isMemberOut, f.isMemberErr
}

func (f *fakeMembershipsRepo) Count(ctx context.Context, clubID string) (int64, error) {
	return f.countOut, f.countErr
}

func (f *fakeMembershipsRepo) ListClubIDs(ctx context.Context, userID string) ([]string, error) {
	if f.clubIDsErr != nil {
		return nil, f.clubIDsErr
	}
	return f.clubIDsOut, nil
}

type fakeEventsRepo struct {
	createOut *models.Event
	createErr error

	getOut *models.Event
	getErr error

	updateErr error
	delErr    error

	upcomingOut   []models.Event
	upcomingErr   error
	upcomingCalls int

	byCatOut      []models.Event
	byCatErr      error
	byCatCalls    int
	gotCategories []string

	searchOut   []models.Event
	searchErr   error
	searchCalls int
	gotQuery    string
	gotLimit    int

	updatedEvent *models.Event
}

func (f *fakeEventsRepo) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return e, nil
}

func (f *fakeEventsRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeEventsRepo) Update(ctx context.Context, e *models.Event) error {
	f.updatedEvent = e
	return f.updateErr
}

func (f *fakeEventsRepo) Delete(ctx context.Context, id string) error { return f.delErr }

func (f *fakeEventsRepo) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]models.Event, error) {
	f.upcomingCalls++
	if f.upcomingErr != nil {
		return nil, f.upcomingErr
	}
	return f.upcomingOut, nil
}

func (f *fakeEventsRepo) ListUpcomingByCategories(ctx context.Context, from time.Time, categories []string, limit int) ([]models.Event, error) {
	f.byCatCalls++
	f.gotCategories = categories
	if f.byCatErr != nil {
		return nil, f.byCatErr
	}
	return f.byCatOut, nil
}

func (f *fakeEventsRepo) SearchByText(ctx context.Context, query string, limit int) ([]models.Event, error) {
	f.searchCalls++
	f.gotQuery = query
	f.gotLimit = limit
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchOut, nil
}

type fakeRegistrationsRepo struct {
	registerErr   error
	unregisterErr error

	isRegisteredOut bool
	isRegisteredErr error

	countOut int64
	countErr error

	registered   string
	unregistered string
}

func (f *fakeRegistrationsRepo) Register(ctx context.Context, eventID, userID string) error {
	f.registered = eventID
	return f.registerErr
}

func (f *fakeRegistrationsRepo) Unregister(ctx context.Context, eventID, userID string) error {
	f.unregistered = eventID
	return f.unregisterErr
}

func (f *fakeRegistrationsRepo) IsRegistered(ctx context.Context, eventID, userID string) (bool, error) {
	return f.isRegisteredOut, f.isRegisteredErr
}

func (f *fakeRegistrationsRepo) Count(ctx context.Context, eventID string) (int64, error) {
	return f.countOut, f.countErr
}

type fakeAnnouncementsRepo struct {
	createOut *models.Announcement
	createErr error

	getOut *models.Announcement
	getErr error

	updateErr error
	delErr    error

	recentOut []models.Announcement
	recentErr error

	searchOut   []models.Announcement
	searchErr   error
	searchCalls int
	gotQuery    string
	gotLimit    int
}

func (f *fakeAnnouncementsRepo) Create(ctx context.Context, a *models.Announcement) (*models.Announcement, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return a, nil
}

func (f *fakeAnnouncementsRepo) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeAnnouncementsRepo) Update(ctx context.Context, a *models.Announcement) error {
	return f.updateErr
}

func (f *fakeAnnouncementsRepo) Delete(ctx context.Context, id string) error { return f.delErr }

func (f *fakeAnnouncementsRepo) ListRecent(ctx context.Context, limit int) ([]models.Announcement, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.recentOut, nil
}

func (f *fakeAnnouncementsRepo) SearchByText(ctx context.Context, query string, limit int) ([]models.Announcement, error) {
	f.searchCalls++
	f.gotQuery = query
	f.gotLimit = limit
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchOut, nil
}

// fakeRepoManager wires the fakes above into the repomanager interface.
// Unused repos may stay nil.
type fakeRepoManager struct {
	users         *fakeUsersRepo
	refresh       *fakeRefreshRepo
	reset         *fakeResetRepo
	clubs         *fakeClubsRepo
	memberships   *fakeMembershipsRepo
	events        *fakeEventsRepo
	registrations *fakeRegistrationsRepo
	announcements *fakeAnnouncementsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return m.users }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.refresh }
func (m *fakeRepoManager) ResetTokens(db dbx.DBTX) resettokensrepo.Repository     { return m.reset }
func (m *fakeRepoManager) Clubs(db dbx.DBTX) clubsrepo.Repository                 { return m.clubs }
func (m *fakeRepoManager) Memberships(db dbx.DBTX) membershipsrepo.Repository     { return m.memberships }
func (m *fakeRepoManager) Events(db dbx.DBTX) eventsrepo.Repository               { return m.events }
func (m *fakeRepoManager) Registrations(db dbx.DBTX) registrationsrepo.Repository {
	return m.registrations
}
func (m *fakeRepoManager) Announcements(db dbx.DBTX) announcementsrepo.Repository {
	return m.announcements
}
