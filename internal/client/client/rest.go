// Package client implements the HTTP API client used by the CLI. It keeps
// the session's token pair in a local store and transparently refreshes the
// access token when the server answers 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"campushub/internal/client/session"
	"campushub/internal/common"
)

// Client is the API surface the CLI commands talk to.
type Client interface {
	Register(ctx context.Context, email, userName, displayName, password string) (*User, error)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) bool

	Search(ctx context.Context, query string) (*SearchResult, error)
	FeaturedFeed(ctx context.Context, limit int) ([]Event, error)

	ListClubs(ctx context.Context) ([]Club, error)
	CreateClub(ctx context.Context, c NewClub) (*Club, error)
	JoinClub(ctx context.Context, clubID string) error
	LeaveClub(ctx context.Context, clubID string) error
	ListJoinedClubs(ctx context.Context) ([]Club, error)

	ListEvents(ctx context.Context, limit int) ([]Event, error)
	CreateEvent(ctx context.Context, e NewEvent) (*Event, error)
	RegisterForEvent(ctx context.Context, eventID string) error
	UnregisterFromEvent(ctx context.Context, eventID string) error

	ListAnnouncements(ctx context.Context, limit int) ([]Announcement, error)
	CreateAnnouncement(ctx context.Context, a NewAnnouncement) (*Announcement, error)

	GetInterests(ctx context.Context) ([]string, error)
	SetInterests(ctx context.Context, interests []string) error

	GetUploadURL(ctx context.Context) (*UploadURL, error)
}

type RESTClient struct {
	baseURL string
	http    *http.Client
	session session.Repository
}

func NewRESTClient(baseURL string, timeout time.Duration, sess session.Repository) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
	}
}

func statusToError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return common.ErrorForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		return fmt.Errorf("unexpected status %d: %s", status, msg)
	}
}

// do performs one API request. With authed set, the stored access token is
// attached; a 401 answer triggers one refresh-and-retry before giving up.
func (c *RESTClient) do(ctx context.Context, method, path string, in, out any, authed bool) error {
	status, body, err := c.doOnce(ctx, method, path, in, authed)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && authed {
		if err := c.refresh(ctx); err != nil {
			return ErrUnauthorized
		}
		status, body, err = c.doOnce(ctx, method, path, in, authed)
		if err != nil {
			return err
		}
	}

	if status >= 400 {
		return statusToError(status, body)
	}
	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}
	return nil
}

func (c *RESTClient) doOnce(ctx context.Context, method, path string, in any, authed bool) (int, []byte, error) {
	var reader io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		access, _, err := c.session.Tokens(ctx)
		if err != nil {
			return 0, nil, err
		}
		if access != "" {
			req.Header.Set(common.AccessTokenHeaderName, common.AccessTokenScheme+" "+access)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// refresh exchanges the stored refresh token for a new pair.
func (c *RESTClient) refresh(ctx context.Context) error {
	_, refreshToken, err := c.session.Tokens(ctx)
	if err != nil {
		return err
	}
	if refreshToken == "" {
		return ErrUnauthorized
	}

	var pair TokenPair
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh",
		map[string]string{"refresh_token": refreshToken}, &pair, false); err != nil {
		return err
	}
	return c.session.SaveTokens(ctx, pair.AccessToken, pair.RefreshToken)
}

func (c *RESTClient) Register(ctx context.Context, email, userName, displayName, password string) (*User, error) {
	in := map[string]string{
		"email":        email,
		"username":     userName,
		"display_name": displayName,
		"password":     password,
	}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", in, &user, false); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *RESTClient) Login(ctx context.Context, email, password string) error {
	in := map[string]string{"email": email, "password": password}
	var pair TokenPair
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", in, &pair, false); err != nil {
		return err
	}
	return c.session.SaveTokens(ctx, pair.AccessToken, pair.RefreshToken)
}

func (c *RESTClient) Logout(ctx context.Context) error {
	return c.session.Clear(ctx)
}

func (c *RESTClient) IsLoggedIn(ctx context.Context) bool {
	access, _, err := c.session.Tokens(ctx)
	return err == nil && access != ""
}

func (c *RESTClient) Search(ctx context.Context, query string) (*SearchResult, error) {
	var result SearchResult
	path := "/api/v1/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &result, false); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *RESTClient) FeaturedFeed(ctx context.Context, limit int) ([]Event, error) {
	var events []Event
	path := "/api/v1/feed/featured?limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &events, true); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *RESTClient) ListClubs(ctx context.Context) ([]Club, error) {
	var clubs []Club
	if err := c.do(ctx, http.MethodGet, "/api/v1/clubs", nil, &clubs, false); err != nil {
		return nil, err
	}
	return clubs, nil
}

func (c *RESTClient) CreateClub(ctx context.Context, in NewClub) (*Club, error) {
	var club Club
	if err := c.do(ctx, http.MethodPost, "/api/v1/clubs", in, &club, true); err != nil {
		return nil, err
	}
	return &club, nil
}

func (c *RESTClient) JoinClub(ctx context.Context, clubID string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/clubs/"+url.PathEscape(clubID)+"/membership", nil, nil, true)
}

func (c *RESTClient) LeaveClub(ctx context.Context, clubID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/clubs/"+url.PathEscape(clubID)+"/membership", nil, nil, true)
}

func (c *RESTClient) ListJoinedClubs(ctx context.Context) ([]Club, error) {
	var clubs []Club
	if err := c.do(ctx, http.MethodGet, "/api/v1/clubs/joined", nil, &clubs, true); err != nil {
		return nil, err
	}
	return clubs, nil
}

func (c *RESTClient) ListEvents(ctx context.Context, limit int) ([]Event, error) {
	var events []Event
	path := "/api/v1/events?limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &events, false); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *RESTClient) CreateEvent(ctx context.Context, in NewEvent) (*Event, error) {
	var event Event
	if err := c.do(ctx, http.MethodPost, "/api/v1/events", in, &event, true); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *RESTClient) RegisterForEvent(ctx context.Context, eventID string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/events/"+url.PathEscape(eventID)+"/registration", nil, nil, true)
}

func (c *RESTClient) UnregisterFromEvent(ctx context.Context, eventID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/events/"+url.PathEscape(eventID)+"/registration", nil, nil, true)
}

func (c *RESTClient) ListAnnouncements(ctx context.Context, limit int) ([]Announcement, error) {
	var list []Announcement
	path := "/api/v1/announcements?limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &list, false); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *RESTClient) CreateAnnouncement(ctx context.Context, in NewAnnouncement) (*Announcement, error) {
	var a Announcement
	if err := c.do(ctx, http.MethodPost, "/api/v1/announcements", in, &a, true); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *RESTClient) GetInterests(ctx context.Context) ([]string, error) {
	var payload struct {
		Interests []string `json:"interests"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/profile/interests", nil, &payload, true); err != nil {
		return nil, err
	}
	return payload.Interests, nil
}

func (c *RESTClient) SetInterests(ctx context.Context, interests []string) error {
	in := map[string][]string{"interests": interests}
	return c.do(ctx, http.MethodPut, "/api/v1/profile/interests", in, nil, true)
}

func (c *RESTClient) GetUploadURL(ctx context.Context) (*UploadURL, error) {
	var out UploadURL
	if err := c.do(ctx, http.MethodPost, "/api/v1/media/upload-url", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}
