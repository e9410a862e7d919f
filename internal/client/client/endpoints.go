package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
)

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, call{method: http.MethodGet, path: "/healthz"})
}

func (c *HTTPClient) Register(ctx context.Context, in RegisterInput) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/users/register", in: in})
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	in := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, call{method: http.MethodPost, path: "/users/login", in: in, out: &out}); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("login response carried no access token")
	}
	return out.AccessToken, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (models.UserProfile, error) {
	var out models.UserProfile
	err := c.do(ctx, call{method: http.MethodGet, path: "/users/profile", auth: true, out: &out})
	return out, err
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, in ProfileUpdate) (models.UserProfile, error) {
	var out struct {
		User models.UserProfile `json:"user"`
	}
	err := c.do(ctx, call{method: http.MethodPut, path: "/users/profile/update", auth: true, in: in, out: &out})
	return out.User, err
}

func (c *HTTPClient) ListPins(ctx context.Context) ([]models.Pin, error) {
	var out []models.Pin
	err := c.do(ctx, call{method: http.MethodGet, path: "/pins/", out: &out})
	return out, err
}

func (c *HTTPClient) CreatePin(ctx context.Context, in PinInput) (models.Pin, error) {
	var out models.Pin
	err := c.do(ctx, call{method: http.MethodPost, path: "/pins/", auth: true, in: in, out: &out})
	return out, err
}

func (c *HTTPClient) UpdatePinCondition(ctx context.Context, locationID int64, in ConditionUpdate) (models.Pin, error) {
	var out models.Pin
	path := fmt.Sprintf("/pins/%d/condition", locationID)
	err := c.do(ctx, call{method: http.MethodPut, path: path, auth: true, in: in, out: &out})
	return out, err
}

func (c *HTTPClient) DeletePin(ctx context.Context, locationID int64) error {
	return c.do(ctx, call{method: http.MethodDelete, path: fmt.Sprintf("/pins/%d", locationID), auth: true})
}

func (c *HTTPClient) CreateCat(ctx context.Context, in models.Cat) (models.Cat, error) {
	var out models.Cat
	err := c.do(ctx, call{method: http.MethodPost, path: "/cats/", auth: true, in: in, out: &out})
	return out, err
}

func (c *HTTPClient) UpdateCat(ctx context.Context, catID int64, in CatUpdate) (models.Cat, error) {
	var out models.Cat
	path := fmt.Sprintf("/cats/cat/%d", catID)
	err := c.do(ctx, call{method: http.MethodPut, path: path, auth: true, in: in, out: &out})
	return out, err
}

func (c *HTTPClient) ListListings(ctx context.Context) ([]models.AdoptionListing, error) {
	var out []models.AdoptionListing
	err := c.do(ctx, call{method: http.MethodGet, path: "/adoptions/", out: &out})
	return out, err
}

func (c *HTTPClient) CreateListing(ctx context.Context, in ListingInput) (models.AdoptionListing, error) {
	var out models.AdoptionListing
	err := c.do(ctx, call{method: http.MethodPost, path: "/adoptions/", auth: true, in: in, out: &out})
	return out, err
}

func (c *HTTPClient) UpdateListing(ctx context.Context, listingID int64, in ListingUpdate) (models.AdoptionListing, error) {
	var out models.AdoptionListing
	path := fmt.Sprintf("/adoptions/%d", listingID)
	err := c.do(ctx, call{method: http.MethodPut, path: path, auth: true, in: in, out: &out})
	return out, err
}

func (c *HTTPClient) CreateRequest(ctx context.Context, in RequestInput) (models.AdoptionRequest, error) {
	var out models.AdoptionRequest
	err := c.do(ctx, call{method: http.MethodPost, path: "/adoption-requests/", auth: true, in: in, out: &out})
	return out, err
}

func (c *HTTPClient) GetRequest(ctx context.Context, requestID int64) (models.AdoptionRequest, error) {
	var out models.AdoptionRequest
	path := fmt.Sprintf("/adoption-requests/%d", requestID)
	err := c.do(ctx, call{method: http.MethodGet, path: path, auth: true, out: &out})
	return out, err
}

func (c *HTTPClient) listRequests(ctx context.Context, path string) ([]models.AdoptionRequest, error) {
	var out []models.AdoptionRequest
	err := c.do(ctx, call{method: http.MethodGet, path: path, auth: true, out: &out})
	return out, err
}

func (c *HTTPClient) ListIncomingAll(ctx context.Context) ([]models.AdoptionRequest, error) {
	return c.listRequests(ctx, "/adoption-requests/incoming/all")
}

func (c *HTTPClient) ListSent(ctx context.Context) ([]models.AdoptionRequest, error) {
	return c.listRequests(ctx, "/adoption-requests/sent")
}

func (c *HTTPClient) ListSentAccepted(ctx context.Context) ([]models.AcceptedContact, error) {
	var out []models.AcceptedContact
	err := c.do(ctx, call{method: http.MethodGet, path: "/adoption-requests/sent/accepted", auth: true, out: &out})
	return out, err
}

func (c *HTTPClient) DecideRequest(ctx context.Context, requestID int64, status models.RequestStatus) error {
	q := url.Values{}
	q.Set("request_id", strconv.FormatInt(requestID, 10))
	q.Set("action", string(status))
	return c.do(ctx, call{method: http.MethodPut, path: "/adoption-requests/action", query: q, auth: true})
}

func (c *HTTPClient) ListCatActivity(ctx context.Context, catID int64) ([]models.ActivityLogEntry, error) {
	var out []models.ActivityLogEntry
	path := fmt.Sprintf("/activity/cat/%d/public", catID)
	err := c.do(ctx, call{method: http.MethodGet, path: path, out: &out})
	return out, err
}

func (c *HTTPClient) CreateActivity(ctx context.Context, in ActivityInput) (models.ActivityLogEntry, error) {
	var out models.ActivityLogEntry
	err := c.do(ctx, call{method: http.MethodPost, path: "/activity/", auth: true, in: in, out: &out})
	return out, err
}

func (c *HTTPClient) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	err := c.do(ctx, call{method: http.MethodGet, path: "/notifications/", auth: true, out: &out})
	return out, err
}

func (c *HTTPClient) UnreadCount(ctx context.Context) (int, error) {
	var out int
	err := c.do(ctx, call{method: http.MethodGet, path: "/notifications/unread-count", auth: true, out: &out})
	return out, err
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	path := fmt.Sprintf("/notifications/%d/read", notificationID)
	return c.do(ctx, call{method: http.MethodPost, path: path, auth: true})
}
