package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/safepaws/internal/client/client"
	"github.com/dmitrijs2005/safepaws/internal/client/models"
)

// fakeClient implements client.Client for service tests. Return values are
// set per test; calls are recorded by name.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	HealthErr error

	RegisterErr  error
	LastRegister client.RegisterInput

	LoginToken string
	LoginErr   error

	Profile       models.UserProfile
	ProfileErr    error
	LastProfileIn client.ProfileUpdate

	PinsRet        []models.Pin
	PinsErr        error
	CreatePinRet   models.Pin
	CreatePinErr   error
	LastPinIn      client.PinInput
	ConditionRet   models.Pin
	ConditionErr   error
	LastCondition  client.ConditionUpdate
	LastConditionL int64

	CreateCatRet models.Cat
	CreateCatErr error
	LastCat      models.Cat
	UpdateCatRet models.Cat
	UpdateCatErr error
	LastCatID    int64

	ListingsRet       []models.AdoptionListing
	ListingsErr       error
	CreateListingRet  models.AdoptionListing
	CreateListingErr  error
	LastListingIn     client.ListingInput
	UpdateListingRet  models.AdoptionListing
	UpdateListingErr  error
	LastListingUpdate client.ListingUpdate

	CreateRequestRet models.AdoptionRequest
	CreateRequestErr error
	LastRequestIn    client.RequestInput
	RequestRet       models.AdoptionRequest
	RequestErr       error
	IncomingRet      []models.AdoptionRequest
	IncomingErr      error
	SentRet          []models.AdoptionRequest
	SentErr          error
	AcceptedRet      []models.AcceptedContact
	AcceptedErr      error
	DecideErr        error
	LastDecision     models.RequestStatus

	ActivityRet     []models.ActivityLogEntry
	ActivityErr     error
	CreateActRet    models.ActivityLogEntry
	CreateActErr    error
	LastActivityIn  client.ActivityInput
	NotificationsFn func() ([]models.Notification, error)
	UnreadRet       int
	UnreadErr       error
	MarkReadErr     error
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Health(ctx context.Context) error {
	f.record("Health")
	return f.HealthErr
}

func (f *fakeClient) Register(ctx context.Context, in client.RegisterInput) error {
	f.record("Register")
	f.LastRegister = in
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	f.record("Login")
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) GetProfile(ctx context.Context) (models.UserProfile, error) {
	f.record("GetProfile")
	return f.Profile, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, in client.ProfileUpdate) (models.UserProfile, error) {
	f.record("UpdateProfile")
	f.LastProfileIn = in
	return f.Profile, f.ProfileErr
}

func (f *fakeClient) ListPins(ctx context.Context) ([]models.Pin, error) {
	f.record("ListPins")
	return f.PinsRet, f.PinsErr
}

func (f *fakeClient) CreatePin(ctx context.Context, in client.PinInput) (models.Pin, error) {
	f.record("CreatePin")
	f.LastPinIn = in
	return f.CreatePinRet, f.CreatePinErr
}

func (f *fakeClient) UpdatePinCondition(ctx context.Context, locationID int64, in client.ConditionUpdate) (models.Pin, error) {
	f.record("UpdatePinCondition")
	f.LastConditionL = locationID
	f.LastCondition = in
	return f.ConditionRet, f.ConditionErr
}

func (f *fakeClient) DeletePin(ctx context.Context, locationID int64) error {
	f.record("DeletePin")
	return nil
}

func (f *fakeClient) CreateCat(ctx context.Context, in models.Cat) (models.Cat, error) {
	f.record("CreateCat")
	f.LastCat = in
	return f.CreateCatRet, f.CreateCatErr
}

func (f *fakeClient) UpdateCat(ctx context.Context, catID int64, in client.CatUpdate) (models.Cat, error) {
	f.record("UpdateCat")
	f.LastCatID = catID
	return f.UpdateCatRet, f.UpdateCatErr
}

func (f *fakeClient) ListListings(ctx context.Context) ([]models.AdoptionListing, error) {
	f.record("ListListings")
	return f.ListingsRet, f.ListingsErr
}

func (f *fakeClient) CreateListing(ctx context.Context, in client.ListingInput) (models.AdoptionListing, error) {
	f.record("CreateListing")
	f.LastListingIn = in
	return f.CreateListingRet, f.CreateListingErr
}

func (f *fakeClient) UpdateListing(ctx context.Context, listingID int64, in client.ListingUpdate) (models.AdoptionListing, error) {
	f.record("UpdateListing")
	f.LastListingUpdate = in
	return f.UpdateListingRet, f.UpdateListingErr
}

func (f *fakeClient) CreateRequest(ctx context.Context, in client.RequestInput) (models.AdoptionRequest, error) {
	f.record("CreateRequest")
	f.LastRequestIn = in
	return f.CreateRequestRet, f.CreateRequestErr
}

func (f *fakeClient) GetRequest(ctx context.Context, requestID int64) (models.AdoptionRequest, error) {
	f.record("GetRequest")
	return f.RequestRet, f.RequestErr
}

func (f *fakeClient) ListIncomingAll(ctx context.Context) ([]models.AdoptionRequest, error) {
	f.record("ListIncomingAll")
	return f.IncomingRet, f.IncomingErr
}

func (f *fakeClient) ListSent(ctx context.Context) ([]models.AdoptionRequest, error) {
	f.record("ListSent")
	return f.SentRet, f.SentErr
}

func (f *fakeClient) ListSentAccepted(ctx context.Context) ([]models.AcceptedContact, error) {
	f.record("ListSentAccepted")
	return f.AcceptedRet, f.AcceptedErr
}

func (f *fakeClient) DecideRequest(ctx context.Context, requestID int64, status models.RequestStatus) error {
	f.record("DecideRequest")
	f.LastDecision = status
	return f.DecideErr
}

func (f *fakeClient) ListCatActivity(ctx context.Context, catID int64) ([]models.ActivityLogEntry, error) {
	f.record("ListCatActivity")
	return f.ActivityRet, f.ActivityErr
}

func (f *fakeClient) CreateActivity(ctx context.Context, in client.ActivityInput) (models.ActivityLogEntry, error) {
	f.record("CreateActivity")
	f.LastActivityIn = in
	return f.CreateActRet, f.CreateActErr
}

func (f *fakeClient) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	f.record("ListNotifications")
	if f.NotificationsFn == nil {
		return nil, nil
	}
	return f.NotificationsFn()
}

func (f *fakeClient) UnreadCount(ctx context.Context) (int, error) {
	f.record("UnreadCount")
	return f.UnreadRet, f.UnreadErr
}

func (f *fakeClient) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	f.record("MarkNotificationRead")
	return f.MarkReadErr
}

func newTokenStore(t *testing.T) *TokenStore {
	t.Helper()
	repos, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return NewTokenStore(repos.Metadata)
}

func intPtr(v int) *int { return &v }
