package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/safepaws/internal/client/forms"
	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/selection"
	"github.com/dmitrijs2005/safepaws/internal/client/services"
	"github.com/dmitrijs2005/safepaws/internal/client/workflow"
)

type fakeAuth struct {
	mu       sync.Mutex
	token    bool
	username string
	profile  models.UserProfile

	loginErr   error
	lastLogin  forms.LoginForm
	registerFn func(forms.SignupForm) error
	profileErr error
	updated    forms.ProfileForm
	logouts    int
}

func (f *fakeAuth) Register(ctx context.Context, form forms.SignupForm) error {
	if f.registerFn != nil {
		return f.registerFn(form)
	}
	return forms.Validate(form)
}

func (f *fakeAuth) Login(ctx context.Context, form forms.LoginForm) (models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLogin = form
	if f.loginErr != nil {
		return models.UserProfile{}, f.loginErr
	}
	f.token = true
	f.username = form.Username
	return f.profile, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = false
	f.username = ""
	f.logouts++
	return nil
}

func (f *fakeAuth) HasToken(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeAuth) Username(ctx context.Context) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.username
}

func (f *fakeAuth) CurrentUser(ctx context.Context) (models.UserProfile, error) {
	return f.profile, f.profileErr
}

func (f *fakeAuth) UpdateProfile(ctx context.Context, form forms.ProfileForm) (models.UserProfile, error) {
	f.updated = form
	p := f.profile
	if form.Email != "" {
		p.Email = form.Email
	}
	return p, nil
}

func (f *fakeAuth) Ping(ctx context.Context) error { return nil }

type fakeMaps struct {
	mu       sync.Mutex
	pins     []models.Pin
	refresh  atomic.Int32
	activity []models.ActivityLogEntry

	created      forms.NewPinForm
	createErr    error
	condForm     forms.ConditionForm
	condErr      error
	contributed  string
	contributeTo int64
}

func (f *fakeMaps) Pins() []models.Pin {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Pin(nil), f.pins...)
}

func (f *fakeMaps) RefreshPins(ctx context.Context) error {
	f.refresh.Add(1)
	return nil
}

func (f *fakeMaps) Activity(ctx context.Context, catID int64) []models.ActivityLogEntry {
	return f.activity
}

func (f *fakeMaps) CreateCatWithPin(ctx context.Context, form forms.NewPinForm) (models.Pin, error) {
	f.created = form
	if f.createErr != nil {
		return models.Pin{}, f.createErr
	}
	if err := forms.Validate(form); err != nil {
		return models.Pin{}, err
	}
	p := models.Pin{LocationID: 99, CatID: 98, Name: form.Name, Latitude: form.Latitude, Longitude: form.Longitude, Condition: form.Condition}
	f.mu.Lock()
	f.pins = append(f.pins, p)
	f.mu.Unlock()
	return p, nil
}

func (f *fakeMaps) UpdateCondition(ctx context.Context, actorID int64, pin models.Pin, form forms.ConditionForm) (models.Pin, error) {
	f.condForm = form
	if f.condErr != nil {
		return models.Pin{}, f.condErr
	}
	if err := workflow.ValidateConditionChange(actorID, pin, form.Target, form.Description); err != nil {
		return models.Pin{}, err
	}
	pin.Condition = form.Target
	return pin, nil
}

func (f *fakeMaps) Contribute(ctx context.Context, pin models.Pin, form forms.ContributionForm) (models.ActivityLogEntry, error) {
	f.contributed = form.Text
	f.contributeTo = pin.CatID
	return models.ActivityLogEntry{LogID: 1}, nil
}

type fakeAdoption struct {
	listings []models.AdoptionListing
	sent     []models.AdoptionRequest

	applied   forms.AdoptionRequestForm
	created   forms.ListingForm
	updated   forms.ListingForm
	updateErr error
}

func (f *fakeAdoption) Refresh(ctx context.Context) {}

func (f *fakeAdoption) Listings() []models.AdoptionListing { return f.listings }

func (f *fakeAdoption) SentRequests() []models.AdoptionRequest { return f.sent }

func (f *fakeAdoption) Browse(actorID int64, filter workflow.ListingFilter) []models.AdoptionListing {
	return workflow.BrowsableListings(actorID, f.listings, filter)
}

func (f *fakeAdoption) Listing(id int64) (models.AdoptionListing, bool) {
	for _, l := range f.listings {
		if l.ListingID == id {
			return l, true
		}
	}
	return models.AdoptionListing{}, false
}

func (f *fakeAdoption) Decision(actorID int64, l models.AdoptionListing) workflow.ListingDecision {
	return workflow.ListingAction(actorID, l, f.sent)
}

func (f *fakeAdoption) Apply(ctx context.Context, actorID int64, l models.AdoptionListing, form forms.AdoptionRequestForm) (models.AdoptionRequest, error) {
	form.ListingID = l.ListingID
	f.applied = form
	if err := forms.Validate(form); err != nil {
		return models.AdoptionRequest{}, err
	}
	req := models.AdoptionRequest{RequestID: 70, ListingID: l.ListingID, SenderID: actorID, Status: models.StatusPending}
	f.sent = append(f.sent, req)
	return req, nil
}

func (f *fakeAdoption) CreateListing(ctx context.Context, form forms.ListingForm) (models.AdoptionListing, error) {
	f.created = form
	if err := forms.Validate(form); err != nil {
		return models.AdoptionListing{}, err
	}
	l := models.AdoptionListing{ListingID: 80, Name: form.Name, IsActive: true, Vaccinated: form.Vaccinated}
	f.listings = append(f.listings, l)
	return l, nil
}

func (f *fakeAdoption) UpdateListing(ctx context.Context, actorID int64, l models.AdoptionListing, form forms.ListingForm) (models.AdoptionListing, error) {
	f.updated = form
	if f.updateErr != nil {
		return models.AdoptionListing{}, f.updateErr
	}
	l.Name, l.Notes, l.IsActive = form.Name, form.Notes, form.IsActive
	return l, nil
}

type fakeNotes struct {
	mu        sync.Mutex
	overview  services.Overview
	overviews atomic.Int32
	unread    int
	marked    []int64
	markErr   error
	review    services.Review
	decided   models.RequestStatus
	decideErr error
}

func (f *fakeNotes) Overview(ctx context.Context) services.Overview {
	f.overviews.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.overview
}

func (f *fakeNotes) Notifications() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.overview.Notifications
}

func (f *fakeNotes) Unread() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unread
}

func (f *fakeNotes) RefreshUnread(ctx context.Context) error { return nil }

func (f *fakeNotes) MarkRead(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marked = append(f.marked, id)
	return f.markErr
}

func (f *fakeNotes) Review(ctx context.Context, requestID int64) (services.Review, error) {
	return f.review, nil
}

func (f *fakeNotes) Decide(ctx context.Context, actorID, requestID int64, status models.RequestStatus) error {
	f.decided = status
	return f.decideErr
}

type fakeUploader struct {
	url  string
	path string
}

func (f *fakeUploader) Upload(ctx context.Context, path string) (string, error) {
	f.path = path
	return f.url, nil
}

// harness bundles an App with its fakes and captured output.
type harness struct {
	app      *App
	auth     *fakeAuth
	maps     *fakeMaps
	adoption *fakeAdoption
	notes    *fakeNotes
	images   *fakeUploader
	store    *selection.Store
	out      *bytes.Buffer
}

// newHarness builds an App reading the given answer lines. Polling is off.
func newHarness(t *testing.T, signedIn bool, lines ...string) *harness {
	t.Helper()

	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	h := &harness{
		auth:     &fakeAuth{profile: models.UserProfile{UserID: 7, Username: "dana", Email: "d@example.com"}},
		maps:     &fakeMaps{},
		adoption: &fakeAdoption{},
		notes:    &fakeNotes{},
		images:   &fakeUploader{url: "https://cdn.example.com/cats/x.png"},
		store:    selection.NewStore(),
		out:      &bytes.Buffer{},
	}
	if signedIn {
		h.auth.token = true
		h.auth.username = "dana"
	}

	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}
	h.app = NewApp(Deps{
		Auth:          h.auth,
		Maps:          h.maps,
		Adoption:      h.adoption,
		Notifications: h.notes,
		Store:         h.store,
		Images:        h.images,
		In:            strings.NewReader(input),
		Out:           h.out,
	})
	if signedIn {
		p := h.auth.profile
		h.app.profile = &p
	}
	t.Cleanup(h.app.stopPolling)
	return h
}
