package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/safepaws/internal/client/client"
	"github.com/dmitrijs2005/safepaws/internal/client/forms"
	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/poller"
	"github.com/dmitrijs2005/safepaws/internal/client/selection"
	"github.com/dmitrijs2005/safepaws/internal/client/services"
	"github.com/dmitrijs2005/safepaws/internal/client/view"
	"github.com/dmitrijs2005/safepaws/internal/client/workflow"
	"github.com/dmitrijs2005/safepaws/internal/logging"
)

// PhotoUploader stores a local image and returns its public URL.
type PhotoUploader interface {
	Upload(ctx context.Context, path string) (string, error)
}

// Deps are the collaborators of an App. Images may be nil when photo upload
// is not configured.
type Deps struct {
	Auth          services.AuthService
	Maps          services.MapService
	Adoption      services.AdoptionService
	Notifications services.NotificationService
	Store         *selection.Store
	Images        PhotoUploader
	Logger        logging.Logger

	PinPollInterval          time.Duration
	NotificationPollInterval time.Duration

	In  io.Reader
	Out io.Writer
}

type App struct {
	auth     services.AuthService
	maps     services.MapService
	adoption services.AdoptionService
	notes    services.NotificationService
	images   PhotoUploader
	store    *selection.Store
	composer *view.Composer
	logger   logging.Logger

	reader *bufio.Reader
	out    io.Writer

	pollers map[view.Route]*poller.Poller

	mu          sync.Mutex
	profile     *models.UserProfile
	history     []view.Route
	filter      workflow.ListingFilter
	pinQuery    string
	noteFilter  noteFilter
	overview    services.Overview
	photoURL    string
	lastRefresh uint64
	active      *poller.Poller
}

func NewApp(d Deps) *App {
	if d.Logger == nil {
		d.Logger = logging.Nop()
	}
	if d.Store == nil {
		d.Store = selection.NewStore()
	}

	a := &App{
		auth:     d.Auth,
		maps:     d.Maps,
		adoption: d.Adoption,
		notes:    d.Notifications,
		images:   d.Images,
		store:    d.Store,
		composer: view.NewComposer(d.Store),
		logger:   d.Logger,
		reader:   bufio.NewReader(d.In),
		out:      d.Out,
		pollers:  make(map[view.Route]*poller.Poller),
	}

	if d.PinPollInterval > 0 {
		a.pollers[view.RouteMap] = poller.New("pins", d.PinPollInterval, a.maps.RefreshPins, d.Logger)
	}
	if d.NotificationPollInterval > 0 {
		a.pollers[view.RouteNotifications] = poller.New("notifications", d.NotificationPollInterval, a.pollOverview, d.Logger)
	}

	a.store.Subscribe(a.onStateChange)
	return a
}

// onStateChange pokes the active page's poller whenever the refresh counter
// moves, so mutations show up without waiting for the next tick.
func (a *App) onStateChange(st selection.State) {
	a.mu.Lock()
	changed := st.RefreshCount != a.lastRefresh
	a.lastRefresh = st.RefreshCount
	p := a.active
	a.mu.Unlock()

	if changed && p != nil {
		p.Trigger()
	}
}

func (a *App) pollOverview(ctx context.Context) error {
	ov := a.notes.Overview(ctx)
	a.mu.Lock()
	a.overview = ov
	a.mu.Unlock()
	return nil
}

// Run restores the session, shows the first page and blocks in the REPL
// until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.stopPolling()

	fmt.Fprintln(a.out, "Welcome to SafePaws (type 'help' for commands)")

	if a.auth.HasToken(ctx) {
		if err := a.loadProfile(ctx); err != nil {
			a.report(ctx, err)
		}
	}
	a.navigate(ctx, view.RouteHome)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) loadProfile(ctx context.Context) error {
	p, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.profile = &p
	a.mu.Unlock()
	if err := a.notes.RefreshUnread(ctx); err != nil {
		a.logger.Warn(ctx, "unread count unavailable", "error", err)
	}
	return nil
}

func (a *App) actorID() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.profile == nil {
		return 0
	}
	return a.profile.UserID
}

func (a *App) isLoggedIn() bool {
	return a.auth.HasToken(context.Background())
}

func (a *App) getStatus() string {
	ctx := context.Background()
	route := a.composer.Route()
	if !a.auth.HasToken(ctx) {
		return fmt.Sprintf("(%s)", route)
	}
	s := fmt.Sprintf("(%s %s", orDash(a.auth.Username(ctx)), route)
	if n := a.notes.Unread(); n > 0 {
		s += fmt.Sprintf(" | %d unread", n)
	}
	return s + ")"
}

// navigate applies the auth guard, switches the composer and the page
// poller, and renders the new page.
func (a *App) navigate(ctx context.Context, next view.Route) {
	a.goTo(ctx, next, true)
}

// goTo is navigate with control over the back history.
func (a *App) goTo(ctx context.Context, next view.Route, record bool) {
	a.enter(ctx, next, record)
	a.renderPage(ctx)
}

// enter switches page without rendering it.
func (a *App) enter(ctx context.Context, next view.Route, record bool) {
	target := view.Guard(next, a.auth.HasToken(ctx))
	prev := a.composer.Route()

	if record && prev != target {
		a.mu.Lock()
		a.history = append(a.history, prev)
		a.mu.Unlock()
	}
	a.composer.Navigate(target)
	a.switchPoller(ctx, target)
}

func (a *App) switchPoller(ctx context.Context, route view.Route) {
	next := a.pollers[route]

	a.mu.Lock()
	prev := a.active
	a.active = next
	a.mu.Unlock()

	if prev == next {
		// A loop whose context ended is restarted when its page is reopened.
		if next != nil && !next.Running() {
			next.Stop()
			next.Start(ctx)
			a.logger.Debug(ctx, "polling restarted", "poller", next.Name())
		}
		return
	}
	if prev != nil {
		prev.Stop()
		a.logger.Debug(ctx, "polling stopped", "poller", prev.Name())
	}
	if next != nil {
		next.Start(ctx)
		a.logger.Debug(ctx, "polling started", "poller", next.Name())
	}
}

func (a *App) stopPolling() {
	a.mu.Lock()
	p := a.active
	a.active = nil
	a.mu.Unlock()
	if p != nil {
		p.Stop()
	}
}

// renderPage loads the active page's data and prints it next to the
// composed panel.
func (a *App) renderPage(ctx context.Context) {
	route := a.composer.Route()
	body := a.pageBody(ctx, route)
	panel := a.panelBody(ctx, a.composer.Compose())
	fmt.Fprintln(a.out, twoPane(body, panel))
}

func (a *App) pageBody(ctx context.Context, route view.Route) string {
	switch route {
	case view.RouteMap:
		if err := a.maps.RefreshPins(ctx); err != nil {
			a.logger.Error(ctx, "failed to load pins", "error", err)
		}
		a.mu.Lock()
		q := a.pinQuery
		a.mu.Unlock()
		return renderPins(workflow.FilterPins(a.maps.Pins(), q), q)

	case view.RouteAdoption:
		a.adoption.Refresh(ctx)
		a.mu.Lock()
		f := a.filter
		a.mu.Unlock()
		return renderListings(a.adoption.Browse(a.actorID(), f), f)

	case view.RouteNotifications:
		_ = a.pollOverview(ctx)
		a.mu.Lock()
		ov, f := a.overview, a.noteFilter
		a.mu.Unlock()
		return renderNotifications(ov, f.unreadOnly)

	case view.RouteSettings:
		a.mu.Lock()
		p := a.profile
		a.mu.Unlock()
		if p == nil {
			return renderProfile(models.UserProfile{})
		}
		return renderProfile(*p)

	case view.RouteLogin, view.RouteSignup:
		return renderSignedOut(route.String())
	}
	return renderHome(a.auth.Username(ctx))
}

func (a *App) panelBody(ctx context.Context, p view.Panel) string {
	switch p.Kind {
	case view.PanelPinDetail:
		return renderPinDetail(*p.Pin, a.actorID(), a.maps.Activity(ctx, p.Pin.CatID))
	case view.PanelNewPinForm:
		return renderNewPinForm(*p.Location)
	case view.PanelListingDetail:
		return renderListingDetail(*p.Listing, a.adoption.Decision(a.actorID(), *p.Listing))
	case view.PanelApplyForm:
		return renderApplyForm(*p.Listing)
	case view.PanelListingForm:
		return renderListingForm(p.Listing)
	case view.PanelNotificationOverview:
		a.mu.Lock()
		ov, f := a.overview, a.noteFilter
		a.mu.Unlock()
		return renderOverview(ov, f.status)
	case view.PanelRequestReview:
		r, err := a.notes.Review(ctx, p.ReviewRequestID)
		if err != nil {
			a.logger.Error(ctx, "failed to load request", "request_id", p.ReviewRequestID, "error", err)
			return section("Request", errStyle.Render("Could not load this request."))
		}
		return renderReview(r, a.actorID())
	case view.PanelEmpty:
		return dimStyle.Render("Nothing selected.")
	}
	return ""
}

// report prints err for the user. An expired session drops the token and
// sends the user to login.
func (a *App) report(ctx context.Context, err error) {
	if errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrNoToken) {
		fmt.Fprintln(a.out, errStyle.Render("Your session has ended. Please log in again."))
		a.dropSession(ctx)
		a.navigate(ctx, view.RouteLogin)
		return
	}
	a.printErr(err)
}

// printErr lists field errors one per line and prints anything else as a
// blocking message.
func (a *App) printErr(err error) {
	var (
		fe     forms.FieldErrors
		apiErr *client.APIError
	)
	switch {
	case errors.As(err, &fe):
		fmt.Fprintln(a.out, errStyle.Render("Please fix the following:"))
		for _, f := range fe.Fields() {
			fmt.Fprintf(a.out, "  %s: %s\n", f, fe[f])
		}
	case client.IsConnectionError(err):
		fmt.Fprintln(a.out, errStyle.Render(client.ErrUnavailable.Error()))
	case errors.As(err, &apiErr):
		fmt.Fprintln(a.out, errStyle.Render("Error: "+apiErr.Detail))
	default:
		fmt.Fprintln(a.out, errStyle.Render("Error: "+err.Error()))
	}
}

func (a *App) dropSession(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		a.logger.Error(ctx, "failed to clear session", "error", err)
	}
	a.mu.Lock()
	a.profile = nil
	a.photoURL = ""
	a.mu.Unlock()
}

func (a *App) success(msg string) {
	fmt.Fprintln(a.out, okStyle.Render(msg))
}

func (a *App) say(msg string) {
	fmt.Fprintln(a.out, msg)
}

// takePhoto returns and forgets the last uploaded photo URL.
func (a *App) takePhoto() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	u := a.photoURL
	a.photoURL = ""
	return u
}
