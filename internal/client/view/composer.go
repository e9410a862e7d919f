package view

import (
	"sync"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/selection"
)

// PanelKind identifies what the secondary pane renders.
type PanelKind int

const (
	PanelNone PanelKind = iota
	PanelEmpty
	PanelRequestReview
	PanelNotificationOverview
	PanelListingForm
	PanelApplyForm
	PanelListingDetail
	PanelNewPinForm
	PanelPinDetail
)

func (k PanelKind) String() string {
	switch k {
	case PanelNone:
		return "none"
	case PanelEmpty:
		return "empty"
	case PanelRequestReview:
		return "request review"
	case PanelNotificationOverview:
		return "notification overview"
	case PanelListingForm:
		return "listing form"
	case PanelApplyForm:
		return "apply form"
	case PanelListingDetail:
		return "listing detail"
	case PanelNewPinForm:
		return "new pin form"
	case PanelPinDetail:
		return "pin detail"
	}
	return "unknown"
}

// Panel is the composed secondary pane. Only the fields relevant to Kind
// are set. A PanelListingForm with a nil Listing is a create form.
type Panel struct {
	Kind            PanelKind
	Pin             *models.Pin
	Listing         *models.AdoptionListing
	ReviewRequestID int64
	Location        *models.Coordinate
}

// Composer tracks the active route and turns the selection store into a
// Panel. It owns the apply-form flag, which is dropped whenever the selected
// listing changes.
type Composer struct {
	store *selection.Store

	mu            sync.Mutex
	route         Route
	applyForm     bool
	lastListingID int64
}

// NewComposer starts on home. The composer subscribes to store for the
// lifetime of the session.
func NewComposer(store *selection.Store) *Composer {
	c := &Composer{store: store, route: RouteHome}
	if l := store.Snapshot().Listing; l != nil {
		c.lastListingID = l.ListingID
	}
	store.Subscribe(c.onStateChange)
	return c
}

func (c *Composer) onStateChange(st selection.State) {
	var id int64
	if st.Listing != nil {
		id = st.Listing.ListingID
	}

	c.mu.Lock()
	if id != c.lastListingID {
		c.applyForm = false
		c.lastListingID = id
	}
	c.mu.Unlock()
}

// Route returns the active route.
func (c *Composer) Route() Route {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.route
}

// Navigate switches to next and clears selections owned by the route being
// left: the review request for notifications; the listing, listing form and
// apply form for adoption. Navigating to the active route changes nothing.
func (c *Composer) Navigate(next Route) {
	c.mu.Lock()
	prev := c.route
	c.route = next
	c.mu.Unlock()

	if prev == next {
		return
	}

	switch prev {
	case RouteNotifications:
		c.store.ReviewRequest(nil)
	case RouteAdoption:
		c.store.SelectListing(nil)
		c.store.ShowListingForm(false)
		c.CloseApplyForm()
	}
}

// OpenApplyForm shows the application form for the selected listing. It is
// a no-op when no listing is selected.
func (c *Composer) OpenApplyForm() bool {
	if c.store.Snapshot().Listing == nil {
		return false
	}
	c.mu.Lock()
	c.applyForm = true
	c.mu.Unlock()
	return true
}

// CloseApplyForm hides the application form. The listing stays selected.
func (c *Composer) CloseApplyForm() {
	c.mu.Lock()
	c.applyForm = false
	c.mu.Unlock()
}

// Compose returns the panel for the active route and current selection.
func (c *Composer) Compose() Panel {
	c.mu.Lock()
	route, applyForm := c.route, c.applyForm
	c.mu.Unlock()

	return compose(route, c.store.Snapshot(), applyForm)
}

func compose(route Route, st selection.State, applyForm bool) Panel {
	switch route {
	case RouteNotifications:
		if st.ReviewRequestID != nil {
			return Panel{Kind: PanelRequestReview, ReviewRequestID: *st.ReviewRequestID}
		}
		return Panel{Kind: PanelNotificationOverview}

	case RouteAdoption:
		if st.ShowListingForm {
			return Panel{Kind: PanelListingForm, Listing: st.Listing}
		}
		if st.Listing != nil {
			if applyForm {
				return Panel{Kind: PanelApplyForm, Listing: st.Listing}
			}
			return Panel{Kind: PanelListingDetail, Listing: st.Listing}
		}
		return Panel{Kind: PanelEmpty}

	case RouteMap:
		if st.PendingLocation != nil {
			return Panel{Kind: PanelNewPinForm, Location: st.PendingLocation}
		}
		if st.Pin != nil {
			return Panel{Kind: PanelPinDetail, Pin: st.Pin}
		}
		return Panel{Kind: PanelEmpty}
	}

	return Panel{Kind: PanelNone}
}
