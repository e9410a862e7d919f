package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/selection"
)

func newComposer(t *testing.T) (*Composer, *selection.Store) {
	t.Helper()
	s := selection.NewStore()
	return NewComposer(s), s
}

func TestCompose_OtherRoutesSuppressPanel(t *testing.T) {
	c, s := newComposer(t)
	s.SelectPin(&models.Pin{LocationID: 1})

	for _, r := range []Route{RouteHome, RouteSettings, RouteLogin, RouteSignup} {
		c.Navigate(r)
		assert.Equal(t, PanelNone, c.Compose().Kind, r.String())
	}
}

func TestCompose_Map(t *testing.T) {
	c, s := newComposer(t)
	c.Navigate(RouteMap)

	assert.Equal(t, PanelEmpty, c.Compose().Kind)

	s.SelectPin(&models.Pin{LocationID: 4})
	p := c.Compose()
	assert.Equal(t, PanelPinDetail, p.Kind)
	require.NotNil(t, p.Pin)
	assert.Equal(t, int64(4), p.Pin.LocationID)

	s.SetPendingLocation(&models.Coordinate{Latitude: 24, Longitude: 46})
	p = c.Compose()
	assert.Equal(t, PanelNewPinForm, p.Kind)
	require.NotNil(t, p.Location)
	assert.Nil(t, p.Pin)
}

func TestCompose_Adoption(t *testing.T) {
	c, s := newComposer(t)
	c.Navigate(RouteAdoption)

	assert.Equal(t, PanelEmpty, c.Compose().Kind)
	assert.False(t, c.OpenApplyForm(), "nothing selected")

	s.ShowListingForm(true)
	p := c.Compose()
	assert.Equal(t, PanelListingForm, p.Kind)
	assert.Nil(t, p.Listing, "create form")
	s.ShowListingForm(false)

	s.SelectListing(&models.AdoptionListing{ListingID: 3})
	assert.Equal(t, PanelListingDetail, c.Compose().Kind)

	require.True(t, c.OpenApplyForm())
	assert.Equal(t, PanelApplyForm, c.Compose().Kind)

	s.ShowListingForm(true)
	assert.Equal(t, PanelListingForm, c.Compose().Kind, "form flag wins")
	s.ShowListingForm(false)

	s.SelectListing(&models.AdoptionListing{ListingID: 8})
	assert.Equal(t, PanelListingDetail, c.Compose().Kind, "apply form dropped on listing change")

	c.OpenApplyForm()
	c.CloseApplyForm()
	assert.Equal(t, PanelListingDetail, c.Compose().Kind)
}

func TestCompose_Notifications(t *testing.T) {
	c, s := newComposer(t)
	c.Navigate(RouteNotifications)

	assert.Equal(t, PanelNotificationOverview, c.Compose().Kind)

	id := int64(42)
	s.ReviewRequest(&id)
	p := c.Compose()
	assert.Equal(t, PanelRequestReview, p.Kind)
	assert.Equal(t, int64(42), p.ReviewRequestID)
}

func TestNavigate_LeavingNotificationsClearsReview(t *testing.T) {
	c, s := newComposer(t)
	c.Navigate(RouteNotifications)
	id := int64(7)
	s.ReviewRequest(&id)

	c.Navigate(RouteNotifications)
	assert.NotNil(t, s.Snapshot().ReviewRequestID, "same route keeps review")

	c.Navigate(RouteMap)
	assert.Nil(t, s.Snapshot().ReviewRequestID)
	assert.Equal(t, RouteMap, c.Route())
}

func TestNavigate_LeavingAdoptionClearsListing(t *testing.T) {
	for _, next := range []Route{RouteHome, RouteMap, RouteNotifications, RouteSettings, RouteLogin} {
		t.Run(next.String(), func(t *testing.T) {
			c, s := newComposer(t)
			c.Navigate(RouteAdoption)
			s.SelectListing(&models.AdoptionListing{ListingID: 1})
			s.ShowListingForm(true)
			c.OpenApplyForm()

			c.Navigate(next)

			st := s.Snapshot()
			assert.Nil(t, st.Listing)
			assert.False(t, st.ShowListingForm)

			c.Navigate(RouteAdoption)
			assert.Equal(t, PanelEmpty, c.Compose().Kind)
		})
	}
}

func TestNavigate_MapSelectionSurvivesRouteChange(t *testing.T) {
	c, s := newComposer(t)
	c.Navigate(RouteMap)
	s.SelectPin(&models.Pin{LocationID: 2})

	c.Navigate(RouteAdoption)
	c.Navigate(RouteMap)

	assert.Equal(t, PanelPinDetail, c.Compose().Kind)
}

func TestPanelKind_String(t *testing.T) {
	assert.Equal(t, "pin detail", PanelPinDetail.String())
	assert.Equal(t, "unknown", PanelKind(99).String())
}
