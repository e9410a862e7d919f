package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/services"
	"github.com/dmitrijs2005/safepaws/internal/client/workflow"
)

func TestRenderPins(t *testing.T) {
	assert.Contains(t, renderPins(nil, ""), "No cats on the map yet.")

	got := renderPins([]models.Pin{
		{LocationID: 4, CatID: 2, Name: "Mishmish", Condition: models.Urgent, Latitude: 31.5, Longitude: 34.8},
		{LocationID: 5, CatID: 3},
	}, "")
	assert.Contains(t, got, "Map (2 cats)")
	assert.Contains(t, got, "#4 Mishmish [Urgent]")
	assert.Contains(t, got, "#5 Cat #3")
	assert.NotContains(t, got, "search:")
}

func TestRenderPins_Search(t *testing.T) {
	got := renderPins([]models.Pin{{LocationID: 4, Name: "Mishmish"}}, " mish ")
	assert.Contains(t, got, `search: "mish"`)
	assert.Contains(t, got, "Map (1 cats)")

	none := renderPins(nil, "luna")
	assert.Contains(t, none, `No cats match "luna".`)
	assert.NotContains(t, none, "No cats on the map yet.")
}

func TestRenderPinDetail(t *testing.T) {
	pin := models.Pin{LocationID: 4, CatID: 2, Name: "Mishmish", AddingUserID: 7, Condition: models.Normal}
	timeline := []models.ActivityLogEntry{
		{Description: "fed her", Username: "noa", Type: models.ActivityContribution},
		{Description: "limping", Username: "dana", Type: models.ActivityUrgent},
	}

	t.Run("creator", func(t *testing.T) {
		got := renderPinDetail(pin, 7, timeline)
		assert.Contains(t, got, "Added by: -")
		assert.Contains(t, got, "noa: fed her")
		assert.Contains(t, got, "! ")
		assert.Contains(t, got, "Adopted")
		assert.Contains(t, got, "contribute: log a field update")
	})

	t.Run("other user", func(t *testing.T) {
		got := renderPinDetail(pin, 8, nil)
		assert.Contains(t, got, "no activity yet")
		assert.NotContains(t, got, "Adopted")
		assert.Contains(t, got, "condition: Normal, Urgent, At Vet, Unknown")
	})

	t.Run("closed", func(t *testing.T) {
		p := pin
		p.Condition = models.AtVet
		assert.Contains(t, renderPinDetail(p, 0, nil), "updates closed for this cat")
		assert.NotContains(t, renderPinDetail(p, 0, nil), "condition:")
	})
}

func TestRenderListings(t *testing.T) {
	two := 2
	got := renderListings([]models.AdoptionListing{{ListingID: 9, Name: "Tom", Age: &two}}, workflow.ListingFilter{Query: "to", Vaccinated: true})
	assert.Contains(t, got, `name~"to" vaccinated sort=name`)
	assert.Contains(t, got, "#9 Tom, age 2")

	got = renderListings(nil, workflow.ListingFilter{SortBy: workflow.SortByAge, Sterilized: true})
	assert.Contains(t, got, "sterilized sort=age")
	assert.Contains(t, got, "No cats match.")
}

func TestRenderListingDetail(t *testing.T) {
	l := models.AdoptionListing{ListingID: 9, Name: "Tom", Vaccinated: true, IsActive: true}

	assert.Contains(t, renderListingDetail(l, workflow.ListingDecision{Action: workflow.ActionApply}), "apply to send an adoption request")
	assert.Contains(t, renderListingDetail(l, workflow.ListingDecision{Action: workflow.ActionEditListing}), "editlisting")

	got := renderListingDetail(l, workflow.ListingDecision{Action: workflow.ActionDisabled, Reason: workflow.ReasonPendingRequest})
	assert.Contains(t, got, "Request disabled: pending request exists")
	assert.Contains(t, got, "Vaccinated: yes")
	assert.Contains(t, got, "Sterilized: no")
}

func TestRenderListingForm(t *testing.T) {
	assert.Contains(t, renderListingForm(nil), "New listing")
	assert.Contains(t, renderListingForm(&models.AdoptionListing{Name: "Tom"}), "Edit Tom")
}

func TestRenderNotifications(t *testing.T) {
	ov := services.Overview{
		Unread: 1,
		Notifications: []models.Notification{
			{NotificationID: 1, Message: "New request for Tom [REQUEST_ID:12]"},
			{NotificationID: 2, Message: "Welcome", IsRead: true},
		},
	}
	got := renderNotifications(ov, false)
	assert.Contains(t, got, "1 unread")
	assert.Contains(t, got, "New request for Tom (review 12)")
	assert.NotContains(t, got, "REQUEST_ID")
	assert.Contains(t, got, "* #1")
	assert.Contains(t, got, "  #2")

	assert.Contains(t, renderNotifications(services.Overview{}, false), "No notifications.")
}

func TestRenderNotifications_UnreadOnly(t *testing.T) {
	ov := services.Overview{
		Unread: 1,
		Notifications: []models.Notification{
			{NotificationID: 1, Message: "Pin updated"},
			{NotificationID: 2, Message: "Welcome", IsRead: true},
		},
	}
	got := renderNotifications(ov, true)
	assert.Contains(t, got, "read hidden")
	assert.Contains(t, got, "* #1")
	assert.NotContains(t, got, "#2")

	ov.Notifications = ov.Notifications[1:]
	got = renderNotifications(ov, true)
	assert.Contains(t, got, "No unread notifications.")
	assert.NotContains(t, got, "Welcome")
}

func TestRenderOverview(t *testing.T) {
	got := renderOverview(services.Overview{
		Listings: []models.AdoptionListing{{ListingID: 9, Name: "Tom"}},
		Incoming: []models.AdoptionRequest{{RequestID: 12, ListingID: 9, FullName: "Noa Levi", Status: models.StatusPending}},
		Accepted: []models.AcceptedContact{
			{ListingID: 3, CatName: "Luna", ReceiverName: "Dana", ReceiverEmail: "d@example.com"},
			{ListingID: 4, CatName: "Simba"},
			{ListingID: 5, CatName: "Milo", ReceiverName: "Avi", ReceiverPhone: "0512345678"},
			{ListingID: 6, CatName: "Nala", ReceiverName: "Roni", ReceiverEmail: "r@example.com", ReceiverPhone: "0521111111"},
		},
	}, "")
	assert.Contains(t, got, "#12 Noa Levi for Tom [Pending]")
	assert.Contains(t, got, "1 all, 1 pending, 0 accepted, 0 rejected")
	assert.Contains(t, got, "Luna: Dana (d@example.com)")
	assert.Contains(t, got, "Simba: - (no contact details)")
	assert.Contains(t, got, "Milo: Avi (0512345678)")
	assert.NotContains(t, got, "- 0512345678")
	assert.Contains(t, got, "Nala: Roni (r@example.com 0521111111)")

	empty := renderOverview(services.Overview{}, "")
	assert.Contains(t, empty, "0 all, 0 pending, 0 accepted, 0 rejected\nnone")
}

func TestRenderOverview_StatusFilter(t *testing.T) {
	ov := services.Overview{
		Incoming: []models.AdoptionRequest{
			{RequestID: 12, FullName: "Noa Levi", CatName: "Tom", Status: models.StatusPending},
			{RequestID: 13, FullName: "Avi Cohen", CatName: "Tom", Status: models.StatusAccepted},
			{RequestID: 14, FullName: "Roni Bar", CatName: "Luna", Status: models.StatusPending},
		},
	}

	got := renderOverview(ov, models.StatusPending)
	assert.Contains(t, got, "3 all, 2 pending, 1 accepted, 0 rejected")
	assert.Contains(t, got, "showing pending")
	assert.Contains(t, got, "#12 Noa Levi")
	assert.Contains(t, got, "#14 Roni Bar")
	assert.NotContains(t, got, "#13")

	got = renderOverview(ov, models.StatusRejected)
	assert.Contains(t, got, "No rejected adoption requests")
	assert.NotContains(t, got, "#12")
}

func TestRenderReview(t *testing.T) {
	r := services.Review{
		Request: models.AdoptionRequest{RequestID: 12, ReceiverID: 7, FullName: "Noa Levi", CatName: "Tommy", Status: models.StatusPending},
		Listing: &models.AdoptionListing{ListingID: 9, Name: "Tom"},
	}
	got := renderReview(r, 7)
	assert.Contains(t, got, "Request #12")
	assert.Contains(t, got, "Cat: Tom")
	assert.Contains(t, got, "accept | reject")

	assert.NotContains(t, renderReview(r, 8), "accept | reject")

	r.Request.Status = models.StatusAccepted
	assert.NotContains(t, renderReview(r, 7), "accept | reject")
}

func TestTwoPane(t *testing.T) {
	got := twoPane("left side", "right side")
	assert.Contains(t, got, "left side")
	assert.Contains(t, got, "right side")

	assert.NotContains(t, twoPane("only", ""), "right side")
}
