package workflow

import (
	"strings"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
)

// FilterPins returns the pins whose cat name contains query, ignoring case
// and surrounding space. Unnamed pins never match a non-empty query. An empty
// query returns every pin.
func FilterPins(pins []models.Pin, query string) []models.Pin {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return pins
	}
	out := make([]models.Pin, 0, len(pins))
	for _, p := range pins {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}

// VisibleNotifications drops read notifications when unreadOnly is set.
func VisibleNotifications(ns []models.Notification, unreadOnly bool) []models.Notification {
	if !unreadOnly {
		return ns
	}
	out := make([]models.Notification, 0, len(ns))
	for _, n := range ns {
		if !n.IsRead {
			out = append(out, n)
		}
	}
	return out
}

// FilterRequests keeps the requests in status. The empty status keeps all.
func FilterRequests(reqs []models.AdoptionRequest, status models.RequestStatus) []models.AdoptionRequest {
	if status == "" {
		return reqs
	}
	out := make([]models.AdoptionRequest, 0, len(reqs))
	for _, r := range reqs {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// RequestCounts tallies requests per status.
type RequestCounts struct {
	Total    int
	Pending  int
	Accepted int
	Rejected int
}

func CountRequests(reqs []models.AdoptionRequest) RequestCounts {
	c := RequestCounts{Total: len(reqs)}
	for _, r := range reqs {
		switch r.Status {
		case models.StatusPending:
			c.Pending++
		case models.StatusAccepted:
			c.Accepted++
		case models.StatusRejected:
			c.Rejected++
		}
	}
	return c
}
