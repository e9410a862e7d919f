package workflow

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
)

// Action is what the listing detail panel offers its viewer.
type Action int

const (
	ActionApply Action = iota
	ActionEditListing
	ActionDisabled
)

func (a Action) String() string {
	switch a {
	case ActionApply:
		return "apply"
	case ActionEditListing:
		return "edit listing"
	case ActionDisabled:
		return "disabled"
	}
	return "unknown"
}

// Reasons for a disabled apply action.
const (
	ReasonPendingRequest = "pending request exists"
	ReasonInactive       = "listing is no longer active"
)

// ListingDecision is the outcome of ListingAction.
type ListingDecision struct {
	Action Action
	Reason string
}

// CanApply reports whether the decision allows submitting an application.
func (d ListingDecision) CanApply() bool {
	return d.Action == ActionApply
}

// ListingAction resolves the action for actorID viewing listing, given the
// requests the actor has already sent. The uploader edits, active or not.
// Anybody else is blocked on an inactive listing or while holding a pending
// request against it, and may apply otherwise.
func ListingAction(actorID int64, listing models.AdoptionListing, sent []models.AdoptionRequest) ListingDecision {
	if actorID != 0 && listing.UploaderID == actorID {
		return ListingDecision{Action: ActionEditListing}
	}
	if !listing.IsActive {
		return ListingDecision{Action: ActionDisabled, Reason: ReasonInactive}
	}
	if HasPendingRequest(actorID, listing.ListingID, sent) {
		return ListingDecision{Action: ActionDisabled, Reason: ReasonPendingRequest}
	}
	return ListingDecision{Action: ActionApply}
}

// HasPendingRequest reports whether actorID has a pending request against
// listingID among reqs.
func HasPendingRequest(actorID, listingID int64, reqs []models.AdoptionRequest) bool {
	for _, r := range reqs {
		if r.SenderID == actorID && r.ListingID == listingID && r.Status == models.StatusPending {
			return true
		}
	}
	return false
}

// SortKey orders the browse list.
type SortKey string

const (
	SortByName SortKey = "name"
	SortByAge  SortKey = "age"
)

// ListingFilter narrows the browse list. Zero value shows everything sorted
// by name.
type ListingFilter struct {
	Query      string
	Vaccinated bool
	Sterilized bool
	SortBy     SortKey
}

// BrowsableListings returns the listings actorID may browse: active ones not
// uploaded by the actor, matching f. The input slice is not modified.
func BrowsableListings(actorID int64, listings []models.AdoptionListing, f ListingFilter) []models.AdoptionListing {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.AdoptionListing, 0, len(listings))
	for _, l := range listings {
		if !l.IsActive {
			continue
		}
		if actorID != 0 && l.UploaderID == actorID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(l.Name), query) {
			continue
		}
		if f.Vaccinated && !l.Vaccinated {
			continue
		}
		if f.Sterilized && !l.Sterilized {
			continue
		}
		out = append(out, l)
	}

	switch f.SortBy {
	case SortByAge:
		sort.SliceStable(out, func(i, j int) bool { return ageOf(out[i]) < ageOf(out[j]) })
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}

func ageOf(l models.AdoptionListing) int {
	if l.Age == nil {
		return 0
	}
	return *l.Age
}

// CanDecide reports whether actorID may accept or reject req.
func CanDecide(actorID int64, req models.AdoptionRequest) bool {
	return actorID != 0 && req.ReceiverID == actorID && req.Status == models.StatusPending
}
