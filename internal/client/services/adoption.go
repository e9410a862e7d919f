package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/safepaws/internal/client/client"
	"github.com/dmitrijs2005/safepaws/internal/client/forms"
	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/workflow"
	"github.com/dmitrijs2005/safepaws/internal/logging"
)

// AdoptionService serves the adoption page.
type AdoptionService interface {
	Refresh(ctx context.Context)
	Listings() []models.AdoptionListing
	SentRequests() []models.AdoptionRequest
	Browse(actorID int64, filter workflow.ListingFilter) []models.AdoptionListing
	Listing(id int64) (models.AdoptionListing, bool)
	Decision(actorID int64, listing models.AdoptionListing) workflow.ListingDecision
	Apply(ctx context.Context, actorID int64, listing models.AdoptionListing, form forms.AdoptionRequestForm) (models.AdoptionRequest, error)
	CreateListing(ctx context.Context, form forms.ListingForm) (models.AdoptionListing, error)
	UpdateListing(ctx context.Context, actorID int64, listing models.AdoptionListing, form forms.ListingForm) (models.AdoptionListing, error)
}

type adoptionService struct {
	client client.Client
	logger logging.Logger

	mu       sync.RWMutex
	listings []models.AdoptionListing
	sent     []models.AdoptionRequest
}

func NewAdoptionService(c client.Client, logger logging.Logger) AdoptionService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &adoptionService{client: c, logger: logger}
}

// Refresh reloads listings and the actor's sent requests. Either list
// degrades to empty on failure. Sent requests need a session; without one
// the list is simply empty.
func (s *adoptionService) Refresh(ctx context.Context) {
	var (
		listings []models.AdoptionListing
		sent     []models.AdoptionRequest
		g        errgroup.Group
	)

	g.Go(func() error {
		var err error
		if listings, err = s.client.ListListings(ctx); err != nil {
			s.logger.Error(ctx, "failed to load listings", "error", err)
			listings = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if sent, err = s.client.ListSent(ctx); err != nil {
			s.logger.Error(ctx, "failed to load sent requests", "error", err)
			sent = nil
		}
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	s.listings = listings
	s.sent = sent
	s.mu.Unlock()
}

func (s *adoptionService) Listings() []models.AdoptionListing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AdoptionListing(nil), s.listings...)
}

func (s *adoptionService) SentRequests() []models.AdoptionRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AdoptionRequest(nil), s.sent...)
}

func (s *adoptionService) Browse(actorID int64, filter workflow.ListingFilter) []models.AdoptionListing {
	return workflow.BrowsableListings(actorID, s.Listings(), filter)
}

// Listing looks up a loaded listing by id.
func (s *adoptionService) Listing(id int64) (models.AdoptionListing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.listings {
		if l.ListingID == id {
			return l, true
		}
	}
	return models.AdoptionListing{}, false
}

func (s *adoptionService) Decision(actorID int64, listing models.AdoptionListing) workflow.ListingDecision {
	return workflow.ListingAction(actorID, listing, s.SentRequests())
}

func (s *adoptionService) Apply(ctx context.Context, actorID int64, listing models.AdoptionListing, form forms.AdoptionRequestForm) (models.AdoptionRequest, error) {
	if actorID == 0 {
		return models.AdoptionRequest{}, workflow.ErrNotAuthenticated
	}
	d := s.Decision(actorID, listing)
	switch {
	case d.Action == workflow.ActionEditListing:
		return models.AdoptionRequest{}, ErrOwnListing
	case d.Reason == workflow.ReasonInactive:
		return models.AdoptionRequest{}, ErrListingInactive
	case !d.CanApply():
		return models.AdoptionRequest{}, ErrPendingRequest
	}

	form.ListingID = listing.ListingID
	if err := forms.Validate(form); err != nil {
		return models.AdoptionRequest{}, err
	}

	req, err := s.client.CreateRequest(ctx, form.Input())
	if err != nil {
		return models.AdoptionRequest{}, fmt.Errorf("send request: %w", err)
	}
	if req.ListingID == 0 {
		req.ListingID = listing.ListingID
	}
	if req.SenderID == 0 {
		req.SenderID = actorID
	}
	if req.Status == "" {
		req.Status = models.StatusPending
	}

	s.mu.Lock()
	s.sent = append(s.sent, req)
	s.mu.Unlock()
	return req, nil
}

// CreateListing creates the cat first, then the listing that offers it.
func (s *adoptionService) CreateListing(ctx context.Context, form forms.ListingForm) (models.AdoptionListing, error) {
	if err := forms.Validate(form); err != nil {
		return models.AdoptionListing{}, err
	}

	cat, err := s.client.CreateCat(ctx, form.Cat())
	if err != nil {
		return models.AdoptionListing{}, fmt.Errorf("create cat: %w", err)
	}
	l, err := s.client.CreateListing(ctx, form.Input(cat.CatID))
	if err != nil {
		return models.AdoptionListing{}, fmt.Errorf("create listing: %w", err)
	}
	l = listingWithCat(l, cat)

	s.mu.Lock()
	s.listings = append(s.listings, l)
	s.mu.Unlock()
	return l, nil
}

func (s *adoptionService) UpdateListing(ctx context.Context, actorID int64, listing models.AdoptionListing, form forms.ListingForm) (models.AdoptionListing, error) {
	if actorID == 0 || listing.UploaderID != actorID {
		return models.AdoptionListing{}, ErrNotUploader
	}
	form.ListingID = listing.ListingID
	form.CatID = listing.CatID
	if err := forms.Validate(form); err != nil {
		return models.AdoptionListing{}, err
	}

	cat, err := s.client.UpdateCat(ctx, form.CatID, form.CatUpdate())
	if err != nil {
		return models.AdoptionListing{}, fmt.Errorf("update cat: %w", err)
	}
	l, err := s.client.UpdateListing(ctx, form.ListingID, form.Update())
	if err != nil {
		return models.AdoptionListing{}, fmt.Errorf("update listing: %w", err)
	}
	if l.ListingID == 0 {
		l = listing
		l.Vaccinated, l.Sterilized, l.Notes, l.IsActive = form.Vaccinated, form.Sterilized, form.Notes, form.IsActive
	}
	if cat.CatID == 0 {
		cat = form.Cat()
		cat.CatID = form.CatID
	}
	l = listingWithCat(l, cat)

	s.mu.Lock()
	for i := range s.listings {
		if s.listings[i].ListingID == l.ListingID {
			s.listings[i] = l
		}
	}
	s.mu.Unlock()
	return l, nil
}

func listingWithCat(l models.AdoptionListing, c models.Cat) models.AdoptionListing {
	if l.CatID == 0 {
		l.CatID = c.CatID
	}
	if c.Name != "" {
		l.Name = c.Name
	}
	if c.Gender != "" {
		l.Gender = c.Gender
	}
	if c.Age != nil {
		l.Age = c.Age
	}
	if c.Notes != "" {
		l.CatNotes = c.Notes
	}
	if c.ImageURL != "" {
		l.ImageURL = c.ImageURL
	}
	return l
}
