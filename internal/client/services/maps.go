package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/safepaws/internal/client/client"
	"github.com/dmitrijs2005/safepaws/internal/client/forms"
	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/selection"
	"github.com/dmitrijs2005/safepaws/internal/client/workflow"
	"github.com/dmitrijs2005/safepaws/internal/logging"
)

// MapService serves the map page: the pin list, a cat's timeline and the
// mutations a pin offers.
type MapService interface {
	Pins() []models.Pin
	RefreshPins(ctx context.Context) error
	Activity(ctx context.Context, catID int64) []models.ActivityLogEntry
	CreateCatWithPin(ctx context.Context, form forms.NewPinForm) (models.Pin, error)
	UpdateCondition(ctx context.Context, actorID int64, pin models.Pin, form forms.ConditionForm) (models.Pin, error)
	Contribute(ctx context.Context, pin models.Pin, form forms.ContributionForm) (models.ActivityLogEntry, error)
}

type mapService struct {
	client client.Client
	store  *selection.Store
	logger logging.Logger

	mu   sync.RWMutex
	pins []models.Pin
}

func NewMapService(c client.Client, store *selection.Store, logger logging.Logger) MapService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &mapService{client: c, store: store, logger: logger}
}

// Pins returns the pins loaded by the last refresh.
func (s *mapService) Pins() []models.Pin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Pin(nil), s.pins...)
}

// RefreshPins reloads the pin list and reconciles the selected pin with it.
// On failure the list is emptied and the error returned for the poller to log.
func (s *mapService) RefreshPins(ctx context.Context) error {
	pins, err := s.client.ListPins(ctx)
	if err != nil {
		pins = nil
	}

	s.mu.Lock()
	s.pins = pins
	s.mu.Unlock()

	s.store.ReconcilePins(pins)

	if err != nil {
		return fmt.Errorf("list pins: %w", err)
	}
	return nil
}

func (s *mapService) Activity(ctx context.Context, catID int64) []models.ActivityLogEntry {
	entries, err := s.client.ListCatActivity(ctx, catID)
	if err != nil {
		s.logger.Error(ctx, "failed to load activity", "cat_id", catID, "error", err)
		return nil
	}
	models.SortTimeline(entries)
	return entries
}

// CreateCatWithPin creates the cat, pins it, applies a non-default initial
// condition and reloads the map. A failed condition update is logged and the
// pin is kept as created.
func (s *mapService) CreateCatWithPin(ctx context.Context, form forms.NewPinForm) (models.Pin, error) {
	if err := forms.Validate(form); err != nil {
		return models.Pin{}, err
	}

	cat, err := s.client.CreateCat(ctx, form.Cat())
	if err != nil {
		return models.Pin{}, fmt.Errorf("create cat: %w", err)
	}

	pin, err := s.client.CreatePin(ctx, client.PinInput{
		CatID:     cat.CatID,
		Latitude:  form.Latitude,
		Longitude: form.Longitude,
	})
	if err != nil {
		return models.Pin{}, fmt.Errorf("create pin: %w", err)
	}
	pin = withCat(pin, cat)

	if form.Condition != models.Normal {
		cf := forms.ConditionForm{Target: form.Condition, Description: form.Description}
		updated, err := s.client.UpdatePinCondition(ctx, pin.LocationID, cf.Update())
		if err != nil {
			s.logger.Warn(ctx, "initial condition not applied", "location_id", pin.LocationID, "error", err)
		} else {
			pin = merge(pin, updated)
		}
	}

	s.store.SetPendingLocation(nil)
	if err := s.RefreshPins(ctx); err != nil {
		s.logger.Error(ctx, "failed to reload pins", "error", err)
	}
	s.store.SelectPin(&pin)
	return pin, nil
}

func (s *mapService) UpdateCondition(ctx context.Context, actorID int64, pin models.Pin, form forms.ConditionForm) (models.Pin, error) {
	if err := workflow.ValidateConditionChange(actorID, pin, form.Target, form.Description); err != nil {
		return models.Pin{}, err
	}
	if err := forms.Validate(form); err != nil {
		return models.Pin{}, err
	}

	updated, err := s.client.UpdatePinCondition(ctx, pin.LocationID, form.Update())
	if err != nil {
		return models.Pin{}, fmt.Errorf("update condition: %w", err)
	}
	pin = merge(pin, updated)
	pin.Condition = form.Target

	s.mu.Lock()
	for i := range s.pins {
		if s.pins[i].LocationID == pin.LocationID {
			s.pins[i] = pin
		}
	}
	s.mu.Unlock()

	s.store.PatchPin(pin)
	return pin, nil
}

func (s *mapService) Contribute(ctx context.Context, pin models.Pin, form forms.ContributionForm) (models.ActivityLogEntry, error) {
	if !workflow.CanContribute(pin) {
		return models.ActivityLogEntry{}, ErrContributionClosed
	}
	if err := forms.Validate(form); err != nil {
		return models.ActivityLogEntry{}, err
	}
	e, err := s.client.CreateActivity(ctx, client.ActivityInput{CatID: pin.CatID, Description: form.Text})
	if err != nil {
		return models.ActivityLogEntry{}, fmt.Errorf("add activity: %w", err)
	}
	return e, nil
}

// withCat fills cat fields the pin endpoint does not echo back.
func withCat(p models.Pin, c models.Cat) models.Pin {
	if p.CatID == 0 {
		p.CatID = c.CatID
	}
	if p.Name == "" {
		p.Name = c.Name
	}
	if p.Gender == "" {
		p.Gender = c.Gender
	}
	if p.Age == nil {
		p.Age = c.Age
	}
	if p.Notes == "" {
		p.Notes = c.Notes
	}
	if p.ImageURL == "" {
		p.ImageURL = c.ImageURL
	}
	return p
}

// merge overlays a possibly partial server pin on the local one.
func merge(local, remote models.Pin) models.Pin {
	if remote.LocationID == 0 {
		return local
	}
	out := remote
	if out.CatID == 0 {
		out.CatID = local.CatID
	}
	if out.AddingUserID == 0 {
		out.AddingUserID = local.AddingUserID
		out.AddingUsername = local.AddingUsername
	}
	if out.Name == "" {
		out.Name = local.Name
	}
	if out.Gender == "" {
		out.Gender = local.Gender
	}
	if out.Age == nil {
		out.Age = local.Age
	}
	if out.Notes == "" {
		out.Notes = local.Notes
	}
	if out.ImageURL == "" {
		out.ImageURL = local.ImageURL
	}
	if out.CreatedAt.IsZero() {
		out.CreatedAt = local.CreatedAt
	}
	return out
}
