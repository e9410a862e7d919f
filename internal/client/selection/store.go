package selection

import (
	"sync"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
)

// State is a point-in-time copy of the store. Pointer fields are nil when
// nothing is selected; callers own the returned values.
type State struct {
	Pin             *models.Pin
	Listing         *models.AdoptionListing
	ShowListingForm bool
	ReviewRequestID *int64
	PendingLocation *models.Coordinate
	RefreshCount    uint64
}

// Observer receives the state after every mutation.
type Observer func(State)

// Store holds the shared selection state and notifies observers on change.
// It is safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	state     State
	observers map[int]Observer
	nextID    int
}

// NewStore returns an empty store with no observers.
func NewStore() *Store {
	return &Store{observers: make(map[int]Observer)}
}

// Subscribe registers fn and returns a function that removes it. Observers
// run on the mutating goroutine after the lock is released.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// SelectPin focuses pin. A non-nil pin cancels any pending new-pin flow.
func (s *Store) SelectPin(pin *models.Pin) {
	s.update(func(st *State) {
		st.Pin = clonePtr(pin)
		if pin != nil {
			st.PendingLocation = nil
		}
	})
}

// SelectListing focuses listing. When the focused listing changes, the edit
// form flag is dropped so a stale form is never shown.
func (s *Store) SelectListing(listing *models.AdoptionListing) {
	s.update(func(st *State) {
		if listingID(st.Listing) != listingID(listing) {
			st.ShowListingForm = false
		}
		st.Listing = clonePtr(listing)
	})
}

// SetPendingLocation starts (non-nil) or cancels (nil) a new-pin flow. A
// non-nil coordinate clears the selected pin.
func (s *Store) SetPendingLocation(c *models.Coordinate) {
	s.update(func(st *State) {
		st.PendingLocation = clonePtr(c)
		if c != nil {
			st.Pin = nil
		}
	})
}

// ShowListingForm toggles the listing create/edit form.
func (s *Store) ShowListingForm(show bool) {
	s.update(func(st *State) { st.ShowListingForm = show })
}

// ReviewRequest marks which adoption request is under review; nil clears it.
func (s *Store) ReviewRequest(id *int64) {
	s.update(func(st *State) { st.ReviewRequestID = clonePtr(id) })
}

// TriggerRefresh bumps the refresh counter and returns the new value.
func (s *Store) TriggerRefresh() uint64 {
	var n uint64
	s.update(func(st *State) {
		st.RefreshCount++
		n = st.RefreshCount
	})
	return n
}

// PatchPin applies an optimistic local update. The selected pin is replaced
// only when it has the same location id.
func (s *Store) PatchPin(pin models.Pin) {
	s.update(func(st *State) {
		if st.Pin != nil && st.Pin.LocationID == pin.LocationID {
			p := pin
			st.Pin = &p
		}
	})
}

// ReconcilePins replaces the selected pin with its server copy from pins.
// If a non-empty fetch no longer contains the pin, the selection is dropped.
// An empty list is treated as a failed fetch and leaves the selection alone.
func (s *Store) ReconcilePins(pins []models.Pin) {
	s.update(func(st *State) {
		if st.Pin == nil || len(pins) == 0 {
			return
		}
		for _, p := range pins {
			if p.LocationID == st.Pin.LocationID {
				fresh := p
				st.Pin = &fresh
				return
			}
		}
		st.Pin = nil
	})
}

// Reset clears everything except the refresh counter.
func (s *Store) Reset() {
	s.update(func(st *State) {
		*st = State{RefreshCount: st.RefreshCount}
	})
}

func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state.clone()
	observers := make([]Observer, 0, len(s.observers))
	for id := 0; id < s.nextID; id++ {
		if o, ok := s.observers[id]; ok {
			observers = append(observers, o)
		}
	}
	s.mu.Unlock()

	for _, o := range observers {
		o(snap)
	}
}

func (st State) clone() State {
	return State{
		Pin:             clonePtr(st.Pin),
		Listing:         clonePtr(st.Listing),
		ShowListingForm: st.ShowListingForm,
		ReviewRequestID: clonePtr(st.ReviewRequestID),
		PendingLocation: clonePtr(st.PendingLocation),
		RefreshCount:    st.RefreshCount,
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func listingID(l *models.AdoptionListing) int64 {
	if l == nil {
		return 0
	}
	return l.ListingID
}
