package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/safepaws/internal/client/client"
	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/workflow"
	"github.com/dmitrijs2005/safepaws/internal/logging"
)

// Overview is everything the notifications page shows.
type Overview struct {
	Notifications []models.Notification
	Unread        int
	Incoming      []models.AdoptionRequest
	Listings      []models.AdoptionListing
	Accepted      []models.AcceptedContact
}

// Review is an incoming request opened from a notification.
type Review struct {
	Request models.AdoptionRequest
	Listing *models.AdoptionListing
}

// NotificationService serves the notifications page and the unread badge.
type NotificationService interface {
	Overview(ctx context.Context) Overview
	Notifications() []models.Notification
	Unread() int
	RefreshUnread(ctx context.Context) error
	MarkRead(ctx context.Context, notificationID int64) error
	Review(ctx context.Context, requestID int64) (Review, error)
	Decide(ctx context.Context, actorID, requestID int64, status models.RequestStatus) error
}

type notificationService struct {
	client client.Client
	logger logging.Logger

	mu            sync.RWMutex
	notifications []models.Notification
	unread        int
}

func NewNotificationService(c client.Client, logger logging.Logger) NotificationService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &notificationService{client: c, logger: logger}
}

// Overview loads the page's five lists concurrently. Every fetch is best
// effort: a failure leaves its part empty and is logged. When the unread
// count cannot be fetched it is derived from the notification list.
func (s *notificationService) Overview(ctx context.Context) Overview {
	var (
		ov        Overview
		unreadErr error
		g         errgroup.Group
	)

	g.Go(func() error {
		ns, err := s.client.ListNotifications(ctx)
		if err != nil {
			s.logger.Error(ctx, "failed to load notifications", "error", err)
			return nil
		}
		ov.Notifications = ns
		return nil
	})
	g.Go(func() error {
		ov.Unread, unreadErr = s.client.UnreadCount(ctx)
		if unreadErr != nil {
			s.logger.Error(ctx, "failed to load unread count", "error", unreadErr)
		}
		return nil
	})
	g.Go(func() error {
		reqs, err := s.client.ListIncomingAll(ctx)
		if err != nil {
			s.logger.Error(ctx, "failed to load incoming requests", "error", err)
			return nil
		}
		ov.Incoming = reqs
		return nil
	})
	g.Go(func() error {
		ls, err := s.client.ListListings(ctx)
		if err != nil {
			s.logger.Error(ctx, "failed to load listings", "error", err)
			return nil
		}
		ov.Listings = ls
		return nil
	})
	g.Go(func() error {
		acc, err := s.client.ListSentAccepted(ctx)
		if err != nil {
			s.logger.Error(ctx, "failed to load accepted requests", "error", err)
			return nil
		}
		ov.Accepted = acc
		return nil
	})
	_ = g.Wait()

	if unreadErr != nil {
		ov.Unread = models.UnreadCount(ov.Notifications)
	}

	s.mu.Lock()
	s.notifications = ov.Notifications
	s.unread = ov.Unread
	s.mu.Unlock()
	return ov
}

func (s *notificationService) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.notifications...)
}

func (s *notificationService) Unread() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread
}

// RefreshUnread is the notification poller's task.
func (s *notificationService) RefreshUnread(ctx context.Context) error {
	n, err := s.client.UnreadCount(ctx)
	if err != nil {
		return fmt.Errorf("unread count: %w", err)
	}
	s.mu.Lock()
	s.unread = n
	s.mu.Unlock()
	return nil
}

// MarkRead flips the notification locally first, then tells the backend and
// reconciles with the server's list. The reconcile runs even when the call
// fails, so a rejected mark is rolled back to the server's view.
func (s *notificationService) MarkRead(ctx context.Context, notificationID int64) error {
	s.mu.Lock()
	for i := range s.notifications {
		n := &s.notifications[i]
		if n.NotificationID == notificationID && !n.IsRead {
			n.MarkRead()
			if s.unread > 0 {
				s.unread--
			}
		}
	}
	s.mu.Unlock()

	callErr := s.client.MarkNotificationRead(ctx, notificationID)
	if callErr != nil {
		callErr = fmt.Errorf("mark read: %w", callErr)
	}

	ns, err := s.client.ListNotifications(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to reconcile notifications", "error", err)
		return callErr
	}
	s.mu.Lock()
	s.notifications = ns
	s.unread = models.UnreadCount(ns)
	s.mu.Unlock()
	return callErr
}

// Review loads a request and the listing it targets. A missing listing is
// not an error: the panel shows the request alone.
func (s *notificationService) Review(ctx context.Context, requestID int64) (Review, error) {
	req, err := s.client.GetRequest(ctx, requestID)
	if err != nil {
		return Review{}, fmt.Errorf("load request: %w", err)
	}
	r := Review{Request: req}

	ls, err := s.client.ListListings(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to load listings", "error", err)
		return r, nil
	}
	for i := range ls {
		if ls[i].ListingID == req.ListingID {
			l := ls[i]
			r.Listing = &l
			break
		}
	}
	return r, nil
}

// Decide accepts or rejects a pending request the actor received.
func (s *notificationService) Decide(ctx context.Context, actorID, requestID int64, status models.RequestStatus) error {
	if actorID == 0 {
		return workflow.ErrNotAuthenticated
	}
	if status != models.StatusAccepted && status != models.StatusRejected {
		return fmt.Errorf("%w: %q", models.ErrUnknownStatus, status)
	}
	req, err := s.client.GetRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("load request: %w", err)
	}
	if req.ReceiverID != actorID {
		return ErrNotReceiver
	}
	if !req.Status.CanTransition(status) {
		return ErrAlreadyDecided
	}
	if err := s.client.DecideRequest(ctx, requestID, status); err != nil {
		return fmt.Errorf("decide request: %w", err)
	}
	return nil
}
