package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/view"
)

// noteFilter narrows the notifications page. The zero value shows every
// notification and every incoming request.
type noteFilter struct {
	unreadOnly bool
	status     models.RequestStatus
}

// parseNoteFilter reads flags: -unread hides read notifications, and one of
// -pending, -accepted or -rejected narrows incoming requests. -all resets the
// request filter. Unknown words are ignored.
func parseNoteFilter(args []string) noteFilter {
	var f noteFilter
	for _, a := range args {
		switch strings.ToLower(a) {
		case "-unread", "-u":
			f.unreadOnly = true
		case "-pending":
			f.status = models.StatusPending
		case "-accepted":
			f.status = models.StatusAccepted
		case "-rejected":
			f.status = models.StatusRejected
		case "-all":
			f.status = ""
		}
	}
	return f
}

// Notifications shows the notifications page with the filter given by args.
func (a *App) Notifications(ctx context.Context, args []string) error {
	a.mu.Lock()
	a.noteFilter = parseNoteFilter(args)
	a.mu.Unlock()

	if a.composer.Route() == view.RouteNotifications {
		a.renderPage(ctx)
		return nil
	}
	a.navigate(ctx, view.RouteNotifications)
	return nil
}

// Read marks a notification read.
func (a *App) Read(ctx context.Context, arg string) error {
	if !a.requireLogin(ctx) {
		return nil
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		a.say("Usage: read <id>")
		return err
	}
	if err := a.notes.MarkRead(ctx, id); err != nil {
		a.report(ctx, err)
		return err
	}
	a.success(fmt.Sprintf("Notification #%d marked as read.", id))
	if a.composer.Route() == view.RouteNotifications {
		a.renderPage(ctx)
	}
	return nil
}

// Review opens an incoming adoption request in the secondary panel.
func (a *App) Review(ctx context.Context, arg string) error {
	if !a.requireLogin(ctx) {
		return nil
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		a.say("Usage: review <request id>")
		return err
	}
	a.enter(ctx, view.RouteNotifications, true)
	a.store.ReviewRequest(&id)
	a.renderPage(ctx)
	return nil
}

// Decide accepts or rejects the request under review.
func (a *App) Decide(ctx context.Context, status models.RequestStatus) error {
	if !a.requireLogin(ctx) {
		return nil
	}
	st := a.store.Snapshot()
	if a.composer.Route() != view.RouteNotifications || st.ReviewRequestID == nil {
		a.say("Open a request first: review <id>")
		return nil
	}
	id := *st.ReviewRequestID

	if err := a.notes.Decide(ctx, a.actorID(), id, status); err != nil {
		a.report(ctx, err)
		return err
	}
	a.success(fmt.Sprintf("Request #%d %s.", id, status))
	a.store.ReviewRequest(nil)
	a.store.TriggerRefresh()
	a.renderPage(ctx)
	return nil
}
