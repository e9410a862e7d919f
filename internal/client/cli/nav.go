package cli

import (
	"context"

	"github.com/dmitrijs2005/safepaws/internal/client/view"
)

// Go navigates to the named page. Unknown names go home.
func (a *App) Go(ctx context.Context, page string) error {
	a.navigate(ctx, view.ParseRoute(page))
	return nil
}

// Back closes the innermost open thing on the current page: a form, then the
// selection. With nothing open it returns to the previous page.
func (a *App) Back(ctx context.Context) error {
	switch a.composer.Compose().Kind {
	case view.PanelNewPinForm:
		a.store.SetPendingLocation(nil)
	case view.PanelPinDetail:
		a.store.SelectPin(nil)
	case view.PanelApplyForm:
		a.composer.CloseApplyForm()
	case view.PanelListingForm:
		a.store.ShowListingForm(false)
	case view.PanelListingDetail:
		a.store.SelectListing(nil)
	case view.PanelRequestReview:
		a.store.ReviewRequest(nil)
	default:
		a.mu.Lock()
		prev := view.RouteHome
		if n := len(a.history); n > 0 {
			prev = a.history[n-1]
			a.history = a.history[:n-1]
		}
		a.mu.Unlock()
		a.goTo(ctx, prev, false)
		return nil
	}
	a.renderPage(ctx)
	return nil
}

// Refresh bumps the refresh counter and reloads the current page.
func (a *App) Refresh(ctx context.Context) error {
	a.store.TriggerRefresh()
	a.renderPage(ctx)
	return nil
}
