package cli

import (
	"context"

	"github.com/dmitrijs2005/safepaws/internal/client/forms"
	"github.com/dmitrijs2005/safepaws/internal/client/view"
)

// getSimpleText, getDefaultText and getPassword are indirections used to
// facilitate testing.
var (
	getSimpleText  = GetSimpleText
	getDefaultText = GetDefaultText
	getPassword    = GetPassword
)

// Register prompts for the signup fields and creates the account. Field
// errors are listed and nothing is sent. On success the user is sent to the
// login page, as the account is not signed in automatically.
func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		a.say("Already logged in. Use logout first.")
		return nil
	}
	a.enter(ctx, view.RouteSignup, true)

	var f forms.SignupForm
	var err error
	if f.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if f.Password, err = getPassword(a.reader, a.out); err != nil {
		return err
	}
	if f.FullName, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if f.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if f.Phone, err = getSimpleText(a.reader, "Phone (05XXXXXXXX)", a.out); err != nil {
		return err
	}

	if err := a.auth.Register(ctx, f); err != nil {
		a.printErr(err)
		return err
	}
	a.success("Account created. You can log in now.")
	a.navigate(ctx, view.RouteLogin)
	return nil
}

// Login prompts for credentials, stores the issued token and loads the
// profile. On success the user lands on home.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.say("Already logged in.")
		return nil
	}

	var f forms.LoginForm
	var err error
	if f.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if f.Password, err = getPassword(a.reader, a.out); err != nil {
		return err
	}

	p, err := a.auth.Login(ctx, f)
	if err != nil && !a.isLoggedIn() {
		a.printErr(err)
		return err
	}
	if err != nil {
		// signed in, but the profile could not be loaded
		a.printErr(err)
	} else {
		a.mu.Lock()
		a.profile = &p
		a.mu.Unlock()
		if err := a.notes.RefreshUnread(ctx); err != nil {
			a.logger.Warn(ctx, "unread count unavailable", "error", err)
		}
	}

	a.success("Logged in as " + f.Username)
	a.navigate(ctx, view.RouteHome)
	return nil
}

// Logout forgets the token and every selection, and stops page polling.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.say("Not logged in.")
		return nil
	}
	a.dropSession(ctx)
	a.success("Logged out.")
	a.navigate(ctx, view.RouteLogin)
	return nil
}

// Profile edits the signed-in user's profile. Empty answers keep the
// current value.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireLogin(ctx) {
		return nil
	}
	a.navigate(ctx, view.RouteSettings)

	a.mu.Lock()
	cur := a.profile
	a.mu.Unlock()
	if cur == nil {
		if err := a.loadProfile(ctx); err != nil {
			a.report(ctx, err)
			return err
		}
		a.mu.Lock()
		cur = a.profile
		a.mu.Unlock()
	}

	var f forms.ProfileForm
	var err error
	if f.FullName, err = getDefaultText(a.reader, "Full name", cur.FullName, a.out); err != nil {
		return err
	}
	if f.Email, err = getDefaultText(a.reader, "Email", cur.Email, a.out); err != nil {
		return err
	}
	if f.Phone, err = getDefaultText(a.reader, "Phone", cur.Phone, a.out); err != nil {
		return err
	}
	if f.Password, err = getSimpleText(a.reader, "New password (empty keeps the current one)", a.out); err != nil {
		return err
	}

	// only send what changed
	if f.FullName == cur.FullName {
		f.FullName = ""
	}
	if f.Email == cur.Email {
		f.Email = ""
	}
	if f.Phone == cur.Phone {
		f.Phone = ""
	}
	if f.Empty() {
		a.say("Nothing to update.")
		return nil
	}

	p, err := a.auth.UpdateProfile(ctx, f)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	a.mu.Lock()
	a.profile = &p
	a.mu.Unlock()
	a.success("Profile updated.")
	a.renderPage(ctx)
	return nil
}

// requireLogin sends signed-out users to login and reports whether the
// command may go on.
func (a *App) requireLogin(ctx context.Context) bool {
	if a.isLoggedIn() {
		return true
	}
	a.say("Please log in first.")
	a.navigate(ctx, view.RouteLogin)
	return false
}
