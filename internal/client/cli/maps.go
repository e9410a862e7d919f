package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/safepaws/internal/client/forms"
	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/view"
	"github.com/dmitrijs2005/safepaws/internal/client/workflow"
)

// Pins shows the map page. Arguments form a cat name filter; no arguments
// clear it.
func (a *App) Pins(ctx context.Context, args []string) error {
	a.mu.Lock()
	a.pinQuery = strings.Join(args, " ")
	a.mu.Unlock()

	if a.composer.Route() == view.RouteMap {
		a.renderPage(ctx)
		return nil
	}
	a.navigate(ctx, view.RouteMap)
	return nil
}

// Pin selects a pin by location id and shows its detail panel.
func (a *App) Pin(ctx context.Context, arg string) error {
	if !a.requireLogin(ctx) {
		return nil
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		a.say("Usage: pin <id>")
		return err
	}
	a.enter(ctx, view.RouteMap, true)

	pin, ok := findPin(a.maps.Pins(), id)
	if !ok {
		if err := a.maps.RefreshPins(ctx); err != nil {
			a.logger.Error(ctx, "failed to load pins", "error", err)
		}
		pin, ok = findPin(a.maps.Pins(), id)
	}
	if !ok {
		a.say(fmt.Sprintf("No pin #%d.", id))
		return nil
	}

	a.store.SetPendingLocation(nil)
	a.store.SelectPin(&pin)
	a.renderPage(ctx)
	return nil
}

func findPin(pins []models.Pin, id int64) (models.Pin, bool) {
	for _, p := range pins {
		if p.LocationID == id {
			return p, true
		}
	}
	return models.Pin{}, false
}

// NewPin opens the new pin form at lat/lon, or at the pending location when
// called without arguments, and walks through it.
func (a *App) NewPin(ctx context.Context, args []string) error {
	if !a.requireLogin(ctx) {
		return nil
	}

	var loc models.Coordinate
	switch len(args) {
	case 2:
		lat, err1 := strconv.ParseFloat(args[0], 64)
		lon, err2 := strconv.ParseFloat(args[1], 64)
		if err1 != nil || err2 != nil {
			a.say("Usage: newpin <lat> <lon>")
			return fmt.Errorf("bad coordinates %q %q", args[0], args[1])
		}
		loc = models.Coordinate{Latitude: lat, Longitude: lon}
	case 0:
		pending := a.store.Snapshot().PendingLocation
		if pending == nil {
			a.say("Usage: newpin <lat> <lon>")
			return nil
		}
		loc = *pending
	default:
		a.say("Usage: newpin <lat> <lon>")
		return nil
	}

	a.enter(ctx, view.RouteMap, true)
	a.store.SetPendingLocation(&loc)
	a.renderPage(ctx)

	f, err := a.readNewPinForm(loc)
	if err != nil {
		return err
	}

	pin, err := a.maps.CreateCatWithPin(ctx, f)
	if err != nil {
		// the pending location stays so "newpin" can retry
		a.report(ctx, err)
		return err
	}
	a.success(fmt.Sprintf("%s pinned as #%d.", pin.DisplayName(), pin.LocationID))
	a.store.TriggerRefresh()
	a.renderPage(ctx)
	return nil
}

func (a *App) readNewPinForm(loc models.Coordinate) (forms.NewPinForm, error) {
	f := forms.NewPinForm{Latitude: loc.Latitude, Longitude: loc.Longitude}
	var err error

	if f.Name, err = getSimpleText(a.reader, "Cat name", a.out); err != nil {
		return f, err
	}
	if f.Gender, err = a.readGender(""); err != nil {
		return f, err
	}
	if f.Age, err = GetOptionalInt(a.reader, "Age in years (empty if unknown)", nil, a.out); err != nil {
		return f, err
	}
	if f.Notes, err = getSimpleText(a.reader, "Notes", a.out); err != nil {
		return f, err
	}
	if f.ImageURL, err = getDefaultText(a.reader, "Image URL", a.takePhoto(), a.out); err != nil {
		return f, err
	}

	labels := make([]string, len(forms.InitialConditions))
	for i, c := range forms.InitialConditions {
		labels[i] = c.Label()
	}
	i, err := GetChoice(a.reader, "Condition", labels, 0, a.out)
	if err != nil {
		return f, err
	}
	f.Condition = forms.InitialConditions[i]

	if workflow.RequiresDescription(f.Condition) {
		if f.Description, err = getSimpleText(a.reader, "Describe the situation", a.out); err != nil {
			return f, err
		}
	}
	return f, nil
}

func (a *App) readGender(def string) (string, error) {
	g, err := getDefaultText(a.reader, "Gender (M/F/UNKNOWN)", def, a.out)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(g), nil
}

// Condition changes the selected pin's condition. Only the targets the
// actor may set are offered.
func (a *App) Condition(ctx context.Context) error {
	if !a.requireLogin(ctx) {
		return nil
	}
	pin := a.selectedPin()
	if pin == nil {
		a.say("Select a pin first: pin <id>")
		return nil
	}

	actor := a.actorID()
	targets := workflow.SettableConditions(actor, *pin)
	if len(targets) == 0 {
		a.say("You cannot change this cat's condition.")
		return nil
	}
	labels := make([]string, len(targets))
	def := 0
	for i, c := range targets {
		labels[i] = c.Label()
		if c == pin.Condition {
			def = i
		}
	}

	i, err := GetChoice(a.reader, "New condition", labels, def, a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	f := forms.ConditionForm{Target: targets[i]}
	if workflow.RequiresDescription(f.Target) {
		if f.Description, err = getSimpleText(a.reader, "Describe the situation", a.out); err != nil {
			return err
		}
	}

	updated, err := a.maps.UpdateCondition(ctx, actor, *pin, f)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	a.success(fmt.Sprintf("%s is now %s.", updated.DisplayName(), updated.Condition.Label()))
	a.store.TriggerRefresh()
	a.renderPage(ctx)
	return nil
}

// Contribute logs a field update on the selected pin's timeline.
func (a *App) Contribute(ctx context.Context) error {
	if !a.requireLogin(ctx) {
		return nil
	}
	pin := a.selectedPin()
	if pin == nil {
		a.say("Select a pin first: pin <id>")
		return nil
	}
	if !workflow.CanContribute(*pin) {
		a.say("Updates are closed for this cat.")
		return nil
	}

	text, err := getSimpleText(a.reader, "What did you do or see?", a.out)
	if err != nil {
		return err
	}
	if _, err := a.maps.Contribute(ctx, *pin, forms.ContributionForm{Text: text}); err != nil {
		a.report(ctx, err)
		return err
	}
	a.success("Update added.")
	a.renderPage(ctx)
	return nil
}

func (a *App) selectedPin() *models.Pin {
	if a.composer.Route() != view.RouteMap {
		return nil
	}
	return a.store.Snapshot().Pin
}

// Photo uploads a local image. Its URL prefills the image field of the next
// pin or listing form.
func (a *App) Photo(ctx context.Context, path string) error {
	if !a.requireLogin(ctx) {
		return nil
	}
	if a.images == nil {
		a.say("Photo upload is not configured.")
		return nil
	}
	url, err := a.images.Upload(ctx, path)
	if err != nil {
		a.printErr(err)
		return err
	}
	a.mu.Lock()
	a.photoURL = url
	a.mu.Unlock()
	a.success("Uploaded: " + url)
	a.say("The next pin or listing form will use this photo.")
	return nil
}
