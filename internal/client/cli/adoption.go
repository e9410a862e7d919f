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

// parseFilter reads "listings" arguments: -v (vaccinated), -s (sterilized),
// -age (sort by age); everything else is the name query.
func parseFilter(args []string) workflow.ListingFilter {
	var f workflow.ListingFilter
	var query []string
	for _, a := range args {
		switch a {
		case "-v", "--vaccinated":
			f.Vaccinated = true
		case "-s", "--sterilized":
			f.Sterilized = true
		case "-age", "--age":
			f.SortBy = workflow.SortByAge
		case "-name", "--name":
			f.SortBy = workflow.SortByName
		default:
			query = append(query, a)
		}
	}
	f.Query = strings.Join(query, " ")
	return f
}

// Listings shows the adoption page with the given filter.
func (a *App) Listings(ctx context.Context, args []string) error {
	a.mu.Lock()
	a.filter = parseFilter(args)
	a.mu.Unlock()

	if a.composer.Route() == view.RouteAdoption {
		a.renderPage(ctx)
		return nil
	}
	a.navigate(ctx, view.RouteAdoption)
	return nil
}

// Listing selects a listing by id and shows its detail panel.
func (a *App) Listing(ctx context.Context, arg string) error {
	if !a.requireLogin(ctx) {
		return nil
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		a.say("Usage: listing <id>")
		return err
	}
	a.enter(ctx, view.RouteAdoption, true)

	l, ok := a.adoption.Listing(id)
	if !ok {
		a.adoption.Refresh(ctx)
		l, ok = a.adoption.Listing(id)
	}
	if !ok {
		a.say(fmt.Sprintf("No listing #%d.", id))
		return nil
	}

	a.store.ShowListingForm(false)
	a.store.SelectListing(&l)
	a.renderPage(ctx)
	return nil
}

func (a *App) selectedListing() *models.AdoptionListing {
	if a.composer.Route() != view.RouteAdoption {
		return nil
	}
	return a.store.Snapshot().Listing
}

// Apply walks through the adoption request form for the selected listing.
func (a *App) Apply(ctx context.Context) error {
	if !a.requireLogin(ctx) {
		return nil
	}
	l := a.selectedListing()
	if l == nil {
		a.say("Select a listing first: listing <id>")
		return nil
	}

	d := a.adoption.Decision(a.actorID(), *l)
	if !d.CanApply() {
		switch d.Action {
		case workflow.ActionEditListing:
			a.say("This is your listing. Use editlisting instead.")
		default:
			a.say("Request disabled: " + d.Reason)
		}
		return nil
	}

	a.composer.OpenApplyForm()
	a.renderPage(ctx)

	f, err := a.readApplyForm()
	if err != nil {
		a.printErr(err)
		return err
	}

	req, err := a.adoption.Apply(ctx, a.actorID(), *l, f)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	a.composer.CloseApplyForm()
	a.success(fmt.Sprintf("Request #%d sent for %s.", req.RequestID, orDash(l.Name)))
	a.renderPage(ctx)
	return nil
}

func (a *App) readApplyForm() (forms.AdoptionRequestForm, error) {
	var f forms.AdoptionRequestForm
	var err error

	if f.City, err = getSimpleText(a.reader, "City", a.out); err != nil {
		return f, err
	}
	age, err := GetOptionalInt(a.reader, "Your age", nil, a.out)
	if err != nil {
		return f, err
	}
	if age != nil {
		f.Age = *age
	}
	if f.FullName, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return f, err
	}
	if f.ReasonForAdoption, err = getSimpleText(a.reader, "Why do you want to adopt?", a.out); err != nil {
		return f, err
	}
	if f.LivingSituation, err = getSimpleText(a.reader, "Living situation", a.out); err != nil {
		return f, err
	}

	levels := make([]string, len(models.ExperienceLevels))
	for i, l := range models.ExperienceLevels {
		levels[i] = string(l)
	}
	i, err := GetChoice(a.reader, "Experience with cats", levels, 0, a.out)
	if err != nil {
		return f, err
	}
	f.ExperienceLevel = models.ExperienceLevels[i]

	if f.HasOtherPets, err = GetYesNo(a.reader, "Do you have other pets?", false, a.out); err != nil {
		return f, err
	}
	return f, nil
}

// NewListing creates a cat and offers it for adoption.
func (a *App) NewListing(ctx context.Context) error {
	if !a.requireLogin(ctx) {
		return nil
	}
	a.enter(ctx, view.RouteAdoption, true)
	a.store.SelectListing(nil)
	a.store.ShowListingForm(true)
	a.renderPage(ctx)

	f := forms.ListingForm{IsActive: true}
	if err := a.readListingForm(&f); err != nil {
		a.printErr(err)
		return err
	}

	l, err := a.adoption.CreateListing(ctx, f)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	a.store.ShowListingForm(false)
	a.store.SelectListing(&l)
	a.success(fmt.Sprintf("Listing #%d created for %s.", l.ListingID, orDash(l.Name)))
	a.renderPage(ctx)
	return nil
}

// EditListing edits the selected listing. Only its uploader may.
func (a *App) EditListing(ctx context.Context) error {
	if !a.requireLogin(ctx) {
		return nil
	}
	l := a.selectedListing()
	if l == nil {
		a.say("Select a listing first: listing <id>")
		return nil
	}
	if l.UploaderID != a.actorID() {
		a.say("Only the uploader can edit this listing.")
		return nil
	}

	a.store.ShowListingForm(true)
	a.renderPage(ctx)

	f := forms.ListingFormFrom(*l)
	if err := a.readListingForm(&f); err != nil {
		a.printErr(err)
		return err
	}
	active, err := GetYesNo(a.reader, "Listing active?", f.IsActive, a.out)
	if err != nil {
		return err
	}
	f.IsActive = active

	updated, err := a.adoption.UpdateListing(ctx, a.actorID(), *l, f)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	a.store.ShowListingForm(false)
	a.store.SelectListing(&updated)
	a.success("Listing updated.")
	a.renderPage(ctx)
	return nil
}

// readListingForm prompts for every listing field, offering the values
// already in f as defaults.
func (a *App) readListingForm(f *forms.ListingForm) error {
	var err error
	if f.Name, err = getDefaultText(a.reader, "Cat name", f.Name, a.out); err != nil {
		return err
	}
	if f.Gender, err = a.readGender(f.Gender); err != nil {
		return err
	}
	if f.Age, err = GetOptionalInt(a.reader, "Age in years", f.Age, a.out); err != nil {
		return err
	}
	if f.CatNotes, err = getDefaultText(a.reader, "About the cat", f.CatNotes, a.out); err != nil {
		return err
	}
	image := f.ImageURL
	if u := a.takePhoto(); u != "" {
		image = u
	}
	if f.ImageURL, err = getDefaultText(a.reader, "Image URL", image, a.out); err != nil {
		return err
	}
	if f.Vaccinated, err = GetYesNo(a.reader, "Vaccinated?", f.Vaccinated, a.out); err != nil {
		return err
	}
	if f.Sterilized, err = GetYesNo(a.reader, "Sterilized?", f.Sterilized, a.out); err != nil {
		return err
	}
	if f.Notes, err = getDefaultText(a.reader, "Listing notes", f.Notes, a.out); err != nil {
		return err
	}
	return nil
}
