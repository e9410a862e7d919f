package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/services"
	"github.com/dmitrijs2005/safepaws/internal/client/workflow"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	mainPane = paneStyle.Width(52)
	sidePane = paneStyle.Width(46)
)

var conditionColors = map[models.Condition]lipgloss.Color{
	models.Normal:  lipgloss.Color("10"),
	models.Urgent:  lipgloss.Color("9"),
	models.AtVet:   lipgloss.Color("11"),
	models.Adopted: lipgloss.Color("14"),
	models.Passed:  lipgloss.Color("245"),
	models.Unknown: lipgloss.Color("250"),
}

// twoPane lays out a page body and its secondary panel side by side. An
// empty panel renders the body alone.
func twoPane(body, panel string) string {
	if panel == "" {
		return mainPane.Render(body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, mainPane.Render(body), sidePane.Render(panel))
}

func section(title string, lines ...string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, l := range lines {
		b.WriteString("\n")
		b.WriteString(l)
	}
	return b.String()
}

func condition(c models.Condition) string {
	return lipgloss.NewStyle().Foreground(conditionColors[c]).Render(c.Label())
}

func age(a *int) string {
	if a == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d", *a)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func renderHome(username string) string {
	return section("SafePaws",
		fmt.Sprintf("Welcome, %s.", orDash(username)),
		"",
		"Track street cats, report their condition and",
		"find them homes.",
		"",
		dimStyle.Render("go map | go adoption | go notifications | go settings"),
	)
}

func renderSignedOut(route string) string {
	return section("SafePaws",
		"You are signed out.",
		"",
		dimStyle.Render("login | register | exit"),
		dimStyle.Render("page: "+route),
	)
}

// renderPins lists pins already narrowed by query.
func renderPins(pins []models.Pin, query string) string {
	query = strings.TrimSpace(query)
	if len(pins) == 0 {
		if query != "" {
			return section("Map", fmt.Sprintf("No cats match %q.", query), dimStyle.Render("pins to clear the search"))
		}
		return section("Map", "No cats on the map yet.", dimStyle.Render("newpin <lat> <lon> to add one"))
	}
	lines := make([]string, 0, len(pins)+1)
	if query != "" {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("search: %q", query)))
	}
	for _, p := range pins {
		lines = append(lines, fmt.Sprintf("#%d %s [%s] %s", p.LocationID, p.DisplayName(), condition(p.Condition), dimStyle.Render(p.Coordinate().String())))
	}
	return section(fmt.Sprintf("Map (%d cats)", len(pins)), lines...)
}

func renderPinDetail(p models.Pin, actorID int64, timeline []models.ActivityLogEntry) string {
	lines := []string{
		"Condition: " + condition(p.Condition),
		"Gender: " + orDash(p.Gender),
		"Age: " + age(p.Age),
		"Location: " + p.Coordinate().String(),
		"Added by: " + orDash(p.AddingUsername),
	}
	if p.Notes != "" {
		lines = append(lines, "Notes: "+p.Notes)
	}
	if p.ImageURL != "" {
		lines = append(lines, "Photo: "+p.ImageURL)
	}

	lines = append(lines, "", titleStyle.Render("Timeline"))
	if len(timeline) == 0 {
		lines = append(lines, dimStyle.Render("no activity yet"))
	}
	for _, e := range timeline {
		marker := " "
		if e.Type.IsConditionChange() {
			marker = "!"
		}
		lines = append(lines, fmt.Sprintf("%s %s %s: %s", marker, e.Time.Short(), orDash(e.Username), e.Description))
	}

	lines = append(lines, "")
	if actorID != 0 {
		labels := make([]string, 0)
		for _, c := range workflow.SettableConditions(actorID, p) {
			labels = append(labels, c.Label())
		}
		lines = append(lines, dimStyle.Render("condition: "+strings.Join(labels, ", ")))
	}
	if workflow.CanContribute(p) {
		lines = append(lines, dimStyle.Render("contribute: log a field update"))
	} else {
		lines = append(lines, dimStyle.Render("updates closed for this cat"))
	}
	return section(p.DisplayName(), lines...)
}

func renderNewPinForm(c models.Coordinate) string {
	return section("New cat",
		"Location: "+c.String(),
		"",
		dimStyle.Render("newpin to fill in the form"),
		dimStyle.Render("back to cancel"),
	)
}

func renderListings(ls []models.AdoptionListing, f workflow.ListingFilter) string {
	var filters []string
	if f.Query != "" {
		filters = append(filters, fmt.Sprintf("name~%q", f.Query))
	}
	if f.Vaccinated {
		filters = append(filters, "vaccinated")
	}
	if f.Sterilized {
		filters = append(filters, "sterilized")
	}
	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = workflow.SortByName
	}
	filters = append(filters, "sort="+string(sortBy))

	lines := []string{dimStyle.Render(strings.Join(filters, " "))}
	if len(ls) == 0 {
		lines = append(lines, "No cats match.")
	}
	for _, l := range ls {
		lines = append(lines, fmt.Sprintf("#%d %s, age %s", l.ListingID, orDash(l.Name), age(l.Age)))
	}
	return section("Adoption", lines...)
}

func renderListingDetail(l models.AdoptionListing, d workflow.ListingDecision) string {
	lines := []string{
		"Gender: " + orDash(l.Gender),
		"Age: " + age(l.Age),
		"Vaccinated: " + yesNo(l.Vaccinated),
		"Sterilized: " + yesNo(l.Sterilized),
		"Active: " + yesNo(l.IsActive),
	}
	if l.CatNotes != "" {
		lines = append(lines, "About: "+l.CatNotes)
	}
	if l.Notes != "" {
		lines = append(lines, "Notes: "+l.Notes)
	}
	if l.ImageURL != "" {
		lines = append(lines, "Photo: "+l.ImageURL)
	}
	lines = append(lines, "")
	switch d.Action {
	case workflow.ActionApply:
		lines = append(lines, dimStyle.Render("apply to send an adoption request"))
	case workflow.ActionEditListing:
		lines = append(lines, dimStyle.Render("editlisting to change this listing"))
	case workflow.ActionDisabled:
		lines = append(lines, errStyle.Render("Request disabled: "+d.Reason))
	}
	return section(orDash(l.Name), lines...)
}

func renderApplyForm(l models.AdoptionListing) string {
	return section("Adopt "+orDash(l.Name),
		"Fill in city, age, full name, reason,",
		"living situation and experience.",
		"",
		dimStyle.Render("back to cancel"),
	)
}

func renderListingForm(l *models.AdoptionListing) string {
	if l == nil {
		return section("New listing", "Cat details first, then the listing.", "", dimStyle.Render("back to cancel"))
	}
	return section("Edit "+orDash(l.Name), "Empty answers keep the current value.", "", dimStyle.Render("back to cancel"))
}

func renderNotifications(ov services.Overview, unreadOnly bool) string {
	lines := []string{fmt.Sprintf("%d unread", ov.Unread)}
	if unreadOnly {
		lines[0] += dimStyle.Render(" (read hidden, notifications to show all)")
	}
	shown := workflow.VisibleNotifications(ov.Notifications, unreadOnly)
	switch {
	case len(shown) > 0:
	case unreadOnly:
		lines = append(lines, "No unread notifications.")
	default:
		lines = append(lines, "No notifications.")
	}
	for _, n := range shown {
		mark := " "
		if !n.IsRead {
			mark = "*"
		}
		line := fmt.Sprintf("%s #%d %s %s", mark, n.NotificationID, dimStyle.Render(n.CreatedAt.Short()), n.DisplayMessage())
		if id, ok := n.RequestID(); ok {
			line += dimStyle.Render(fmt.Sprintf(" (review %d)", id))
		}
		lines = append(lines, line)
	}
	return section("Notifications", lines...)
}

// renderOverview shows incoming requests narrowed to status (all when empty)
// with per-status counts, then accepted outgoing requests.
func renderOverview(ov services.Overview, status models.RequestStatus) string {
	names := make(map[int64]string, len(ov.Listings))
	for _, l := range ov.Listings {
		names[l.ListingID] = l.Name
	}

	c := workflow.CountRequests(ov.Incoming)
	lines := []string{
		titleStyle.Render("Incoming requests"),
		dimStyle.Render(fmt.Sprintf("%d all, %d pending, %d accepted, %d rejected", c.Total, c.Pending, c.Accepted, c.Rejected)),
	}
	shown := workflow.FilterRequests(ov.Incoming, status)
	if status != "" {
		lines = append(lines, dimStyle.Render("showing "+strings.ToLower(string(status))))
	}
	if len(shown) == 0 {
		if status != "" {
			lines = append(lines, dimStyle.Render(fmt.Sprintf("No %s adoption requests", strings.ToLower(string(status)))))
		} else {
			lines = append(lines, dimStyle.Render("none"))
		}
	}
	for _, r := range shown {
		cat := r.CatName
		if cat == "" {
			cat = names[r.ListingID]
		}
		lines = append(lines, fmt.Sprintf("#%d %s for %s [%s]", r.RequestID, orDash(r.FullName), orDash(cat), r.Status))
	}

	lines = append(lines, "", titleStyle.Render("Accepted requests"))
	if len(ov.Accepted) == 0 {
		lines = append(lines, dimStyle.Render("none"))
	}
	for _, c := range ov.Accepted {
		cat := c.CatName
		if cat == "" {
			cat = names[c.ListingID]
		}
		contact := joinNonEmpty(" ", c.ReceiverEmail, c.ReceiverPhone)
		if !c.HasContact() || contact == "" {
			contact = "no contact details"
		}
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", orDash(cat), orDash(c.ReceiverName), contact))
	}
	return section("Overview", lines...)
}

func renderReview(r services.Review, actorID int64) string {
	req := r.Request
	cat := req.CatName
	if r.Listing != nil && r.Listing.Name != "" {
		cat = r.Listing.Name
	}
	other := "no"
	if req.HasOtherPets {
		other = "yes"
	}
	lines := []string{
		"Cat: " + orDash(cat),
		"From: " + orDash(req.FullName),
		fmt.Sprintf("Age: %d", req.Age),
		"City: " + orDash(req.City),
		"Reason: " + orDash(req.ReasonForAdoption),
		"Living: " + orDash(req.LivingSituation),
		"Experience: " + orDash(string(req.ExperienceLevel)),
		"Other pets: " + other,
		"Status: " + string(req.Status),
	}
	if workflow.CanDecide(actorID, req) {
		lines = append(lines, "", dimStyle.Render("accept | reject"))
	}
	return section(fmt.Sprintf("Request #%d", req.RequestID), lines...)
}

func renderProfile(p models.UserProfile) string {
	return section("Settings",
		"Username: "+orDash(p.Username),
		"Full name: "+orDash(p.FullName),
		"Email: "+orDash(p.Email),
		"Phone: "+orDash(p.Phone),
		"",
		dimStyle.Render("profile to edit"),
	)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
