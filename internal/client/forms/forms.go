package forms

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/safepaws/internal/client/client"
	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/workflow"
)

type SignupForm struct {
	Username string `json:"username" validate:"required,min=3,max=20,username"`
	Password string `json:"password" validate:"required,min=8,max=20,password"`
	FullName string `json:"full_name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,phone"`
}

func (f SignupForm) Input() client.RegisterInput {
	return client.RegisterInput{
		Username: strings.TrimSpace(f.Username),
		Password: f.Password,
		FullName: strings.TrimSpace(f.FullName),
		Email:    strings.TrimSpace(f.Email),
		Phone:    strings.TrimSpace(f.Phone),
	}
}

type LoginForm struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

// ProfileForm edits the signed-in user's profile. Empty fields are left
// unchanged.
type ProfileForm struct {
	FullName string `json:"full_name" validate:"omitempty,min=2,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Password string `json:"password" validate:"omitempty,min=8,max=20,password"`
}

// Empty reports whether the form changes nothing.
func (f ProfileForm) Empty() bool {
	return f.FullName == "" && f.Email == "" && f.Phone == "" && f.Password == ""
}

func (f ProfileForm) Update() client.ProfileUpdate {
	return client.ProfileUpdate{
		FullName: optional(f.FullName),
		Email:    optional(f.Email),
		Phone:    optional(f.Phone),
		Password: optional(f.Password),
	}
}

type AdoptionRequestForm struct {
	ListingID         int64                  `json:"listing_id" validate:"gt=0"`
	City              string                 `json:"city" validate:"notblank"`
	Age               int                    `json:"age" validate:"gt=0"`
	FullName          string                 `json:"full_name" validate:"notblank"`
	ReasonForAdoption string                 `json:"reason_for_adoption" validate:"notblank"`
	LivingSituation   string                 `json:"living_situation" validate:"notblank"`
	ExperienceLevel   models.ExperienceLevel `json:"experience_level" validate:"experience"`
	HasOtherPets      bool                   `json:"has_other_pets"`
}

func (f AdoptionRequestForm) Input() client.RequestInput {
	return client.RequestInput{
		ListingID:         f.ListingID,
		City:              strings.TrimSpace(f.City),
		Age:               f.Age,
		FullName:          strings.TrimSpace(f.FullName),
		ReasonForAdoption: strings.TrimSpace(f.ReasonForAdoption),
		LivingSituation:   strings.TrimSpace(f.LivingSituation),
		ExperienceLevel:   f.ExperienceLevel,
		HasOtherPets:      f.HasOtherPets,
	}
}

// ListingForm creates a listing (cat first, then the listing) or edits an
// existing one when ListingID and CatID are set.
type ListingForm struct {
	ListingID  int64  `json:"listing_id"`
	CatID      int64  `json:"cat_id"`
	Name       string `json:"name" validate:"notblank"`
	Gender     string `json:"gender" validate:"omitempty,oneof=M F UNKNOWN"`
	Age        *int   `json:"age" validate:"omitempty,gte=0"`
	CatNotes   string `json:"cat_notes"`
	ImageURL   string `json:"image_url" validate:"omitempty,url"`
	Vaccinated bool   `json:"vaccinated"`
	Sterilized bool   `json:"sterilized"`
	Notes      string `json:"notes"`
	IsActive   bool   `json:"is_active"`
}

// ListingFormFrom prefills an edit form.
func ListingFormFrom(l models.AdoptionListing) ListingForm {
	return ListingForm{
		ListingID:  l.ListingID,
		CatID:      l.CatID,
		Name:       l.Name,
		Gender:     l.Gender,
		Age:        l.Age,
		CatNotes:   l.CatNotes,
		ImageURL:   l.ImageURL,
		Vaccinated: l.Vaccinated,
		Sterilized: l.Sterilized,
		Notes:      l.Notes,
		IsActive:   l.IsActive,
	}
}

func (f ListingForm) Editing() bool { return f.ListingID != 0 }

func (f ListingForm) Cat() models.Cat {
	return models.Cat{
		Name:     strings.TrimSpace(f.Name),
		Gender:   genderOrUnknown(f.Gender),
		Age:      f.Age,
		Notes:    f.CatNotes,
		ImageURL: f.ImageURL,
	}
}

func (f ListingForm) CatUpdate() client.CatUpdate {
	name := strings.TrimSpace(f.Name)
	gender := genderOrUnknown(f.Gender)
	return client.CatUpdate{
		Name:     &name,
		Gender:   &gender,
		Age:      f.Age,
		Notes:    &f.CatNotes,
		ImageURL: optional(f.ImageURL),
	}
}

func (f ListingForm) Input(catID int64) client.ListingInput {
	return client.ListingInput{
		CatID:      catID,
		Vaccinated: f.Vaccinated,
		Sterilized: f.Sterilized,
		Notes:      f.Notes,
	}
}

func (f ListingForm) Update() client.ListingUpdate {
	return client.ListingUpdate{
		Vaccinated: &f.Vaccinated,
		Sterilized: &f.Sterilized,
		Notes:      &f.Notes,
		IsActive:   &f.IsActive,
	}
}

// InitialConditions are the conditions a new pin may start with.
var InitialConditions = []models.Condition{models.Normal, models.Urgent, models.AtVet, models.Unknown}

// NewPinForm creates a cat and pins it at a coordinate.
type NewPinForm struct {
	Name        string           `json:"name" validate:"notblank"`
	Gender      string           `json:"gender" validate:"omitempty,oneof=M F UNKNOWN"`
	Age         *int             `json:"age" validate:"omitempty,gte=0"`
	Notes       string           `json:"notes"`
	ImageURL    string           `json:"image_url" validate:"omitempty,url"`
	Latitude    float64          `json:"latitude" validate:"gte=16,lte=33"`
	Longitude   float64          `json:"longitude" validate:"gte=34,lte=56"`
	Condition   models.Condition `json:"condition"`
	Description string           `json:"description"`
}

func (f NewPinForm) Cat() models.Cat {
	return models.Cat{
		Name:     strings.TrimSpace(f.Name),
		Gender:   genderOrUnknown(f.Gender),
		Age:      f.Age,
		Notes:    f.Notes,
		ImageURL: f.ImageURL,
	}
}

func newPinLevel(sl validator.StructLevel) {
	f := sl.Current().Interface().(NewPinForm)

	allowed := false
	for _, c := range InitialConditions {
		if f.Condition == c {
			allowed = true
			break
		}
	}
	if !allowed {
		sl.ReportError(f.Condition, "condition", "Condition", "initial", "")
		return
	}
	if workflow.RequiresDescription(f.Condition) && strings.TrimSpace(f.Description) == "" {
		sl.ReportError(f.Description, "description", "Description", "notblank", "")
	}
}

// ConditionForm changes a pin's condition. Permission is checked by the
// workflow gate; the form only checks the description rule.
type ConditionForm struct {
	Target      models.Condition `json:"condition"`
	Description string           `json:"description"`
}

func (f ConditionForm) Update() client.ConditionUpdate {
	return client.ConditionUpdate{Condition: f.Target, Description: optional(strings.TrimSpace(f.Description))}
}

func conditionLevel(sl validator.StructLevel) {
	f := sl.Current().Interface().(ConditionForm)
	if workflow.RequiresDescription(f.Target) && strings.TrimSpace(f.Description) == "" {
		sl.ReportError(f.Description, "description", "Description", "notblank", "")
	}
}

type ContributionForm struct {
	Text string `json:"activity_description" validate:"notblank,max=500"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func genderOrUnknown(g string) string {
	if g == "" {
		return models.GenderUnknown
	}
	return g
}
