package client

import (
	"context"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
)

// Client is the SafePaws backend API as the terminal client uses it.
type Client interface {
	Health(ctx context.Context) error

	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, username, password string) (string, error)
	GetProfile(ctx context.Context) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, in ProfileUpdate) (models.UserProfile, error)

	ListPins(ctx context.Context) ([]models.Pin, error)
	CreatePin(ctx context.Context, in PinInput) (models.Pin, error)
	UpdatePinCondition(ctx context.Context, locationID int64, in ConditionUpdate) (models.Pin, error)
	DeletePin(ctx context.Context, locationID int64) error

	CreateCat(ctx context.Context, in models.Cat) (models.Cat, error)
	UpdateCat(ctx context.Context, catID int64, in CatUpdate) (models.Cat, error)

	ListListings(ctx context.Context) ([]models.AdoptionListing, error)
	CreateListing(ctx context.Context, in ListingInput) (models.AdoptionListing, error)
	UpdateListing(ctx context.Context, listingID int64, in ListingUpdate) (models.AdoptionListing, error)

	CreateRequest(ctx context.Context, in RequestInput) (models.AdoptionRequest, error)
	GetRequest(ctx context.Context, requestID int64) (models.AdoptionRequest, error)
	ListIncomingAll(ctx context.Context) ([]models.AdoptionRequest, error)
	ListSent(ctx context.Context) ([]models.AdoptionRequest, error)
	ListSentAccepted(ctx context.Context) ([]models.AcceptedContact, error)
	DecideRequest(ctx context.Context, requestID int64, status models.RequestStatus) error

	ListCatActivity(ctx context.Context, catID int64) ([]models.ActivityLogEntry, error)
	CreateActivity(ctx context.Context, in ActivityInput) (models.ActivityLogEntry, error)

	ListNotifications(ctx context.Context) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, notificationID int64) error
}

// TokenSource yields the current bearer token. An empty token with a nil
// error means the user is signed out.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed TokenSource, mostly for tests and scripts.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) { return string(t), nil }

type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ProfileUpdate carries only the fields being changed.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Password *string `json:"password,omitempty"`
}

type PinInput struct {
	CatID     int64   `json:"cat_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ConditionUpdate struct {
	Condition   models.Condition `json:"condition"`
	Description *string          `json:"description"`
}

type CatUpdate struct {
	Name     *string `json:"name,omitempty"`
	Gender   *string `json:"gender,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

type ListingInput struct {
	CatID      int64  `json:"cat_id"`
	Vaccinated bool   `json:"vaccinated"`
	Sterilized bool   `json:"sterilized"`
	Notes      string `json:"notes,omitempty"`
}

type ListingUpdate struct {
	Vaccinated *bool   `json:"vaccinated,omitempty"`
	Sterilized *bool   `json:"sterilized,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

type RequestInput struct {
	ListingID         int64                  `json:"listing_id"`
	City              string                 `json:"city"`
	Age               int                    `json:"age"`
	FullName          string                 `json:"full_name"`
	ReasonForAdoption string                 `json:"reason_for_adoption"`
	LivingSituation   string                 `json:"living_situation"`
	ExperienceLevel   models.ExperienceLevel `json:"experience_level"`
	HasOtherPets      bool                   `json:"has_other_pets"`
}

type ActivityInput struct {
	CatID       int64  `json:"cat_id"`
	Description string `json:"activity_description"`
}
