package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// AdoptionListing is a formal offer of a cat for adoption. Cat fields are
// denormalised into the listing by the backend.
type AdoptionListing struct {
	ListingID  int64     `json:"listing_id"`
	CatID      int64     `json:"cat_id"`
	Name       string    `json:"name,omitempty"`
	Age        *int      `json:"age,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	CatNotes   string    `json:"cat_notes,omitempty"`
	IsActive   bool      `json:"is_active"`
	Vaccinated bool      `json:"vaccinated"`
	Sterilized bool      `json:"sterilized"`
	Notes      string    `json:"notes,omitempty"`
	UploaderID int64     `json:"uploader_id"`
	CreatedAt  Timestamp `json:"created_at"`
}

// RequestStatus is the decision state of an adoption request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusAccepted RequestStatus = "Accepted"
	StatusRejected RequestStatus = "Rejected"
)

var ErrUnknownStatus = errors.New("unknown request status")

// Valid reports whether s is one of the declared statuses.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether a request may move from s to next. Status is
// monotonic: only a pending request can be decided.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	return s == StatusPending && (next == StatusAccepted || next == StatusRejected)
}

// UnmarshalJSON rejects unknown statuses. An empty string leaves the status
// unset.
func (s *RequestStatus) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	rs := RequestStatus(v)
	if rs != "" && !rs.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, v)
	}
	*s = rs
	return nil
}

// ExperienceLevel is the applicant's self-declared experience with cats.
type ExperienceLevel string

const (
	ExperienceNone    ExperienceLevel = "None"
	ExperienceMinimal ExperienceLevel = "Minimal"
	ExperienceFair    ExperienceLevel = "Fairly experienced"
	ExperienceGood    ExperienceLevel = "Good with cats"
)

// ExperienceLevels lists the accepted values in display order.
var ExperienceLevels = []ExperienceLevel{ExperienceNone, ExperienceMinimal, ExperienceFair, ExperienceGood}

// Valid reports whether e is one of ExperienceLevels.
func (e ExperienceLevel) Valid() bool {
	for _, l := range ExperienceLevels {
		if e == l {
			return true
		}
	}
	return false
}

// AdoptionRequest is an application submitted against a listing.
type AdoptionRequest struct {
	RequestID         int64           `json:"request_id"`
	ListingID         int64           `json:"listing_id"`
	SenderID          int64           `json:"sender_id"`
	ReceiverID        int64           `json:"receiver_id"`
	SenderName        string          `json:"sender_name,omitempty"`
	CatName           string          `json:"cat_name,omitempty"`
	FullName          string          `json:"full_name"`
	Age               int             `json:"age"`
	City              string          `json:"city"`
	ReasonForAdoption string          `json:"reason_for_adoption"`
	LivingSituation   string          `json:"living_situation"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	HasOtherPets      bool            `json:"has_other_pets"`
	Status            RequestStatus   `json:"status"`
	SubmittedAt       Timestamp       `json:"submitted_at"`
}

// AcceptedContact is the uploader contact disclosed to an applicant once
// their request is accepted.
type AcceptedContact struct {
	RequestID     int64         `json:"request_id"`
	ListingID     int64         `json:"listing_id"`
	CatName       string        `json:"cat_name,omitempty"`
	ReceiverID    int64         `json:"receiver_id"`
	ReceiverName  string        `json:"receiver_name,omitempty"`
	ReceiverEmail string        `json:"receiver_email,omitempty"`
	ReceiverPhone string        `json:"receiver_phone,omitempty"`
	Status        RequestStatus `json:"status,omitempty"`
	SubmittedAt   Timestamp     `json:"submitted_at"`
}

// HasContact reports whether at least one contact channel was disclosed.
func (c AcceptedContact) HasContact() bool {
	return c.ReceiverEmail != "" || c.ReceiverPhone != ""
}
