package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Condition is the health/availability flag of a pinned animal.
type Condition uint8

// The zero value is Normal, matching the backend default for empty values.
const (
	Normal Condition = iota
	Urgent
	AtVet
	Adopted
	Passed
	Unknown
)

// AllConditions lists every condition in display order.
var AllConditions = []Condition{Normal, Urgent, AtVet, Adopted, Passed, Unknown}

// ErrUnknownCondition is returned for condition labels or values outside
// AllConditions.
var ErrUnknownCondition = errors.New("unknown condition")

// String returns the wire value.
func (c Condition) String() string {
	switch c {
	case Normal:
		return "NORMAL"
	case Urgent:
		return "URGENT"
	case AtVet:
		return "AT VET"
	case Adopted:
		return "ADOPTED"
	case Passed:
		return "PASSED"
	case Unknown:
		return "UNKNOWN"
	}
	return fmt.Sprintf("Condition(%d)", uint8(c))
}

// Label returns a human readable name.
func (c Condition) Label() string {
	switch c {
	case Normal:
		return "Normal"
	case Urgent:
		return "Urgent"
	case AtVet:
		return "At Vet"
	case Adopted:
		return "Adopted"
	case Passed:
		return "Passed"
	case Unknown:
		return "Unknown"
	}
	return c.String()
}

// ParseCondition accepts wire values case-insensitively. "AT_VET" and
// "AT VET" both map to AtVet; blank maps to Normal.
func ParseCondition(s string) (Condition, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NORMAL":
		return Normal, nil
	case "URGENT":
		return Urgent, nil
	case "AT VET", "AT_VET", "ATVET":
		return AtVet, nil
	case "ADOPTED":
		return Adopted, nil
	case "PASSED":
		return Passed, nil
	case "UNKNOWN":
		return Unknown, nil
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownCondition, s)
}

func (c Condition) MarshalJSON() ([]byte, error) {
	if c > Unknown {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCondition, uint8(c))
	}
	return json.Marshal(c.String())
}

func (c *Condition) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = Normal
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseCondition(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.5f,%.5f", c.Latitude, c.Longitude)
}

// Pin is a map-located record of a community-tracked cat.
type Pin struct {
	LocationID     int64     `json:"location_id"`
	CatID          int64     `json:"cat_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Condition      Condition `json:"condition"`
	AddingUserID   int64     `json:"adding_user_id,omitempty"`
	AddingUsername string    `json:"adding_user_username,omitempty"`
	Name           string    `json:"name,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	Age            *int      `json:"age,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	CreatedAt      Timestamp `json:"created_at"`
}

// Coordinate returns the pin position.
func (p Pin) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// DisplayName falls back to the cat id when the pin carries no name.
func (p Pin) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Cat #%d", p.CatID)
}
