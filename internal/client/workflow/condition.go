package workflow

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
)

var (
	ErrForbidden           = errors.New("only the user who added this pin can set this condition")
	ErrDescriptionRequired = errors.New("a description is required for this condition")
	ErrNotAuthenticated    = errors.New("login required")
)

// CanSetAdoptedOrPassed reports whether actorID added pin.
func CanSetAdoptedOrPassed(actorID int64, pin models.Pin) bool {
	return actorID != 0 && pin.AddingUserID == actorID
}

// CanSetCondition reports whether actorID may move pin to target. Adopted
// and Passed are reserved for the pin's creator; any logged-in actor may set
// the rest.
func CanSetCondition(actorID int64, pin models.Pin, target models.Condition) bool {
	if actorID == 0 {
		return false
	}
	switch target {
	case models.Adopted, models.Passed:
		return CanSetAdoptedOrPassed(actorID, pin)
	}
	return true
}

// RequiresDescription reports whether moving to target needs a description.
func RequiresDescription(target models.Condition) bool {
	return target == models.Urgent || target == models.AtVet
}

// ValidateConditionChange checks a condition change before it is submitted.
// Whitespace-only descriptions count as empty.
func ValidateConditionChange(actorID int64, pin models.Pin, target models.Condition, description string) error {
	if actorID == 0 {
		return ErrNotAuthenticated
	}
	if !CanSetCondition(actorID, pin, target) {
		return ErrForbidden
	}
	if RequiresDescription(target) && strings.TrimSpace(description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// SettableConditions lists the targets the condition form offers actorID.
func SettableConditions(actorID int64, pin models.Pin) []models.Condition {
	out := make([]models.Condition, 0, len(models.AllConditions))
	for _, c := range models.AllConditions {
		if CanSetCondition(actorID, pin, c) {
			out = append(out, c)
		}
	}
	return out
}

// CanContribute reports whether field updates may be logged for pin. Cats at
// the vet, adopted or passed are unavailable.
func CanContribute(pin models.Pin) bool {
	switch pin.Condition {
	case models.AtVet, models.Adopted, models.Passed:
		return false
	}
	return true
}
