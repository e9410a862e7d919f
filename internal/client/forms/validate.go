// Package forms holds the input forms of the terminal client and validates
// them before anything is sent to the backend. Failures are reported per
// field so the prompt can show them inline and let the user retry.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
)

// FieldErrors maps a form field (its json name) to a message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

// Fields returns the failing field names in sorted order.
func (fe FieldErrors) Fields() []string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	letterRe   = regexp.MustCompile(`[A-Za-z]`)
	digitRe    = regexp.MustCompile(`\d`)
	phoneRe    = regexp.MustCompile(`^05\d{8}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "password", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return letterRe.MatchString(s) && digitRe.MatchString(s)
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "experience", func(fl validator.FieldLevel) bool {
		return models.ExperienceLevel(fl.Field().String()).Valid()
	})

	v.RegisterStructValidation(newPinLevel, NewPinForm{})
	v.RegisterStructValidation(conditionLevel, ConditionForm{})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

// Validate checks form and returns FieldErrors, or nil when it is valid.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

// messages overrides the generic text for a field/tag pair.
var messages = map[string]string{
	"username.username":            "Username can only contain letters, numbers, and _",
	"password.password":            "Password must contain at least one letter and one number",
	"phone.phone":                  "Phone must start with 05 and be 10 digits long",
	"age.gt":                       "Valid age is required",
	"age.gte":                      "Age must be a valid positive number",
	"name.notblank":                "Cat name is required",
	"city.notblank":                "City is required",
	"full_name.notblank":           "Full name is required",
	"reason_for_adoption.notblank": "Reason for adoption is required",
	"living_situation.notblank":    "Living situation is required",
	"latitude.gte":                 "Latitude must be between 16 and 33",
	"latitude.lte":                 "Latitude must be between 16 and 33",
	"longitude.gte":                "Longitude must be between 34 and 56",
	"longitude.lte":                "Longitude must be between 34 and 56",
	"description.notblank":         "A description is required for this condition",
	"condition.initial":            "Initial condition must be Normal, Urgent, At Vet or Unknown",
}

func message(fe validator.FieldError) string {
	if m, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return m
	}

	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "email":
		return "Enter a valid email address"
	case "url":
		return "Enter a valid URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	case "experience":
		return "Choose an experience level"
	case "gt", "gte", "lt", "lte":
		return fmt.Sprintf("%s is out of range", label)
	}
	return label + " is invalid"
}

func humanize(field string) string {
	s := strings.ReplaceAll(field, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
