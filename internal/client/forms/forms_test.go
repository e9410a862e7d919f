package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/safepaws/internal/client/models"
)

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	require.Error(t, err)
	var fe FieldErrors
	require.True(t, errors.As(err, &fe), "expected FieldErrors, got %T", err)
	return fe
}

func validSignup() SignupForm {
	return SignupForm{
		Username: "cat_lover1",
		Password: "secret123",
		FullName: "Dana Levi",
		Email:    "dana@example.com",
		Phone:    "0521234567",
	}
}

func TestSignupForm(t *testing.T) {
	require.NoError(t, Validate(validSignup()))

	tests := []struct {
		name   string
		mutate func(*SignupForm)
		field  string
		msg    string
	}{
		{"short username", func(f *SignupForm) { f.Username = "ab" }, "username", "Username must be at least 3 characters"},
		{"bad username chars", func(f *SignupForm) { f.Username = "dana!" }, "username", "Username can only contain letters, numbers, and _"},
		{"password without digit", func(f *SignupForm) { f.Password = "abcdefgh" }, "password", "Password must contain at least one letter and one number"},
		{"password too long", func(f *SignupForm) { f.Password = "abcdefghij1234567890x" }, "password", "Password must be at most 20 characters"},
		{"bad email", func(f *SignupForm) { f.Email = "dana" }, "email", "Enter a valid email address"},
		{"bad phone", func(f *SignupForm) { f.Phone = "0721234567" }, "phone", "Phone must start with 05 and be 10 digits long"},
		{"missing name", func(f *SignupForm) { f.FullName = "" }, "full_name", "Full name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validSignup()
			tt.mutate(&f)
			fe := fieldErrors(t, Validate(f))
			assert.Equal(t, []string{tt.field}, fe.Fields())
			assert.Equal(t, tt.msg, fe[tt.field])
		})
	}
}

func TestSignupForm_InputTrims(t *testing.T) {
	f := validSignup()
	f.Username = "  dana  "
	in := f.Input()
	assert.Equal(t, "dana", in.Username)
	assert.Equal(t, "secret123", in.Password)
}

func TestLoginForm(t *testing.T) {
	require.NoError(t, Validate(LoginForm{Username: "dana", Password: "x"}))

	fe := fieldErrors(t, Validate(LoginForm{Username: "  "}))
	assert.Equal(t, []string{"password", "username"}, fe.Fields())
}

func TestProfileForm(t *testing.T) {
	empty := ProfileForm{}
	assert.True(t, empty.Empty())
	require.NoError(t, Validate(empty))
	assert.Equal(t, (*string)(nil), empty.Update().Email)

	f := ProfileForm{Email: "new@example.com"}
	require.NoError(t, Validate(f))
	u := f.Update()
	require.NotNil(t, u.Email)
	assert.Equal(t, "new@example.com", *u.Email)
	assert.Nil(t, u.Phone)

	fe := fieldErrors(t, Validate(ProfileForm{Phone: "123"}))
	assert.Contains(t, fe, "phone")
}

func validRequest() AdoptionRequestForm {
	return AdoptionRequestForm{
		ListingID:         4,
		City:              "Haifa",
		Age:               30,
		FullName:          "Dana Levi",
		ReasonForAdoption: "Company",
		LivingSituation:   "Apartment",
		ExperienceLevel:   models.ExperienceMinimal,
	}
}

func TestAdoptionRequestForm(t *testing.T) {
	require.NoError(t, Validate(validRequest()))

	f := AdoptionRequestForm{ListingID: 4, Age: 0, City: " ", ExperienceLevel: "Expert"}
	fe := fieldErrors(t, Validate(f))
	assert.Equal(t, "City is required", fe["city"])
	assert.Equal(t, "Valid age is required", fe["age"])
	assert.Equal(t, "Full name is required", fe["full_name"])
	assert.Equal(t, "Reason for adoption is required", fe["reason_for_adoption"])
	assert.Equal(t, "Living situation is required", fe["living_situation"])
	assert.Equal(t, "Choose an experience level", fe["experience_level"])
}

func TestAdoptionRequestForm_Input(t *testing.T) {
	f := validRequest()
	f.City = " Haifa "
	in := f.Input()
	assert.Equal(t, int64(4), in.ListingID)
	assert.Equal(t, "Haifa", in.City)
	assert.Equal(t, models.ExperienceMinimal, in.ExperienceLevel)
}

func TestListingForm(t *testing.T) {
	age := 2
	f := ListingForm{Name: "Mitzi", Age: &age}
	require.NoError(t, Validate(f))
	assert.False(t, f.Editing())
	assert.Equal(t, models.GenderUnknown, f.Cat().Gender)

	neg := -1
	fe := fieldErrors(t, Validate(ListingForm{Name: "", Age: &neg, Gender: "X"}))
	assert.Equal(t, "Cat name is required", fe["name"])
	assert.Equal(t, "Age must be a valid positive number", fe["age"])
	assert.Contains(t, fe, "gender")

	fe = fieldErrors(t, Validate(ListingForm{Name: "Mitzi", ImageURL: "not a url"}))
	assert.Equal(t, "Enter a valid URL", fe["image_url"])
}

func TestListingFormFrom(t *testing.T) {
	l := models.AdoptionListing{ListingID: 9, CatID: 3, Name: "Mitzi", Gender: "F", Vaccinated: true, IsActive: true, Notes: "calm"}
	f := ListingFormFrom(l)
	assert.True(t, f.Editing())

	u := f.Update()
	require.NotNil(t, u.Vaccinated)
	assert.True(t, *u.Vaccinated)
	assert.False(t, *u.Sterilized)
	assert.Equal(t, "calm", *u.Notes)
	assert.True(t, *u.IsActive)

	cu := f.CatUpdate()
	assert.Equal(t, "Mitzi", *cu.Name)
	assert.Equal(t, "F", *cu.Gender)
	assert.Nil(t, cu.ImageURL)

	in := f.Input(3)
	assert.Equal(t, int64(3), in.CatID)
	assert.True(t, in.Vaccinated)
}

func validPin() NewPinForm {
	return NewPinForm{Name: "Shuki", Latitude: 32.08, Longitude: 34.78, Condition: models.Normal}
}

func TestNewPinForm(t *testing.T) {
	require.NoError(t, Validate(validPin()))

	tests := []struct {
		name   string
		mutate func(*NewPinForm)
		field  string
		msg    string
	}{
		{"latitude south", func(f *NewPinForm) { f.Latitude = 10 }, "latitude", "Latitude must be between 16 and 33"},
		{"longitude east", func(f *NewPinForm) { f.Longitude = 60 }, "longitude", "Longitude must be between 34 and 56"},
		{"adopted not initial", func(f *NewPinForm) { f.Condition = models.Adopted }, "condition", "Initial condition must be Normal, Urgent, At Vet or Unknown"},
		{"passed not initial", func(f *NewPinForm) { f.Condition = models.Passed }, "condition", "Initial condition must be Normal, Urgent, At Vet or Unknown"},
		{"urgent without description", func(f *NewPinForm) { f.Condition = models.Urgent; f.Description = " " }, "description", "A description is required for this condition"},
		{"at vet without description", func(f *NewPinForm) { f.Condition = models.AtVet }, "description", "A description is required for this condition"},
		{"blank name", func(f *NewPinForm) { f.Name = "  " }, "name", "Cat name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validPin()
			tt.mutate(&f)
			fe := fieldErrors(t, Validate(f))
			assert.Equal(t, tt.msg, fe[tt.field])
		})
	}

	f := validPin()
	f.Condition = models.Urgent
	f.Description = "limping"
	require.NoError(t, Validate(f))

	f = validPin()
	f.Condition = models.Unknown
	require.NoError(t, Validate(f))
}

func TestConditionForm(t *testing.T) {
	require.NoError(t, Validate(ConditionForm{Target: models.Adopted}))
	require.NoError(t, Validate(ConditionForm{Target: models.Normal}))

	fe := fieldErrors(t, Validate(ConditionForm{Target: models.AtVet, Description: "\t"}))
	assert.Equal(t, []string{"description"}, fe.Fields())

	u := ConditionForm{Target: models.Urgent, Description: " hit by car "}.Update()
	assert.Equal(t, models.Urgent, u.Condition)
	require.NotNil(t, u.Description)
	assert.Equal(t, "hit by car", *u.Description)

	assert.Nil(t, ConditionForm{Target: models.Normal}.Update().Description)
}

func TestContributionForm(t *testing.T) {
	require.NoError(t, Validate(ContributionForm{Text: "fed him"}))
	fe := fieldErrors(t, Validate(ContributionForm{Text: " "}))
	assert.Equal(t, "Activity description is required", fe["activity_description"])
}

func TestFieldErrors_Error(t *testing.T) {
	fe := FieldErrors{"b": "two", "a": "one"}
	assert.Equal(t, "a: one; b: two", fe.Error())
}
