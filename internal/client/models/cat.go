package models

// Gender values accepted by the backend.
const (
	GenderMale    = "M"
	GenderFemale  = "F"
	GenderUnknown = "UNKNOWN"
)

// Cat is the animal record behind pins and listings.
type Cat struct {
	CatID    int64  `json:"cat_id,omitempty"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Age      *int   `json:"age,omitempty"`
	Notes    string `json:"notes,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}
