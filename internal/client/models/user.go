package models

// UserProfile is the authenticated user's own profile.
type UserProfile struct {
	UserID            int64  `json:"user_id"`
	Username          string `json:"username"`
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}
