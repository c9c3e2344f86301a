// Package types provides request and response shapes for the profile API.
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/jonathan/profile-site/internal/profile"
)

// CreateProfileRequest creates a new inactive profile. An empty title gets
// the default.
type CreateProfileRequest struct {
	Title string `json:"title" validate:"max=200"`
}

// ContactRevealRequest asks for the contact details of a profile.
type ContactRevealRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

// ContactResponse carries phone and email; both are empty when unset.
type ContactResponse struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// EditorView is everything the editor needs to render one profile: the full
// tree (hidden nodes included, every level ordered) and the tech stack names
// not yet in the skill catalog.
type EditorView struct {
	Profile        profile.Profile `json:"profile"`
	DetectedSkills []string        `json:"detectedSkills"`
}

// SaveResponse is returned after an editor save.
type SaveResponse struct {
	Profile profile.Profile  `json:"profile"`
	Changes *profile.Changes `json:"changes"`
}

// ProfileListResponse lists profile summaries.
type ProfileListResponse struct {
	Profiles []profile.Summary `json:"profiles"`
	Count    int               `json:"count"`
}

// Validate validates the CreateProfileRequest using the validator.
func (r *CreateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ContactRevealRequest using the validator.
func (r *ContactRevealRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
