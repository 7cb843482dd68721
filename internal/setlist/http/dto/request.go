// Package dto contains request and response payloads for the setlist endpoints.
package dto

import (
	"github.com/jellydator/validation"

	appvalidation "github.com/setlistify/setlistify/internal/validation"
)

// CreatePlaylistRequest is the payload for exporting a setlist as a playlist.
type CreatePlaylistRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TrackURIs   []string `json:"trackUris"`
}

// Validate validates the playlist creation payload.
func (r CreatePlaylistRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appvalidation.NotBlank,
			validation.Length(1, 100).Error("name must be between 1 and 100 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 300).Error("description must be at most 300 characters"),
		),
		validation.Field(&r.TrackURIs,
			validation.Required.Error("trackUris is required"),
			validation.Length(1, 100).Error("a playlist holds between 1 and 100 tracks"),
		),
	)
	return appvalidation.WrapValidationError(err)
}
