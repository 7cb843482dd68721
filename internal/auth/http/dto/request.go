// Package dto contains request and response payloads for the auth endpoints.
package dto

import (
	"github.com/jellydator/validation"

	appvalidation "github.com/setlistify/setlistify/internal/validation"
)

// CallbackRequest carries the query parameters of the identity provider's
// redirect back to us.
type CallbackRequest struct {
	Code  string `form:"code"`
	State string `form:"state"`
}

// Validate validates the callback parameters.
func (r CallbackRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required, appvalidation.NotBlank),
	)
	return appvalidation.WrapValidationError(err)
}

// GenerateAccessTokenRequest carries the optional redirect destination for the
// client-credentials acquisition route.
type GenerateAccessTokenRequest struct {
	Redirect string `form:"redirect"`
	Query    string `form:"query"`
}
