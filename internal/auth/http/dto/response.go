package dto

import "time"

// TokenIssuedResponse is returned by acquisition routes when no redirect
// destination was supplied. The token itself travels only in the encrypted
// cookie, never in the body.
type TokenIssuedResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
	Scopes    []string  `json:"scopes,omitempty"`
}
