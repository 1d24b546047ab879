package models

import (
	"time"
)

// TokenSet holds the bridge's delegated-authorization credentials
type TokenSet struct {
	// AccessToken is the bearer token for playback calls
	AccessToken string `json:"accessToken"`

	// RefreshToken is used to obtain a new access token after expiry
	RefreshToken string `json:"refreshToken,omitempty"`

	// ExpiresAt is when the access token stops being usable
	// (stored with a safety buffer already subtracted)
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the access token should no longer be used
func (t *TokenSet) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
