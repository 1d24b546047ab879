package auth

import "github.com/pecas-dev/twistcaller/internal/models"

// GetTokensInput contains parameters for retrieving the token set
type GetTokensInput struct{}

// GetTokensOutput contains the stored token set
type GetTokensOutput struct {
	Tokens *models.TokenSet
}

// SaveTokensInput contains the token set to persist
type SaveTokensInput struct {
	Tokens *models.TokenSet
}

// DeleteTokensInput contains parameters for removing the token set
type DeleteTokensInput struct{}

// SavePKCEInput contains the in-flight authorization values
type SavePKCEInput struct {
	Verifier string
	State    string
}

// GetPKCEInput contains parameters for retrieving the in-flight values
type GetPKCEInput struct{}

// GetPKCEOutput contains the in-flight authorization values
type GetPKCEOutput struct {
	Verifier string
	State    string
}

// ClearPKCEInput contains parameters for removing the in-flight values
type ClearPKCEInput struct{}
