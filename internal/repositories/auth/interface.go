package auth

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pecas-dev/twistcaller/internal/repositories/auth Repository

// Repository defines the interface for the bridge's persisted credentials.
// Tokens survive restarts; the PKCE verifier and state are transient and
// expire on their own if the authorization round-trip never completes.
type Repository interface {
	// GetTokens retrieves the stored token set
	GetTokens(ctx context.Context, input *GetTokensInput) (*GetTokensOutput, error)

	// SaveTokens persists the token set
	SaveTokens(ctx context.Context, input *SaveTokensInput) error

	// DeleteTokens removes the stored token set (disconnect / auth failure)
	DeleteTokens(ctx context.Context, input *DeleteTokensInput) error

	// SavePKCE stores the in-flight authorization verifier and state
	SavePKCE(ctx context.Context, input *SavePKCEInput) error

	// GetPKCE retrieves the in-flight authorization verifier and state
	GetPKCE(ctx context.Context, input *GetPKCEInput) (*GetPKCEOutput, error)

	// ClearPKCE removes the in-flight authorization values
	ClearPKCE(ctx context.Context, input *ClearPKCEInput) error
}
