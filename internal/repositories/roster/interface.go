package roster

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pecas-dev/twistcaller/internal/repositories/roster Repository

// Repository defines the interface for persisting the player roster
type Repository interface {
	// GetPlayers retrieves the ordered player list
	GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error)

	// SavePlayers persists the ordered player list, replacing the previous one
	SavePlayers(ctx context.Context, input *SavePlayersInput) error
}
