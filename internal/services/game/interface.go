package game

import (
	"context"
	"errors"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/pecas-dev/twistcaller/internal/services/game Service,Confirmer

var (
	// ErrEmptyPlayerName is returned when a player name is blank
	ErrEmptyPlayerName = errors.New("player name cannot be empty")

	// ErrDuplicatePlayer is returned when the name is already in the roster
	ErrDuplicatePlayer = errors.New("player already exists")

	// ErrPlayerNotFound is returned when the name is not in the roster
	ErrPlayerNotFound = errors.New("player not found")

	// ErrInsufficientPlayers is returned when starting with fewer than two players
	ErrInsufficientPlayers = errors.New("at least two players required")

	// ErrGameNotRunning is returned for turn operations outside a game
	ErrGameNotRunning = errors.New("no game in progress")

	// ErrCountdownActive is returned when spinning while the countdown runs
	ErrCountdownActive = errors.New("countdown still active")
)

// Confirmer asks the host to confirm a destructive action
type Confirmer interface {
	// Confirm returns true when the host approves
	Confirm(ctx context.Context, prompt string) bool
}

// Service orchestrates the turn pipeline: roster, spins, announcements,
// the countdown, and turn advancement
type Service interface {
	// AddPlayer appends a player to the rotation
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer removes a player from the rotation
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// ListPlayers returns the rotation in order
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// SetMode switches between manual and timed advancement
	SetMode(ctx context.Context, input *SetModeInput) error

	// SetTimerDuration sets the base countdown length, clamped to the
	// supported range
	SetTimerDuration(ctx context.Context, input *SetTimerDurationInput) (*SetTimerDurationOutput, error)

	// StartGame begins a new game and spins the first turn
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// Spin draws a color and limb for the current player
	Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error)

	// AdvanceTurn moves to the next player and spins for them
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error)

	// EndGame ends the game after host confirmation
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// GetState returns a snapshot of the session for rendering
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// Subscribe registers a listener for game events; the returned
	// function unsubscribes it
	Subscribe() (<-chan Event, func())
}
