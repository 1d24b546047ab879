package game

import "github.com/pecas-dev/twistcaller/internal/models"

// AddPlayerInput contains the player to add
type AddPlayerInput struct {
	Name string
}

// AddPlayerOutput contains the updated rotation
type AddPlayerOutput struct {
	Players []string
}

// RemovePlayerInput contains the player to remove
type RemovePlayerInput struct {
	Name string
}

// RemovePlayerOutput contains the updated rotation
type RemovePlayerOutput struct {
	Players []string
}

// ListPlayersInput contains parameters for listing the rotation
type ListPlayersInput struct{}

// ListPlayersOutput contains the rotation in order
type ListPlayersOutput struct {
	Players []string
}

// SetModeInput contains the advancement mode to select
type SetModeInput struct {
	Mode models.TurnMode
}

// SetTimerDurationInput contains the requested countdown length
type SetTimerDurationInput struct {
	Seconds int
}

// SetTimerDurationOutput contains the clamped, persisted length
type SetTimerDurationOutput struct {
	Seconds int
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct{}

// StartGameOutput contains the fresh session and the first spin
type StartGameOutput struct {
	Session   *models.GameSession
	Spin      *models.SpinResult
	Challenge *models.Challenge
}

// SpinInput contains parameters for spinning
type SpinInput struct{}

// SpinOutput contains the draw and any challenge fired on top of it
type SpinOutput struct {
	Session   *models.GameSession
	Result    *models.SpinResult
	Challenge *models.Challenge
}

// AdvanceTurnInput contains parameters for advancing the turn
type AdvanceTurnInput struct{}

// AdvanceTurnOutput contains the new current player's spin
type AdvanceTurnOutput struct {
	Session   *models.GameSession
	Result    *models.SpinResult
	Challenge *models.Challenge
}

// EndGameInput contains parameters for ending the game
type EndGameInput struct{}

// EndGameOutput reports whether the host confirmed
type EndGameOutput struct {
	Ended bool
}

// GetStateInput contains parameters for reading the session
type GetStateInput struct{}

// GetStateOutput is a render-ready snapshot of the session
type GetStateOutput struct {
	Session   *models.GameSession
	Countdown *models.CountdownState
	Spin      *models.SpinResult
	Challenge *models.Challenge

	// TimerSeconds is the configured base countdown length
	TimerSeconds int
}
