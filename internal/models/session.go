package models

// TurnMode controls how the game advances between players
type TurnMode string

const (
	// TurnModeManual advances turns on an explicit user action
	TurnModeManual TurnMode = "manual"

	// TurnModeTimed advances turns automatically when the countdown expires
	TurnModeTimed TurnMode = "timed"
)

// GamePhase represents the current state of the turn pipeline
type GamePhase string

const (
	// PhaseSetup indicates no game is running; players can be edited
	PhaseSetup GamePhase = "setup"

	// PhaseSpinning indicates a spin is being drawn for the current player
	PhaseSpinning GamePhase = "spinning"

	// PhaseAwaitingAnnouncement indicates voice output is in progress
	PhaseAwaitingAnnouncement GamePhase = "awaiting_announcement"

	// PhaseCountingDown indicates the turn countdown is running (timed mode only)
	PhaseCountingDown GamePhase = "counting_down"

	// PhaseAwaitingManualAdvance indicates the game is waiting for the next-player action (manual mode only)
	PhaseAwaitingManualAdvance GamePhase = "awaiting_manual_advance"

	// PhaseEnded indicates the game has been ended
	PhaseEnded GamePhase = "ended"
)

// GameSession holds the state of a running game.
// CurrentPlayerIndex always stays within [0, len(Players)) and wraps
// modulo len(Players); TurnNumber counts completed rotations (rounds),
// incrementing only when the index wraps back to 0.
type GameSession struct {
	// ID is the unique identifier for this session
	ID string `json:"id"`

	// Players is the ordered rotation of player names
	Players []string `json:"players"`

	// CurrentPlayerIndex points at the player whose turn it is
	CurrentPlayerIndex int `json:"currentPlayerIndex"`

	// TurnNumber is the current round, starting at 1
	TurnNumber int `json:"turnNumber"`

	// Mode controls manual vs timed advancement
	Mode TurnMode `json:"mode"`

	// Phase is the current state of the turn pipeline
	Phase GamePhase `json:"phase"`
}

// CurrentPlayer returns the name of the player whose turn it is
func (s *GameSession) CurrentPlayer() string {
	if len(s.Players) == 0 {
		return ""
	}
	return s.Players[s.CurrentPlayerIndex]
}

// CountdownState tracks the running turn countdown
type CountdownState struct {
	// RemainingSeconds is the time left before auto-advance
	RemainingSeconds int `json:"remainingSeconds"`

	// BonusSeconds is the extra time granted by a fired challenge
	BonusSeconds int `json:"bonusSeconds"`

	// Active indicates whether a countdown is currently running
	Active bool `json:"active"`
}
