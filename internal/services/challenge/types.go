package challenge

import "github.com/pecas-dev/twistcaller/internal/models"

// EvaluateInput contains the turn to evaluate
type EvaluateInput struct {
	// TurnNumber is the current round, starting at 1
	TurnNumber int
}

// EvaluateOutput contains the evaluation result
type EvaluateOutput struct {
	// Fired indicates whether a challenge applies to this spin
	Fired bool

	// Challenge is the drawn challenge when Fired is true
	Challenge *models.Challenge
}

// ListChallengesInput contains parameters for listing the catalog
type ListChallengesInput struct{}

// ListChallengesOutput contains the catalog and the active preferences
type ListChallengesOutput struct {
	Challenges []*models.Challenge
	Settings   *models.ChallengeSettings
}

// SetEnabledInput contains the global challenge toggle
type SetEnabledInput struct {
	Enabled bool
}

// SetFrequencyInput contains the firing tier to select
type SetFrequencyInput struct {
	Frequency models.FrequencyTier
}

// SetChallengeEnabledInput contains one catalog entry's toggle
type SetChallengeEnabledInput struct {
	ID      int
	Enabled bool
}
