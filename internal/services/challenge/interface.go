package challenge

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/pecas-dev/twistcaller/internal/services/challenge Service

// Service decides whether a spin gets a challenge on top, and manages
// the challenge preferences
type Service interface {
	// Evaluate decides whether a challenge fires for the given turn and,
	// if so, which one
	Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error)

	// ListChallenges returns the catalog merged with the persisted flags
	ListChallenges(ctx context.Context, input *ListChallengesInput) (*ListChallengesOutput, error)

	// SetEnabled toggles the challenge system globally
	SetEnabled(ctx context.Context, input *SetEnabledInput) error

	// SetFrequency selects the firing tier
	SetFrequency(ctx context.Context, input *SetFrequencyInput) error

	// SetChallengeEnabled toggles one catalog entry
	SetChallengeEnabled(ctx context.Context, input *SetChallengeEnabledInput) error
}
