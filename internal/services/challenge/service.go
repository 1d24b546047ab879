package challenge

import (
	"context"
	"errors"
	"fmt"

	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/repositories/settings"
	"github.com/pecas-dev/twistcaller/internal/spinner"
)

var (
	// ErrInvalidFrequency is returned for an unknown tier name
	ErrInvalidFrequency = errors.New("invalid challenge frequency")

	// ErrUnknownChallenge is returned for an ID outside the catalog
	ErrUnknownChallenge = errors.New("unknown challenge")
)

// Config holds configuration for the challenge service
type Config struct {
	// SettingsRepository persists the challenge preferences
	SettingsRepository settings.Repository

	// Roller provides the firing roll and the uniform pick
	Roller spinner.Roller
}

type service struct {
	settings settings.Repository
	roller   spinner.Roller
}

// New creates a new challenge service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SettingsRepository == nil {
		return nil, errors.New("settings repository cannot be nil")
	}

	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	return &service{
		settings: cfg.SettingsRepository,
		roller:   cfg.Roller,
	}, nil
}

// Evaluate decides whether a challenge fires for the given turn. The
// decision has no memory: each spin is an independent roll.
func (s *service) Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	prefs, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	if !prefs.Enabled {
		return &EvaluateOutput{}, nil
	}

	tier, ok := models.TierTable[prefs.Frequency]
	if !ok {
		tier = models.TierTable[models.FrequencyMedium]
	}

	if input.TurnNumber < tier.MinTurns {
		return &EvaluateOutput{}, nil
	}

	if s.roller.Float64() >= tier.Probability {
		return &EvaluateOutput{}, nil
	}

	pool := enabledChallenges(prefs)
	if len(pool) == 0 {
		return &EvaluateOutput{}, nil
	}

	drawn := pool[s.roller.PickIndex(len(pool))]
	return &EvaluateOutput{
		Fired:     true,
		Challenge: &drawn,
	}, nil
}

// ListChallenges returns the catalog merged with the persisted flags
func (s *service) ListChallenges(ctx context.Context, input *ListChallengesInput) (*ListChallengesOutput, error) {
	prefs, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	challenges := make([]*models.Challenge, 0, len(catalog))
	for _, c := range catalog {
		entry := c
		entry.Enabled = !prefs.IsDisabled(c.ID)
		challenges = append(challenges, &entry)
	}

	return &ListChallengesOutput{
		Challenges: challenges,
		Settings:   prefs,
	}, nil
}

// SetEnabled toggles the challenge system globally
func (s *service) SetEnabled(ctx context.Context, input *SetEnabledInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	prefs, err := s.loadSettings(ctx)
	if err != nil {
		return err
	}

	prefs.Enabled = input.Enabled
	return s.saveSettings(ctx, prefs)
}

// SetFrequency selects the firing tier
func (s *service) SetFrequency(ctx context.Context, input *SetFrequencyInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if !models.ValidFrequency(input.Frequency) {
		return ErrInvalidFrequency
	}

	prefs, err := s.loadSettings(ctx)
	if err != nil {
		return err
	}

	prefs.Frequency = input.Frequency
	return s.saveSettings(ctx, prefs)
}

// SetChallengeEnabled toggles one catalog entry
func (s *service) SetChallengeEnabled(ctx context.Context, input *SetChallengeEnabledInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if !knownChallenge(input.ID) {
		return ErrUnknownChallenge
	}

	prefs, err := s.loadSettings(ctx)
	if err != nil {
		return err
	}

	prefs.SetDisabled(input.ID, !input.Enabled)
	return s.saveSettings(ctx, prefs)
}

func (s *service) loadSettings(ctx context.Context) (*models.ChallengeSettings, error) {
	output, err := s.settings.GetChallengeSettings(ctx, &settings.GetChallengeSettingsInput{})
	if err != nil {
		if err == settings.ErrNotFound {
			return models.DefaultChallengeSettings(), nil
		}
		return nil, fmt.Errorf("failed to load challenge settings: %w", err)
	}
	return output.Settings, nil
}

func (s *service) saveSettings(ctx context.Context, prefs *models.ChallengeSettings) error {
	err := s.settings.SaveChallengeSettings(ctx, &settings.SaveChallengeSettingsInput{Settings: prefs})
	if err != nil {
		return fmt.Errorf("failed to save challenge settings: %w", err)
	}
	return nil
}

// enabledChallenges returns the catalog entries the host has not
// switched off
func enabledChallenges(prefs *models.ChallengeSettings) []models.Challenge {
	pool := make([]models.Challenge, 0, len(catalog))
	for _, c := range catalog {
		if prefs.IsDisabled(c.ID) {
			continue
		}
		c.Enabled = true
		pool = append(pool, c)
	}
	return pool
}
