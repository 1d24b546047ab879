package challenge

import (
	"context"
	"testing"

	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/repositories/settings"
	settingsmocks "github.com/pecas-dev/twistcaller/internal/repositories/settings/mocks"
	"github.com/pecas-dev/twistcaller/internal/spinner"
	spinnermocks "github.com/pecas-dev/twistcaller/internal/spinner/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockSettings *settingsmocks.MockRepository
	mockRoller   *spinnermocks.MockRoller
	service      Service
	ctx          context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSettings = settingsmocks.NewMockRepository(s.ctrl)
	s.mockRoller = spinnermocks.NewMockRoller(s.ctrl)
	s.ctx = context.Background()

	svc, err := New(&Config{
		SettingsRepository: s.mockSettings,
		Roller:             s.mockRoller,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) stubSettings(prefs *models.ChallengeSettings) {
	s.mockSettings.EXPECT().
		GetChallengeSettings(gomock.Any(), gomock.Any()).
		Return(&settings.GetChallengeSettingsOutput{Settings: prefs}, nil).
		AnyTimes()
}

func (s *ServiceTestSuite) TestDisabledGloballyNeverFires() {
	s.stubSettings(&models.ChallengeSettings{
		Enabled:   false,
		Frequency: models.FrequencyFrequent,
	})

	output, err := s.service.Evaluate(s.ctx, &EvaluateInput{TurnNumber: 20})
	s.Require().NoError(err)
	s.False(output.Fired)
	s.Nil(output.Challenge)
}

func (s *ServiceTestSuite) TestNeverFiresBeforeMinTurns() {
	s.stubSettings(&models.ChallengeSettings{
		Enabled:   true,
		Frequency: models.FrequencyFrequent,
	})

	// Below the tier's first eligible round the roll never happens
	output, err := s.service.Evaluate(s.ctx, &EvaluateInput{TurnNumber: 2})
	s.Require().NoError(err)
	s.False(output.Fired)
}

func (s *ServiceTestSuite) TestRollAboveProbabilityDoesNotFire() {
	s.stubSettings(&models.ChallengeSettings{
		Enabled:   true,
		Frequency: models.FrequencyMedium,
	})

	s.mockRoller.EXPECT().Float64().Return(0.25)

	output, err := s.service.Evaluate(s.ctx, &EvaluateInput{TurnNumber: 5})
	s.Require().NoError(err)
	s.False(output.Fired)
}

func (s *ServiceTestSuite) TestDrawsOnlyEnabledChallenges() {
	prefs := &models.ChallengeSettings{
		Enabled:   true,
		Frequency: models.FrequencyMedium,
	}
	for id := 1; id <= 10; id++ {
		if id != 7 {
			prefs.SetDisabled(id, true)
		}
	}
	s.stubSettings(prefs)

	s.mockRoller.EXPECT().Float64().Return(0.0)
	s.mockRoller.EXPECT().PickIndex(1).Return(0)

	output, err := s.service.Evaluate(s.ctx, &EvaluateInput{TurnNumber: 6})
	s.Require().NoError(err)
	s.True(output.Fired)
	s.Equal(7, output.Challenge.ID)
}

func (s *ServiceTestSuite) TestAllChallengesDisabledNeverFires() {
	prefs := &models.ChallengeSettings{
		Enabled:   true,
		Frequency: models.FrequencyFrequent,
	}
	for id := 1; id <= 10; id++ {
		prefs.SetDisabled(id, true)
	}
	s.stubSettings(prefs)

	s.mockRoller.EXPECT().Float64().Return(0.0)

	output, err := s.service.Evaluate(s.ctx, &EvaluateInput{TurnNumber: 10})
	s.Require().NoError(err)
	s.False(output.Fired)
}

func (s *ServiceTestSuite) TestDefaultsWhenNothingPersisted() {
	s.mockSettings.EXPECT().
		GetChallengeSettings(gomock.Any(), gomock.Any()).
		Return(nil, settings.ErrNotFound).
		AnyTimes()

	// Medium tier starts at round 5
	output, err := s.service.Evaluate(s.ctx, &EvaluateInput{TurnNumber: 4})
	s.Require().NoError(err)
	s.False(output.Fired)
}

func (s *ServiceTestSuite) TestListChallengesMergesFlags() {
	prefs := &models.ChallengeSettings{
		Enabled:   true,
		Frequency: models.FrequencyMedium,
		Disabled:  []int{3},
	}
	s.stubSettings(prefs)

	output, err := s.service.ListChallenges(s.ctx, &ListChallengesInput{})
	s.Require().NoError(err)

	s.Len(output.Challenges, 10)
	for _, c := range output.Challenges {
		if c.ID == 3 {
			s.False(c.Enabled)
		} else {
			s.True(c.Enabled)
		}
	}
	s.Equal(models.FrequencyMedium, output.Settings.Frequency)
}

func (s *ServiceTestSuite) TestSetEnabledPersists() {
	s.stubSettings(&models.ChallengeSettings{
		Enabled:   true,
		Frequency: models.FrequencyMedium,
	})

	s.mockSettings.EXPECT().
		SaveChallengeSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *settings.SaveChallengeSettingsInput) error {
			s.False(input.Settings.Enabled)
			return nil
		})

	err := s.service.SetEnabled(s.ctx, &SetEnabledInput{Enabled: false})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestSetFrequencyRejectsUnknownTier() {
	err := s.service.SetFrequency(s.ctx, &SetFrequencyInput{Frequency: "constant"})
	s.Equal(ErrInvalidFrequency, err)
}

func (s *ServiceTestSuite) TestSetChallengeEnabledRejectsUnknownID() {
	err := s.service.SetChallengeEnabled(s.ctx, &SetChallengeEnabledInput{ID: 99, Enabled: false})
	s.Equal(ErrUnknownChallenge, err)
}

func (s *ServiceTestSuite) TestSetChallengeEnabledPersistsDisable() {
	s.stubSettings(&models.ChallengeSettings{
		Enabled:   true,
		Frequency: models.FrequencyMedium,
	})

	s.mockSettings.EXPECT().
		SaveChallengeSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *settings.SaveChallengeSettingsInput) error {
			s.True(input.Settings.IsDisabled(4))
			return nil
		})

	err := s.service.SetChallengeEnabled(s.ctx, &SetChallengeEnabledInput{ID: 4, Enabled: false})
	s.Require().NoError(err)
}

// Frequency tests run against the real seeded roller so the observed
// firing rate can be checked against each tier's probability.

func evaluateMany(t *testing.T, tier models.FrequencyTier, turn, trials int) int {
	t.Helper()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettings := settingsmocks.NewMockRepository(ctrl)
	mockSettings.EXPECT().
		GetChallengeSettings(gomock.Any(), gomock.Any()).
		Return(&settings.GetChallengeSettingsOutput{
			Settings: &models.ChallengeSettings{Enabled: true, Frequency: tier},
		}, nil).
		AnyTimes()

	svc, err := New(&Config{
		SettingsRepository: mockSettings,
		Roller:             spinner.New(&spinner.Config{Seed: 42}),
	})
	if err != nil {
		t.Fatal(err)
	}

	fires := 0
	for i := 0; i < trials; i++ {
		output, err := svc.Evaluate(context.Background(), &EvaluateInput{TurnNumber: turn})
		if err != nil {
			t.Fatal(err)
		}
		if output.Fired {
			fires++
		}
	}
	return fires
}

func TestFirstTurnNeverFires(t *testing.T) {
	for _, tier := range []models.FrequencyTier{models.FrequencyRare, models.FrequencyMedium, models.FrequencyFrequent} {
		if fires := evaluateMany(t, tier, 1, 1000); fires != 0 {
			t.Errorf("tier %s fired %d times on turn 1", tier, fires)
		}
	}
}

func TestFiringRateMatchesTier(t *testing.T) {
	const trials = 20000

	for tier, cfg := range models.TierTable {
		fires := evaluateMany(t, tier, cfg.MinTurns+5, trials)
		rate := float64(fires) / trials
		if rate < cfg.Probability-0.02 || rate > cfg.Probability+0.02 {
			t.Errorf("tier %s fired at rate %.3f, want %.2f ±0.02", tier, rate, cfg.Probability)
		}
	}
}
