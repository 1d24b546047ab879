package game

import (
	"time"

	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/services/challenge"
)

func (s *ServiceTestSuite) startTimedGame(names ...string) {
	s.Require().NoError(s.service.SetMode(s.ctx, &SetModeInput{Mode: models.TurnModeTimed}))
	s.addPlayers(names...)
	_, err := s.service.StartGame(s.ctx, &StartGameInput{})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) countdownState() *models.CountdownState {
	state, err := s.service.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Require().NotNil(state.Countdown)
	return state.Countdown
}

func (s *ServiceTestSuite) TestTimedModeStartsCountdownAfterAnnouncement() {
	s.startTimedGame("Alice", "Bob")

	state, err := s.service.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Equal(models.PhaseCountingDown, state.Session.Phase)
	s.True(state.Countdown.Active)
	s.Equal(models.DefaultTimerSeconds, state.Countdown.RemainingSeconds)
	s.Equal(0, state.Countdown.BonusSeconds)
}

func (s *ServiceTestSuite) TestSpinRejectedDuringCountdown() {
	s.startTimedGame("Alice", "Bob")

	_, err := s.service.Spin(s.ctx, &SpinInput{})
	s.Equal(ErrCountdownActive, err)
}

func (s *ServiceTestSuite) TestCountdownTicksDown() {
	s.startTimedGame("Alice", "Bob")

	events, unsubscribe := s.service.Subscribe()
	defer unsubscribe()

	s.ticks <- time.Now()

	deadline := time.After(time.Second)
	for {
		select {
		case event := <-events:
			if event.Type == EventCountdownTick {
				s.Equal(models.DefaultTimerSeconds-1, event.Countdown.RemainingSeconds)
				return
			}
		case <-deadline:
			s.Fail("no countdown tick received")
			return
		}
	}
}

func (s *ServiceTestSuite) TestChallengeBonusAppliedToNextCountdownOnly() {
	s.nextEval = &challenge.EvaluateOutput{
		Fired:     true,
		Challenge: &models.Challenge{ID: 1, Text: "Hold for 10 seconds!"},
	}
	s.startTimedGame("Alice", "Bob")

	// 10s base + 10s bonus, applied exactly once
	countdown := s.countdownState()
	s.Equal(models.DefaultTimerSeconds+models.ChallengeBonusSeconds, countdown.RemainingSeconds)
	s.Equal(models.ChallengeBonusSeconds, countdown.BonusSeconds)

	// No challenge on the next spin
	s.nextEval = &challenge.EvaluateOutput{}

	for i := 0; i < models.DefaultTimerSeconds+models.ChallengeBonusSeconds; i++ {
		s.ticks <- time.Now()
	}

	// Expiry advances to the next player with a plain-length countdown
	s.Require().Eventually(func() bool {
		state, err := s.service.GetState(s.ctx, &GetStateInput{})
		s.Require().NoError(err)
		return state.Session.CurrentPlayer() == "Bob" &&
			state.Countdown.Active &&
			state.Countdown.RemainingSeconds == models.DefaultTimerSeconds &&
			state.Countdown.BonusSeconds == 0
	}, time.Second, 5*time.Millisecond)
}

func (s *ServiceTestSuite) TestNoBonusInManualMode() {
	s.nextEval = &challenge.EvaluateOutput{
		Fired:     true,
		Challenge: &models.Challenge{ID: 1, Text: "Hold for 10 seconds!"},
	}
	s.addPlayers("Alice", "Bob")

	_, err := s.service.StartGame(s.ctx, &StartGameInput{})
	s.Require().NoError(err)

	state, err := s.service.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Equal(models.PhaseAwaitingManualAdvance, state.Session.Phase)
	s.False(state.Countdown.Active)
}

func (s *ServiceTestSuite) TestSwitchingToManualStopsCountdown() {
	s.startTimedGame("Alice", "Bob")

	err := s.service.SetMode(s.ctx, &SetModeInput{Mode: models.TurnModeManual})
	s.Require().NoError(err)

	state, err := s.service.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Equal(models.PhaseAwaitingManualAdvance, state.Session.Phase)
	s.False(state.Countdown.Active)
}

func (s *ServiceTestSuite) TestSwitchingToTimedStartsCountdown() {
	s.addPlayers("Alice", "Bob")
	_, err := s.service.StartGame(s.ctx, &StartGameInput{})
	s.Require().NoError(err)

	err = s.service.SetMode(s.ctx, &SetModeInput{Mode: models.TurnModeTimed})
	s.Require().NoError(err)

	state, err := s.service.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Equal(models.PhaseCountingDown, state.Session.Phase)
	s.True(state.Countdown.Active)
}

func (s *ServiceTestSuite) TestEndGameDuringCountdown() {
	s.startTimedGame("Alice", "Bob")

	output, err := s.service.EndGame(s.ctx, &EndGameInput{})
	s.Require().NoError(err)
	s.True(output.Ended)

	state, err := s.service.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Nil(state.Session)
	s.Nil(state.Countdown)
}
