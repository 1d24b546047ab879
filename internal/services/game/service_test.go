package game

import (
	"context"
	"testing"
	"time"

	"github.com/pecas-dev/twistcaller/internal/common/clock"
	clockmocks "github.com/pecas-dev/twistcaller/internal/common/clock/mocks"
	uuidmocks "github.com/pecas-dev/twistcaller/internal/common/uuid/mocks"
	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/repositories/roster"
	rostermocks "github.com/pecas-dev/twistcaller/internal/repositories/roster/mocks"
	"github.com/pecas-dev/twistcaller/internal/repositories/settings"
	settingsmocks "github.com/pecas-dev/twistcaller/internal/repositories/settings/mocks"
	"github.com/pecas-dev/twistcaller/internal/services/announce"
	announcemocks "github.com/pecas-dev/twistcaller/internal/services/announce/mocks"
	"github.com/pecas-dev/twistcaller/internal/services/challenge"
	challengemocks "github.com/pecas-dev/twistcaller/internal/services/challenge/mocks"
	spinnermocks "github.com/pecas-dev/twistcaller/internal/spinner/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubConfirmer approves or declines every prompt
type stubConfirmer struct {
	approve bool
}

func (c *stubConfirmer) Confirm(context.Context, string) bool {
	return c.approve
}

// fakeTicker feeds countdown ticks from a test-controlled channel
type fakeTicker struct {
	ch chan time.Time
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }

func (t *fakeTicker) Stop() {}

type ServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRoster     *rostermocks.MockRepository
	mockSettings   *settingsmocks.MockRepository
	mockChallenges *challengemocks.MockService
	mockAnnouncer  *announcemocks.MockService
	mockRoller     *spinnermocks.MockRoller
	mockClock      *clockmocks.MockClock
	mockUUID       *uuidmocks.MockUUID
	confirmer      *stubConfirmer
	service        Service
	ctx            context.Context

	// backing state for the stubbed collaborators
	players   []string
	nextEval  *challenge.EvaluateOutput
	announced [][]string
	ticks     chan time.Time
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.mockRoster = rostermocks.NewMockRepository(s.ctrl)
	s.mockSettings = settingsmocks.NewMockRepository(s.ctrl)
	s.mockChallenges = challengemocks.NewMockService(s.ctrl)
	s.mockAnnouncer = announcemocks.NewMockService(s.ctrl)
	s.mockRoller = spinnermocks.NewMockRoller(s.ctrl)
	s.mockClock = clockmocks.NewMockClock(s.ctrl)
	s.mockUUID = uuidmocks.NewMockUUID(s.ctrl)
	s.confirmer = &stubConfirmer{approve: true}

	s.players = nil
	s.nextEval = &challenge.EvaluateOutput{}
	s.announced = nil
	s.ticks = make(chan time.Time)

	s.mockRoster.EXPECT().
		GetPlayers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *roster.GetPlayersInput) (*roster.GetPlayersOutput, error) {
			return &roster.GetPlayersOutput{Players: append([]string(nil), s.players...)}, nil
		}).
		AnyTimes()
	s.mockRoster.EXPECT().
		SavePlayers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *roster.SavePlayersInput) error {
			s.players = append([]string(nil), input.Players...)
			return nil
		}).
		AnyTimes()

	s.mockSettings.EXPECT().
		GetTimerSettings(gomock.Any(), gomock.Any()).
		Return(nil, settings.ErrNotFound).
		AnyTimes()
	s.mockSettings.EXPECT().
		SaveTimerSettings(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	s.mockChallenges.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *challenge.EvaluateInput) (*challenge.EvaluateOutput, error) {
			return s.nextEval, nil
		}).
		AnyTimes()

	// Announcements complete synchronously, as they do with voice off
	s.mockAnnouncer.EXPECT().
		AnnounceSequence(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *announce.AnnounceSequenceInput) error {
			s.announced = append(s.announced, input.Messages)
			if input.OnDone != nil {
				input.OnDone()
			}
			return nil
		}).
		AnyTimes()
	s.mockAnnouncer.EXPECT().CancelActive().AnyTimes()

	s.mockRoller.EXPECT().
		Spin().
		Return(models.SpinResult{Color: models.ColorRed, Limb: models.LimbLeftHand}).
		AnyTimes()

	s.mockClock.EXPECT().
		NewTicker(time.Second).
		DoAndReturn(func(time.Duration) clock.Ticker {
			return &fakeTicker{ch: s.ticks}
		}).
		AnyTimes()

	s.mockUUID.EXPECT().NewUUID().Return("session-1").AnyTimes()

	svc, err := New(&Config{
		RosterRepository:   s.mockRoster,
		SettingsRepository: s.mockSettings,
		ChallengeService:   s.mockChallenges,
		Announcer:          s.mockAnnouncer,
		Roller:             s.mockRoller,
		Clock:              s.mockClock,
		UUID:               s.mockUUID,
		Confirmer:          s.confirmer,
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

func (s *ServiceTestSuite) addPlayers(names ...string) {
	for _, name := range names {
		_, err := s.service.AddPlayer(s.ctx, &AddPlayerInput{Name: name})
		s.Require().NoError(err)
	}
}

func (s *ServiceTestSuite) TestAddPlayerRejectsEmptyName() {
	_, err := s.service.AddPlayer(s.ctx, &AddPlayerInput{Name: "   "})
	s.Equal(ErrEmptyPlayerName, err)
	s.Empty(s.players)
}

func (s *ServiceTestSuite) TestAddPlayerRejectsDuplicate() {
	s.addPlayers("Alice")

	_, err := s.service.AddPlayer(s.ctx, &AddPlayerInput{Name: "Alice"})
	s.Equal(ErrDuplicatePlayer, err)
	s.Equal([]string{"Alice"}, s.players)
}

func (s *ServiceTestSuite) TestRemovePlayer() {
	s.addPlayers("Alice", "Bob", "Carol")

	output, err := s.service.RemovePlayer(s.ctx, &RemovePlayerInput{Name: "Bob"})
	s.Require().NoError(err)
	s.Equal([]string{"Alice", "Carol"}, output.Players)

	_, err = s.service.RemovePlayer(s.ctx, &RemovePlayerInput{Name: "Mallory"})
	s.Equal(ErrPlayerNotFound, err)
}

func (s *ServiceTestSuite) TestStartGameRequiresTwoPlayers() {
	s.addPlayers("Alice")

	_, err := s.service.StartGame(s.ctx, &StartGameInput{})
	s.Equal(ErrInsufficientPlayers, err)
}

func (s *ServiceTestSuite) TestStartGameSpinsFirstTurn() {
	s.addPlayers("Alice", "Bob")

	output, err := s.service.StartGame(s.ctx, &StartGameInput{})
	s.Require().NoError(err)

	s.Equal("session-1", output.Session.ID)
	s.Equal(1, output.Session.TurnNumber)
	s.Equal("Alice", output.Session.CurrentPlayer())
	s.Equal(models.ColorRed, output.Spin.Color)
	s.Equal(models.LimbLeftHand, output.Spin.Limb)

	// Announcement completed, manual mode waits for the host
	s.Equal(models.PhaseAwaitingManualAdvance, output.Session.Phase)
	s.Require().Len(s.announced, 1)
	s.Equal([]string{"Alice, Left Hand on red"}, s.announced[0])
}

func (s *ServiceTestSuite) TestRotationAndRoundCounting() {
	s.addPlayers("Alice", "Bob", "Carol")

	start, err := s.service.StartGame(s.ctx, &StartGameInput{})
	s.Require().NoError(err)
	s.Equal("Alice", start.Session.CurrentPlayer())
	s.Equal(1, start.Session.TurnNumber)

	next, err := s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{})
	s.Require().NoError(err)
	s.Equal("Bob", next.Session.CurrentPlayer())
	s.Equal(1, next.Session.TurnNumber)

	next, err = s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{})
	s.Require().NoError(err)
	s.Equal("Carol", next.Session.CurrentPlayer())
	s.Equal(1, next.Session.TurnNumber)

	// Wrapping back to the first player completes the round
	next, err = s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{})
	s.Require().NoError(err)
	s.Equal("Alice", next.Session.CurrentPlayer())
	s.Equal(2, next.Session.TurnNumber)
}

func (s *ServiceTestSuite) TestAdvanceWithoutGame() {
	_, err := s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{})
	s.Equal(ErrGameNotRunning, err)

	_, err = s.service.Spin(s.ctx, &SpinInput{})
	s.Equal(ErrGameNotRunning, err)
}

func (s *ServiceTestSuite) TestChallengeAnnouncedBeforeTurnCall() {
	s.addPlayers("Alice", "Bob")
	s.nextEval = &challenge.EvaluateOutput{
		Fired:     true,
		Challenge: &models.Challenge{ID: 2, Text: "Eyes closed for next move!"},
	}

	output, err := s.service.StartGame(s.ctx, &StartGameInput{})
	s.Require().NoError(err)
	s.Equal(2, output.Challenge.ID)

	s.Require().Len(s.announced, 1)
	s.Equal([]string{
		"Challenge! Eyes closed for next move!",
		"Alice, Left Hand on red",
	}, s.announced[0])
}

func (s *ServiceTestSuite) TestSetTimerDurationClamps() {
	cases := map[int]int{3: 5, 50: 30, 17: 15, 20: 20}
	for requested, want := range cases {
		output, err := s.service.SetTimerDuration(s.ctx, &SetTimerDurationInput{Seconds: requested})
		s.Require().NoError(err)
		s.Equal(want, output.Seconds)
	}
}

func (s *ServiceTestSuite) TestEndGameDeclined() {
	s.addPlayers("Alice", "Bob")
	_, err := s.service.StartGame(s.ctx, &StartGameInput{})
	s.Require().NoError(err)

	s.confirmer.approve = false
	output, err := s.service.EndGame(s.ctx, &EndGameInput{})
	s.Require().NoError(err)
	s.False(output.Ended)

	state, err := s.service.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.NotNil(state.Session)
}

func (s *ServiceTestSuite) TestEndGameResets() {
	s.addPlayers("Alice", "Bob")
	_, err := s.service.StartGame(s.ctx, &StartGameInput{})
	s.Require().NoError(err)

	output, err := s.service.EndGame(s.ctx, &EndGameInput{})
	s.Require().NoError(err)
	s.True(output.Ended)

	state, err := s.service.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Nil(state.Session)

	_, err = s.service.Spin(s.ctx, &SpinInput{})
	s.Equal(ErrGameNotRunning, err)

	_, err = s.service.EndGame(s.ctx, &EndGameInput{})
	s.Equal(ErrGameNotRunning, err)
}

func (s *ServiceTestSuite) TestSubscribeReceivesRosterEvents() {
	events, unsubscribe := s.service.Subscribe()

	s.addPlayers("Alice")

	select {
	case event := <-events:
		s.Equal(EventRosterChanged, event.Type)
		s.Equal([]string{"Alice"}, event.Players)
	case <-time.After(time.Second):
		s.Fail("no roster event received")
	}

	unsubscribe()
	_, open := <-events
	s.False(open)
}
