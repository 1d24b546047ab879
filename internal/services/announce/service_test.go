package announce

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	bridgemocks "github.com/pecas-dev/twistcaller/internal/bridge/mocks"
	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/repositories/settings"
	settingsmocks "github.com/pecas-dev/twistcaller/internal/repositories/settings/mocks"
	"github.com/pecas-dev/twistcaller/internal/speech"
	speechmocks "github.com/pecas-dev/twistcaller/internal/speech/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockSpeaker  *speechmocks.MockSpeaker
	mockSettings *settingsmocks.MockRepository
	mockBridge   *bridgemocks.MockController
	ctx          context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSpeaker = speechmocks.NewMockSpeaker(s.ctrl)
	s.mockSettings = settingsmocks.NewMockRepository(s.ctrl)
	s.mockBridge = bridgemocks.NewMockController(s.ctrl)
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) stubVoice(enabled bool) {
	voice := models.DefaultVoiceSettings()
	voice.Enabled = enabled
	s.mockSettings.EXPECT().
		GetVoiceSettings(gomock.Any(), gomock.Any()).
		Return(&settings.GetVoiceSettingsOutput{Settings: voice}, nil).
		AnyTimes()
}

func (s *ServiceTestSuite) newService(cfg *Config) Service {
	if cfg.SettingsRepository == nil {
		cfg.SettingsRepository = s.mockSettings
	}
	svc, err := New(cfg)
	s.Require().NoError(err)
	return svc
}

func (s *ServiceTestSuite) TestVoiceOffCompletesImmediately() {
	s.stubVoice(false)
	svc := s.newService(&Config{Speaker: s.mockSpeaker})

	var done atomic.Bool
	err := svc.Announce(s.ctx, &AnnounceInput{
		Message: "Alice, Left Hand on red",
		OnDone:  func() { done.Store(true) },
	})
	s.Require().NoError(err)
	s.True(done.Load())
}

func (s *ServiceTestSuite) TestNoSpeakerCompletesImmediately() {
	s.stubVoice(true)
	svc := s.newService(&Config{Speaker: nil})

	var done atomic.Bool
	err := svc.Announce(s.ctx, &AnnounceInput{
		Message: "Alice, Left Hand on red",
		OnDone:  func() { done.Store(true) },
	})
	s.Require().NoError(err)
	s.True(done.Load())
}

func (s *ServiceTestSuite) TestTestAnnouncementBypassesDisabledVoice() {
	s.stubVoice(false)
	svc := s.newService(&Config{Speaker: s.mockSpeaker})

	done := make(chan struct{})
	s.mockSpeaker.EXPECT().
		Speak(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *speech.SpeakInput) error {
			s.Equal("This is a voice test", input.Text)
			return nil
		})

	err := svc.Announce(s.ctx, &AnnounceInput{
		Message: "This is a voice test",
		Test:    true,
		OnDone:  func() { close(done) },
	})
	s.Require().NoError(err)

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("announcement did not complete")
	}
}

func (s *ServiceTestSuite) TestSequenceSpeaksInOrder() {
	s.stubVoice(true)
	svc := s.newService(&Config{Speaker: s.mockSpeaker})

	var spoken []string
	done := make(chan struct{})
	s.mockSpeaker.EXPECT().
		Speak(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *speech.SpeakInput) error {
			spoken = append(spoken, input.Text)
			return nil
		}).
		Times(2)

	err := svc.AnnounceSequence(s.ctx, &AnnounceSequenceInput{
		Messages: []string{"Challenge! Eyes closed for next move!", "Alice, Left Hand on red"},
		OnDone:   func() { close(done) },
	})
	s.Require().NoError(err)

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("sequence did not complete")
	}

	s.Equal([]string{"Challenge! Eyes closed for next move!", "Alice, Left Hand on red"}, spoken)
}

func (s *ServiceTestSuite) TestNewAnnouncementCancelsActive() {
	s.stubVoice(true)
	svc := s.newService(&Config{Speaker: s.mockSpeaker})

	firstStarted := make(chan struct{})
	secondDone := make(chan struct{})
	var firstCompleted atomic.Bool

	s.mockSpeaker.EXPECT().
		Speak(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *speech.SpeakInput) error {
			if input.Text == "first" {
				close(firstStarted)
				<-ctx.Done()
				return ctx.Err()
			}
			return nil
		}).
		Times(2)

	err := svc.Announce(s.ctx, &AnnounceInput{
		Message: "first",
		OnDone:  func() { firstCompleted.Store(true) },
	})
	s.Require().NoError(err)
	<-firstStarted

	err = svc.Announce(s.ctx, &AnnounceInput{
		Message: "second",
		OnDone:  func() { close(secondDone) },
	})
	s.Require().NoError(err)

	select {
	case <-secondDone:
	case <-time.After(time.Second):
		s.Fail("second announcement did not complete")
	}

	s.False(firstCompleted.Load())
}

func (s *ServiceTestSuite) TestCancelActiveStopsUtterance() {
	s.stubVoice(true)
	svc := s.newService(&Config{Speaker: s.mockSpeaker})

	started := make(chan struct{})
	stopped := make(chan struct{})
	var completed atomic.Bool

	s.mockSpeaker.EXPECT().
		Speak(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *speech.SpeakInput) error {
			close(started)
			<-ctx.Done()
			close(stopped)
			return ctx.Err()
		})

	err := svc.Announce(s.ctx, &AnnounceInput{
		Message: "long announcement",
		OnDone:  func() { completed.Store(true) },
	})
	s.Require().NoError(err)
	<-started

	svc.CancelActive()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		s.Fail("utterance was not cancelled")
	}
	s.False(completed.Load())
}

func (s *ServiceTestSuite) TestDucksPlayingMusic() {
	s.stubVoice(true)
	svc := s.newService(&Config{
		Speaker:     s.mockSpeaker,
		Bridge:      s.mockBridge,
		DuckMusic:   true,
		ResumeDelay: time.Millisecond,
	})

	done := make(chan struct{})
	resumed := make(chan struct{})

	gomock.InOrder(
		s.mockBridge.EXPECT().IsPlaying(gomock.Any()).Return(true, nil),
		s.mockBridge.EXPECT().Pause(gomock.Any()).Return(nil),
		s.mockSpeaker.EXPECT().Speak(gomock.Any(), gomock.Any()).Return(nil),
		s.mockBridge.EXPECT().Play(gomock.Any()).DoAndReturn(func(context.Context) error {
			close(resumed)
			return nil
		}),
	)

	err := svc.Announce(s.ctx, &AnnounceInput{
		Message: "Alice, Left Hand on red",
		OnDone:  func() { close(done) },
	})
	s.Require().NoError(err)

	select {
	case <-resumed:
	case <-time.After(time.Second):
		s.Fail("music was not resumed")
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("announcement did not complete")
	}
}

func (s *ServiceTestSuite) TestLeavesStoppedMusicAlone() {
	s.stubVoice(true)
	svc := s.newService(&Config{
		Speaker:     s.mockSpeaker,
		Bridge:      s.mockBridge,
		DuckMusic:   true,
		ResumeDelay: time.Millisecond,
	})

	done := make(chan struct{})
	s.mockBridge.EXPECT().IsPlaying(gomock.Any()).Return(false, nil)
	s.mockSpeaker.EXPECT().Speak(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.Announce(s.ctx, &AnnounceInput{
		Message: "Alice, Left Hand on red",
		OnDone:  func() { close(done) },
	})
	s.Require().NoError(err)

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("announcement did not complete")
	}
}
