package spotify

import (
	"context"
	"testing"
	"time"

	bridgemocks "github.com/pecas-dev/twistcaller/internal/bridge/mocks"
	clockmocks "github.com/pecas-dev/twistcaller/internal/common/clock/mocks"
	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPollerDeliversStates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ticks := make(chan time.Time)
	ticker := clockmocks.NewMockTicker(ctrl)
	ticker.EXPECT().C().Return((<-chan time.Time)(ticks)).AnyTimes()
	stopped := make(chan struct{})
	ticker.EXPECT().Stop().Do(func() { close(stopped) })

	mockClock := clockmocks.NewMockClock(ctrl)
	mockClock.EXPECT().NewTicker(PollInterval).Return(ticker)

	controller := bridgemocks.NewMockController(ctrl)
	controller.EXPECT().NowPlaying(gomock.Any()).Return(&models.NowPlaying{
		TrackName: "Twist and Shout",
		Playing:   true,
	}, nil)

	states := make(chan *models.NowPlaying, 1)
	poller, err := NewPoller(&PollerConfig{
		Controller: controller,
		Clock:      mockClock,
		OnState: func(np *models.NowPlaying) {
			states <- np
		},
	})
	require.NoError(t, err)

	poller.Start(context.Background())

	ticks <- time.Now()

	select {
	case np := <-states:
		assert.Equal(t, "Twist and Shout", np.TrackName)
		assert.True(t, np.Playing)
	case <-time.After(time.Second):
		t.Fatal("no state delivered")
	}

	poller.Stop()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("poll loop did not stop")
	}
}

func TestPollerStopHaltsPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ticks := make(chan time.Time)
	ticker := clockmocks.NewMockTicker(ctrl)
	ticker.EXPECT().C().Return((<-chan time.Time)(ticks)).AnyTimes()
	stopped := make(chan struct{})
	ticker.EXPECT().Stop().Do(func() { close(stopped) })

	mockClock := clockmocks.NewMockClock(ctrl)
	mockClock.EXPECT().NewTicker(PollInterval).Return(ticker)

	controller := bridgemocks.NewMockController(ctrl)

	poller, err := NewPoller(&PollerConfig{
		Controller: controller,
		Clock:      mockClock,
		OnState:    func(*models.NowPlaying) {},
	})
	require.NoError(t, err)

	poller.Start(context.Background())
	poller.Stop()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("poll loop did not stop")
	}
}

func TestPollerValidation(t *testing.T) {
	_, err := NewPoller(nil)
	assert.Error(t, err)

	_, err = NewPoller(&PollerConfig{OnState: func(*models.NowPlaying) {}})
	assert.Error(t, err)
}
