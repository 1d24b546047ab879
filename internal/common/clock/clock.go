package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/pecas-dev/twistcaller/internal/common/clock Clock,Ticker

// Clock provides time to the services so tests can control it
type Clock interface {
	Now() time.Time

	// NewTicker returns a ticker firing every d
	NewTicker(d time.Duration) Ticker
}

// Ticker is the cancellable tick source used by the countdown
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// NewTicker returns a ticker backed by time.Ticker
func (c *DefaultClock) NewTicker(d time.Duration) Ticker {
	return &defaultTicker{ticker: time.NewTicker(d)}
}

type defaultTicker struct {
	ticker *time.Ticker
}

func (t *defaultTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *defaultTicker) Stop() {
	t.ticker.Stop()
}
