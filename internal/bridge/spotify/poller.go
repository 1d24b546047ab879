package spotify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pecas-dev/twistcaller/internal/bridge"
	"github.com/pecas-dev/twistcaller/internal/common/clock"
	"github.com/pecas-dev/twistcaller/internal/models"
	log "github.com/sirupsen/logrus"
)

// PollInterval is how often the poller asks the player for its state
const PollInterval = 2 * time.Second

// PollerConfig holds configuration for the player-state poller
type PollerConfig struct {
	// Controller is the bridge to poll
	Controller bridge.Controller

	// Clock provides the tick source. Defaults to the real clock.
	Clock clock.Clock

	// OnState is invoked with each successful poll result
	OnState func(*models.NowPlaying)
}

// Poller periodically asks the remote player what it is doing, so the
// display can show track and playback state without a push channel.
type Poller struct {
	controller bridge.Controller
	clock      clock.Clock
	onState    func(*models.NowPlaying)

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewPoller creates a new player-state poller
func NewPoller(cfg *PollerConfig) (*Poller, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Controller == nil {
		return nil, errors.New("controller cannot be nil")
	}

	if cfg.OnState == nil {
		return nil, errors.New("state callback cannot be nil")
	}

	p := &Poller{
		controller: cfg.Controller,
		clock:      cfg.Clock,
		onState:    cfg.OnState,
	}
	if p.clock == nil {
		p.clock = &clock.DefaultClock{}
	}

	return p, nil
}

// Start begins polling. A second call replaces the running poll loop.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
	}

	ctx, p.cancel = context.WithCancel(ctx)
	go p.loop(ctx)
}

// Stop halts polling
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Poller) loop(ctx context.Context) {
	ticker := p.clock.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			state, err := p.controller.NowPlaying(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.WithError(err).Debug("player state poll failed")
				continue
			}
			p.onState(state)
		}
	}
}
