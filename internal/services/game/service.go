package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pecas-dev/twistcaller/internal/common/clock"
	"github.com/pecas-dev/twistcaller/internal/common/uuid"
	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/repositories/roster"
	"github.com/pecas-dev/twistcaller/internal/repositories/settings"
	"github.com/pecas-dev/twistcaller/internal/services/announce"
	"github.com/pecas-dev/twistcaller/internal/services/challenge"
	"github.com/pecas-dev/twistcaller/internal/spinner"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidMode is returned for an unknown advancement mode
var ErrInvalidMode = errors.New("invalid turn mode")

// Config holds configuration for the game service
type Config struct {
	// RosterRepository persists the player rotation
	RosterRepository roster.Repository

	// SettingsRepository persists the countdown duration
	SettingsRepository settings.Repository

	// ChallengeService decides whether a spin gets a challenge
	ChallengeService challenge.Service

	// Announcer speaks spin results
	Announcer announce.Service

	// Roller draws spins
	Roller spinner.Roller

	// Clock drives the countdown
	Clock clock.Clock

	// UUID generates session IDs
	UUID uuid.UUID

	// Confirmer approves ending a game. Nil skips confirmation.
	Confirmer Confirmer
}

type service struct {
	roster     roster.Repository
	settings   settings.Repository
	challenges challenge.Service
	announcer  announce.Service
	roller     spinner.Roller
	clock      clock.Clock
	uuid       uuid.UUID
	confirmer  Confirmer

	mu               sync.Mutex
	mode             models.TurnMode
	timerSeconds     int
	session          *models.GameSession
	countdown        models.CountdownState
	pendingBonus     int
	currentSpin      *models.SpinResult
	currentChallenge *models.Challenge

	// spinSeq invalidates announcement and countdown callbacks that
	// belong to a superseded spin
	spinSeq       int
	stopCountdown context.CancelFunc

	subMu       sync.Mutex
	subscribers map[chan Event]struct{}
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RosterRepository == nil {
		return nil, errors.New("roster repository cannot be nil")
	}

	if cfg.SettingsRepository == nil {
		return nil, errors.New("settings repository cannot be nil")
	}

	if cfg.ChallengeService == nil {
		return nil, errors.New("challenge service cannot be nil")
	}

	if cfg.Announcer == nil {
		return nil, errors.New("announcer cannot be nil")
	}

	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	s := &service{
		roster:      cfg.RosterRepository,
		settings:    cfg.SettingsRepository,
		challenges:  cfg.ChallengeService,
		announcer:   cfg.Announcer,
		roller:      cfg.Roller,
		clock:       cfg.Clock,
		uuid:        cfg.UUID,
		confirmer:   cfg.Confirmer,
		mode:        models.TurnModeManual,
		subscribers: make(map[chan Event]struct{}),
	}

	if s.clock == nil {
		s.clock = &clock.DefaultClock{}
	}
	if s.uuid == nil {
		s.uuid = uuid.New()
	}

	return s, nil
}

// AddPlayer appends a player to the rotation
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyPlayerName
	}

	players, err := s.loadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range players {
		if p == name {
			return nil, ErrDuplicatePlayer
		}
	}

	players = append(players, name)
	if err := s.savePlayers(ctx, players); err != nil {
		return nil, err
	}

	s.publish(Event{Type: EventRosterChanged, Players: players})
	return &AddPlayerOutput{Players: players}, nil
}

// RemovePlayer removes a player from the rotation
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	players, err := s.loadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(players))
	found := false
	for _, p := range players {
		if p == input.Name {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return nil, ErrPlayerNotFound
	}

	if err := s.savePlayers(ctx, kept); err != nil {
		return nil, err
	}

	s.publish(Event{Type: EventRosterChanged, Players: kept})
	return &RemovePlayerOutput{Players: kept}, nil
}

// ListPlayers returns the rotation in order
func (s *service) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	players, err := s.loadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return &ListPlayersOutput{Players: players}, nil
}

// SetMode switches between manual and timed advancement. Switching modes
// mid-game converts a running countdown into a manual wait and vice versa.
func (s *service) SetMode(ctx context.Context, input *SetModeInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.Mode != models.TurnModeManual && input.Mode != models.TurnModeTimed {
		return ErrInvalidMode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = input.Mode
	if s.session == nil {
		return nil
	}

	s.session.Mode = input.Mode
	switch {
	case input.Mode == models.TurnModeManual && s.session.Phase == models.PhaseCountingDown:
		s.stopCountdownLocked()
		s.setPhaseLocked(models.PhaseAwaitingManualAdvance)
	case input.Mode == models.TurnModeTimed && s.session.Phase == models.PhaseAwaitingManualAdvance:
		s.startCountdownLocked(ctx)
	}

	return nil
}

// SetTimerDuration sets the base countdown length, clamped to the
// supported range
func (s *service) SetTimerDuration(ctx context.Context, input *SetTimerDurationInput) (*SetTimerDurationOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	seconds := clampTimerSeconds(input.Seconds)
	err := s.settings.SaveTimerSettings(ctx, &settings.SaveTimerSettingsInput{
		Settings: &models.TimerSettings{DurationSeconds: seconds},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save timer settings: %w", err)
	}

	s.mu.Lock()
	s.timerSeconds = seconds
	s.mu.Unlock()

	return &SetTimerDurationOutput{Seconds: seconds}, nil
}

// StartGame begins a new game and spins the first turn
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	players, err := s.loadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if len(players) < 2 {
		return nil, ErrInsufficientPlayers
	}

	s.mu.Lock()
	s.stopCountdownLocked()
	s.announcer.CancelActive()

	s.session = &models.GameSession{
		ID:         s.uuid.NewUUID(),
		Players:    players,
		TurnNumber: 1,
		Mode:       s.mode,
		Phase:      models.PhaseSpinning,
	}
	s.pendingBonus = 0
	s.countdown = models.CountdownState{}
	s.currentSpin = nil
	s.currentChallenge = nil
	s.publish(Event{Type: EventPhaseChanged, Session: s.snapshotLocked()})

	spin, fired, messages, seq := s.spinLocked(ctx)
	session := s.snapshotLocked()
	s.mu.Unlock()

	s.announceSpin(messages, seq)

	return &StartGameOutput{
		Session:   session,
		Spin:      spin,
		Challenge: fired,
	}, nil
}

// Spin draws a color and limb for the current player
func (s *service) Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error) {
	s.mu.Lock()
	if err := s.ensureRunningLocked(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if s.session.Phase == models.PhaseCountingDown {
		s.mu.Unlock()
		return nil, ErrCountdownActive
	}

	s.announcer.CancelActive()
	spin, fired, messages, seq := s.spinLocked(ctx)
	session := s.snapshotLocked()
	s.mu.Unlock()

	s.announceSpin(messages, seq)

	return &SpinOutput{
		Session:   session,
		Result:    spin,
		Challenge: fired,
	}, nil
}

// AdvanceTurn moves to the next player and spins for them
func (s *service) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error) {
	s.mu.Lock()
	if err := s.ensureRunningLocked(); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	s.stopCountdownLocked()
	s.announcer.CancelActive()
	s.rotateLocked()

	spin, fired, messages, seq := s.spinLocked(ctx)
	session := s.snapshotLocked()
	s.mu.Unlock()

	s.announceSpin(messages, seq)

	return &AdvanceTurnOutput{
		Session:   session,
		Result:    spin,
		Challenge: fired,
	}, nil
}

// EndGame ends the game after host confirmation
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if s.confirmer != nil && !s.confirmer.Confirm(ctx, "End the current game?") {
		return &EndGameOutput{Ended: false}, nil
	}

	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return nil, ErrGameNotRunning
	}

	s.stopCountdownLocked()
	s.announcer.CancelActive()
	s.spinSeq++

	ended := s.snapshotLocked()
	ended.Phase = models.PhaseEnded
	s.session = nil
	s.pendingBonus = 0
	s.countdown = models.CountdownState{}
	s.currentSpin = nil
	s.currentChallenge = nil
	s.mu.Unlock()

	s.publish(Event{Type: EventGameEnded, Session: ended})
	return &EndGameOutput{Ended: true}, nil
}

// GetState returns a snapshot of the session for rendering
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	output := &GetStateOutput{
		TimerSeconds: s.baseTimerLocked(ctx),
	}

	if s.session != nil {
		output.Session = s.snapshotLocked()
		countdown := s.countdown
		output.Countdown = &countdown
		if s.currentSpin != nil {
			spin := *s.currentSpin
			output.Spin = &spin
		}
		if s.currentChallenge != nil {
			ch := *s.currentChallenge
			output.Challenge = &ch
		}
	}

	return output, nil
}

// spinLocked draws for the current player and prepares the announcement.
// Caller holds the lock and must run announceSpin after releasing it.
func (s *service) spinLocked(ctx context.Context) (*models.SpinResult, *models.Challenge, []string, int) {
	s.spinSeq++
	s.setPhaseLocked(models.PhaseSpinning)
	s.currentChallenge = nil

	result := s.roller.Spin()
	s.currentSpin = &result

	var fired *models.Challenge
	eval, err := s.challenges.Evaluate(ctx, &challenge.EvaluateInput{TurnNumber: s.session.TurnNumber})
	if err != nil {
		// A broken challenge store never blocks the spin
		log.WithError(err).Warn("challenge evaluation failed")
	} else if eval.Fired {
		fired = eval.Challenge
		s.currentChallenge = fired
		if s.session.Mode == models.TurnModeTimed {
			s.pendingBonus = models.ChallengeBonusSeconds
		}
	}

	s.publish(Event{Type: EventSpin, Session: s.snapshotLocked(), Spin: &result})
	if fired != nil {
		s.publish(Event{Type: EventChallenge, Session: s.snapshotLocked(), Challenge: fired})
	}

	s.setPhaseLocked(models.PhaseAwaitingAnnouncement)

	// Challenge strictly before the turn call
	var messages []string
	if fired != nil {
		messages = append(messages, "Challenge! "+fired.Text)
	}
	messages = append(messages, fmt.Sprintf("%s, %s on %s", s.session.CurrentPlayer(), result.Limb, result.Color))

	return &result, fired, messages, s.spinSeq
}

// announceSpin hands the prepared messages to the announcer. Must be
// called without the lock held: a disabled voice completes synchronously.
func (s *service) announceSpin(messages []string, seq int) {
	err := s.announcer.AnnounceSequence(context.Background(), &announce.AnnounceSequenceInput{
		Messages: messages,
		OnDone:   func() { s.completeAnnouncement(seq) },
	})
	if err != nil {
		log.WithError(err).Warn("failed to announce spin")
	}
}

// completeAnnouncement transitions out of AwaitingAnnouncement once the
// spin's announcement sequence has finished
func (s *service) completeAnnouncement(seq int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || seq != s.spinSeq || s.session.Phase != models.PhaseAwaitingAnnouncement {
		return
	}

	if s.session.Mode == models.TurnModeTimed {
		s.startCountdownLocked(context.Background())
	} else {
		s.setPhaseLocked(models.PhaseAwaitingManualAdvance)
	}
}

// startCountdownLocked begins the turn countdown, consuming any pending
// challenge bonus exactly once
func (s *service) startCountdownLocked(ctx context.Context) {
	s.stopCountdownLocked()

	bonus := s.pendingBonus
	s.pendingBonus = 0

	s.countdown = models.CountdownState{
		RemainingSeconds: s.baseTimerLocked(ctx) + bonus,
		BonusSeconds:     bonus,
		Active:           true,
	}
	s.setPhaseLocked(models.PhaseCountingDown)
	countdown := s.countdown
	s.publish(Event{Type: EventCountdownTick, Session: s.snapshotLocked(), Countdown: &countdown})

	runCtx, cancel := context.WithCancel(context.Background())
	s.stopCountdown = cancel
	go s.runCountdown(runCtx, s.spinSeq)
}

// stopCountdownLocked halts the running countdown, if any
func (s *service) stopCountdownLocked() {
	if s.stopCountdown != nil {
		s.stopCountdown()
		s.stopCountdown = nil
	}
	s.countdown.Active = false
}

// runCountdown ticks once per second until the countdown expires or is
// superseded
func (s *service) runCountdown(ctx context.Context, seq int) {
	ticker := s.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			s.mu.Lock()
			if s.session == nil || seq != s.spinSeq || !s.countdown.Active {
				s.mu.Unlock()
				return
			}

			s.countdown.RemainingSeconds--
			countdown := s.countdown
			s.publish(Event{Type: EventCountdownTick, Session: s.snapshotLocked(), Countdown: &countdown})

			if s.countdown.RemainingSeconds > 0 {
				s.mu.Unlock()
				continue
			}

			s.countdown.Active = false
			s.mu.Unlock()

			if _, err := s.AdvanceTurn(context.Background(), &AdvanceTurnInput{}); err != nil {
				log.WithError(err).Warn("countdown auto-advance failed")
			}
			return
		}
	}
}

// rotateLocked moves to the next player; the round counter increments
// when the rotation wraps
func (s *service) rotateLocked() {
	s.session.CurrentPlayerIndex = (s.session.CurrentPlayerIndex + 1) % len(s.session.Players)
	if s.session.CurrentPlayerIndex == 0 {
		s.session.TurnNumber++
	}
}

func (s *service) ensureRunningLocked() error {
	if s.session == nil || s.session.Phase == models.PhaseEnded {
		return ErrGameNotRunning
	}
	return nil
}

func (s *service) setPhaseLocked(phase models.GamePhase) {
	if s.session.Phase == phase {
		return
	}
	s.session.Phase = phase
	s.publish(Event{Type: EventPhaseChanged, Session: s.snapshotLocked()})
}

// snapshotLocked copies the session so subscribers never see live state
func (s *service) snapshotLocked() *models.GameSession {
	if s.session == nil {
		return nil
	}
	copied := *s.session
	copied.Players = append([]string(nil), s.session.Players...)
	return &copied
}

// baseTimerLocked returns the configured countdown length, loading it on
// first use
func (s *service) baseTimerLocked(ctx context.Context) int {
	if s.timerSeconds != 0 {
		return s.timerSeconds
	}

	output, err := s.settings.GetTimerSettings(ctx, &settings.GetTimerSettingsInput{})
	if err != nil {
		if err != settings.ErrNotFound {
			log.WithError(err).Warn("failed to load timer settings")
		}
		s.timerSeconds = models.DefaultTimerSeconds
		return s.timerSeconds
	}

	s.timerSeconds = clampTimerSeconds(output.Settings.DurationSeconds)
	return s.timerSeconds
}

func (s *service) loadPlayers(ctx context.Context) ([]string, error) {
	output, err := s.roster.GetPlayers(ctx, &roster.GetPlayersInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	return output.Players, nil
}

func (s *service) savePlayers(ctx context.Context, players []string) error {
	err := s.roster.SavePlayers(ctx, &roster.SavePlayersInput{Players: players})
	if err != nil {
		return fmt.Errorf("failed to save players: %w", err)
	}
	return nil
}

// clampTimerSeconds snaps a requested duration into the supported range
// and step
func clampTimerSeconds(seconds int) int {
	if seconds < models.MinTimerSeconds {
		return models.MinTimerSeconds
	}
	if seconds > models.MaxTimerSeconds {
		return models.MaxTimerSeconds
	}
	if rem := seconds % models.TimerStepSeconds; rem != 0 {
		seconds -= rem
	}
	return seconds
}
