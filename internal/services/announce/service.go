package announce

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pecas-dev/twistcaller/internal/bridge"
	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/repositories/settings"
	"github.com/pecas-dev/twistcaller/internal/speech"
	log "github.com/sirupsen/logrus"
)

// DefaultResumeDelay is how long after an utterance music resumes.
// Resuming immediately clips the tail of the speech on some players.
const DefaultResumeDelay = 300 * time.Millisecond

// Config holds configuration for the announcement service
type Config struct {
	// Speaker renders the audio. Nil means no synthesizer is available
	// and every announcement completes silently.
	Speaker speech.Speaker

	// SettingsRepository provides the voice preferences
	SettingsRepository settings.Repository

	// Bridge is consulted for music ducking. Optional.
	Bridge bridge.Controller

	// DuckMusic pauses playing music around utterances
	DuckMusic bool

	// ResumeDelay overrides the pause before music resumes
	ResumeDelay time.Duration
}

type service struct {
	speaker     speech.Speaker
	settings    settings.Repository
	bridge      bridge.Controller
	duckMusic   bool
	resumeDelay time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

// New creates a new announcement service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SettingsRepository == nil {
		return nil, errors.New("settings repository cannot be nil")
	}

	resumeDelay := cfg.ResumeDelay
	if resumeDelay == 0 {
		resumeDelay = DefaultResumeDelay
	}

	return &service{
		speaker:     cfg.Speaker,
		settings:    cfg.SettingsRepository,
		bridge:      cfg.Bridge,
		duckMusic:   cfg.DuckMusic,
		resumeDelay: resumeDelay,
	}, nil
}

// Announce speaks a single message
func (s *service) Announce(ctx context.Context, input *AnnounceInput) error {
	if input == nil || input.Message == "" {
		return errors.New("input and message cannot be empty")
	}

	return s.run(ctx, []string{input.Message}, input.Test, input.OnDone)
}

// AnnounceSequence speaks messages strictly in order
func (s *service) AnnounceSequence(ctx context.Context, input *AnnounceSequenceInput) error {
	if input == nil || len(input.Messages) == 0 {
		return errors.New("input and messages cannot be empty")
	}

	return s.run(ctx, input.Messages, false, input.OnDone)
}

// CancelActive stops the in-flight announcement, if any
func (s *service) CancelActive() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *service) run(ctx context.Context, messages []string, test bool, onDone func()) error {
	voice, err := s.loadVoice(ctx)
	if err != nil {
		return err
	}

	speak := s.speaker != nil && (voice.Enabled || test)
	if !speak {
		if onDone != nil {
			onDone()
		}
		return nil
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	// Utterances outlive the triggering request; only CancelActive or a
	// superseding announcement stops them.
	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	go s.speakAll(runCtx, messages, voice, onDone)
	return nil
}

func (s *service) speakAll(ctx context.Context, messages []string, voice *models.VoiceSettings, onDone func()) {
	resume := s.duck(ctx)

	for _, message := range messages {
		if ctx.Err() != nil {
			resume()
			return
		}

		err := s.speaker.Speak(ctx, &speech.SpeakInput{
			Text:  message,
			Voice: voice,
		})
		if err != nil {
			if ctx.Err() != nil {
				resume()
				return
			}
			// Speech failure never blocks the game
			log.WithError(err).Warn("announcement failed")
		}
	}

	resume()

	if ctx.Err() == nil && onDone != nil {
		onDone()
	}
}

// duck pauses playing music and returns the matching resume action.
// Music that was not playing is left alone.
func (s *service) duck(ctx context.Context) func() {
	if !s.duckMusic || s.bridge == nil {
		return func() {}
	}

	playing, err := s.bridge.IsPlaying(ctx)
	if err != nil || !playing {
		return func() {}
	}

	if err := s.bridge.Pause(ctx); err != nil {
		log.WithError(err).Warn("failed to pause music for announcement")
		return func() {}
	}

	return func() {
		time.Sleep(s.resumeDelay)
		// Resume even when the announcement was cancelled
		if err := s.bridge.Play(context.Background()); err != nil {
			log.WithError(err).Warn("failed to resume music after announcement")
		}
	}
}

func (s *service) loadVoice(ctx context.Context) (*models.VoiceSettings, error) {
	output, err := s.settings.GetVoiceSettings(ctx, &settings.GetVoiceSettingsInput{})
	if err != nil {
		if err == settings.ErrNotFound {
			return models.DefaultVoiceSettings(), nil
		}
		return nil, err
	}
	return output.Settings, nil
}
