package speech

import (
	"context"
	"errors"

	"github.com/pecas-dev/twistcaller/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_speaker.go github.com/pecas-dev/twistcaller/internal/speech Speaker

// ErrUnavailable is returned when no synthesizer binary is installed
var ErrUnavailable = errors.New("speech synthesizer unavailable")

// SpeakInput contains one utterance and the voice to render it with
type SpeakInput struct {
	Text  string
	Voice *models.VoiceSettings
}

// Speaker renders text as audio. Speak blocks until the utterance has
// finished playing or the context is cancelled.
type Speaker interface {
	Speak(ctx context.Context, input *SpeakInput) error

	// Voices lists the identifiers the synthesizer can render with
	Voices(ctx context.Context) ([]string, error)
}
