package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pecas-dev/twistcaller/internal/models"
	log "github.com/sirupsen/logrus"
)

// espeak-ng's neutral reference values. Rate is words per minute, pitch
// and amplitude are 0-99 and 0-200 scales.
const (
	baseWordsPerMinute = 175
	basePitch          = 50
	baseAmplitude      = 100
)

// Config holds configuration for the espeak-backed speaker
type Config struct {
	// Binary overrides the synthesizer binary name. Defaults to espeak-ng.
	Binary string
}

type espeakSpeaker struct {
	binary string
}

// NewEspeak creates a Speaker backed by the espeak-ng command line
// synthesizer. Returns ErrUnavailable when the binary is not installed,
// so callers can fall back to silent operation.
func NewEspeak(cfg *Config) (*espeakSpeaker, error) {
	binary := "espeak-ng"
	if cfg != nil && cfg.Binary != "" {
		binary = cfg.Binary
	}

	if _, err := exec.LookPath(binary); err != nil {
		log.WithField("binary", binary).Warn("speech synthesizer not found, voice output disabled")
		return nil, ErrUnavailable
	}

	return &espeakSpeaker{binary: binary}, nil
}

// Speak renders one utterance and blocks until playback completes
func (s *espeakSpeaker) Speak(ctx context.Context, input *SpeakInput) error {
	if input == nil || input.Text == "" {
		return errors.New("input and text cannot be empty")
	}

	voice := input.Voice
	if voice == nil {
		voice = models.DefaultVoiceSettings()
	}

	cmd := exec.CommandContext(ctx, s.binary, buildArgs(input.Text, voice)...)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to speak: %w", err)
	}

	return nil
}

// Voices lists the identifiers the synthesizer can render with
func (s *espeakSpeaker) Voices(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, s.binary, "--voices").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list voices: %w", err)
	}
	return parseVoices(string(out)), nil
}

// buildArgs maps the stored 0.5-2.0 / 0-1 / 0-2 preference scales onto
// espeak's native units
func buildArgs(text string, voice *models.VoiceSettings) []string {
	args := []string{
		"-s", strconv.Itoa(int(float64(baseWordsPerMinute) * voice.Rate)),
		"-p", strconv.Itoa(int(float64(basePitch) * voice.Pitch)),
		"-a", strconv.Itoa(int(float64(baseAmplitude) * voice.Volume)),
	}
	if voice.VoiceID != "" {
		args = append(args, "-v", voice.VoiceID)
	}
	return append(args, text)
}

// parseVoices extracts the language column from `espeak-ng --voices` output.
// The first line is a header.
func parseVoices(out string) []string {
	var voices []string
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for i, line := range lines {
		if i == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		voices = append(voices, fields[1])
	}
	return voices
}
