package models

// Timer bounds, in seconds
const (
	MinTimerSeconds     = 5
	MaxTimerSeconds     = 30
	TimerStepSeconds    = 5
	DefaultTimerSeconds = 10
)

// ChallengeBonusSeconds is the extra countdown time granted once when a
// challenge fires in timed mode
const ChallengeBonusSeconds = 10

// VoiceSettings holds the persisted speech-output preferences
type VoiceSettings struct {
	// Enabled toggles voice announcements globally
	Enabled bool `json:"enabled"`

	// Rate is the speaking rate multiplier, 0.5 to 2.0
	Rate float64 `json:"rate"`

	// Volume is the speech volume, 0 to 1
	Volume float64 `json:"volume"`

	// Pitch is the speech pitch, 0 to 2
	Pitch float64 `json:"pitch"`

	// VoiceID is an optional synthesizer voice handle
	VoiceID string `json:"voiceId,omitempty"`
}

// DefaultVoiceSettings returns the settings used before any are persisted
func DefaultVoiceSettings() *VoiceSettings {
	return &VoiceSettings{
		Enabled: true,
		Rate:    1.0,
		Volume:  1.0,
		Pitch:   1.0,
	}
}

// ChallengeSettings holds the persisted challenge preferences.
// Only the per-ID enabled flags and the tier are mutable; the catalog
// itself is fixed.
type ChallengeSettings struct {
	// Enabled toggles the challenge system globally
	Enabled bool `json:"enabled"`

	// Frequency selects the firing tier
	Frequency FrequencyTier `json:"frequency"`

	// Disabled lists the catalog IDs the host has switched off
	Disabled []int `json:"disabled,omitempty"`
}

// DefaultChallengeSettings returns the settings used before any are persisted
func DefaultChallengeSettings() *ChallengeSettings {
	return &ChallengeSettings{
		Enabled:   true,
		Frequency: FrequencyMedium,
	}
}

// IsDisabled reports whether the given challenge ID has been switched off
func (s *ChallengeSettings) IsDisabled(id int) bool {
	for _, d := range s.Disabled {
		if d == id {
			return true
		}
	}
	return false
}

// SetDisabled adds or removes an ID from the disabled list
func (s *ChallengeSettings) SetDisabled(id int, disabled bool) {
	if disabled {
		if !s.IsDisabled(id) {
			s.Disabled = append(s.Disabled, id)
		}
		return
	}
	kept := s.Disabled[:0]
	for _, d := range s.Disabled {
		if d != id {
			kept = append(kept, d)
		}
	}
	s.Disabled = kept
}

// TimerSettings holds the persisted countdown duration
type TimerSettings struct {
	// DurationSeconds is the base countdown length, 5 to 30 in steps of 5
	DurationSeconds int `json:"durationSeconds"`
}

// DefaultTimerSettings returns the settings used before any are persisted
func DefaultTimerSettings() *TimerSettings {
	return &TimerSettings{DurationSeconds: DefaultTimerSeconds}
}
