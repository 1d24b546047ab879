package models

// Challenge is a randomized modifier shown on top of a spin
type Challenge struct {
	// ID is the stable identifier of the challenge in the catalog
	ID int `json:"id"`

	// Text is the instruction shown and spoken to the player
	Text string `json:"text"`

	// Icon is the glyph displayed next to the text
	Icon string `json:"icon"`

	// Enabled indicates whether this challenge can be drawn
	Enabled bool `json:"enabled"`
}

// FrequencyTier is a named challenge-frequency preset
type FrequencyTier string

const (
	// FrequencyRare fires challenges seldom and only in later rounds
	FrequencyRare FrequencyTier = "rare"

	// FrequencyMedium is the default pacing
	FrequencyMedium FrequencyTier = "medium"

	// FrequencyFrequent fires challenges often, starting in early rounds
	FrequencyFrequent FrequencyTier = "frequent"
)

// TierSettings bundles the gates for one frequency tier
type TierSettings struct {
	// MinTurns is the first round in which a challenge may fire
	MinTurns int

	// MaxTurns is retained from an older bonus-window rule and no longer
	// gates eligibility; the firing decision is the probability check alone
	MaxTurns int

	// Probability is the per-spin chance of a challenge firing once
	// MinTurns has been reached
	Probability float64
}

// TierTable maps each frequency tier to its gates
var TierTable = map[FrequencyTier]TierSettings{
	FrequencyRare:     {MinTurns: 8, MaxTurns: 15, Probability: 0.15},
	FrequencyMedium:   {MinTurns: 5, MaxTurns: 10, Probability: 0.25},
	FrequencyFrequent: {MinTurns: 3, MaxTurns: 7, Probability: 0.35},
}

// ValidFrequency reports whether the given tier name is known
func ValidFrequency(f FrequencyTier) bool {
	_, ok := TierTable[f]
	return ok
}
