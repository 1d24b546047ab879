package settings

import "github.com/pecas-dev/twistcaller/internal/models"

// GetVoiceSettingsInput contains parameters for retrieving voice preferences
type GetVoiceSettingsInput struct{}

// GetVoiceSettingsOutput contains the persisted voice preferences
type GetVoiceSettingsOutput struct {
	Settings *models.VoiceSettings
}

// SaveVoiceSettingsInput contains the voice preferences to persist
type SaveVoiceSettingsInput struct {
	Settings *models.VoiceSettings
}

// GetChallengeSettingsInput contains parameters for retrieving challenge preferences
type GetChallengeSettingsInput struct{}

// GetChallengeSettingsOutput contains the persisted challenge preferences
type GetChallengeSettingsOutput struct {
	Settings *models.ChallengeSettings
}

// SaveChallengeSettingsInput contains the challenge preferences to persist
type SaveChallengeSettingsInput struct {
	Settings *models.ChallengeSettings
}

// GetTimerSettingsInput contains parameters for retrieving the countdown duration
type GetTimerSettingsInput struct{}

// GetTimerSettingsOutput contains the persisted countdown duration
type GetTimerSettingsOutput struct {
	Settings *models.TimerSettings
}

// SaveTimerSettingsInput contains the countdown duration to persist
type SaveTimerSettingsInput struct {
	Settings *models.TimerSettings
}

// GetPlaylistInput contains parameters for retrieving the selected playlist
type GetPlaylistInput struct{}

// GetPlaylistOutput contains the selected playlist
type GetPlaylistOutput struct {
	Playlist *models.Playlist
}

// SavePlaylistInput contains the playlist selection to persist
type SavePlaylistInput struct {
	Playlist *models.Playlist
}

// DeletePlaylistInput contains parameters for removing the playlist selection
type DeletePlaylistInput struct{}

// GetBridgeVolumeInput contains parameters for retrieving the music volume
type GetBridgeVolumeInput struct{}

// GetBridgeVolumeOutput contains the persisted music volume in [0, 1]
type GetBridgeVolumeOutput struct {
	Volume float64
}

// SaveBridgeVolumeInput contains the music volume to persist
type SaveBridgeVolumeInput struct {
	Volume float64
}
