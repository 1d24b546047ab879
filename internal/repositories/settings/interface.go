package settings

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pecas-dev/twistcaller/internal/repositories/settings Repository

// Repository defines the interface for persisted user preferences.
// Get methods return ErrNotFound when nothing has been saved yet;
// callers fall back to defaults.
type Repository interface {
	// GetVoiceSettings retrieves the persisted voice preferences
	GetVoiceSettings(ctx context.Context, input *GetVoiceSettingsInput) (*GetVoiceSettingsOutput, error)

	// SaveVoiceSettings persists the voice preferences
	SaveVoiceSettings(ctx context.Context, input *SaveVoiceSettingsInput) error

	// GetChallengeSettings retrieves the persisted challenge preferences
	GetChallengeSettings(ctx context.Context, input *GetChallengeSettingsInput) (*GetChallengeSettingsOutput, error)

	// SaveChallengeSettings persists the challenge preferences
	SaveChallengeSettings(ctx context.Context, input *SaveChallengeSettingsInput) error

	// GetTimerSettings retrieves the persisted countdown duration
	GetTimerSettings(ctx context.Context, input *GetTimerSettingsInput) (*GetTimerSettingsOutput, error)

	// SaveTimerSettings persists the countdown duration
	SaveTimerSettings(ctx context.Context, input *SaveTimerSettingsInput) error

	// GetPlaylist retrieves the selected background-music playlist
	GetPlaylist(ctx context.Context, input *GetPlaylistInput) (*GetPlaylistOutput, error)

	// SavePlaylist persists the selected background-music playlist
	SavePlaylist(ctx context.Context, input *SavePlaylistInput) error

	// DeletePlaylist removes the selected playlist (bridge disconnect)
	DeletePlaylist(ctx context.Context, input *DeletePlaylistInput) error

	// GetBridgeVolume retrieves the persisted music volume
	GetBridgeVolume(ctx context.Context, input *GetBridgeVolumeInput) (*GetBridgeVolumeOutput, error)

	// SaveBridgeVolume persists the music volume
	SaveBridgeVolume(ctx context.Context, input *SaveBridgeVolumeInput) error
}
