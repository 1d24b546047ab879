package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key names for Redis
	voiceSettingsKey     = "twistcaller:settings:voice"
	challengeSettingsKey = "twistcaller:settings:challenges"
	timerSettingsKey     = "twistcaller:settings:timer"
	playlistKey          = "twistcaller:bridge:playlist"
	bridgeVolumeKey      = "twistcaller:bridge:volume"
)

// ErrNotFound is returned when a setting has never been saved
var ErrNotFound = errors.New("setting not found")

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settings repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// getJSON loads a JSON blob into dest, mapping redis.Nil to ErrNotFound
func (r *redisRepository) getJSON(ctx context.Context, key string, dest any) error {
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	return nil
}

// setJSON stores value as a JSON blob under key
func (r *redisRepository) setJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}

// GetVoiceSettings retrieves the persisted voice preferences
func (r *redisRepository) GetVoiceSettings(ctx context.Context, input *GetVoiceSettingsInput) (*GetVoiceSettingsOutput, error) {
	var settings models.VoiceSettings
	if err := r.getJSON(ctx, voiceSettingsKey, &settings); err != nil {
		return nil, err
	}
	return &GetVoiceSettingsOutput{Settings: &settings}, nil
}

// SaveVoiceSettings persists the voice preferences
func (r *redisRepository) SaveVoiceSettings(ctx context.Context, input *SaveVoiceSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}
	return r.setJSON(ctx, voiceSettingsKey, input.Settings)
}

// GetChallengeSettings retrieves the persisted challenge preferences
func (r *redisRepository) GetChallengeSettings(ctx context.Context, input *GetChallengeSettingsInput) (*GetChallengeSettingsOutput, error) {
	var settings models.ChallengeSettings
	if err := r.getJSON(ctx, challengeSettingsKey, &settings); err != nil {
		return nil, err
	}
	return &GetChallengeSettingsOutput{Settings: &settings}, nil
}

// SaveChallengeSettings persists the challenge preferences
func (r *redisRepository) SaveChallengeSettings(ctx context.Context, input *SaveChallengeSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}
	return r.setJSON(ctx, challengeSettingsKey, input.Settings)
}

// GetTimerSettings retrieves the persisted countdown duration
func (r *redisRepository) GetTimerSettings(ctx context.Context, input *GetTimerSettingsInput) (*GetTimerSettingsOutput, error) {
	var settings models.TimerSettings
	if err := r.getJSON(ctx, timerSettingsKey, &settings); err != nil {
		return nil, err
	}
	return &GetTimerSettingsOutput{Settings: &settings}, nil
}

// SaveTimerSettings persists the countdown duration
func (r *redisRepository) SaveTimerSettings(ctx context.Context, input *SaveTimerSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}
	return r.setJSON(ctx, timerSettingsKey, input.Settings)
}

// GetPlaylist retrieves the selected background-music playlist
func (r *redisRepository) GetPlaylist(ctx context.Context, input *GetPlaylistInput) (*GetPlaylistOutput, error) {
	var playlist models.Playlist
	if err := r.getJSON(ctx, playlistKey, &playlist); err != nil {
		return nil, err
	}
	return &GetPlaylistOutput{Playlist: &playlist}, nil
}

// SavePlaylist persists the selected background-music playlist
func (r *redisRepository) SavePlaylist(ctx context.Context, input *SavePlaylistInput) error {
	if input == nil || input.Playlist == nil {
		return errors.New("input and playlist cannot be nil")
	}
	return r.setJSON(ctx, playlistKey, input.Playlist)
}

// DeletePlaylist removes the playlist selection
func (r *redisRepository) DeletePlaylist(ctx context.Context, input *DeletePlaylistInput) error {
	if err := r.client.Del(ctx, playlistKey).Err(); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	return nil
}

// GetBridgeVolume retrieves the persisted music volume
func (r *redisRepository) GetBridgeVolume(ctx context.Context, input *GetBridgeVolumeInput) (*GetBridgeVolumeOutput, error) {
	raw, err := r.client.Get(ctx, bridgeVolumeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bridge volume: %w", err)
	}

	volume, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bridge volume: %w", err)
	}

	return &GetBridgeVolumeOutput{Volume: volume}, nil
}

// SaveBridgeVolume persists the music volume
func (r *redisRepository) SaveBridgeVolume(ctx context.Context, input *SaveBridgeVolumeInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	raw := strconv.FormatFloat(input.Volume, 'f', -1, 64)
	if err := r.client.Set(ctx, bridgeVolumeKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save bridge volume: %w", err)
	}

	return nil
}
