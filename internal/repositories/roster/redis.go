package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const playersKey = "twistcaller:players"

// Config holds configuration for the Redis roster repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed roster repository
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

// GetPlayers retrieves the ordered player list from Redis
func (r *redisRepository) GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error) {
	playersJSON, err := r.client.Get(ctx, playersKey).Result()
	if err != nil {
		if err == redis.Nil {
			// No roster saved yet
			return &GetPlayersOutput{Players: []string{}}, nil
		}
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	var players []string
	if err := json.Unmarshal([]byte(playersJSON), &players); err != nil {
		return nil, fmt.Errorf("failed to unmarshal players: %w", err)
	}

	if players == nil {
		players = []string{}
	}

	return &GetPlayersOutput{Players: players}, nil
}

// SavePlayers persists the ordered player list to Redis
func (r *redisRepository) SavePlayers(ctx context.Context, input *SavePlayersInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	players := input.Players
	if players == nil {
		players = []string{}
	}

	playersJSON, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("failed to marshal players: %w", err)
	}

	if err := r.client.Set(ctx, playersKey, playersJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save players: %w", err)
	}

	return nil
}
