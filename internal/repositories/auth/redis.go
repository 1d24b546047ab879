package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	tokensKey = "twistcaller:bridge:tokens"
	pkceKey   = "twistcaller:bridge:pkce"

	// An abandoned authorization attempt expires on its own
	pkceTTL = 10 * time.Minute
)

// ErrNotFound is returned when no credentials are stored
var ErrNotFound = errors.New("credentials not found")

// Config holds configuration for the Redis auth repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed auth repository
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

// GetTokens retrieves the stored token set from Redis
func (r *redisRepository) GetTokens(ctx context.Context, input *GetTokensInput) (*GetTokensOutput, error) {
	raw, err := r.client.Get(ctx, tokensKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tokens: %w", err)
	}

	var tokens models.TokenSet
	if err := json.Unmarshal([]byte(raw), &tokens); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tokens: %w", err)
	}

	return &GetTokensOutput{Tokens: &tokens}, nil
}

// SaveTokens persists the token set to Redis
func (r *redisRepository) SaveTokens(ctx context.Context, input *SaveTokensInput) error {
	if input == nil || input.Tokens == nil {
		return errors.New("input and tokens cannot be nil")
	}

	raw, err := json.Marshal(input.Tokens)
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}

	if err := r.client.Set(ctx, tokensKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save tokens: %w", err)
	}

	return nil
}

// DeleteTokens removes the stored token set from Redis
func (r *redisRepository) DeleteTokens(ctx context.Context, input *DeleteTokensInput) error {
	if err := r.client.Del(ctx, tokensKey).Err(); err != nil {
		return fmt.Errorf("failed to delete tokens: %w", err)
	}
	return nil
}

// pkceRecord is the stored shape of the in-flight authorization values
type pkceRecord struct {
	Verifier string `json:"verifier"`
	State    string `json:"state"`
}

// SavePKCE stores the in-flight authorization verifier and state with a TTL
func (r *redisRepository) SavePKCE(ctx context.Context, input *SavePKCEInput) error {
	if input == nil || input.Verifier == "" || input.State == "" {
		return errors.New("input, verifier and state cannot be empty")
	}

	raw, err := json.Marshal(&pkceRecord{Verifier: input.Verifier, State: input.State})
	if err != nil {
		return fmt.Errorf("failed to marshal pkce values: %w", err)
	}

	if err := r.client.Set(ctx, pkceKey, raw, pkceTTL).Err(); err != nil {
		return fmt.Errorf("failed to save pkce values: %w", err)
	}

	return nil
}

// GetPKCE retrieves the in-flight authorization verifier and state
func (r *redisRepository) GetPKCE(ctx context.Context, input *GetPKCEInput) (*GetPKCEOutput, error) {
	raw, err := r.client.Get(ctx, pkceKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pkce values: %w", err)
	}

	var record pkceRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pkce values: %w", err)
	}

	return &GetPKCEOutput{Verifier: record.Verifier, State: record.State}, nil
}

// ClearPKCE removes the in-flight authorization values from Redis
func (r *redisRepository) ClearPKCE(ctx context.Context, input *ClearPKCEInput) error {
	if err := r.client.Del(ctx, pkceKey).Err(); err != nil {
		return fmt.Errorf("failed to clear pkce values: %w", err)
	}
	return nil
}
