package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pecas-dev/twistcaller/internal/bridge"
	"github.com/pecas-dev/twistcaller/internal/common/clock"
	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/repositories/auth"
	"github.com/pecas-dev/twistcaller/internal/repositories/settings"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAccountsURL = "https://accounts.spotify.com"
	defaultAPIURL      = "https://api.spotify.com"
)

// Config holds configuration for the Spotify client
type Config struct {
	// ClientID is the registered application's client ID
	ClientID string

	// RedirectURI is the registered authorization callback
	RedirectURI string

	// AuthRepository stores tokens and in-flight authorization values
	AuthRepository auth.Repository

	// SettingsRepository stores the playlist selection
	SettingsRepository settings.Repository

	// Clock for token expiry checks. Defaults to the real clock.
	Clock clock.Clock

	// HTTPClient overrides the HTTP client. Defaults to a 10s-timeout client.
	HTTPClient *http.Client

	// AccountsURL and APIURL override the service endpoints for tests
	AccountsURL string
	APIURL      string
}

// Client remote-controls a running Spotify player over the Web API.
// It implements bridge.Controller.
type Client struct {
	clientID    string
	redirectURI string
	authRepo    auth.Repository
	settings    settings.Repository
	clock       clock.Clock
	httpClient  *http.Client
	accountsURL string
	apiURL      string
}

// New creates a new Spotify client
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ClientID == "" {
		return nil, errors.New("client ID cannot be empty")
	}

	if cfg.RedirectURI == "" {
		return nil, errors.New("redirect URI cannot be empty")
	}

	if cfg.AuthRepository == nil {
		return nil, errors.New("auth repository cannot be nil")
	}

	if cfg.SettingsRepository == nil {
		return nil, errors.New("settings repository cannot be nil")
	}

	c := &Client{
		clientID:    cfg.ClientID,
		redirectURI: cfg.RedirectURI,
		authRepo:    cfg.AuthRepository,
		settings:    cfg.SettingsRepository,
		clock:       cfg.Clock,
		httpClient:  cfg.HTTPClient,
		accountsURL: cfg.AccountsURL,
		apiURL:      cfg.APIURL,
	}

	if c.clock == nil {
		c.clock = &clock.DefaultClock{}
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if c.accountsURL == "" {
		c.accountsURL = defaultAccountsURL
	}
	if c.apiURL == "" {
		c.apiURL = defaultAPIURL
	}

	return c, nil
}

// Connected reports whether an authorized session exists
func (c *Client) Connected(ctx context.Context) bool {
	_, err := c.authRepo.GetTokens(ctx, &auth.GetTokensInput{})
	return err == nil
}

// Disconnect discards the stored session and playlist selection
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.authRepo.DeleteTokens(ctx, &auth.DeleteTokensInput{}); err != nil {
		return err
	}
	if err := c.settings.DeletePlaylist(ctx, &settings.DeletePlaylistInput{}); err != nil {
		log.WithError(err).Warn("failed to clear playlist selection")
	}
	return nil
}

// accessToken returns a usable bearer token, refreshing a stale one first
func (c *Client) accessToken(ctx context.Context) (string, error) {
	output, err := c.authRepo.GetTokens(ctx, &auth.GetTokensInput{})
	if err != nil {
		if err == auth.ErrNotFound {
			return "", bridge.ErrNotConnected
		}
		return "", err
	}

	tokens := output.Tokens
	if tokens.Expired(c.clock.Now()) {
		tokens, err = c.refreshOrDrop(ctx, tokens.RefreshToken)
		if err != nil {
			return "", err
		}
	}

	return tokens.AccessToken, nil
}

// refreshOrDrop refreshes the session; on failure the session is
// discarded so the UI falls back to disconnected.
func (c *Client) refreshOrDrop(ctx context.Context, refreshToken string) (*models.TokenSet, error) {
	if refreshToken == "" {
		c.dropSession(ctx)
		return nil, bridge.ErrNotConnected
	}

	tokens, err := c.refresh(ctx, refreshToken)
	if err != nil {
		log.WithError(err).Warn("token refresh failed, dropping session")
		c.dropSession(ctx)
		return nil, bridge.ErrNotConnected
	}

	return tokens, nil
}

func (c *Client) dropSession(ctx context.Context) {
	if err := c.authRepo.DeleteTokens(ctx, &auth.DeleteTokensInput{}); err != nil {
		log.WithError(err).Warn("failed to delete tokens")
	}
}

// do performs an authenticated API call. A 401 triggers exactly one
// token refresh and retry; a second 401 drops the session.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, method, path, body, token)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	output, err := c.authRepo.GetTokens(ctx, &auth.GetTokensInput{})
	if err != nil {
		return nil, bridge.ErrNotConnected
	}

	tokens, err := c.refreshOrDrop(ctx, output.Tokens.RefreshToken)
	if err != nil {
		return nil, err
	}

	resp, err = c.send(ctx, method, path, body, tokens.AccessToken)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		c.dropSession(ctx)
		return nil, bridge.ErrNotConnected
	}

	return resp, nil
}

func (c *Client) send(ctx context.Context, method, path string, body any, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

// decodeOrError drains the response, decoding JSON into out on 2xx.
// A nil out only checks the status.
func decodeOrError(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("api returned %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
