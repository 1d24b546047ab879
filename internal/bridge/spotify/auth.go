package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/repositories/auth"
)

// ErrStateMismatch is returned when the authorization callback carries a
// state value other than the one issued. The in-flight session is
// discarded and the host must start over.
var ErrStateMismatch = errors.New("authorization state mismatch")

// Playback control and playlist search over an already running player
const authScopes = "user-modify-playback-state user-read-playback-state user-read-currently-playing playlist-read-private"

// Access tokens are treated as expired this long before the service says so
const expiryBuffer = 60 * time.Second

// LoginURL begins an authorization attempt: it generates fresh PKCE
// values, stores them, and returns the URL to send the host's browser to.
func (c *Client) LoginURL(ctx context.Context) (string, error) {
	verifier, err := generateVerifier()
	if err != nil {
		return "", err
	}

	state, err := generateState()
	if err != nil {
		return "", err
	}

	err = c.authRepo.SavePKCE(ctx, &auth.SavePKCEInput{
		Verifier: verifier,
		State:    state,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store authorization values: %w", err)
	}

	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("response_type", "code")
	q.Set("redirect_uri", c.redirectURI)
	q.Set("state", state)
	q.Set("scope", authScopes)
	q.Set("code_challenge_method", "S256")
	q.Set("code_challenge", challengeFromVerifier(verifier))

	return c.accountsURL + "/authorize?" + q.Encode(), nil
}

// HandleCallback completes the authorization attempt started by LoginURL.
// A state mismatch discards the attempt entirely.
func (c *Client) HandleCallback(ctx context.Context, code, state string) error {
	pkce, err := c.authRepo.GetPKCE(ctx, &auth.GetPKCEInput{})
	if err != nil {
		if err == auth.ErrNotFound {
			return ErrStateMismatch
		}
		return fmt.Errorf("failed to load authorization values: %w", err)
	}

	// One shot either way
	defer c.authRepo.ClearPKCE(ctx, &auth.ClearPKCEInput{})

	if state == "" || state != pkce.State {
		return ErrStateMismatch
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.redirectURI)
	form.Set("client_id", c.clientID)
	form.Set("code_verifier", pkce.Verifier)

	tokens, err := c.requestTokens(ctx, form)
	if err != nil {
		return err
	}

	if err := c.authRepo.SaveTokens(ctx, &auth.SaveTokensInput{Tokens: tokens}); err != nil {
		return fmt.Errorf("failed to store tokens: %w", err)
	}

	return nil
}

// refresh exchanges the stored refresh token for a new access token and
// persists the result. Rotated refresh tokens replace the stored one.
func (c *Client) refresh(ctx context.Context, refreshToken string) (*models.TokenSet, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", c.clientID)

	tokens, err := c.requestTokens(ctx, form)
	if err != nil {
		return nil, err
	}

	if tokens.RefreshToken == "" {
		tokens.RefreshToken = refreshToken
	}

	if err := c.authRepo.SaveTokens(ctx, &auth.SaveTokensInput{Tokens: tokens}); err != nil {
		return nil, fmt.Errorf("failed to store tokens: %w", err)
	}

	return tokens, nil
}

// tokenResponse is the accounts token endpoint's reply
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

func (c *Client) requestTokens(ctx context.Context, form url.Values) (*models.TokenSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.accountsURL+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("token request returned %d: %s", resp.StatusCode, string(body))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	expiresAt := c.clock.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - expiryBuffer)

	return &models.TokenSet{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}
