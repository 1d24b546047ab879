package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pecas-dev/twistcaller/internal/bridge"
	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/repositories/settings"
)

// Play starts or resumes playback of the selected playlist on the
// preferred device. With no playlist selected it resumes whatever the
// player was doing.
func (c *Client) Play(ctx context.Context) error {
	deviceID, err := c.preferredDevice(ctx)
	if err != nil {
		return err
	}

	path := "/v1/me/player/play"
	if deviceID != "" {
		path += "?device_id=" + url.QueryEscape(deviceID)
	}

	var body any
	output, err := c.settings.GetPlaylist(ctx, &settings.GetPlaylistInput{})
	if err == nil {
		body = map[string]string{
			"context_uri": "spotify:playlist:" + output.Playlist.ID,
		}
	} else if err != settings.ErrNotFound {
		return err
	}

	resp, err := c.do(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return decodeOrError(resp, nil)
}

// Pause pauses playback
func (c *Client) Pause(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPut, "/v1/me/player/pause", nil)
	if err != nil {
		return err
	}
	return decodeOrError(resp, nil)
}

// Skip advances to the next track
func (c *Client) Skip(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/v1/me/player/next", nil)
	if err != nil {
		return err
	}
	return decodeOrError(resp, nil)
}

// SetVolume sets the player volume, 0 to 100
func (c *Client) SetVolume(ctx context.Context, percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("volume out of range: %d", percent)
	}

	path := fmt.Sprintf("/v1/me/player/volume?volume_percent=%d", percent)
	resp, err := c.do(ctx, http.MethodPut, path, nil)
	if err != nil {
		return err
	}
	return decodeOrError(resp, nil)
}

// SelectPlaylist records the playlist to play
func (c *Client) SelectPlaylist(ctx context.Context, playlist *models.Playlist) error {
	if playlist == nil || playlist.ID == "" {
		return errors.New("playlist and ID cannot be empty")
	}
	return c.settings.SavePlaylist(ctx, &settings.SavePlaylistInput{Playlist: playlist})
}

// playerState is the subset of the player endpoint's reply we read
type playerState struct {
	IsPlaying bool `json:"is_playing"`
	Item      *struct {
		Name    string `json:"name"`
		Artists []struct {
			Name string `json:"name"`
		} `json:"artists"`
	} `json:"item"`
}

// IsPlaying reports whether playback is currently active. An empty reply
// means no player is running.
func (c *Client) IsPlaying(ctx context.Context) (bool, error) {
	state, err := c.fetchPlayerState(ctx)
	if err != nil {
		return false, err
	}
	if state == nil {
		return false, nil
	}
	return state.IsPlaying, nil
}

// NowPlaying returns the track the player currently reports
func (c *Client) NowPlaying(ctx context.Context) (*models.NowPlaying, error) {
	state, err := c.fetchPlayerState(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil || state.Item == nil {
		return &models.NowPlaying{}, nil
	}

	artists := make([]string, 0, len(state.Item.Artists))
	for _, a := range state.Item.Artists {
		artists = append(artists, a.Name)
	}

	return &models.NowPlaying{
		TrackName:   state.Item.Name,
		ArtistNames: strings.Join(artists, ", "),
		Playing:     state.IsPlaying,
	}, nil
}

func (c *Client) fetchPlayerState(ctx context.Context) (*playerState, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/me/player", nil)
	if err != nil {
		return nil, err
	}

	// 204 means no active player
	if resp.StatusCode == http.StatusNoContent {
		resp.Body.Close()
		return nil, nil
	}

	var state playerState
	if err := decodeOrError(resp, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// device is one entry in the devices endpoint's reply
type device struct {
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
}

// preferredDevice returns the active device, or any device when none is
// active
func (c *Client) preferredDevice(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/me/player/devices", nil)
	if err != nil {
		return "", err
	}

	var reply struct {
		Devices []device `json:"devices"`
	}
	if err := decodeOrError(resp, &reply); err != nil {
		return "", err
	}

	if len(reply.Devices) == 0 {
		return "", bridge.ErrNoDevice
	}

	for _, d := range reply.Devices {
		if d.IsActive {
			return d.ID, nil
		}
	}
	return reply.Devices[0].ID, nil
}
