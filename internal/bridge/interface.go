package bridge

import (
	"context"
	"errors"

	"github.com/pecas-dev/twistcaller/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_controller.go github.com/pecas-dev/twistcaller/internal/bridge Controller

var (
	// ErrNotConnected is returned when no authorized session exists
	ErrNotConnected = errors.New("bridge not connected")

	// ErrNoDevice is returned when no playback device is available
	ErrNoDevice = errors.New("no playback device available")
)

// Controller remote-controls a streaming music player. All operations are
// best-effort from the game's point of view: callers log failures and
// carry on, the turn pipeline never waits on the bridge.
type Controller interface {
	// Connected reports whether an authorized session exists
	Connected(ctx context.Context) bool

	// Play starts or resumes playback of the selected playlist
	Play(ctx context.Context) error

	// Pause pauses playback
	Pause(ctx context.Context) error

	// Skip advances to the next track
	Skip(ctx context.Context) error

	// SetVolume sets the player volume, 0 to 100
	SetVolume(ctx context.Context, percent int) error

	// SelectPlaylist records the playlist to play
	SelectPlaylist(ctx context.Context, playlist *models.Playlist) error

	// SearchPlaylists searches the catalog by name
	SearchPlaylists(ctx context.Context, query string) ([]*models.PlaylistSummary, error)

	// NowPlaying returns the track the player currently reports
	NowPlaying(ctx context.Context) (*models.NowPlaying, error)

	// IsPlaying reports whether playback is currently active
	IsPlaying(ctx context.Context) (bool, error)

	// Disconnect discards the stored session
	Disconnect(ctx context.Context) error
}
