package httpapi

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/pecas-dev/twistcaller/internal/bridge"
	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/repositories/settings"
	"github.com/pecas-dev/twistcaller/internal/services/announce"
	"github.com/pecas-dev/twistcaller/internal/services/challenge"
	"github.com/pecas-dev/twistcaller/internal/services/game"
	"github.com/pecas-dev/twistcaller/internal/speech"
)

// Authorizer runs the music bridge's delegated-authorization flow
type Authorizer interface {
	// LoginURL begins an authorization attempt
	LoginURL(ctx context.Context) (string, error)

	// HandleCallback completes the attempt with the service's redirect
	HandleCallback(ctx context.Context, code, state string) error
}

// Handler wires the services to the HTTP API consumed by the display
type Handler struct {
	games      game.Service
	challenges challenge.Service
	announcer  announce.Service
	settings   settings.Repository
	bridge     bridge.Controller
	authorizer Authorizer
	speaker    speech.Speaker
	nowPlaying func() *models.NowPlaying
}

// Config holds the configuration for the HTTP handler
type Config struct {
	// Game service
	GameService game.Service

	// Challenge service
	ChallengeService challenge.Service

	// Announcement service
	Announcer announce.Service

	// Settings repository for voice and volume preferences
	SettingsRepository settings.Repository

	// Bridge controls the music player. Optional.
	Bridge bridge.Controller

	// Authorizer runs the bridge login flow. Optional.
	Authorizer Authorizer

	// Speaker lists available synthesizer voices. Optional.
	Speaker speech.Speaker

	// CachedNowPlaying returns the poller's last player state, sparing a
	// round trip to the music service per request. Optional.
	CachedNowPlaying func() *models.NowPlaying
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.ChallengeService == nil {
		return nil, errors.New("challenge service cannot be nil")
	}

	if cfg.Announcer == nil {
		return nil, errors.New("announcer cannot be nil")
	}

	if cfg.SettingsRepository == nil {
		return nil, errors.New("settings repository cannot be nil")
	}

	return &Handler{
		games:      cfg.GameService,
		challenges: cfg.ChallengeService,
		announcer:  cfg.Announcer,
		settings:   cfg.SettingsRepository,
		bridge:     cfg.Bridge,
		authorizer: cfg.Authorizer,
		speaker:    cfg.Speaker,
		nowPlaying: cfg.CachedNowPlaying,
	}, nil
}

// Register attaches all API routes to the router
func (h *Handler) Register(router gin.IRouter) {
	api := router.Group("/api")

	api.GET("/players", h.listPlayers)
	api.POST("/players", h.addPlayer)
	api.DELETE("/players/:name", h.removePlayer)

	api.POST("/game/start", h.startGame)
	api.POST("/game/spin", h.spin)
	api.POST("/game/next", h.advanceTurn)
	api.POST("/game/end", h.endGame)
	api.GET("/game/state", h.gameState)
	api.PUT("/game/mode", h.setMode)

	api.GET("/settings/voice", h.getVoiceSettings)
	api.PUT("/settings/voice", h.saveVoiceSettings)
	api.POST("/settings/voice/test", h.testVoice)
	api.GET("/settings/voice/voices", h.listVoices)
	api.GET("/settings/challenges", h.listChallenges)
	api.PUT("/settings/challenges", h.saveChallengeSettings)
	api.PUT("/settings/challenges/:id", h.setChallengeEnabled)
	api.GET("/settings/timer", h.getTimerSettings)
	api.PUT("/settings/timer", h.setTimerDuration)

	api.GET("/events", h.streamEvents)

	api.GET("/bridge/login", h.bridgeLogin)
	api.GET("/bridge/callback", h.bridgeCallback)
	api.GET("/bridge/status", h.bridgeStatus)
	api.DELETE("/bridge/session", h.bridgeDisconnect)
	api.POST("/bridge/play", h.bridgePlay)
	api.POST("/bridge/pause", h.bridgePause)
	api.POST("/bridge/skip", h.bridgeSkip)
	api.PUT("/bridge/volume", h.bridgeVolume)
	api.GET("/bridge/playlists", h.bridgeSearchPlaylists)
	api.PUT("/bridge/playlist", h.bridgeSelectPlaylist)
	api.GET("/bridge/now-playing", h.bridgeNowPlaying)
}
