package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/cenkalti/backoff/v4"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pecas-dev/twistcaller/internal/bridge"
	"github.com/pecas-dev/twistcaller/internal/bridge/spotify"
	"github.com/pecas-dev/twistcaller/internal/handlers/httpapi"
	"github.com/pecas-dev/twistcaller/internal/models"
	authRepo "github.com/pecas-dev/twistcaller/internal/repositories/auth"
	rosterRepo "github.com/pecas-dev/twistcaller/internal/repositories/roster"
	settingsRepo "github.com/pecas-dev/twistcaller/internal/repositories/settings"
	announceService "github.com/pecas-dev/twistcaller/internal/services/announce"
	challengeService "github.com/pecas-dev/twistcaller/internal/services/challenge"
	gameService "github.com/pecas-dev/twistcaller/internal/services/game"
	"github.com/pecas-dev/twistcaller/internal/speech"
	"github.com/pecas-dev/twistcaller/internal/spinner"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

type config struct {
	ListenAddr    string `env:"LISTEN_ADDR" envDefault:":8080"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Spotify application credentials; empty leaves the bridge disabled
	SpotifyClientID string `env:"SPOTIFY_CLIENT_ID"`
	RedirectURI     string `env:"SPOTIFY_REDIRECT_URI" envDefault:"http://127.0.0.1:8080/api/bridge/callback"`

	// DuckMusic pauses music while announcements play
	DuckMusic bool `env:"DUCK_MUSIC" envDefault:"true"`

	// TTSBinary overrides the speech synthesizer command
	TTSBinary string `env:"TTS_BINARY"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	// Local development convenience; absence is fine
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.WithError(err).Fatal("failed to parse configuration")
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	// Redis may still be coming up alongside us
	connect := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return redisClient.Ping(ctx).Err()
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)
	if err := backoff.Retry(connect, policy); err != nil {
		log.WithError(err).Fatal("failed to connect to Redis")
	}

	roster, err := rosterRepo.NewRedis(&rosterRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.WithError(err).Fatal("failed to create roster repository")
	}

	settings, err := settingsRepo.NewRedis(&settingsRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.WithError(err).Fatal("failed to create settings repository")
	}

	tokens, err := authRepo.NewRedis(&authRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.WithError(err).Fatal("failed to create auth repository")
	}

	roller := spinner.New(&spinner.Config{})

	var speaker speech.Speaker
	if s, err := speech.NewEspeak(&speech.Config{Binary: cfg.TTSBinary}); err == nil {
		speaker = s
	} else if !errors.Is(err, speech.ErrUnavailable) {
		log.WithError(err).Fatal("failed to create speaker")
	}

	var musicBridge bridge.Controller
	var authorizer httpapi.Authorizer
	var lastPlayerState atomic.Pointer[models.NowPlaying]
	var cachedNowPlaying func() *models.NowPlaying
	if cfg.SpotifyClientID != "" {
		client, err := spotify.New(&spotify.Config{
			ClientID:           cfg.SpotifyClientID,
			RedirectURI:        cfg.RedirectURI,
			AuthRepository:     tokens,
			SettingsRepository: settings,
		})
		if err != nil {
			log.WithError(err).Fatal("failed to create music bridge")
		}
		musicBridge = client
		authorizer = client

		poller, err := spotify.NewPoller(&spotify.PollerConfig{
			Controller: client,
			OnState: func(np *models.NowPlaying) {
				lastPlayerState.Store(np)
			},
		})
		if err != nil {
			log.WithError(err).Fatal("failed to create player poller")
		}
		poller.Start(context.Background())
		defer poller.Stop()
		cachedNowPlaying = lastPlayerState.Load
	} else {
		log.Info("SPOTIFY_CLIENT_ID not set, music bridge disabled")
	}

	challenges, err := challengeService.New(&challengeService.Config{
		SettingsRepository: settings,
		Roller:             roller,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create challenge service")
	}

	announcer, err := announceService.New(&announceService.Config{
		Speaker:            speaker,
		SettingsRepository: settings,
		Bridge:             musicBridge,
		DuckMusic:          cfg.DuckMusic,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create announcement service")
	}

	games, err := gameService.New(&gameService.Config{
		RosterRepository:   roster,
		SettingsRepository: settings,
		ChallengeService:   challenges,
		Announcer:          announcer,
		Roller:             roller,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create game service")
	}

	handler, err := httpapi.New(&httpapi.Config{
		GameService:        games,
		ChallengeService:   challenges,
		Announcer:          announcer,
		SettingsRepository: settings,
		Bridge:             musicBridge,
		Authorizer:         authorizer,
		Speaker:            speaker,
		CachedNowPlaying:   cachedNowPlaying,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create HTTP handler")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler.Register(router)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("twistcaller listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("shutdown incomplete")
	}
}
