package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pecas-dev/twistcaller/internal/bridge"
	"github.com/pecas-dev/twistcaller/internal/bridge/spotify"
	"github.com/pecas-dev/twistcaller/internal/services/challenge"
	"github.com/pecas-dev/twistcaller/internal/services/game"
	log "github.com/sirupsen/logrus"
)

// abortWithError maps service errors onto HTTP statuses. Validation
// failures are the client's problem; everything else is logged as ours.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, game.ErrEmptyPlayerName),
		errors.Is(err, game.ErrDuplicatePlayer),
		errors.Is(err, game.ErrInsufficientPlayers),
		errors.Is(err, game.ErrInvalidMode),
		errors.Is(err, challenge.ErrInvalidFrequency),
		errors.Is(err, challenge.ErrUnknownChallenge):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrGameNotRunning),
		errors.Is(err, game.ErrCountdownActive):
		status = http.StatusConflict
	case errors.Is(err, bridge.ErrNotConnected):
		status = http.StatusUnauthorized
	case errors.Is(err, bridge.ErrNoDevice):
		status = http.StatusServiceUnavailable
	case errors.Is(err, spotify.ErrStateMismatch):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
