package httpapi

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/services/game"
)

type setModeRequest struct {
	Mode models.TurnMode `json:"mode" binding:"required"`
}

func (h *Handler) startGame(c *gin.Context) {
	output, err := h.games.StartGame(c.Request.Context(), &game.StartGameInput{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":   output.Session,
		"spin":      output.Spin,
		"challenge": output.Challenge,
	})
}

func (h *Handler) spin(c *gin.Context) {
	output, err := h.games.Spin(c.Request.Context(), &game.SpinInput{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":   output.Session,
		"spin":      output.Result,
		"challenge": output.Challenge,
	})
}

func (h *Handler) advanceTurn(c *gin.Context) {
	output, err := h.games.AdvanceTurn(c.Request.Context(), &game.AdvanceTurnInput{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":   output.Session,
		"spin":      output.Result,
		"challenge": output.Challenge,
	})
}

func (h *Handler) endGame(c *gin.Context) {
	output, err := h.games.EndGame(c.Request.Context(), &game.EndGameInput{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ended": output.Ended})
}

func (h *Handler) gameState(c *gin.Context) {
	output, err := h.games.GetState(c.Request.Context(), &game.GetStateInput{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":      output.Session,
		"countdown":    output.Countdown,
		"spin":         output.Spin,
		"challenge":    output.Challenge,
		"timerSeconds": output.TimerSeconds,
	})
}

func (h *Handler) setMode(c *gin.Context) {
	var req setModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.games.SetMode(c.Request.Context(), &game.SetModeInput{Mode: req.Mode}); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// streamEvents forwards game events over SSE until the client hangs up
func (h *Handler) streamEvents(c *gin.Context) {
	events, unsubscribe := h.games.Subscribe()
	defer unsubscribe()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(event.Type), event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
