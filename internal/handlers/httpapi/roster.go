package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pecas-dev/twistcaller/internal/services/game"
)

type addPlayerRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) listPlayers(c *gin.Context) {
	output, err := h.games.ListPlayers(c.Request.Context(), &game.ListPlayersInput{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": output.Players})
}

func (h *Handler) addPlayer(c *gin.Context) {
	var req addPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.games.AddPlayer(c.Request.Context(), &game.AddPlayerInput{Name: req.Name})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"players": output.Players})
}

func (h *Handler) removePlayer(c *gin.Context) {
	output, err := h.games.RemovePlayer(c.Request.Context(), &game.RemovePlayerInput{
		Name: c.Param("name"),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": output.Players})
}
