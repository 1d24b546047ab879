package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/repositories/settings"
)

type volumeRequest struct {
	Percent *int `json:"percent" binding:"required"`
}

type selectPlaylistRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// bridgeConfigured guards the bridge routes when no client ID is set
func (h *Handler) bridgeConfigured(c *gin.Context) bool {
	if h.bridge == nil || h.authorizer == nil {
		c.AbortWithStatusJSON(http.StatusNotImplemented, gin.H{"error": "music bridge not configured"})
		return false
	}
	return true
}

func (h *Handler) bridgeLogin(c *gin.Context) {
	if !h.bridgeConfigured(c) {
		return
	}

	url, err := h.authorizer.LoginURL(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *Handler) bridgeCallback(c *gin.Context) {
	if !h.bridgeConfigured(c) {
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errParam})
		return
	}

	err := h.authorizer.HandleCallback(c.Request.Context(), c.Query("code"), c.Query("state"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	// Back to the display, which re-checks connection status
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) bridgeStatus(c *gin.Context) {
	if h.bridge == nil {
		c.JSON(http.StatusOK, gin.H{"configured": false, "connected": false})
		return
	}

	status := gin.H{
		"configured": true,
		"connected":  h.bridge.Connected(c.Request.Context()),
	}

	output, err := h.settings.GetPlaylist(c.Request.Context(), &settings.GetPlaylistInput{})
	if err == nil {
		status["playlist"] = output.Playlist
	}

	c.JSON(http.StatusOK, status)
}

func (h *Handler) bridgeDisconnect(c *gin.Context) {
	if !h.bridgeConfigured(c) {
		return
	}

	if err := h.bridge.Disconnect(c.Request.Context()); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) bridgePlay(c *gin.Context) {
	if !h.bridgeConfigured(c) {
		return
	}

	if err := h.bridge.Play(c.Request.Context()); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) bridgePause(c *gin.Context) {
	if !h.bridgeConfigured(c) {
		return
	}

	if err := h.bridge.Pause(c.Request.Context()); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) bridgeSkip(c *gin.Context) {
	if !h.bridgeConfigured(c) {
		return
	}

	if err := h.bridge.Skip(c.Request.Context()); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) bridgeVolume(c *gin.Context) {
	if !h.bridgeConfigured(c) {
		return
	}

	var req volumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	percent := *req.Percent
	if percent < 0 || percent > 100 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "volume must be 0-100"})
		return
	}

	ctx := c.Request.Context()
	if err := h.bridge.SetVolume(ctx, percent); err != nil {
		abortWithError(c, err)
		return
	}

	// Remember the level for the next session
	err := h.settings.SaveBridgeVolume(ctx, &settings.SaveBridgeVolumeInput{
		Volume: float64(percent) / 100,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) bridgeSearchPlaylists(c *gin.Context) {
	if !h.bridgeConfigured(c) {
		return
	}

	query := c.Query("q")
	if query == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "query cannot be empty"})
		return
	}

	results, err := h.bridge.SearchPlaylists(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"playlists": results})
}

func (h *Handler) bridgeSelectPlaylist(c *gin.Context) {
	if !h.bridgeConfigured(c) {
		return
	}

	var req selectPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.bridge.SelectPlaylist(c.Request.Context(), &models.Playlist{
		ID:   req.ID,
		Name: req.Name,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) bridgeNowPlaying(c *gin.Context) {
	if !h.bridgeConfigured(c) {
		return
	}

	if h.nowPlaying != nil {
		if cached := h.nowPlaying(); cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	np, err := h.bridge.NowPlaying(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, np)
}
