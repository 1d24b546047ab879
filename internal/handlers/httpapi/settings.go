package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/repositories/settings"
	"github.com/pecas-dev/twistcaller/internal/services/announce"
	"github.com/pecas-dev/twistcaller/internal/services/challenge"
	"github.com/pecas-dev/twistcaller/internal/services/game"
)

type voiceSettingsRequest struct {
	Enabled bool    `json:"enabled"`
	Rate    float64 `json:"rate" binding:"min=0.5,max=2"`
	Volume  float64 `json:"volume" binding:"min=0,max=1"`
	Pitch   float64 `json:"pitch" binding:"min=0,max=2"`
	VoiceID string  `json:"voiceId"`
}

type testVoiceRequest struct {
	Message string `json:"message"`
}

type challengeSettingsRequest struct {
	Enabled   bool                 `json:"enabled"`
	Frequency models.FrequencyTier `json:"frequency" binding:"required"`
}

type challengeToggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type timerRequest struct {
	Seconds int `json:"seconds" binding:"required"`
}

func (h *Handler) getVoiceSettings(c *gin.Context) {
	output, err := h.settings.GetVoiceSettings(c.Request.Context(), &settings.GetVoiceSettingsInput{})
	if err != nil {
		if err == settings.ErrNotFound {
			c.JSON(http.StatusOK, models.DefaultVoiceSettings())
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Settings)
}

func (h *Handler) saveVoiceSettings(c *gin.Context) {
	var req voiceSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.settings.SaveVoiceSettings(c.Request.Context(), &settings.SaveVoiceSettingsInput{
		Settings: &models.VoiceSettings{
			Enabled: req.Enabled,
			Rate:    req.Rate,
			Volume:  req.Volume,
			Pitch:   req.Pitch,
			VoiceID: req.VoiceID,
		},
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) testVoice(c *gin.Context) {
	var req testVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := req.Message
	if message == "" {
		message = "Left Hand on red"
	}

	err := h.announcer.Announce(c.Request.Context(), &announce.AnnounceInput{
		Message: message,
		Test:    true,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *Handler) listVoices(c *gin.Context) {
	if h.speaker == nil {
		c.JSON(http.StatusOK, gin.H{"voices": []string{}})
		return
	}

	voices, err := h.speaker.Voices(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"voices": voices})
}

func (h *Handler) listChallenges(c *gin.Context) {
	output, err := h.challenges.ListChallenges(c.Request.Context(), &challenge.ListChallengesInput{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"challenges": output.Challenges,
		"enabled":    output.Settings.Enabled,
		"frequency":  output.Settings.Frequency,
	})
}

func (h *Handler) saveChallengeSettings(c *gin.Context) {
	var req challengeSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.challenges.SetFrequency(ctx, &challenge.SetFrequencyInput{Frequency: req.Frequency}); err != nil {
		abortWithError(c, err)
		return
	}
	if err := h.challenges.SetEnabled(ctx, &challenge.SetEnabledInput{Enabled: req.Enabled}); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) setChallengeEnabled(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid challenge id"})
		return
	}

	var req challengeToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.challenges.SetChallengeEnabled(c.Request.Context(), &challenge.SetChallengeEnabledInput{
		ID:      id,
		Enabled: *req.Enabled,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getTimerSettings(c *gin.Context) {
	output, err := h.settings.GetTimerSettings(c.Request.Context(), &settings.GetTimerSettingsInput{})
	if err != nil {
		if err == settings.ErrNotFound {
			c.JSON(http.StatusOK, gin.H{"seconds": models.DefaultTimerSeconds})
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seconds": output.Settings.DurationSeconds})
}

func (h *Handler) setTimerDuration(c *gin.Context) {
	var req timerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.games.SetTimerDuration(c.Request.Context(), &game.SetTimerDurationInput{Seconds: req.Seconds})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seconds": output.Seconds})
}
