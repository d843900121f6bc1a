package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var channelService ChannelServiceInterface

func SetChannelService(service ChannelServiceInterface) {
	channelService = service
}

// GetChannels lists the channels of a server, oldest first.
// GET /servers/:serverId/channels
func GetChannels(c *gin.Context) {
	channels, err := channelService.List(c.Request.Context(), c.Param("serverId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, channels)
}

// CreateChannel creates a text channel in a server.
// POST /servers/:serverId/channels
func CreateChannel(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "name is required")
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		badRequest(c, "name is required")
		return
	}

	channel, err := channelService.Create(c.Request.Context(), c.Param("serverId"), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, channel)
}
