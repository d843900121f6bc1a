package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"concord/models"
)

var messageService MessageServiceInterface

func SetMessageService(service MessageServiceInterface) {
	messageService = service
}

// GetMessages lists the messages of a channel, oldest first.
// GET /channels/:channelId/messages
func GetMessages(c *gin.Context) {
	messages, err := messageService.List(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// CreateMessage posts a message to a channel. serverId is carried in the body
// so the creation can be recorded in the server audit log.
// POST /channels/:channelId/messages
func CreateMessage(c *gin.Context) {
	var input struct {
		AuthorID        string  `json:"authorId" binding:"required"`
		AuthorName      string  `json:"authorName" binding:"required"`
		AuthorAvatarURL *string `json:"authorAvatarUrl"`
		Content         string  `json:"content" binding:"required"`
		ServerID        string  `json:"serverId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		badRequest(c, "content is required")
		return
	}

	message, err := messageService.Create(c.Request.Context(), c.Param("channelId"), input.ServerID, models.CreateMessageInput{
		AuthorID:        input.AuthorID,
		AuthorName:      input.AuthorName,
		AuthorAvatarURL: input.AuthorAvatarURL,
		Content:         content,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// DeleteMessage removes a message; only its author may delete it.
// DELETE /channels/:channelId/messages/:messageId
func DeleteMessage(c *gin.Context) {
	var input struct {
		AuthorID string `json:"authorId" binding:"required"`
		ServerID string `json:"serverId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "authorId and serverId are required")
		return
	}

	err := messageService.Delete(c.Request.Context(), c.Param("channelId"), c.Param("messageId"), input.AuthorID, input.ServerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message deleted successfully",
	})
}
