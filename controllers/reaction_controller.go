package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var reactionService ReactionServiceInterface

func SetReactionService(service ReactionServiceInterface) {
	reactionService = service
}

// GetReactions returns the reactions of a message grouped by emoji.
// GET /messages/:messageId/reactions
func GetReactions(c *gin.Context) {
	summary, err := reactionService.Summary(c.Request.Context(), c.Param("messageId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type reactionInput struct {
	UserID string `json:"userId" binding:"required"`
	Emoji  string `json:"emoji" binding:"required"`
}

// AddReaction upserts a (userId, emoji) reaction on a message.
// POST /messages/:messageId/reactions
func AddReaction(c *gin.Context) {
	var input reactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "userId and emoji are required")
		return
	}

	emoji := strings.TrimSpace(input.Emoji)
	if emoji == "" {
		badRequest(c, "emoji is required")
		return
	}

	if err := reactionService.Add(c.Request.Context(), c.Param("messageId"), input.UserID, emoji); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Reaction added successfully",
	})
}

// RemoveReaction deletes a (userId, emoji) reaction; absent is not an error.
// DELETE /messages/:messageId/reactions
func RemoveReaction(c *gin.Context) {
	var input reactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "userId and emoji are required")
		return
	}

	emoji := strings.TrimSpace(input.Emoji)
	if emoji == "" {
		badRequest(c, "emoji is required")
		return
	}

	if err := reactionService.Remove(c.Request.Context(), c.Param("messageId"), input.UserID, emoji); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Reaction removed successfully",
	})
}
