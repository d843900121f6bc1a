package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var userService UserServiceInterface

func SetUserService(service UserServiceInterface) {
	userService = service
}

// UpsertUser creates the user or overwrites username/profilePhotoUrl of an
// existing one. POST /users
func UpsertUser(c *gin.Context) {
	var input struct {
		UserID          string  `json:"userId" binding:"required"`
		Username        string  `json:"username" binding:"required"`
		ProfilePhotoURL *string `json:"profilePhotoUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		badRequest(c, "username is required")
		return
	}

	user, err := userService.Upsert(c.Request.Context(), input.UserID, username, input.ProfilePhotoURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUser returns a user by id. GET /users/:userId
func GetUser(c *gin.Context) {
	user, err := userService.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
