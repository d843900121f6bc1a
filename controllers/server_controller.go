package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"concord/models"
)

var serverService ServerServiceInterface

func SetServerService(service ServerServiceInterface) {
	serverService = service
}

// ListServers returns the servers a user is a member of, optionally ordered.
// GET /servers?userId=&orderBy=&descending=
func ListServers(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		badRequest(c, "userId is required")
		return
	}

	orderBy := c.Query("orderBy")
	descending := strings.EqualFold(c.Query("descending"), "true")

	// Only createdAt and name are sortable; anything else falls back to the
	// unordered query.
	var field string
	switch strings.ToLower(orderBy) {
	case "createdat":
		field = "createdAt"
	case "name":
		field = "name"
	}

	servers, err := serverService.List(c.Request.Context(), userID, field, descending)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":     userID,
		"orderBy":    orderBy,
		"descending": descending,
		"servers":    servers,
	})
}

// CreateServer creates a server owned by ownerId. POST /servers
func CreateServer(c *gin.Context) {
	var input struct {
		Name      string   `json:"name" binding:"required"`
		OwnerID   string   `json:"ownerId" binding:"required"`
		ImageURL  *string  `json:"imageUrl"`
		MemberIDs []string `json:"memberIds"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		badRequest(c, "name is required")
		return
	}

	server, err := serverService.Create(c.Request.Context(), models.CreateServerInput{
		Name:      name,
		OwnerID:   input.OwnerID,
		ImageURL:  input.ImageURL,
		MemberIDs: input.MemberIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, server)
}

// CreateInvite issues an invite link for a server the inviter belongs to.
// POST /servers/:serverId/invite
func CreateInvite(c *gin.Context) {
	var input struct {
		InviterID string `json:"inviterId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "serverId and inviterId are required")
		return
	}

	invite, err := serverService.Invite(c.Request.Context(), c.Param("serverId"), input.InviterID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invite)
}

// JoinServer adds the user to a server after verifying the invite hash.
// POST /servers/join
func JoinServer(c *gin.Context) {
	var input struct {
		UserID    string `json:"userId" binding:"required"`
		ServerID  string `json:"serverId" binding:"required"`
		InviterID string `json:"inviterId"`
		Hash      string `json:"hash" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "userId, serverId, and hash are required")
		return
	}

	err := serverService.Join(c.Request.Context(), input.UserID, input.ServerID, input.InviterID, input.Hash)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Successfully joined server",
		"serverId":  input.ServerID,
		"inviterId": input.InviterID,
	})
}

// GetServerLogs returns the audit trail of a server, newest first.
// GET /servers/:serverId/logs?type=&userId=&limit=
func GetServerLogs(c *gin.Context) {
	serverID := c.Param("serverId")

	// An unparsable limit is ignored rather than rejected.
	limit, _ := strconv.Atoi(c.Query("limit"))

	logs, err := serverService.Logs(c.Request.Context(), serverID, models.LogFilter{
		Type:   c.Query("type"),
		UserID: c.Query("userId"),
		Limit:  limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"serverId": serverID,
		"count":    len(logs),
		"logs":     logs,
	})
}
