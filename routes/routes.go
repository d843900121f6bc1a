package routes

import (
	"github.com/gin-gonic/gin"

	"concord/controllers"
	"concord/middlewares"
)

// RegisterRoutes wires the HTTP surface. Everything except /health sits
// behind the Firebase ID token gate.
func RegisterRoutes(r *gin.Engine, verifier middlewares.TokenVerifier) {
	r.GET("/health", controllers.HealthCheck)

	users := r.Group("/users")
	users.Use(middlewares.Auth(verifier))
	{
		users.POST("", controllers.UpsertUser)
		users.GET("/:userId", controllers.GetUser)
	}

	servers := r.Group("/servers")
	servers.Use(middlewares.Auth(verifier))
	{
		servers.GET("", controllers.ListServers)
		servers.POST("", controllers.CreateServer)
		servers.POST("/join", controllers.JoinServer)
		servers.POST("/:serverId/invite", controllers.CreateInvite)
		servers.GET("/:serverId/logs", controllers.GetServerLogs)
		servers.GET("/:serverId/channels", controllers.GetChannels)
		servers.POST("/:serverId/channels", controllers.CreateChannel)
	}

	channels := r.Group("/channels")
	channels.Use(middlewares.Auth(verifier))
	{
		channels.GET("/:channelId/messages", controllers.GetMessages)
		channels.POST("/:channelId/messages", controllers.CreateMessage)
		channels.DELETE("/:channelId/messages/:messageId", controllers.DeleteMessage)
	}

	messages := r.Group("/messages")
	messages.Use(middlewares.Auth(verifier))
	{
		messages.GET("/:messageId/reactions", controllers.GetReactions)
		messages.POST("/:messageId/reactions", controllers.AddReaction)
		messages.DELETE("/:messageId/reactions", controllers.RemoveReaction)
	}
}
