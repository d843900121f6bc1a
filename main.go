package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"concord/config"
	"concord/controllers"
	"concord/middlewares"
	"concord/repositories/impl"
	"concord/routes"
	"concord/services"
)

func main() {
	config.InitLogger()

	if err := godotenv.Load(); err != nil {
		config.Log.Info("no .env file found, using environment variables")
	}

	config.InitFirebase()

	// Document store adapter and entity repositories
	store := impl.NewFirestoreStore(config.Firestore)
	userRepo := impl.NewUserRepository(store)
	serverRepo := impl.NewServerRepository(store)
	channelRepo := impl.NewChannelRepository(store)
	messageRepo := impl.NewMessageRepository(store)
	reactionRepo := impl.NewReactionRepository(store)

	// Services
	controllers.SetUserService(services.NewUserService(userRepo))
	controllers.SetServerService(services.NewServerService(serverRepo, config.Log))
	controllers.SetChannelService(services.NewChannelService(channelRepo))
	controllers.SetMessageService(services.NewMessageService(messageRepo, serverRepo, config.Log))
	controllers.SetReactionService(services.NewReactionService(reactionRepo))
	controllers.SetHealthService(services.NewHealthService(config.FirebaseApp, store))

	r := gin.New()
	r.Use(gin.Logger(), middlewares.Recovery(config.Log), cors.Default())

	routes.RegisterRoutes(r, config.FirebaseAuth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	if err := r.Run(":" + port); err != nil {
		config.Log.Fatalf("server stopped: %v", err)
	}
}
