package controllers

import (
	"context"

	"concord/models"
)

// Service interfaces consumed by the controllers, satisfied by the concrete
// services and by testify mocks in tests.

type UserServiceInterface interface {
	Upsert(ctx context.Context, userID, username string, profilePhotoURL *string) (models.User, error)
	Get(ctx context.Context, userID string) (models.User, error)
}

type ServerServiceInterface interface {
	Create(ctx context.Context, input models.CreateServerInput) (models.Server, error)
	List(ctx context.Context, userID, orderBy string, descending bool) ([]models.PublicServer, error)
	Invite(ctx context.Context, serverID, inviterID string) (models.Invite, error)
	Join(ctx context.Context, userID, serverID, inviterID, hash string) error
	Logs(ctx context.Context, serverID string, filter models.LogFilter) ([]models.LogEntry, error)
}

type ChannelServiceInterface interface {
	List(ctx context.Context, serverID string) ([]models.Channel, error)
	Create(ctx context.Context, serverID, name string) (models.Channel, error)
}

type MessageServiceInterface interface {
	List(ctx context.Context, channelID string) ([]models.Message, error)
	Create(ctx context.Context, channelID, serverID string, input models.CreateMessageInput) (models.Message, error)
	Delete(ctx context.Context, channelID, messageID, authorID, serverID string) error
}

type ReactionServiceInterface interface {
	Add(ctx context.Context, messageID, userID, emoji string) error
	Remove(ctx context.Context, messageID, userID, emoji string) error
	Summary(ctx context.Context, messageID string) (models.ReactionsSummary, error)
}

type HealthServiceInterface interface {
	Check(ctx context.Context) (firebaseStatus, firestoreStatus string)
}
