package repositories

import (
	"context"

	"concord/models"
)

type MessageRepository interface {
	// List returns the messages of a channel, oldest first.
	List(ctx context.Context, channelID string) ([]models.Message, error)
	// Create assigns an ID and server timestamp.
	Create(ctx context.Context, channelID string, input models.CreateMessageInput) (models.Message, error)
	// Delete removes a message. apperrors.NotFound if absent,
	// apperrors.Unauthorized if authorID does not match the stored author.
	Delete(ctx context.Context, channelID, messageID, authorID string) error
}
