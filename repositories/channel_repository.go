package repositories

import (
	"context"

	"concord/models"
)

type ChannelRepository interface {
	// ListForServer returns the channels of a server, oldest first.
	ListForServer(ctx context.Context, serverID string) ([]models.Channel, error)
	// Create assigns an ID, the fixed "text" type and a server timestamp.
	Create(ctx context.Context, serverID, name string) (models.Channel, error)
}
