package impl

import (
	"context"

	"concord/models"
	"concord/repositories"
)

const channelsCollection = "channels"

type ChannelRepositoryImpl struct {
	Store repositories.Store
}

func NewChannelRepository(store repositories.Store) *ChannelRepositoryImpl {
	return &ChannelRepositoryImpl{Store: store}
}

func (r *ChannelRepositoryImpl) ListForServer(ctx context.Context, serverID string) ([]models.Channel, error) {
	filters := []repositories.Filter{
		{Field: "serverId", Op: repositories.OpEqual, Value: serverID},
	}
	docs, err := r.Store.Query(ctx, channelsCollection, filters, &repositories.Order{Field: "createdAt"})
	if err != nil {
		return nil, err
	}

	channels := make([]models.Channel, 0, len(docs))
	for i := range docs {
		channels = append(channels, mapChannelDoc(&docs[i]))
	}
	return channels, nil
}

func (r *ChannelRepositoryImpl) Create(ctx context.Context, serverID, name string) (models.Channel, error) {
	id := r.Store.Create(channelsCollection)

	data := map[string]interface{}{
		"id":        id,
		"serverId":  serverID,
		"name":      name,
		"type":      models.ChannelTypeText,
		"createdAt": repositories.ServerTimestamp,
	}
	if err := r.Store.Set(ctx, channelsCollection, id, data); err != nil {
		return models.Channel{}, err
	}

	doc, err := r.Store.Get(ctx, channelsCollection, id)
	if err != nil {
		return models.Channel{}, err
	}
	return mapChannelDoc(doc), nil
}

func mapChannelDoc(doc *repositories.Document) models.Channel {
	return models.Channel{
		ID:        doc.ID,
		ServerID:  strField(doc.Data, "serverId"),
		Name:      strField(doc.Data, "name"),
		Type:      strField(doc.Data, "type"),
		CreatedAt: timeField(doc.Data, "createdAt"),
	}
}
