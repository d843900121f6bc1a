package services

import (
	"context"

	"concord/models"
	"concord/repositories"
)

type ChannelService struct {
	Repo repositories.ChannelRepository
}

func NewChannelService(repo repositories.ChannelRepository) *ChannelService {
	return &ChannelService{Repo: repo}
}

func (s *ChannelService) List(ctx context.Context, serverID string) ([]models.Channel, error) {
	return s.Repo.ListForServer(ctx, serverID)
}

func (s *ChannelService) Create(ctx context.Context, serverID, name string) (models.Channel, error) {
	return s.Repo.Create(ctx, serverID, name)
}
