package services

import (
	"context"

	"concord/models"
	"concord/repositories"
)

type ReactionService struct {
	Repo repositories.ReactionRepository
}

func NewReactionService(repo repositories.ReactionRepository) *ReactionService {
	return &ReactionService{Repo: repo}
}

func (s *ReactionService) Add(ctx context.Context, messageID, userID, emoji string) error {
	return s.Repo.Add(ctx, messageID, userID, emoji)
}

func (s *ReactionService) Remove(ctx context.Context, messageID, userID, emoji string) error {
	return s.Repo.Remove(ctx, messageID, userID, emoji)
}

func (s *ReactionService) Summary(ctx context.Context, messageID string) (models.ReactionsSummary, error) {
	return s.Repo.Summary(ctx, messageID)
}
