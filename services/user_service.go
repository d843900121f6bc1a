package services

import (
	"context"

	"concord/models"
	"concord/repositories"
)

type UserService struct {
	Repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) Upsert(ctx context.Context, userID, username string, profilePhotoURL *string) (models.User, error) {
	return s.Repo.Upsert(ctx, userID, username, profilePhotoURL)
}

func (s *UserService) Get(ctx context.Context, userID string) (models.User, error) {
	return s.Repo.Get(ctx, userID)
}
