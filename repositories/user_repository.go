package repositories

import (
	"context"

	"concord/models"
)

type UserRepository interface {
	// Upsert overwrites username/profilePhotoUrl for an existing user or
	// creates the user with a server-assigned createdAt. Idempotent.
	Upsert(ctx context.Context, userID, username string, profilePhotoURL *string) (models.User, error)
	// Get fails with apperrors.NotFound if the user is absent.
	Get(ctx context.Context, userID string) (models.User, error)
	// GetMany returns only the existing users, silently omitting missing ids.
	GetMany(ctx context.Context, userIDs []string) ([]models.User, error)
}
