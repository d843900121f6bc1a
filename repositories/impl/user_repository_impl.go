package impl

import (
	"context"

	"concord/apperrors"
	"concord/models"
	"concord/repositories"
)

const usersCollection = "users"

type UserRepositoryImpl struct {
	Store repositories.Store
}

func NewUserRepository(store repositories.Store) *UserRepositoryImpl {
	return &UserRepositoryImpl{Store: store}
}

func (r *UserRepositoryImpl) Upsert(ctx context.Context, userID, username string, profilePhotoURL *string) (models.User, error) {
	_, err := r.Store.Get(ctx, usersCollection, userID)
	switch {
	case apperrors.IsNotFound(err):
		data := map[string]interface{}{
			"id":              userID,
			"username":        username,
			"profilePhotoUrl": ptrValue(profilePhotoURL),
			"createdAt":       repositories.ServerTimestamp,
		}
		if err := r.Store.Set(ctx, usersCollection, userID, data); err != nil {
			return models.User{}, err
		}
	case err != nil:
		return models.User{}, err
	default:
		// Existing user: createdAt stays untouched.
		updates := map[string]interface{}{
			"username":        username,
			"profilePhotoUrl": ptrValue(profilePhotoURL),
		}
		if err := r.Store.Update(ctx, usersCollection, userID, updates); err != nil {
			return models.User{}, err
		}
	}

	// Re-read to resolve the server-assigned timestamp.
	doc, err := r.Store.Get(ctx, usersCollection, userID)
	if err != nil {
		return models.User{}, err
	}
	return mapUserDoc(doc), nil
}

func (r *UserRepositoryImpl) Get(ctx context.Context, userID string) (models.User, error) {
	doc, err := r.Store.Get(ctx, usersCollection, userID)
	if apperrors.IsNotFound(err) {
		return models.User{}, apperrors.NotFound("User not found")
	}
	if err != nil {
		return models.User{}, err
	}
	return mapUserDoc(doc), nil
}

func (r *UserRepositoryImpl) GetMany(ctx context.Context, userIDs []string) ([]models.User, error) {
	if len(userIDs) == 0 {
		return []models.User{}, nil
	}

	docs, err := r.Store.GetAll(ctx, usersCollection, userIDs)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(docs))
	for i := range docs {
		users = append(users, mapUserDoc(&docs[i]))
	}
	return users, nil
}

func mapUserDoc(doc *repositories.Document) models.User {
	return models.User{
		ID:              doc.ID,
		Username:        strField(doc.Data, "username"),
		ProfilePhotoURL: strPtrField(doc.Data, "profilePhotoUrl"),
		CreatedAt:       timeField(doc.Data, "createdAt"),
	}
}
