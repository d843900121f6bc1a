package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"concord/apperrors"
)

func TestUpsertUserCreatesThenOverwrites(t *testing.T) {
	repo := NewUserRepository(NewMemoryStore())
	ctx := context.Background()

	created, err := repo.Upsert(ctx, "u1", "alice", nil)
	assert.NoError(t, err)
	assert.Equal(t, "u1", created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Nil(t, created.ProfilePhotoURL)
	assert.NotNil(t, created.CreatedAt)

	photo := "https://example.com/a.png"
	updated, err := repo.Upsert(ctx, "u1", "alice2", &photo)
	assert.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, &photo, updated.ProfilePhotoURL)
	// createdAt survives the overwrite
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestGetUserNotFound(t *testing.T) {
	repo := NewUserRepository(NewMemoryStore())

	_, err := repo.Get(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "User not found", err.Error())
}

func TestGetManySkipsMissingUsers(t *testing.T) {
	repo := NewUserRepository(NewMemoryStore())
	ctx := context.Background()

	_, err := repo.Upsert(ctx, "u1", "alice", nil)
	assert.NoError(t, err)
	_, err = repo.Upsert(ctx, "u3", "carol", nil)
	assert.NoError(t, err)

	users, err := repo.GetMany(ctx, []string{"u1", "u2", "u3"})
	assert.NoError(t, err)
	assert.Len(t, users, 2)

	empty, err := repo.GetMany(ctx, nil)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}
