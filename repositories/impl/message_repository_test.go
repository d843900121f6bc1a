package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"concord/apperrors"
	"concord/models"
)

func TestCreateAndListMessages(t *testing.T) {
	repo := NewMessageRepository(NewMemoryStore())
	ctx := context.Background()

	first, err := repo.Create(ctx, "ch1", models.CreateMessageInput{
		AuthorID:   "u1",
		AuthorName: "alice",
		Content:    "hello",
	})
	assert.NoError(t, err)
	assert.Equal(t, "ch1", first.ChannelID)
	assert.Nil(t, first.AuthorAvatarURL)
	assert.NotNil(t, first.CreatedAt)

	time.Sleep(time.Millisecond)
	_, err = repo.Create(ctx, "ch1", models.CreateMessageInput{AuthorID: "u2", AuthorName: "bob", Content: "hi"})
	assert.NoError(t, err)
	_, err = repo.Create(ctx, "ch2", models.CreateMessageInput{AuthorID: "u1", AuthorName: "alice", Content: "elsewhere"})
	assert.NoError(t, err)

	messages, err := repo.List(ctx, "ch1")
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	// oldest first
	assert.Equal(t, "hello", messages[0].Content)
	assert.Equal(t, "hi", messages[1].Content)
}

func TestDeleteMessageAuthorMismatchLeavesMessage(t *testing.T) {
	repo := NewMessageRepository(NewMemoryStore())
	ctx := context.Background()

	msg, err := repo.Create(ctx, "ch1", models.CreateMessageInput{AuthorID: "u1", AuthorName: "alice", Content: "mine"})
	assert.NoError(t, err)

	err = repo.Delete(ctx, "ch1", msg.ID, "u2")
	assert.True(t, apperrors.IsUnauthorized(err))

	messages, err := repo.List(ctx, "ch1")
	assert.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestDeleteMessageByAuthor(t *testing.T) {
	repo := NewMessageRepository(NewMemoryStore())
	ctx := context.Background()

	msg, err := repo.Create(ctx, "ch1", models.CreateMessageInput{AuthorID: "u1", AuthorName: "alice", Content: "mine"})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, "ch1", msg.ID, "u1"))

	messages, err := repo.List(ctx, "ch1")
	assert.NoError(t, err)
	assert.Empty(t, messages)
}

func TestDeleteMessageNotFound(t *testing.T) {
	repo := NewMessageRepository(NewMemoryStore())

	err := repo.Delete(context.Background(), "ch1", "missing", "u1")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Message not found", err.Error())
}
