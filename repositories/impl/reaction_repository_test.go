package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddReactionIdempotent(t *testing.T) {
	repo := NewReactionRepository(NewMemoryStore())
	ctx := context.Background()

	assert.NoError(t, repo.Add(ctx, "m1", "u1", "👍"))
	assert.NoError(t, repo.Add(ctx, "m1", "u1", "👍"))

	summary, err := repo.Summary(ctx, "m1")
	assert.NoError(t, err)
	assert.Equal(t, 1, summary["👍"].Count)
	assert.Equal(t, []string{"u1"}, summary["👍"].Users)
}

func TestSummaryGroupsByEmoji(t *testing.T) {
	repo := NewReactionRepository(NewMemoryStore())
	ctx := context.Background()

	assert.NoError(t, repo.Add(ctx, "m1", "u1", "👍"))
	assert.NoError(t, repo.Add(ctx, "m1", "u2", "👍"))
	assert.NoError(t, repo.Add(ctx, "m1", "u1", "🎉"))
	assert.NoError(t, repo.Add(ctx, "m2", "u1", "👍"))

	summary, err := repo.Summary(ctx, "m1")
	assert.NoError(t, err)
	assert.Len(t, summary, 2)
	assert.Equal(t, 2, summary["👍"].Count)
	assert.ElementsMatch(t, []string{"u1", "u2"}, summary["👍"].Users)
	assert.Equal(t, 1, summary["🎉"].Count)
}

func TestRemoveReactionAbsentIsNoError(t *testing.T) {
	repo := NewReactionRepository(NewMemoryStore())
	ctx := context.Background()

	assert.NoError(t, repo.Remove(ctx, "m1", "u1", "👍"))

	assert.NoError(t, repo.Add(ctx, "m1", "u1", "👍"))
	assert.NoError(t, repo.Remove(ctx, "m1", "u1", "👍"))

	summary, err := repo.Summary(ctx, "m1")
	assert.NoError(t, err)
	assert.Empty(t, summary)
}
