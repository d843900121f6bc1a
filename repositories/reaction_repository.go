package repositories

import (
	"context"

	"concord/models"
)

type ReactionRepository interface {
	// Add upserts the (userID, emoji) reaction on a message. Re-adding the
	// same pair overwrites instead of duplicating.
	Add(ctx context.Context, messageID, userID, emoji string) error
	// Remove deletes the (userID, emoji) reaction; absent is not an error.
	Remove(ctx context.Context, messageID, userID, emoji string) error
	// Summary aggregates all reactions of a message by emoji.
	Summary(ctx context.Context, messageID string) (models.ReactionsSummary, error)
}
