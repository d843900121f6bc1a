package impl

import (
	"context"
	"fmt"

	"concord/models"
	"concord/repositories"
)

type ReactionRepositoryImpl struct {
	Store repositories.Store
}

func NewReactionRepository(store repositories.Store) *ReactionRepositoryImpl {
	return &ReactionRepositoryImpl{Store: store}
}

func reactionsCollection(messageID string) string {
	return fmt.Sprintf("reactions/%s/items", messageID)
}

// reactionID is the composite document key: one reaction row per
// (userId, emoji) pair.
func reactionID(userID, emoji string) string {
	return fmt.Sprintf("%s_%s", userID, emoji)
}

func (r *ReactionRepositoryImpl) Add(ctx context.Context, messageID, userID, emoji string) error {
	data := map[string]interface{}{
		"messageId": messageID,
		"userId":    userID,
		"emoji":     emoji,
		"createdAt": repositories.ServerTimestamp,
	}
	return r.Store.Set(ctx, reactionsCollection(messageID), reactionID(userID, emoji), data)
}

func (r *ReactionRepositoryImpl) Remove(ctx context.Context, messageID, userID, emoji string) error {
	return r.Store.Delete(ctx, reactionsCollection(messageID), reactionID(userID, emoji))
}

func (r *ReactionRepositoryImpl) Summary(ctx context.Context, messageID string) (models.ReactionsSummary, error) {
	docs, err := r.Store.Query(ctx, reactionsCollection(messageID), nil, nil)
	if err != nil {
		return nil, err
	}

	summary := models.ReactionsSummary{}
	for i := range docs {
		emoji := strField(docs[i].Data, "emoji")
		userID := strField(docs[i].Data, "userId")

		group := summary[emoji]
		group.Count++
		group.Users = append(group.Users, userID)
		summary[emoji] = group
	}
	return summary, nil
}
