package impl

import (
	"context"
	"fmt"

	"concord/apperrors"
	"concord/models"
	"concord/repositories"
)

type MessageRepositoryImpl struct {
	Store repositories.Store
}

func NewMessageRepository(store repositories.Store) *MessageRepositoryImpl {
	return &MessageRepositoryImpl{Store: store}
}

func messagesCollection(channelID string) string {
	return fmt.Sprintf("channels/%s/messages", channelID)
}

func (r *MessageRepositoryImpl) List(ctx context.Context, channelID string) ([]models.Message, error) {
	docs, err := r.Store.Query(ctx, messagesCollection(channelID), nil, &repositories.Order{Field: "createdAt"})
	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, 0, len(docs))
	for i := range docs {
		messages = append(messages, mapMessageDoc(&docs[i]))
	}
	return messages, nil
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, channelID string, input models.CreateMessageInput) (models.Message, error) {
	col := messagesCollection(channelID)
	id := r.Store.Create(col)

	data := map[string]interface{}{
		"id":              id,
		"channelId":       channelID,
		"authorId":        input.AuthorID,
		"authorName":      input.AuthorName,
		"authorAvatarUrl": ptrValue(input.AuthorAvatarURL),
		"content":         input.Content,
		"createdAt":       repositories.ServerTimestamp,
	}
	if err := r.Store.Set(ctx, col, id, data); err != nil {
		return models.Message{}, err
	}

	doc, err := r.Store.Get(ctx, col, id)
	if err != nil {
		return models.Message{}, err
	}
	return mapMessageDoc(doc), nil
}

func (r *MessageRepositoryImpl) Delete(ctx context.Context, channelID, messageID, authorID string) error {
	col := messagesCollection(channelID)

	doc, err := r.Store.Get(ctx, col, messageID)
	if apperrors.IsNotFound(err) {
		return apperrors.NotFound("Message not found")
	}
	if err != nil {
		return err
	}

	if strField(doc.Data, "authorId") != authorID {
		return apperrors.Unauthorized("Unauthorized: you can only delete your own messages")
	}
	return r.Store.Delete(ctx, col, messageID)
}

func mapMessageDoc(doc *repositories.Document) models.Message {
	return models.Message{
		ID:              doc.ID,
		ChannelID:       strField(doc.Data, "channelId"),
		AuthorID:        strField(doc.Data, "authorId"),
		AuthorName:      strField(doc.Data, "authorName"),
		AuthorAvatarURL: strPtrField(doc.Data, "authorAvatarUrl"),
		Content:         strField(doc.Data, "content"),
		CreatedAt:       timeField(doc.Data, "createdAt"),
	}
}
