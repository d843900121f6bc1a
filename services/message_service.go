package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"concord/models"
	"concord/repositories"
)

type MessageService struct {
	Repo    repositories.MessageRepository
	Servers repositories.ServerRepository
	Log     *logrus.Logger
}

func NewMessageService(repo repositories.MessageRepository, servers repositories.ServerRepository, log *logrus.Logger) *MessageService {
	return &MessageService{Repo: repo, Servers: servers, Log: log}
}

func (s *MessageService) List(ctx context.Context, channelID string) ([]models.Message, error) {
	return s.Repo.List(ctx, channelID)
}

func (s *MessageService) Create(ctx context.Context, channelID, serverID string, input models.CreateMessageInput) (models.Message, error) {
	message, err := s.Repo.Create(ctx, channelID, input)
	if err != nil {
		return models.Message{}, err
	}

	s.audit(ctx, serverID, models.NewLogEntry{
		Type:     models.LogTypeMessage,
		Action:   models.LogActionCreated,
		UserID:   input.AuthorID,
		TargetID: message.ID,
		Metadata: map[string]interface{}{"channelId": channelID},
	})
	return message, nil
}

func (s *MessageService) Delete(ctx context.Context, channelID, messageID, authorID, serverID string) error {
	if err := s.Repo.Delete(ctx, channelID, messageID, authorID); err != nil {
		return err
	}

	s.audit(ctx, serverID, models.NewLogEntry{
		Type:     models.LogTypeMessage,
		Action:   models.LogActionDeleted,
		UserID:   authorID,
		TargetID: messageID,
		Metadata: map[string]interface{}{"channelId": channelID},
	})
	return nil
}

func (s *MessageService) audit(ctx context.Context, serverID string, entry models.NewLogEntry) {
	if err := s.Servers.AppendLog(ctx, serverID, entry); err != nil {
		s.Log.WithError(err).WithField("serverId", serverID).Warn("failed to append server log")
	}
}
