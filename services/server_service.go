package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"concord/apperrors"
	"concord/models"
	"concord/repositories"
)

type ServerService struct {
	Repo repositories.ServerRepository
	Log  *logrus.Logger
}

func NewServerService(repo repositories.ServerRepository, log *logrus.Logger) *ServerService {
	return &ServerService{Repo: repo, Log: log}
}

func (s *ServerService) Create(ctx context.Context, input models.CreateServerInput) (models.Server, error) {
	server, err := s.Repo.Create(ctx, input)
	if err != nil {
		return models.Server{}, err
	}

	s.audit(ctx, server.ID, models.NewLogEntry{
		Type:     models.LogTypeServer,
		Action:   models.LogActionCreated,
		UserID:   input.OwnerID,
		Metadata: map[string]interface{}{"serverName": input.Name},
	})
	return server, nil
}

// List returns the servers the user belongs to. orderBy must be "",
// "createdAt" or "name".
func (s *ServerService) List(ctx context.Context, userID, orderBy string, descending bool) ([]models.PublicServer, error) {
	if orderBy == "" {
		return s.Repo.ListForUser(ctx, userID)
	}
	return s.Repo.ListForUserOrdered(ctx, userID, orderBy, descending)
}

// Invite issues an invite for a server the inviter is a member of. The
// returned link is the hash, server id and inviter id concatenated.
func (s *ServerService) Invite(ctx context.Context, serverID, inviterID string) (models.Invite, error) {
	servers, err := s.Repo.ListForUser(ctx, inviterID)
	if err != nil {
		return models.Invite{}, err
	}

	var server *models.PublicServer
	for i := range servers {
		if servers[i].ID == serverID {
			server = &servers[i]
			break
		}
	}
	if server == nil {
		return models.Invite{}, apperrors.NotFound("Server not found")
	}

	hash := GenerateInviteHash(server.OwnerID, serverID)

	s.audit(ctx, serverID, models.NewLogEntry{
		Type:     models.LogTypeInvitation,
		Action:   models.LogActionInvited,
		UserID:   inviterID,
		Metadata: map[string]interface{}{"hash": hash},
	})

	return models.Invite{
		Hash:       hash,
		ServerID:   serverID,
		InviterID:  inviterID,
		InviteLink: hash + serverID + inviterID,
	}, nil
}

// Join verifies the invite hash against the stored owner and adds the user to
// the server membership.
func (s *ServerService) Join(ctx context.Context, userID, serverID, inviterID, hash string) error {
	server, err := s.Repo.Get(ctx, serverID)
	if err != nil {
		return err
	}

	if !VerifyInviteHash(hash, server.OwnerID, serverID) {
		return apperrors.Forbidden("Invalid invitation hash")
	}

	if err := s.Repo.AddMember(ctx, serverID, userID); err != nil {
		return err
	}

	s.audit(ctx, serverID, models.NewLogEntry{
		Type:     models.LogTypeInvitation,
		Action:   models.LogActionJoined,
		UserID:   userID,
		Metadata: map[string]interface{}{"inviterId": inviterID},
	})
	return nil
}

func (s *ServerService) Logs(ctx context.Context, serverID string, filter models.LogFilter) ([]models.LogEntry, error) {
	return s.Repo.Logs(ctx, serverID, filter)
}

// audit appends a log entry best-effort. A failed append never rolls back the
// primary write; the inconsistency is logged and accepted.
func (s *ServerService) audit(ctx context.Context, serverID string, entry models.NewLogEntry) {
	if err := s.Repo.AppendLog(ctx, serverID, entry); err != nil {
		s.Log.WithError(err).WithFields(logrus.Fields{
			"serverId": serverID,
			"type":     entry.Type,
			"action":   entry.Action,
		}).Warn("failed to append server log")
	}
}
