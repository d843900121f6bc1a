package repositories

import (
	"context"

	"concord/models"
)

type ServerRepository interface {
	// Create assigns an ID and server timestamp. MemberIDs is unioned with
	// the owner and de-duplicated.
	Create(ctx context.Context, input models.CreateServerInput) (models.Server, error)
	// Get returns the full server document, apperrors.NotFound if absent.
	Get(ctx context.Context, serverID string) (models.Server, error)
	// ListForUser returns the servers the user is a member of, in the reduced
	// public shape.
	ListForUser(ctx context.Context, userID string) ([]models.PublicServer, error)
	// ListForUserOrdered is ListForUser ordered by "createdAt" or "name".
	ListForUserOrdered(ctx context.Context, userID, orderBy string, descending bool) ([]models.PublicServer, error)
	// AddMember appends the user to memberIds. No-op if already a member.
	// Read-then-write: concurrent adds are last-write-wins on the array.
	AddMember(ctx context.Context, serverID, userID string) error
	// AppendLog appends an audit entry (generated id, timestamped) to the
	// server log. Append-only.
	AppendLog(ctx context.Context, serverID string, entry models.NewLogEntry) error
	// Logs returns the server audit trail, filtered, newest first, truncated
	// to filter.Limit when positive.
	Logs(ctx context.Context, serverID string, filter models.LogFilter) ([]models.LogEntry, error)
}
