package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"concord/apperrors"
	"concord/models"
)

func TestCreateServerDeduplicatesMembers(t *testing.T) {
	repo := NewServerRepository(NewMemoryStore())

	server, err := repo.Create(context.Background(), models.CreateServerInput{
		Name:      "Guild",
		OwnerID:   "u1",
		MemberIDs: []string{"u2", "u1", "u2", "u3"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2", "u3"}, server.MemberIDs)
	assert.Equal(t, "u1", server.OwnerID)
	assert.NotNil(t, server.CreatedAt)
}

func TestCreateServerDefaultsToOwnerOnly(t *testing.T) {
	repo := NewServerRepository(NewMemoryStore())

	server, err := repo.Create(context.Background(), models.CreateServerInput{Name: "Guild", OwnerID: "u1"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"u1"}, server.MemberIDs)
}

func TestAddMemberIdempotent(t *testing.T) {
	repo := NewServerRepository(NewMemoryStore())
	ctx := context.Background()

	server, err := repo.Create(ctx, models.CreateServerInput{Name: "Guild", OwnerID: "u1"})
	assert.NoError(t, err)

	assert.NoError(t, repo.AddMember(ctx, server.ID, "u2"))
	assert.NoError(t, repo.AddMember(ctx, server.ID, "u2"))

	got, err := repo.Get(ctx, server.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, got.MemberIDs)
}

func TestAddMemberServerNotFound(t *testing.T) {
	repo := NewServerRepository(NewMemoryStore())

	err := repo.AddMember(context.Background(), "missing", "u2")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Server not found", err.Error())
}

func TestListForUserExposesPublicShapeOnly(t *testing.T) {
	repo := NewServerRepository(NewMemoryStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, models.CreateServerInput{Name: "Guild", OwnerID: "u1", MemberIDs: []string{"u2"}})
	assert.NoError(t, err)
	_, err = repo.Create(ctx, models.CreateServerInput{Name: "Other", OwnerID: "u3"})
	assert.NoError(t, err)

	servers, err := repo.ListForUser(ctx, "u2")
	assert.NoError(t, err)
	assert.Len(t, servers, 1)
	assert.Equal(t, "Guild", servers[0].Name)
	assert.Equal(t, "u1", servers[0].OwnerID)
}

func TestListForUserOrderedByName(t *testing.T) {
	repo := NewServerRepository(NewMemoryStore())
	ctx := context.Background()

	for _, name := range []string{"bravo", "alpha", "charlie"} {
		_, err := repo.Create(ctx, models.CreateServerInput{Name: name, OwnerID: "u1"})
		assert.NoError(t, err)
	}

	asc, err := repo.ListForUserOrdered(ctx, "u1", "name", false)
	assert.NoError(t, err)
	assert.Equal(t, "alpha", asc[0].Name)
	assert.Equal(t, "charlie", asc[2].Name)

	desc, err := repo.ListForUserOrdered(ctx, "u1", "name", true)
	assert.NoError(t, err)
	assert.Equal(t, "charlie", desc[0].Name)
}

func TestServerLogsFilterSortLimit(t *testing.T) {
	repo := NewServerRepository(NewMemoryStore())
	ctx := context.Background()

	server, err := repo.Create(ctx, models.CreateServerInput{Name: "Guild", OwnerID: "u1"})
	assert.NoError(t, err)

	entries := []models.NewLogEntry{
		{Type: models.LogTypeServer, Action: models.LogActionCreated, UserID: "u1"},
		{Type: models.LogTypeInvitation, Action: models.LogActionInvited, UserID: "u1"},
		{Type: models.LogTypeInvitation, Action: models.LogActionJoined, UserID: "u2"},
		{Type: models.LogTypeMessage, Action: models.LogActionCreated, UserID: "u2"},
	}
	for _, e := range entries {
		assert.NoError(t, repo.AppendLog(ctx, server.ID, e))
		time.Sleep(time.Millisecond)
	}

	all, err := repo.Logs(ctx, server.ID, models.LogFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 4)
	// newest first
	assert.Equal(t, models.LogTypeMessage, all[0].Type)

	invitations, err := repo.Logs(ctx, server.ID, models.LogFilter{Type: models.LogTypeInvitation})
	assert.NoError(t, err)
	assert.Len(t, invitations, 2)

	byUser, err := repo.Logs(ctx, server.ID, models.LogFilter{UserID: "u2"})
	assert.NoError(t, err)
	assert.Len(t, byUser, 2)

	limited, err := repo.Logs(ctx, server.ID, models.LogFilter{Limit: 1})
	assert.NoError(t, err)
	assert.Len(t, limited, 1)
	assert.Equal(t, models.LogTypeMessage, limited[0].Type)
}

func TestServerLogsNotFound(t *testing.T) {
	repo := NewServerRepository(NewMemoryStore())

	_, err := repo.Logs(context.Background(), "missing", models.LogFilter{})
	assert.True(t, apperrors.IsNotFound(err))
}
