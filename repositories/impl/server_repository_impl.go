package impl

import (
	"context"
	"sort"
	"time"

	"concord/apperrors"
	"concord/models"
	"concord/repositories"
)

const serversCollection = "servers"

type ServerRepositoryImpl struct {
	Store repositories.Store
}

func NewServerRepository(store repositories.Store) *ServerRepositoryImpl {
	return &ServerRepositoryImpl{Store: store}
}

func (r *ServerRepositoryImpl) Create(ctx context.Context, input models.CreateServerInput) (models.Server, error) {
	id := r.Store.Create(serversCollection)
	members := unionMembers(input.OwnerID, input.MemberIDs)

	data := map[string]interface{}{
		"id":        id,
		"name":      input.Name,
		"ownerId":   input.OwnerID,
		"memberIds": members,
		"imageUrl":  ptrValue(input.ImageURL),
		"createdAt": repositories.ServerTimestamp,
	}
	if err := r.Store.Set(ctx, serversCollection, id, data); err != nil {
		return models.Server{}, err
	}

	// Re-read to resolve the server-assigned timestamp.
	doc, err := r.Store.Get(ctx, serversCollection, id)
	if err != nil {
		return models.Server{}, err
	}
	return mapServerDoc(doc), nil
}

func (r *ServerRepositoryImpl) Get(ctx context.Context, serverID string) (models.Server, error) {
	doc, err := r.getDoc(ctx, serverID)
	if err != nil {
		return models.Server{}, err
	}
	return mapServerDoc(doc), nil
}

func (r *ServerRepositoryImpl) ListForUser(ctx context.Context, userID string) ([]models.PublicServer, error) {
	return r.list(ctx, userID, nil)
}

func (r *ServerRepositoryImpl) ListForUserOrdered(ctx context.Context, userID, orderBy string, descending bool) ([]models.PublicServer, error) {
	return r.list(ctx, userID, &repositories.Order{Field: orderBy, Descending: descending})
}

func (r *ServerRepositoryImpl) list(ctx context.Context, userID string, orderBy *repositories.Order) ([]models.PublicServer, error) {
	filters := []repositories.Filter{
		{Field: "memberIds", Op: repositories.OpArrayContains, Value: userID},
	}
	docs, err := r.Store.Query(ctx, serversCollection, filters, orderBy)
	if err != nil {
		return nil, err
	}

	servers := make([]models.PublicServer, 0, len(docs))
	for i := range docs {
		servers = append(servers, mapPublicServerDoc(&docs[i]))
	}
	return servers, nil
}

func (r *ServerRepositoryImpl) AddMember(ctx context.Context, serverID, userID string) error {
	doc, err := r.getDoc(ctx, serverID)
	if err != nil {
		return err
	}

	members := strSliceField(doc.Data, "memberIds")
	for _, m := range members {
		if m == userID {
			return nil
		}
	}

	// Whole-array write: concurrent joins are last-write-wins.
	return r.Store.Update(ctx, serversCollection, serverID, map[string]interface{}{
		"memberIds": append(members, userID),
	})
}

func (r *ServerRepositoryImpl) AppendLog(ctx context.Context, serverID string, entry models.NewLogEntry) error {
	logID := r.Store.Create("_temp")

	// Server timestamps cannot be used inside array elements, so log entries
	// carry a wall-clock timestamp.
	logEntry := map[string]interface{}{
		"id":        logID,
		"type":      entry.Type,
		"action":    entry.Action,
		"userId":    entry.UserID,
		"timestamp": time.Now().UTC(),
	}
	if entry.TargetID != "" {
		logEntry["targetId"] = entry.TargetID
	}
	if entry.Metadata != nil {
		logEntry["metadata"] = entry.Metadata
	}

	err := r.Store.Update(ctx, serversCollection, serverID, map[string]interface{}{
		"logs": repositories.ArrayUnion(logEntry),
	})
	if apperrors.IsNotFound(err) {
		return apperrors.NotFound("Server not found")
	}
	return err
}

func (r *ServerRepositoryImpl) Logs(ctx context.Context, serverID string, filter models.LogFilter) ([]models.LogEntry, error) {
	doc, err := r.getDoc(ctx, serverID)
	if err != nil {
		return nil, err
	}

	raw, _ := doc.Data["logs"].([]interface{})
	logs := make([]models.LogEntry, 0, len(raw))
	for _, v := range raw {
		data, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		entry := mapLogEntry(data)
		if filter.Type != "" && entry.Type != filter.Type {
			continue
		}
		if filter.UserID != "" && entry.UserID != filter.UserID {
			continue
		}
		logs = append(logs, entry)
	}

	// Newest first. Entries without a resolved timestamp keep their order.
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Timestamp == nil || logs[j].Timestamp == nil {
			return false
		}
		return logs[i].Timestamp.After(*logs[j].Timestamp)
	})

	if filter.Limit > 0 && len(logs) > filter.Limit {
		logs = logs[:filter.Limit]
	}
	return logs, nil
}

func (r *ServerRepositoryImpl) getDoc(ctx context.Context, serverID string) (*repositories.Document, error) {
	doc, err := r.Store.Get(ctx, serversCollection, serverID)
	if apperrors.IsNotFound(err) {
		return nil, apperrors.NotFound("Server not found")
	}
	return doc, err
}

// unionMembers prepends the owner and drops duplicates, preserving the first
// occurrence order.
func unionMembers(ownerID string, memberIDs []string) []string {
	members := []string{ownerID}
	seen := map[string]bool{ownerID: true}
	for _, id := range memberIDs {
		if !seen[id] {
			seen[id] = true
			members = append(members, id)
		}
	}
	return members
}

func mapServerDoc(doc *repositories.Document) models.Server {
	return models.Server{
		ID:        doc.ID,
		Name:      strField(doc.Data, "name"),
		OwnerID:   strField(doc.Data, "ownerId"),
		MemberIDs: strSliceField(doc.Data, "memberIds"),
		ImageURL:  strPtrField(doc.Data, "imageUrl"),
		CreatedAt: timeField(doc.Data, "createdAt"),
	}
}

func mapPublicServerDoc(doc *repositories.Document) models.PublicServer {
	return models.PublicServer{
		ID:       doc.ID,
		OwnerID:  strField(doc.Data, "ownerId"),
		Name:     strField(doc.Data, "name"),
		ImageURL: strPtrField(doc.Data, "imageUrl"),
	}
}

func mapLogEntry(data map[string]interface{}) models.LogEntry {
	entry := models.LogEntry{
		ID:        strField(data, "id"),
		Type:      strField(data, "type"),
		Action:    strField(data, "action"),
		UserID:    strField(data, "userId"),
		TargetID:  strField(data, "targetId"),
		Timestamp: timeField(data, "timestamp"),
	}
	if md, ok := data["metadata"].(map[string]interface{}); ok {
		entry.Metadata = md
	}
	return entry
}
