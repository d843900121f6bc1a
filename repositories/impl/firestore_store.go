package impl

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"concord/apperrors"
	"concord/repositories"
)

// FirestoreStore implements repositories.Store on a Cloud Firestore client.
type FirestoreStore struct {
	Client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{Client: client}
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (*repositories.Document, error) {
	snap, err := s.Client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, apperrors.NotFound("document not found")
	}
	if err != nil {
		return nil, storeErr("get %s/%s", collection, id, err)
	}
	return &repositories.Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *FirestoreStore) GetAll(ctx context.Context, collection string, ids []string) ([]repositories.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	col := s.Client.Collection(collection)
	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, col.Doc(id))
	}

	snaps, err := s.Client.GetAll(ctx, refs)
	if err != nil {
		return nil, storeErr("get all %s", collection, "", err)
	}

	docs := make([]repositories.Document, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		docs = append(docs, repositories.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func (s *FirestoreStore) Query(ctx context.Context, collection string, filters []repositories.Filter, orderBy *repositories.Order) ([]repositories.Document, error) {
	q := s.Client.Collection(collection).Query
	for _, f := range filters {
		q = q.Where(f.Field, f.Op, f.Value)
	}
	if orderBy != nil {
		dir := firestore.Asc
		if orderBy.Descending {
			dir = firestore.Desc
		}
		q = q.OrderBy(orderBy.Field, dir)
	}

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, storeErr("query %s", collection, "", err)
	}

	docs := make([]repositories.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, repositories.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func (s *FirestoreStore) Create(collection string) string {
	return s.Client.Collection(collection).NewDoc().ID
}

func (s *FirestoreStore) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	_, err := s.Client.Collection(collection).Doc(id).Set(ctx, translateValues(data))
	if err != nil {
		return storeErr("set %s/%s", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, updates map[string]interface{}) error {
	fsUpdates := make([]firestore.Update, 0, len(updates))
	for field, value := range updates {
		fsUpdates = append(fsUpdates, firestore.Update{Path: field, Value: translateValue(value)})
	}

	_, err := s.Client.Collection(collection).Doc(id).Update(ctx, fsUpdates)
	if status.Code(err) == codes.NotFound {
		return apperrors.NotFound("document not found")
	}
	if err != nil {
		return storeErr("update %s/%s", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	// Firestore deletes are idempotent; a missing document is not an error.
	_, err := s.Client.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return storeErr("delete %s/%s", collection, id, err)
	}
	return nil
}

// translateValues maps the store sentinels onto their Firestore counterparts.
func translateValues(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = translateValue(v)
	}
	return out
}

func translateValue(v interface{}) interface{} {
	switch val := v.(type) {
	case repositories.ArrayUnionValue:
		return firestore.ArrayUnion(val.Elems...)
	default:
		if v == repositories.ServerTimestamp {
			return firestore.ServerTimestamp
		}
		return v
	}
}

func storeErr(format, collection, id string, err error) error {
	var op string
	if id == "" {
		op = fmt.Sprintf(format, collection)
	} else {
		op = fmt.Sprintf(format, collection, id)
	}
	return fmt.Errorf("%w: %s: %v", apperrors.ErrStoreUnavailable, op, err)
}
