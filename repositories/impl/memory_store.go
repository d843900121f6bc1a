package impl

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"concord/apperrors"
	"concord/repositories"
)

// MemoryStore is an in-memory repositories.Store used by tests and local
// development without Firestore credentials. Sentinels resolve against the
// wall clock.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]interface{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]map[string]interface{})}
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (*repositories.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return nil, apperrors.NotFound("document not found")
	}
	return &repositories.Document{ID: id, Data: copyMap(data)}, nil
}

func (s *MemoryStore) GetAll(ctx context.Context, collection string, ids []string) ([]repositories.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]repositories.Document, 0, len(ids))
	for _, id := range ids {
		if data, ok := s.collections[collection][id]; ok {
			docs = append(docs, repositories.Document{ID: id, Data: copyMap(data)})
		}
	}
	return docs, nil
}

func (s *MemoryStore) Query(ctx context.Context, collection string, filters []repositories.Filter, orderBy *repositories.Order) ([]repositories.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []repositories.Document
	for id, data := range s.collections[collection] {
		if matchesFilters(data, filters) {
			docs = append(docs, repositories.Document{ID: id, Data: copyMap(data)})
		}
	}

	if orderBy != nil {
		sort.SliceStable(docs, func(i, j int) bool {
			less := lessValue(docs[i].Data[orderBy.Field], docs[j].Data[orderBy.Field])
			if orderBy.Descending {
				return !less
			}
			return less
		})
	}
	return docs, nil
}

func (s *MemoryStore) Create(collection string) string {
	return uuid.NewString()
}

func (s *MemoryStore) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]interface{})
	}
	s.collections[collection][id] = resolveSentinels(copyMap(data), nil)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, updates map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.collections[collection][id]
	if !ok {
		return apperrors.NotFound("document not found")
	}
	for k, v := range resolveSentinels(copyMap(updates), existing) {
		existing[k] = v
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func matchesFilters(data map[string]interface{}, filters []repositories.Filter) bool {
	for _, f := range filters {
		switch f.Op {
		case repositories.OpEqual:
			if data[f.Field] != f.Value {
				return false
			}
		case repositories.OpArrayContains:
			if !arrayContains(data[f.Field], f.Value) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func arrayContains(field, value interface{}) bool {
	switch arr := field.(type) {
	case []string:
		for _, v := range arr {
			if v == value {
				return true
			}
		}
	case []interface{}:
		for _, v := range arr {
			if v == value {
				return true
			}
		}
	}
	return false
}

func lessValue(a, b interface{}) bool {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return av < bv
	case time.Time:
		bv, _ := b.(time.Time)
		return av.Before(bv)
	}
	return false
}

// resolveSentinels replaces the write sentinels with concrete values. For
// ArrayUnion the previous value from existing (when present) is extended.
func resolveSentinels(data map[string]interface{}, existing map[string]interface{}) map[string]interface{} {
	for k, v := range data {
		switch val := v.(type) {
		case repositories.ArrayUnionValue:
			var arr []interface{}
			if existing != nil {
				if prev, ok := existing[k].([]interface{}); ok {
					arr = append(arr, prev...)
				}
			}
			for _, elem := range val.Elems {
				if m, ok := elem.(map[string]interface{}); ok {
					elem = resolveSentinels(copyMap(m), nil)
				}
				arr = append(arr, elem)
			}
			data[k] = arr
		default:
			if v == repositories.ServerTimestamp {
				data[k] = time.Now().UTC()
			}
		}
	}
	return data
}

func copyMap(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		switch val := v.(type) {
		case map[string]interface{}:
			out[k] = copyMap(val)
		case []interface{}:
			arr := make([]interface{}, len(val))
			for i, elem := range val {
				if m, ok := elem.(map[string]interface{}); ok {
					arr[i] = copyMap(m)
				} else {
					arr[i] = elem
				}
			}
			out[k] = arr
		case []string:
			out[k] = append([]string(nil), val...)
		default:
			out[k] = v
		}
	}
	return out
}
