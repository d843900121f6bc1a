package services

import (
	"context"

	firebase "firebase.google.com/go/v4"

	"concord/apperrors"
	"concord/repositories"
)

type HealthService struct {
	App   *firebase.App
	Store repositories.Store
}

func NewHealthService(app *firebase.App, store repositories.Store) *HealthService {
	return &HealthService{App: app, Store: store}
}

// Check reports the Firebase app and Firestore connectivity status as
// "ok"/"error" pairs. Firestore is probed with a read against the _status
// collection; an absent probe document still proves reachability.
func (s *HealthService) Check(ctx context.Context) (firebaseStatus, firestoreStatus string) {
	firebaseStatus = "error"
	if s.App != nil {
		firebaseStatus = "ok"
	}

	firestoreStatus = "ok"
	if _, err := s.Store.Get(ctx, "_status", "probe"); err != nil && !apperrors.IsNotFound(err) {
		firestoreStatus = "error"
	}
	return firebaseStatus, firestoreStatus
}
