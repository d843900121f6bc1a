package config

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// Process-wide handles, initialized once at startup and injected into the
// layers that need them in main.
var (
	Log          = logrus.New()
	FirebaseApp  *firebase.App
	FirebaseAuth *auth.Client
	Firestore    *firestore.Client
)

func InitLogger() {
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		Log.SetLevel(level)
	}
}

// InitFirebase builds the Firebase app, Auth client and Firestore client from
// FIREBASE_CREDENTIALS_PATH. Fatal on failure: the process is useless without
// the document store.
func InitFirebase() {
	ctx := context.Background()

	var opts []option.ClientOption
	if credPath := os.Getenv("FIREBASE_CREDENTIALS_PATH"); credPath != "" {
		opts = append(opts, option.WithCredentialsFile(credPath))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		Log.Fatalf("error initializing Firebase app: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		Log.Fatalf("error getting Auth client: %v", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		Log.Fatalf("error getting Firestore client: %v", err)
	}

	FirebaseApp = app
	FirebaseAuth = authClient
	Firestore = firestoreClient
}
