// utils/firebase.go
package utils

import (
	"context"
	"log"

	"fieldtrack/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var FirebaseApp *firebase.App

// FirebaseInit initializes the Firebase App. Without a credentials file the
// application default credentials are used.
func FirebaseInit() {
	if FirebaseApp != nil {
		return
	}
	ctx := context.Background()

	var opts []option.ClientOption
	if path := config.AppConfig.FirebaseCredentialsFile; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}
	var fbConfig *firebase.Config
	if id := config.AppConfig.FirebaseProjectID; id != "" {
		fbConfig = &firebase.Config{ProjectID: id}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}
	FirebaseApp = app
}

// FirebaseAuth returns an Auth client used to verify ID tokens.
func FirebaseAuth(ctx context.Context) *auth.Client {
	FirebaseInit()
	client, err := FirebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}
	return client
}
