package database

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
)

// FirestoreClient is the global Firestore client instance.
var FirestoreClient *firestore.Client

// InitFirestore opens the Firestore client of the given Firebase app.
func InitFirestore(app *firebase.App) {
	client, err := app.Firestore(context.Background())
	if err != nil {
		log.Fatalf("failed to open Firestore client: %v", err)
	}
	FirestoreClient = client
	log.Println("Connected to Firestore successfully!")
}
