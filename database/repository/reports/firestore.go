package reportsRepo

import (
	"context"
	"fmt"

	"fieldtrack/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore reads report collections from Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreReportStore returns a Store backed by Firestore.
func NewFirestoreReportStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) QueryCollection(ctx context.Context, collection string, filter Filter, orderBy *OrderBy) ([]models.Document, error) {
	q := s.client.Collection(collection).Where(filter.Field, "==", filter.Equals)
	if orderBy != nil {
		dir := firestore.Asc
		if orderBy.Direction == Desc {
			dir = firestore.Desc
		}
		q = q.OrderBy(orderBy.Field, dir)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	docs := []models.Document{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			// Firestore rejects an equality filter combined with an order on another
			// field unless a composite index exists.
			if status.Code(err) == codes.FailedPrecondition {
				return nil, fmt.Errorf("%w: %s: %v", ErrIndexRequired, collection, err)
			}
			return nil, fmt.Errorf("failed to query %s: %w", collection, err)
		}
		docs = append(docs, models.Document{
			ID:     snap.Ref.ID,
			Fields: models.NewFields(snap.Data()),
		})
	}
	return docs, nil
}

func (s *FirestoreStore) Ping(ctx context.Context) error {
	iter := s.client.Collections(ctx)
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return fmt.Errorf("firestore ping failed: %w", err)
	}
	return nil
}

func (s *FirestoreStore) Put(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, fields); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", collection, id, err)
	}
	return nil
}
