package outletsRepo

import (
	"context"
	"fmt"

	"fieldtrack/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type firestoreOutletRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreOutletRepo returns an OutletRepository reading the given Firestore collection.
func NewFirestoreOutletRepo(client *firestore.Client, collection string) OutletRepository {
	return &firestoreOutletRepo{coll: client.Collection(collection)}
}

func (r *firestoreOutletRepo) GetByID(ctx context.Context, id string) (*models.Outlet, error) {
	snap, err := r.coll.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrOutletNotFound
		}
		return nil, fmt.Errorf("failed to fetch outlet %s: %w", id, err)
	}
	var outlet models.Outlet
	if err := snap.DataTo(&outlet); err != nil {
		return nil, fmt.Errorf("failed to decode outlet %s: %w", id, err)
	}
	outlet.ID = snap.Ref.ID
	return &outlet, nil
}
