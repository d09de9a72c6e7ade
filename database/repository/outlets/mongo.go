package outletsRepo

import (
	"context"
	"errors"
	"fmt"

	"fieldtrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoOutletRepo struct {
	coll *mongo.Collection
}

// NewMongoOutletRepo returns an OutletRepository reading the given MongoDB collection.
func NewMongoOutletRepo(db *mongo.Database, collection string) OutletRepository {
	return &mongoOutletRepo{coll: db.Collection(collection)}
}

func (r *mongoOutletRepo) GetByID(ctx context.Context, id string) (*models.Outlet, error) {
	var outlet models.Outlet
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&outlet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOutletNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch outlet %s: %w", id, err)
	}
	return &outlet, nil
}
