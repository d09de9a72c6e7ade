package reportsRepo

import (
	"context"
	"fmt"

	"fieldtrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore reads report collections from MongoDB.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoReportStore returns a Store backed by MongoDB, one Mongo collection per report collection.
func NewMongoReportStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) QueryCollection(ctx context.Context, collection string, filter Filter, orderBy *OrderBy) ([]models.Document, error) {
	opts := options.Find()
	if orderBy != nil {
		dir := 1
		if orderBy.Direction == Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: orderBy.Field, Value: dir}})
	}

	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{filter.Field: filter.Equals}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", collection, err)
	}

	docs := make([]models.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, toDocument(m))
	}
	return docs, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

func (s *MongoStore) Put(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	doc := bson.M{}
	for k, v := range fields {
		doc[k] = v
	}
	doc["_id"] = id
	opts := options.Replace().SetUpsert(true)
	if _, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", collection, id, err)
	}
	return nil
}

// toDocument moves _id onto Document.ID and normalizes BSON-specific types.
func toDocument(m bson.M) models.Document {
	var id string
	switch v := m["_id"].(type) {
	case primitive.ObjectID:
		id = v.Hex()
	case string:
		id = v
	case nil:
	default:
		id = fmt.Sprint(v)
	}

	fields := make(models.Fields, len(m))
	for k, v := range m {
		if k == "_id" {
			continue
		}
		fields[k] = models.FromAny(normalizeBSON(v))
	}
	return models.Document{ID: id, Fields: fields}
}

func normalizeBSON(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time()
	case primitive.Timestamp:
		return primitive.DateTime(int64(t.T) * 1000).Time()
	case primitive.Decimal128:
		// Decimal128 has no direct float conversion; its string form parses as a base-10 number.
		return t.String()
	case bson.M:
		return map[string]interface{}(t)
	default:
		return v
	}
}
