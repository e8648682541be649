package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConfigMongoRepository keeps a single document per collection under a
// fixed _id.
type ConfigMongoRepository[T any] struct {
	*BaseMongoRepository[T]
	documentID string
}

func NewConfigMongoRepository[T any](db mongo.Database, collection, documentID string) *ConfigMongoRepository[T] {
	return &ConfigMongoRepository[T]{
		BaseMongoRepository: NewBaseMongoRepository[T](db, collection),
		documentID:          documentID,
	}
}

var _ domain.ConfigRepository[struct{}] = (*ConfigMongoRepository[struct{}])(nil)

func (r *ConfigMongoRepository[T]) Get(ctx context.Context) (*T, error) {
	var config T
	err := r.coll().FindOne(ctx, bson.M{"_id": r.documentID}).Decode(&config)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &config, nil
}

// Upsert replaces the stored fields of the singleton document.
func (r *ConfigMongoRepository[T]) Upsert(ctx context.Context, config *T) error {
	if config == nil {
		return errors.New("config cannot be nil")
	}

	r.setTimestamps(config, false)

	doc, err := bson.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	var fields bson.M
	if err := bson.Unmarshal(doc, &fields); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	delete(fields, "_id")

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll().UpdateOne(ctx, bson.M{"_id": r.documentID}, bson.M{"$set": fields}, opts); err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}
	return nil
}
