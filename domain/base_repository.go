package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseRepository is the generic CRUD contract shared by entity repositories.
// T must carry an ObjectID field tagged `bson:"_id"`.
type BaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	Update(ctx context.Context, entity *T) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	DeleteMany(ctx context.Context, filter interface{}) (int64, error)

	GetByFilter(ctx context.Context, filter interface{}) ([]*T, error)
	GetOneByFilter(ctx context.Context, filter interface{}) (*T, error)
	Count(ctx context.Context, filter interface{}) (int64, error)

	// GetPaginated returns newest-first pages when sortField is empty.
	GetPaginated(ctx context.Context, filter interface{}, skip, limit int64, sortField string, ascending bool) ([]*T, error)

	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// ConfigRepository serves singleton configuration documents.
type ConfigRepository[T any] interface {
	// Get returns (nil, nil) when the document has not been written yet.
	Get(ctx context.Context) (*T, error)
	Upsert(ctx context.Context, config *T) error
}
