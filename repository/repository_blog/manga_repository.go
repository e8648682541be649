package repository_blog

import (
	"context"
	"fmt"

	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"github.com/manhva-oppa/oppa-blog/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type mangaRepository struct {
	*repository.BaseMongoRepository[blog_models.Manga]
	db         mongo.Database
	collection string
}

func NewMangaRepository(db mongo.Database, collection string) blog_interface.MangaRepository {
	return &mangaRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[blog_models.Manga](db, collection),
		db:                  db,
		collection:          collection,
	}
}

func (r *mangaRepository) WatchInserts(
	ctx context.Context,
	handle func(ctx context.Context, id primitive.ObjectID),
) error {
	pipeline := driver.Pipeline{
		{{Key: "$match", Value: bson.M{"operationType": "insert"}}},
		{{Key: "$project", Value: bson.M{"documentKey": 1}}},
	}

	stream, err := r.db.Collection(r.collection).Watch(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("failed to open manga change stream: %w", err)
	}
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		var event struct {
			DocumentKey struct {
				ID primitive.ObjectID `bson:"_id"`
			} `bson:"documentKey"`
		}
		if err := stream.Decode(&event); err != nil {
			return fmt.Errorf("failed to decode change event: %w", err)
		}
		if event.DocumentKey.ID.IsZero() {
			continue
		}
		handle(ctx, event.DocumentKey.ID)
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("manga change stream failed: %w", err)
	}
	return ctx.Err()
}
