package mongo

import (
	"context"
	"strings"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func CreateIndexes(db Database, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Blog posts
	postCollection := db.Collection(domain.CollectionBlogPosts)
	createIndex(ctx, logger, postCollection, bson.D{{Key: "slug", Value: 1}}, "slug", true)
	createIndex(ctx, logger, postCollection, bson.D{{Key: "manga_id", Value: 1}}, "manga_id", false)
	createIndex(ctx, logger, postCollection, bson.D{{Key: "published_date", Value: -1}}, "published_date", false)
	createIndex(ctx, logger, postCollection, bson.D{{Key: "views", Value: -1}}, "views", false)
	createIndex(ctx, logger, postCollection, bson.D{
		{Key: "manga_id", Value: 1},
		{Key: "published_date", Value: -1}}, "manga_published_compound", false)

	// Manga entries
	mangaCollection := db.Collection(domain.CollectionMangaEntries)
	createIndex(ctx, logger, mangaCollection, bson.D{{Key: "genres._id", Value: 1}}, "genres_id", false)
	createIndex(ctx, logger, mangaCollection, bson.D{{Key: "created_at", Value: -1}}, "created_at", false)

	// Social links
	socialCollection := db.Collection(domain.CollectionSocialMediaLinks)
	createIndex(ctx, logger, socialCollection, bson.D{
		{Key: "active", Value: 1},
		{Key: "display_order", Value: 1}}, "active_display_order_compound", false)

	// Admins
	adminCollection := db.Collection(domain.CollectionAdmins)
	createIndex(ctx, logger, adminCollection, bson.D{{Key: "email", Value: 1}}, "email", true)
	createIndex(ctx, logger, adminCollection, bson.D{{Key: "user_id", Value: 1}}, "user_id", true)
}

func createIndex(ctx context.Context, logger *zap.Logger, collection Collection, keys bson.D, name string, unique bool) {
	specs, err := collection.Indexes().ListSpecifications(ctx)
	if err != nil {
		logger.Warn("list index specifications failed", zap.String("index", name), zap.Error(err))
	}
	for _, spec := range specs {
		if spec.Name == name {
			logger.Debug("index already exists", zap.String("index", name))
			return
		}
	}

	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(unique),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		if strings.Contains(err.Error(), "E11000") {
			logger.Error("unique index blocked by duplicate documents", zap.String("index", name), zap.Error(err))
			return
		}
		logger.Error("create index failed", zap.String("index", name), zap.Error(err))
		return
	}
	logger.Info("index created", zap.String("index", name))
}
