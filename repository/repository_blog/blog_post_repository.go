package repository_blog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type blogPostRepository struct {
	db         mongo.Database
	collection string
}

func NewBlogPostRepository(db mongo.Database, collection string) blog_interface.BlogPostRepository {
	return &blogPostRepository{
		db:         db,
		collection: collection,
	}
}

func (r *blogPostRepository) Create(ctx context.Context, post *blog_models.BlogPost) error {
	if post == nil {
		return errors.New("post cannot be nil")
	}

	stored := *post
	stored.Manga = nil

	insertedID, err := r.db.Collection(r.collection).InsertOne(ctx, &stored)
	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	if oid, ok := insertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return nil
}

func (r *blogPostRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return errors.New("id cannot be empty")
	}
	deleted, err := r.db.Collection(r.collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if deleted == 0 {
		return blog_models.ErrPostNotFound
	}
	return nil
}

func (r *blogPostRepository) GetBySlug(ctx context.Context, slug string) (*blog_models.BlogPost, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *blogPostRepository) GetByMangaID(ctx context.Context, mangaID primitive.ObjectID) (*blog_models.BlogPost, error) {
	return r.findOne(ctx, bson.M{"manga_id": mangaID})
}

func (r *blogPostRepository) findOne(ctx context.Context, match bson.M) (*blog_models.BlogPost, error) {
	pipeline := driver.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$limit", Value: 1}},
	}
	pipeline = append(pipeline, mangaJoinStages(blog_models.MangaFull, false)...)

	posts, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return &posts[0], nil
}

func (r *blogPostRepository) Find(ctx context.Context, query blog_models.PostQuery) ([]blog_models.BlogPost, error) {
	sortOrder := -1
	if query.Ascending {
		sortOrder = 1
	}
	orderBy := blog_models.NormalizeOrder(query.OrderBy)

	pipeline := driver.Pipeline{
		{{Key: "$match", Value: postFilter(query)}},
		{{Key: "$sort", Value: bson.D{{Key: orderBy, Value: sortOrder}, {Key: "_id", Value: sortOrder}}}},
	}
	if query.RequireManga {
		// The join may drop rows, so it runs before paging.
		pipeline = append(pipeline, mangaJoinStages(query.Projection, true)...)
		pipeline = appendPaging(pipeline, query)
	} else {
		pipeline = appendPaging(pipeline, query)
		pipeline = append(pipeline, mangaJoinStages(query.Projection, false)...)
	}

	return r.aggregate(ctx, pipeline)
}

func (r *blogPostRepository) Count(ctx context.Context, query blog_models.PostQuery) (int64, error) {
	count, err := r.db.Collection(r.collection).CountDocuments(ctx, postFilter(query))
	if err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return count, nil
}

func (r *blogPostRepository) ListKeywordFields(ctx context.Context) ([]string, error) {
	coll := r.db.Collection(r.collection)
	cursor, err := coll.Find(ctx, bson.M{"seo_keywords": bson.M{"$exists": true, "$ne": nil}})
	if err != nil {
		return nil, fmt.Errorf("failed to query keywords: %w", err)
	}
	defer cursor.Close(ctx)

	fields := make([]string, 0)
	for cursor.Next(ctx) {
		var doc struct {
			Keywords bson.RawValue `bson:"seo_keywords"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode keywords: %w", err)
		}
		if s, ok := doc.Keywords.StringValueOK(); ok {
			fields = append(fields, s)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("keyword cursor error: %w", err)
	}
	return fields, nil
}

func (r *blogPostRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.db.Collection(r.collection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
	)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

func (r *blogPostRepository) aggregate(ctx context.Context, pipeline driver.Pipeline) ([]blog_models.BlogPost, error) {
	cursor, err := r.db.Collection(r.collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("blog post aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	posts := make([]blog_models.BlogPost, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}
	return posts, nil
}

func postFilter(query blog_models.PostQuery) bson.M {
	filter := bson.M{}
	if q := strings.TrimSpace(query.Search); q != "" {
		pattern := containsPattern(q)
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"content": pattern},
			bson.M{"seo_description": pattern},
			bson.M{"seo_keywords": pattern},
		}
	}
	if tag := strings.TrimSpace(query.Tag); tag != "" {
		filter["seo_keywords"] = containsPattern(tag)
	}
	if !query.ExcludeMangaID.IsZero() {
		filter["manga_id"] = bson.M{"$ne": query.ExcludeMangaID}
	}
	return filter
}

// containsPattern is a case-insensitive substring match on literal text.
func containsPattern(text string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}

func appendPaging(pipeline driver.Pipeline, query blog_models.PostQuery) driver.Pipeline {
	if query.Offset > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: query.Offset}})
	}
	if query.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: query.Limit}})
	}
	return pipeline
}

// mangaJoinStages embeds the post's manga under "manga". With inner set,
// posts whose manga is gone are dropped instead of kept without one.
func mangaJoinStages(projection blog_models.MangaProjection, inner bool) driver.Pipeline {
	stages := driver.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         domain.CollectionMangaEntries,
			"localField":   "manga_id",
			"foreignField": "_id",
			"as":           "manga",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$manga",
			"preserveNullAndEmptyArrays": !inner,
		}}},
	}

	switch projection {
	case blog_models.MangaSummary:
		stages = append(stages, bson.D{{Key: "$project", Value: bson.M{
			"manga.author":         0,
			"manga.status":         0,
			"manga.published_year": 0,
			"manga.tags":           0,
			"manga.created_at":     0,
			"manga.updated_at":     0,
		}}})
	case blog_models.MangaCard:
		stages = append(stages, bson.D{{Key: "$project", Value: bson.M{
			"manga.description":    0,
			"manga.author":         0,
			"manga.status":         0,
			"manga.published_year": 0,
			"manga.genres":         0,
			"manga.tags":           0,
			"manga.created_at":     0,
			"manga.updated_at":     0,
		}}})
	}
	return stages
}
