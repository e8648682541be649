package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseMongoRepository implements domain.BaseRepository over one collection.
type BaseMongoRepository[T any] struct {
	db         mongo.Database
	collection string
}

func NewBaseMongoRepository[T any](db mongo.Database, collection string) *BaseMongoRepository[T] {
	return &BaseMongoRepository[T]{
		db:         db,
		collection: collection,
	}
}

var _ domain.BaseRepository[struct{}] = (*BaseMongoRepository[struct{}])(nil)

func (r *BaseMongoRepository[T]) coll() mongo.Collection {
	return r.db.Collection(r.collection)
}

// Create inserts entity, stamping created_at/updated_at and writing back the
// generated ObjectID.
func (r *BaseMongoRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}

	r.setTimestamps(entity, true)

	resultID, err := r.coll().InsertOne(ctx, entity)
	if err != nil {
		return fmt.Errorf("failed to create entity: %w", err)
	}

	if oid, ok := resultID.(primitive.ObjectID); ok {
		r.setEntityID(entity, oid)
	}
	return nil
}

func (r *BaseMongoRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	if id.IsZero() {
		return nil, errors.New("id cannot be empty")
	}

	var entity T
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return &entity, nil
}

// Update upserts the whole entity by its id.
func (r *BaseMongoRepository[T]) Update(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}

	id := r.getEntityID(entity)
	if id.IsZero() {
		return errors.New("entity ID cannot be empty")
	}

	r.setTimestamps(entity, false)

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": entity}, opts); err != nil {
		return fmt.Errorf("failed to update or insert entity: %w", err)
	}
	return nil
}

// UpdateByID applies update and always refreshes updated_at.
func (r *BaseMongoRepository[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	if id.IsZero() {
		return false, errors.New("id cannot be empty")
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	if set, ok := update["$set"].(bson.M); ok {
		set["updated_at"] = now
	} else if update["$set"] == nil {
		update["$set"] = bson.M{"updated_at": now}
	}

	result, err := r.coll().UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, fmt.Errorf("failed to update entity: %w", err)
	}
	return result.ModifiedCount > 0, nil
}

func (r *BaseMongoRepository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return errors.New("id cannot be empty")
	}

	deletedCount, err := r.coll().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}
	if deletedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id.Hex())
	}
	return nil
}

func (r *BaseMongoRepository[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	deletedCount, err := r.coll().DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entities: %w", err)
	}
	return deletedCount, nil
}

func (r *BaseMongoRepository[T]) GetByFilter(ctx context.Context, filter interface{}) ([]*T, error) {
	cursor, err := r.coll().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find entities: %w", err)
	}
	return decodeAll[T](ctx, cursor)
}

// GetOneByFilter returns (nil, nil) when nothing matches.
func (r *BaseMongoRepository[T]) GetOneByFilter(ctx context.Context, filter interface{}) (*T, error) {
	var entity T
	err := r.coll().FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find entity: %w", err)
	}
	return &entity, nil
}

func (r *BaseMongoRepository[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	count, err := r.coll().CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count entities: %w", err)
	}
	return count, nil
}

func (r *BaseMongoRepository[T]) GetPaginated(
	ctx context.Context,
	filter interface{},
	skip, limit int64,
	sortField string,
	ascending bool,
) ([]*T, error) {
	sortOrder := -1
	if ascending {
		sortOrder = 1
	}
	if sortField == "" {
		sortField, sortOrder = "_id", -1
	}

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: sortField, Value: sortOrder}})

	cursor, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find entities: %w", err)
	}
	return decodeAll[T](ctx, cursor)
}

func (r *BaseMongoRepository[T]) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if id.IsZero() {
		return false, errors.New("id cannot be empty")
	}

	count, err := r.Count(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func decodeAll[T any](ctx context.Context, cursor mongo.Cursor) ([]*T, error) {
	defer cursor.Close(ctx)

	entities := make([]*T, 0)
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		entities = append(entities, &entity)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return entities, nil
}

var dateTimeType = reflect.TypeOf(primitive.DateTime(0))

func (r *BaseMongoRepository[T]) setTimestamps(entity *T, isCreate bool) {
	val := reflect.ValueOf(entity).Elem()
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()
	now := primitive.NewDateTimeFromTime(time.Now())

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanSet() || field.Type() != dateTimeType {
			continue
		}

		switch bsonFieldName(typ.Field(i)) {
		case "created_at", "CreatedAt":
			if isCreate {
				field.Set(reflect.ValueOf(now))
			}
		case "updated_at", "UpdatedAt":
			field.Set(reflect.ValueOf(now))
		}
	}
}

func (r *BaseMongoRepository[T]) getEntityID(entity *T) primitive.ObjectID {
	if entity == nil {
		return primitive.NilObjectID
	}
	val := reflect.ValueOf(entity).Elem()
	if val.Kind() != reflect.Struct {
		return primitive.NilObjectID
	}
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() {
			continue
		}
		if matchesIDField(bsonFieldName(typ.Field(i))) && isObjectIDType(field.Type()) {
			if field.Kind() == reflect.Ptr {
				if field.IsNil() {
					return primitive.NilObjectID
				}
				return field.Elem().Interface().(primitive.ObjectID)
			}
			return field.Interface().(primitive.ObjectID)
		}
	}
	return primitive.NilObjectID
}

func (r *BaseMongoRepository[T]) setEntityID(entity *T, id primitive.ObjectID) {
	if entity == nil {
		return
	}
	val := reflect.ValueOf(entity).Elem()
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanSet() {
			continue
		}
		if matchesIDField(bsonFieldName(typ.Field(i))) && isObjectIDType(field.Type()) {
			if field.Kind() == reflect.Ptr {
				newID := id
				field.Set(reflect.ValueOf(&newID))
			} else {
				field.Set(reflect.ValueOf(id))
			}
			return
		}
	}
}

// bsonFieldName strips options such as ",omitempty" from the bson tag.
func bsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("bson"), ",")
	if name == "" {
		return f.Name
	}
	return name
}

func matchesIDField(name string) bool {
	return name == "_id" || name == "ID"
}

func isObjectIDType(t reflect.Type) bool {
	return t == reflect.TypeOf(primitive.ObjectID{}) ||
		t == reflect.TypeOf(&primitive.ObjectID{})
}
