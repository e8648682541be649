package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ============== Interfaces ==============

type Database interface {
	Collection(string) Collection
	Client() Client
}

type Collection interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) SingleResult
	InsertOne(context.Context, interface{}) (interface{}, error)
	DeleteOne(context.Context, interface{}) (int64, error)
	DeleteMany(context.Context, interface{}) (int64, error)
	Find(context.Context, interface{}, ...*options.FindOptions) (Cursor, error)
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
	Aggregate(context.Context, interface{}) (Cursor, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	Watch(context.Context, interface{}, ...*options.ChangeStreamOptions) (ChangeStream, error)
	Indexes() IndexView
}

type SingleResult interface {
	Decode(interface{}) error
}

type Cursor interface {
	Close(context.Context) error
	Next(context.Context) bool
	Decode(interface{}) error
	All(context.Context, interface{}) error
	Err() error
}

// ChangeStream is the subset of *mongo.ChangeStream the watchers need.
type ChangeStream interface {
	Next(context.Context) bool
	Decode(interface{}) error
	Err() error
	Close(context.Context) error
}

type Client interface {
	Database(string) Database
	Connect(context.Context) error
	Disconnect(context.Context) error
	Ping(context.Context) error
}

type IndexView interface {
	CreateOne(ctx context.Context, model mongo.IndexModel) (string, error)
	ListSpecifications(ctx context.Context) ([]*mongo.IndexSpecification, error)
}

// ============== Driver adapters ==============
type mongoClient struct{ cl *mongo.Client }
type mongoDatabase struct{ db *mongo.Database }
type mongoCollection struct{ coll *mongo.Collection }
type mongoSingleResult struct{ sr *mongo.SingleResult }
type mongoCursor struct{ mc *mongo.Cursor }
type mongoIndexView struct{ iv *mongo.IndexView }

func (mc *mongoClient) Ping(ctx context.Context) error {
	return mc.cl.Ping(ctx, readpref.Primary())
}

func (mc *mongoClient) Database(dbName string) Database {
	return &mongoDatabase{db: mc.cl.Database(dbName)}
}

func (mc *mongoClient) Connect(ctx context.Context) error {
	return mc.cl.Connect(ctx)
}

func (mc *mongoClient) Disconnect(ctx context.Context) error {
	return mc.cl.Disconnect(ctx)
}

func (md *mongoDatabase) Collection(colName string) Collection {
	return &mongoCollection{coll: md.db.Collection(colName)}
}

func (md *mongoDatabase) Client() Client {
	return &mongoClient{cl: md.db.Client()}
}

func (mc *mongoCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) SingleResult {
	return &mongoSingleResult{sr: mc.coll.FindOne(ctx, filter, opts...)}
}

func (mc *mongoCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return mc.coll.UpdateOne(ctx, filter, update, opts...)
}

func (mc *mongoCollection) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	res, err := mc.coll.InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func (mc *mongoCollection) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	res, err := mc.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (mc *mongoCollection) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	res, err := mc.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (mc *mongoCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error) {
	findResult, err := mc.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoCursor{mc: findResult}, nil
}

func (mc *mongoCollection) Aggregate(ctx context.Context, pipeline interface{}) (Cursor, error) {
	aggregateResult, err := mc.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return &mongoCursor{mc: aggregateResult}, nil
}

func (mc *mongoCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return mc.coll.CountDocuments(ctx, filter, opts...)
}

func (mc *mongoCollection) Watch(ctx context.Context, pipeline interface{}, opts ...*options.ChangeStreamOptions) (ChangeStream, error) {
	stream, err := mc.coll.Watch(ctx, pipeline, opts...)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

func (mc *mongoCollection) Indexes() IndexView {
	indexView := mc.coll.Indexes()
	return &mongoIndexView{iv: &indexView}
}

func (sr *mongoSingleResult) Decode(v interface{}) error {
	return sr.sr.Decode(v)
}

func (mr *mongoCursor) Close(ctx context.Context) error {
	return mr.mc.Close(ctx)
}

func (mr *mongoCursor) Next(ctx context.Context) bool {
	return mr.mc.Next(ctx)
}

func (mr *mongoCursor) Decode(v interface{}) error {
	return mr.mc.Decode(v)
}

func (mr *mongoCursor) All(ctx context.Context, result interface{}) error {
	return mr.mc.All(ctx, result)
}

func (mr *mongoCursor) Err() error {
	return mr.mc.Err()
}

func (miv *mongoIndexView) CreateOne(ctx context.Context, model mongo.IndexModel) (string, error) {
	return miv.iv.CreateOne(ctx, model)
}

func (miv *mongoIndexView) ListSpecifications(ctx context.Context) ([]*mongo.IndexSpecification, error) {
	return miv.iv.ListSpecifications(ctx)
}

// ============== Client construction ==============

func NewClient(connection string) (Client, error) {
	time.Local = time.UTC
	c, err := mongo.NewClient(options.Client().ApplyURI(connection))
	return &mongoClient{cl: c}, err
}
