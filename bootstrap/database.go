package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/manhva-oppa/oppa-blog/mongo"
	"go.uber.org/zap"
)

func NewMongoDatabase(env *Env, logger *zap.Logger) (mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(env.DBURI)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info("connected to mongo", zap.String("database", env.DBName))
	return client, nil
}

func CloseMongoDBConnection(client mongo.Client, logger *zap.Logger) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("failed to close mongo connection", zap.Error(err))
		return
	}
	logger.Info("connection to mongo closed")
}
