package bootstrap

import (
	"time"

	"github.com/manhva-oppa/oppa-blog/internal/llm"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"go.uber.org/zap"
)

// Application holds the process-wide dependencies shared by every command.
type Application struct {
	Env    *Env
	Mongo  mongo.Client
	Logger *zap.Logger
	Writer *llm.OpenAIClient
}

func App(configFile string) (*Application, error) {
	env, err := NewEnv(configFile)
	if err != nil {
		return nil, err
	}

	logger, err := NewLogger(env)
	if err != nil {
		return nil, err
	}

	client, err := NewMongoDatabase(env, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	if env.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set, blog generation will fail")
	}
	writer := llm.NewOpenAIClient(llm.Config{
		Endpoint: env.OpenAIEndpoint,
		APIKey:   env.OpenAIAPIKey,
		Model:    env.OpenAIModel,
		Timeout:  time.Duration(env.OpenAITimeout) * time.Second,
	}, logger)

	return &Application{
		Env:    env,
		Mongo:  client,
		Logger: logger,
		Writer: writer,
	}, nil
}

func (app *Application) Database() mongo.Database {
	return app.Mongo.Database(app.Env.DBName)
}

func (app *Application) Close() {
	CloseMongoDBConnection(app.Mongo, app.Logger)
	_ = app.Logger.Sync()
}
