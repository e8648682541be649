package bootstrap

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger(env *Env) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if env.IsDevelopment() {
		config = zap.NewDevelopmentConfig()
	}

	if env.LogLevel != "" {
		level, err := zapcore.ParseLevel(env.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", env.LogLevel, err)
		}
		config.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
