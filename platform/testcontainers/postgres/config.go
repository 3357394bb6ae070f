package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/dimasmith/printtables/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName string
	Database  string
	Username  string
	Password  string
	Logger    Logger
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: "postgres:17.0-alpine3.20",
		Database:  "printtables",
		Username:  "printtables",
		Password:  "printtables",
		Logger:    logger.L(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
