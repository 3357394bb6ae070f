package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/dimasmith/printtables/internal/config/env"
)

var cfg *config

type config struct {
	Server   Server
	Logger   Logger
	Storage  Storage
	Postgres Database
	SQLite   SQLite
	Kafka    Kafka
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	storageCfg, err := envconfig.NewStorageConfig()
	if err != nil {
		return fmt.Errorf("%s Storage: %w", op, err)
	}

	// Postgres settings are required only when Postgres is the store.
	var postgresCfg Database
	if storageCfg.Driver() == envconfig.DriverPostgres {
		postgresCfg, err = envconfig.NewPostgresConfig()
		if err != nil {
			return fmt.Errorf("%s Postgres: %w", op, err)
		}
	}

	sqliteCfg, err := envconfig.NewSQLiteConfig()
	if err != nil {
		return fmt.Errorf("%s SQLite: %w", op, err)
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}

	cfg = &config{
		Server:   serverCfg,
		Logger:   loggerCfg,
		Storage:  storageCfg,
		Postgres: postgresCfg,
		SQLite:   sqliteCfg,
		Kafka:    kafkaCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
