package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type storageEnv struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
}

type storage struct {
	raw storageEnv
}

func NewStorageConfig() (*storage, error) {
	var raw storageEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.Driver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q: want %s, %s or %s",
			raw.Driver, DriverPostgres, DriverSQLite, DriverMemory)
	}

	return &storage{raw: raw}, nil
}

func (cfg *storage) Driver() string { return cfg.raw.Driver }
