package envconfig

import "github.com/caarlos0/env/v11"

type sqliteEnv struct {
	Path string `env:"SQLITE_PATH" envDefault:"printtables.db"`
}

type sqlite struct {
	raw sqliteEnv
}

func NewSQLiteConfig() (*sqlite, error) {
	var raw sqliteEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &sqlite{raw: raw}, nil
}

func (cfg *sqlite) Path() string { return cfg.raw.Path }
