package envconfig

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

type postgresEnv struct {
	Host     string `env:"POSTGRES_HOST,required,notEmpty"`
	Port     int    `env:"POSTGRES_PORT,required,notEmpty"`
	User     string `env:"POSTGRES_USER,required,notEmpty"`
	Password string `env:"POSTGRES_PASSWORD,required,notEmpty"`
	DBName   string `env:"POSTGRES_DB,required,notEmpty"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

type postgres struct {
	raw postgresEnv
}

func NewPostgresConfig() (*postgres, error) {
	var raw postgresEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &postgres{raw: raw}, nil
}

func (cfg *postgres) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.raw.User, cfg.raw.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.raw.Host, cfg.raw.Port),
		Path:     "/" + cfg.raw.DBName,
		RawQuery: url.Values{"sslmode": {cfg.raw.SSLMode}}.Encode(),
	}
	return u.String()
}
