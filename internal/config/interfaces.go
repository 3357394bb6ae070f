package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
	MetricsEnabled() bool
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Storage interface {
	Driver() string
}

type Database interface {
	DSN() string
}

type SQLite interface {
	Path() string
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	ProjectBOMReplacedTopic() string
	ProjectBOMReplacedProducerConfig() *sarama.Config
}
