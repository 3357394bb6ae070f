package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	// Empty disables event publishing.
	Brokers                     []string `env:"KAFKA_BROKERS" envSeparator:","`
	ProjectBOMReplacedTopicName string   `env:"PROJECT_BOM_REPLACED_TOPIC_NAME" envDefault:"project.bom.replaced"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool                   { return len(cfg.raw.Brokers) > 0 }
func (cfg *kafka) Brokers() []string               { return cfg.raw.Brokers }
func (cfg *kafka) ProjectBOMReplacedTopic() string { return cfg.raw.ProjectBOMReplacedTopicName }

func (cfg *kafka) ProjectBOMReplacedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
