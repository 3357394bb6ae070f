package producer

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/dimasmith/printtables/platform/kafka"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type producer struct {
	syncProducer sarama.SyncProducer
	topic        string
	headers      []sarama.RecordHeader
	logger       Logger
}

func NewProducer(
	syncProducer sarama.SyncProducer,
	topic string,
	logger Logger,
	headers ...kafka.Header,
) *producer {
	recordHeaders := make([]sarama.RecordHeader, 0, len(headers))
	for _, h := range headers {
		recordHeaders = append(recordHeaders, sarama.RecordHeader{
			Key:   []byte(h.Key),
			Value: []byte(h.Value),
		})
	}

	return &producer{
		syncProducer: syncProducer,
		topic:        topic,
		headers:      recordHeaders,
		logger:       logger,
	}
}

func (p *producer) Send(ctx context.Context, key, value []byte) error {
	partition, offset, err := p.syncProducer.SendMessage(&sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.ByteEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: p.headers,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to send message",
			zap.String("topic", p.topic),
			zap.Error(err),
		)
		return err
	}

	p.logger.Info(ctx, "message sent",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.Int("value_size", len(value)),
	)

	return nil
}
