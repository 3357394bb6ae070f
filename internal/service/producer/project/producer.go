package projproducer

import (
	"context"
	"fmt"

	"github.com/dimasmith/printtables/internal/model"
	"github.com/dimasmith/printtables/platform/kafka"
)

type Converter interface {
	BOMReplacedToPayload(m model.BOMReplaced) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewProjectProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendBOMReplaced(ctx context.Context, event model.BOMReplaced) error {
	payload, err := s.conv.BOMReplacedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter bom_replaced_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(event.ProjectID.String()), payload); err != nil {
		return fmt.Errorf("producer to project.bom.replaced topic error: %w", err)
	}

	return nil
}

type noop struct{}

// NewNoopProducer drops every event. It is used when no brokers are configured.
func NewNoopProducer() *noop { return &noop{} }

func (noop) SendBOMReplaced(context.Context, model.BOMReplaced) error { return nil }
