package converter

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	apiv1 "github.com/dimasmith/printtables/internal/api/v1"
	"github.com/dimasmith/printtables/internal/model"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) BOMReplacedToPayload(m model.BOMReplaced) ([]byte, error) {
	rec := apiv1.BOMReplacedRecord{
		EventUUID:   m.EventID.String(),
		ProjectUUID: m.ProjectID.String(),
		Parts: lo.Map(m.Parts, func(pp model.ProjectPart, _ int) apiv1.BOMLineRecord {
			return apiv1.BOMLineRecord{PartUUID: pp.PartID.String(), Quantity: pp.Quantity}
		}),
		OccurredAt: m.OccurredAt,
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bom replaced record: %w", err)
	}

	return payload, nil
}
