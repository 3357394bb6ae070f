package apiv1

import "time"

// BOMReplacedRecord is the JSON payload of project.bom.replaced records.
type BOMReplacedRecord struct {
	EventUUID   string          `json:"event_uuid"`
	ProjectUUID string          `json:"project_uuid"`
	Parts       []BOMLineRecord `json:"parts"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

type BOMLineRecord struct {
	PartUUID string `json:"part_uuid"`
	Quantity uint32 `json:"quantity"`
}
