package model

import (
	"time"

	"github.com/google/uuid"
)

// BOMReplaced is emitted after a project's BOM was replaced.
type BOMReplaced struct {
	EventID    uuid.UUID
	ProjectID  uuid.UUID
	Parts      []ProjectPart
	OccurredAt time.Time
}
