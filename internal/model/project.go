package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProjectPart is one BOM line: how many copies of a part a project needs.
type ProjectPart struct {
	PartID   uuid.UUID
	Quantity uint32
}

// Project is a named collection of parts with a creation timestamp.
type Project struct {
	ID        uuid.UUID
	Name      Name
	CreatedAt time.Time
	// Bill of materials in submission order.
	Parts []ProjectPart
}

// NewProject creates a project with an empty BOM.
func NewProject(name Name, now time.Time) (*Project, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("new project id: %w", err)
	}
	return &Project{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		Parts:     []ProjectPart{},
	}, nil
}

// DefineParts replaces the whole BOM with parts.
func (p *Project) DefineParts(parts []ProjectPart) {
	p.Parts = append(make([]ProjectPart, 0, len(parts)), parts...)
}
