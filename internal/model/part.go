package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Part is a reusable printable component.
type Part struct {
	ID   uuid.UUID
	Name Name
}

// NewPart creates a part with a fresh time-ordered identifier.
func NewPart(name Name) (*Part, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("new part id: %w", err)
	}
	return &Part{ID: id, Name: name}, nil
}
