package model

import "github.com/google/uuid"

// ProjectView is the read model of a project: its BOM with part names resolved.
// It is assembled on every read and never stored.
type ProjectView struct {
	ID    uuid.UUID
	Name  string
	Parts []ProjectPartView
}

type ProjectPartView struct {
	PartID uuid.UUID
	// Empty when the BOM references a part that does not exist.
	Name     string
	Quantity uint32
}
