package model

import (
	"strings"
)

const (
	NameMaxBytes = 200

	nameAttribute = "name"

	objectPart    = "part"
	objectProject = "project"
)

// Name is a trimmed, non-empty display name of at most NameMaxBytes bytes.
// The zero value is not a valid name; build one with a Parse function.
type Name struct {
	value string
}

func ParsePartName(raw string) (Name, error) { return parseName(objectPart, raw) }

func ParseProjectName(raw string) (Name, error) { return parseName(objectProject, raw) }

func parseName(object, raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, NewValidationError(
			nameAttribute,
			object+".name.too-short",
			object+" name is too short",
		)
	}
	if len(trimmed) > NameMaxBytes {
		return Name{}, NewValidationError(
			nameAttribute,
			object+".name.too-long",
			object+" name is too long",
		)
	}
	return Name{value: trimmed}, nil
}

// RestoreName rebuilds a Name read back from storage. Only repositories call it.
func RestoreName(stored string) Name { return Name{value: stored} }

func (n Name) String() string { return n.value }
