package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dimasmith/printtables/internal/model"
)

func partFromRow(r partRow) (*model.Part, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("part id %q: %w", r.ID, err)
	}
	return &model.Part{ID: id, Name: model.RestoreName(r.Name)}, nil
}

func projectFromRow(r projectRow) (*model.Project, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("project id %q: %w", r.ID, err)
	}
	return &model.Project{
		ID:        id,
		Name:      model.RestoreName(r.Name),
		CreatedAt: time.UnixMilli(r.CreatedAt).UTC(),
		Parts:     []model.ProjectPart{},
	}, nil
}

func projectPartFromRow(r bomRow) (model.ProjectPart, error) {
	id, err := uuid.Parse(r.PartID)
	if err != nil {
		return model.ProjectPart{}, fmt.Errorf("bom part id %q: %w", r.PartID, err)
	}
	return model.ProjectPart{PartID: id, Quantity: uint32(r.Quantity)}, nil
}

func partViewFromRow(r bomRow) (model.ProjectPartView, error) {
	part, err := projectPartFromRow(r)
	if err != nil {
		return model.ProjectPartView{}, err
	}
	return model.ProjectPartView{PartID: part.PartID, Name: r.Name, Quantity: part.Quantity}, nil
}
