// Package memory keeps parts and projects in process memory. It backs tests
// and STORAGE_DRIVER=memory; everything is lost on restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/dimasmith/printtables/internal/model"
)

type repository struct {
	mu       sync.RWMutex
	parts    map[uuid.UUID]model.Part
	projects map[uuid.UUID]model.Project
}

func NewRepository() *repository {
	return &repository{
		parts:    make(map[uuid.UUID]model.Part),
		projects: make(map[uuid.UUID]model.Project),
	}
}

func (r *repository) Insert(_ context.Context, part *model.Part) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.parts[part.ID]; ok {
		return fmt.Errorf("part %s already exists", part.ID)
	}
	r.parts[part.ID] = *part
	return nil
}

func (r *repository) PartByID(_ context.Context, id uuid.UUID) (*model.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	part, ok := r.parts[id]
	if !ok {
		return nil, nil
	}
	return &part, nil
}

func (r *repository) Create(_ context.Context, p *model.Project) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[p.ID]; ok {
		return uuid.Nil, fmt.Errorf("project %s already exists", p.ID)
	}
	if err := checkUniqueParts(p.Parts); err != nil {
		return uuid.Nil, err
	}
	r.projects[p.ID] = cloneProject(p)
	return p.ID, nil
}

func (r *repository) ProjectByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	out := cloneProject(&p)
	return &out, nil
}

// Update replaces the stored project under the write lock, so readers see
// either the old BOM or the new one.
func (r *repository) Update(_ context.Context, p *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.projects[p.ID]
	if !ok {
		return model.ErrProjectNotFound
	}
	if err := checkUniqueParts(p.Parts); err != nil {
		return err
	}

	updated := cloneProject(p)
	updated.CreatedAt = stored.CreatedAt
	r.projects[p.ID] = updated
	return nil
}

func (r *repository) ViewByID(_ context.Context, id uuid.UUID) (*model.ProjectView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}

	return &model.ProjectView{
		ID:   p.ID,
		Name: p.Name.String(),
		Parts: lo.Map(p.Parts, func(pp model.ProjectPart, _ int) model.ProjectPartView {
			// Unknown parts resolve to an empty name.
			part := r.parts[pp.PartID]
			return model.ProjectPartView{
				PartID:   pp.PartID,
				Name:     part.Name.String(),
				Quantity: pp.Quantity,
			}
		}),
	}, nil
}

// checkUniqueParts mirrors the (project_id, part_id) key of the SQL stores.
func checkUniqueParts(parts []model.ProjectPart) error {
	ids := lo.Map(parts, func(pp model.ProjectPart, _ int) uuid.UUID { return pp.PartID })
	if dup := lo.FindDuplicates(ids); len(dup) > 0 {
		return fmt.Errorf("duplicate bom entry for part %s", dup[0])
	}
	return nil
}

func cloneProject(p *model.Project) model.Project {
	out := *p
	out.Parts = append(make([]model.ProjectPart, 0, len(p.Parts)), p.Parts...)
	return out
}
