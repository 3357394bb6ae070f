package http

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dimasmith/printtables/internal/model"
)

type InventoryService interface {
	Register(ctx context.Context, name model.Name) (uuid.UUID, error)
	Part(ctx context.Context, id uuid.UUID) (*model.Part, error)
}

type ProjectService interface {
	Register(ctx context.Context, name model.Name) (uuid.UUID, error)
	View(ctx context.Context, id uuid.UUID) (*model.ProjectView, error)
	SetBOM(ctx context.Context, id uuid.UUID, parts []model.ProjectPart) error
}

type handler struct {
	inventory InventoryService
	projects  ProjectService
	validate  *validator.Validate
}

func NewHandler(inventory InventoryService, projects ProjectService) *handler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &handler{
		inventory: inventory,
		projects:  projects,
		validate:  validate,
	}
}

// Routes mounts the v1 API on r.
func (h *handler) Routes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/inventory/parts", func(r chi.Router) {
			r.Post("/", h.CreatePart)
			r.Get("/{id}", h.GetPart)
		})
		r.Route("/projects", func(r chi.Router) {
			r.Post("/", h.CreateProject)
			r.Get("/{id}", h.GetProject)
			r.Put("/{id}/parts", h.SetProjectParts)
		})
	})
}
