package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apiv1 "github.com/dimasmith/printtables/internal/api/v1"
	"github.com/dimasmith/printtables/internal/converter"
	"github.com/dimasmith/printtables/internal/model"
	"github.com/dimasmith/printtables/internal/validation"
)

const objectProject = "project"

func (h *handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	c := validation.NewCollector()

	var req apiv1.CreateProjectRequest
	if !decodeJSON(w, r, c, objectProject, &req) {
		writeError(w, r, c.Errors())
		return
	}

	name := validation.Parse(c, req.Name, model.ParseProjectName)
	if c.HasErrors() {
		writeError(w, r, c.Errors())
		return
	}

	id, err := h.projects.Register(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/v1/projects/"+id.String())
	writeJSON(w, r, http.StatusCreated, apiv1.CreateProjectResponse{ID: id.String()})
}

func (h *handler) GetProject(w http.ResponseWriter, r *http.Request) {
	c := validation.NewCollector()

	id := pathID(r, c, objectProject)
	if c.HasErrors() {
		writeError(w, r, c.Errors())
		return
	}

	view, err := h.projects.View(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ProjectViewToHTTP(view))
}

func (h *handler) SetProjectParts(w http.ResponseWriter, r *http.Request) {
	c := validation.NewCollector()

	id := pathID(r, c, objectProject)

	var req apiv1.SetBOMRequest
	if !decodeJSON(w, r, c, objectProject, &req) {
		writeError(w, r, c.Errors())
		return
	}

	parts := h.parseBOM(c, req.Parts)
	if c.HasErrors() {
		writeError(w, r, c.Errors())
		return
	}

	if err := h.projects.SetBOM(r.Context(), id, parts); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// parseBOM checks every item and records each failure on c. Duplicate part
// ids are rejected here; storage keys on (project, part).
func (h *handler) parseBOM(c *validation.Collector, items []apiv1.BOMItem) []model.ProjectPart {
	if items == nil {
		c.AddError("parts", "project.parts.missing", "parts list is required")
		return nil
	}

	parts := make([]model.ProjectPart, 0, len(items))
	seen := make(map[uuid.UUID]int, len(items))
	for i, item := range items {
		valid := true

		var partID uuid.UUID
		if item.Part != "" {
			var err error
			if partID, err = uuid.Parse(item.Part); err != nil {
				c.AddError(
					fmt.Sprintf("parts[%d].part", i),
					"project.parts.part-invalid",
					"part must be a uuid",
				)
				valid = false
			}
		}

		if err := h.validate.Struct(item); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				c.Add(err)
				continue
			}
			for _, fe := range fieldErrs {
				c.AddError(
					fmt.Sprintf("parts[%d].%s", i, fe.Field()),
					bomItemCode(fe),
					bomItemMessage(fe),
				)
			}
			valid = false
		}

		if !valid {
			continue
		}

		if first, ok := seen[partID]; ok {
			c.AddError(
				fmt.Sprintf("parts[%d].part", i),
				"project.parts.duplicate",
				fmt.Sprintf("part is already listed at parts[%d]", first),
			)
			continue
		}
		seen[partID] = i

		parts = append(parts, model.ProjectPart{PartID: partID, Quantity: uint32(*item.Quantity)})
	}

	return parts
}

func bomItemCode(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "project.parts." + fe.Field() + "-missing"
	case "min", "max":
		return "project.parts." + fe.Field() + "-out-of-range"
	default:
		return "project.parts." + fe.Field() + "-invalid"
	}
}

func bomItemMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min", "max":
		return fe.Field() + " must be between 0 and 4294967295"
	default:
		return fe.Field() + " is invalid"
	}
}
