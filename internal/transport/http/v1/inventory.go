package http

import (
	"net/http"

	apiv1 "github.com/dimasmith/printtables/internal/api/v1"
	"github.com/dimasmith/printtables/internal/converter"
	"github.com/dimasmith/printtables/internal/model"
	"github.com/dimasmith/printtables/internal/validation"
)

const objectPart = "part"

func (h *handler) CreatePart(w http.ResponseWriter, r *http.Request) {
	c := validation.NewCollector()

	var req apiv1.CreatePartRequest
	if !decodeJSON(w, r, c, objectPart, &req) {
		writeError(w, r, c.Errors())
		return
	}

	name := validation.Parse(c, req.Name, model.ParsePartName)
	if c.HasErrors() {
		writeError(w, r, c.Errors())
		return
	}

	id, err := h.inventory.Register(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/v1/inventory/parts/"+id.String())
	writeJSON(w, r, http.StatusCreated, apiv1.CreatePartResponse{ID: id.String()})
}

func (h *handler) GetPart(w http.ResponseWriter, r *http.Request) {
	c := validation.NewCollector()

	id := pathID(r, c, objectPart)
	if c.HasErrors() {
		writeError(w, r, c.Errors())
		return
	}

	part, err := h.inventory.Part(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PartToHTTP(part))
}
