package http

import (
	"errors"
	"net/http"

	apiv1 "github.com/dimasmith/printtables/internal/api/v1"
	"github.com/dimasmith/printtables/internal/converter"
	"github.com/dimasmith/printtables/internal/model"
)

const (
	codeNotFound      = "not_found"
	codeInternalError = "internal_error"
)

// writeError maps err to a response. Internal details never reach the client;
// services log storage failures where they happen.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs model.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, r, http.StatusBadRequest, converter.ValidationErrorsToHTTP(verrs)) // 400
	case errors.Is(err, model.ErrPartNotFound):
		writeJSON(w, r, http.StatusNotFound, apiv1.ErrorResponse{ // 404
			Code:    codeNotFound,
			Message: "part not found",
		})
	case errors.Is(err, model.ErrProjectNotFound):
		writeJSON(w, r, http.StatusNotFound, apiv1.ErrorResponse{ // 404
			Code:    codeNotFound,
			Message: "project not found",
		})
	default:
		writeJSON(w, r, http.StatusInternalServerError, apiv1.ErrorResponse{ // 500
			Code:    codeInternalError,
			Message: "internal server error",
		})
	}
}
