package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dimasmith/printtables/internal/validation"
	"github.com/dimasmith/printtables/platform/logger"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

// decodeJSON reads one JSON document from the body into dst. Failures are
// recorded on c under the "body" attribute.
func decodeJSON(w http.ResponseWriter, r *http.Request, c *validation.Collector, object string, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var (
			tooLarge *http.MaxBytesError
			typeErr  *json.UnmarshalTypeError
		)
		if errors.As(err, &tooLarge) {
			c.AddError("body", object+".body.too-large",
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}

		msg := "request body is not valid JSON"
		switch {
		case errors.Is(err, io.EOF):
			msg = "request body is empty"
		case errors.As(err, &typeErr):
			msg = fmt.Sprintf("%s has the wrong type", typeErr.Field)
		}
		c.AddError("body", object+".body.malformed", msg)
		return false
	}
	return true
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request, c *validation.Collector, object string) uuid.UUID {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		c.AddError("id", object+".id.invalid", object+" id must be a uuid")
		return uuid.Nil
	}
	return id
}
