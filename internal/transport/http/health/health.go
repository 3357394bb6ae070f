package health

import (
	"net/http"

	"github.com/dimasmith/printtables/platform/logger"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("OK")); err != nil {
		logger.Error(r.Context(), "health check", logger.ErrorF(err))
	}
}
