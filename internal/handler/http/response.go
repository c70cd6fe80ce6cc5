package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/internal/utils"
	"github.com/MKhiriev/backend-mobile/models"
)

// writeSuccess writes a successful envelope with the given status.
func writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	resp := models.Response{
		Code:    status,
		Status:  true,
		Message: message,
		Data:    data,
	}

	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError maps err to a status and a public message and writes a failure
// envelope. Client errors are logged at warn level, server errors at error
// level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	resp := models.Response{
		Code:    status,
		Status:  false,
		Message: messageFromError(err, status),
	}

	if _, werr := utils.WriteJSON(w, resp, status); werr != nil {
		log.Err(werr).Msg("error writing response")
	}
}

// notFound answers unknown routes with the failure envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	resp := models.Response{
		Code:    http.StatusNotFound,
		Status:  false,
		Message: fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusNotFound); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
