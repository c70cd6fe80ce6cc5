package http

import (
	"net/http"

	"github.com/MKhiriev/backend-mobile/internal/app"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "", app.MsgHealthy)
}
