package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/backend-mobile/internal/app"
	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/internal/utils"
	"github.com/MKhiriev/backend-mobile/models"
)

func (h *Handler) registrasi(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegistrasiRequest
	if err := readRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	member, err := h.services.AuthService.Registrasi(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("member_id", member.ID).Msg("member registered")
	writeSuccess(w, r, http.StatusCreated, "", app.MsgRegistrasiBerhasil)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := readRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("member_id", result.User.ID).Msg("member logged in")
	writeSuccess(w, r, http.StatusOK, "", result)
}

// readRequest decodes the JSON body into dst. An empty body leaves dst at
// its zero value so that validation reports the missing fields.
func readRequest(r *http.Request, dst any) error {
	err := utils.ReadJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return nil
	}

	return fmt.Errorf("%w: %w", errInvalidJSON, err)
}
