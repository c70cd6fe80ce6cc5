package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/backend-mobile/internal/app"
	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/internal/service"
	"github.com/MKhiriev/backend-mobile/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createProduk(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProdukRequest
	if err := readRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.ProdukService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("produk_id", created.ID).Msg("produk created")
	writeSuccess(w, r, http.StatusOK, app.MsgProdukDitambahkan, created)
}

func (h *Handler) listProduk(w http.ResponseWriter, r *http.Request) {
	all, err := h.services.ProdukService.FindAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "", all)
}

func (h *Handler) getProduk(w http.ResponseWriter, r *http.Request) {
	id, err := produkIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	found, err := h.services.ProdukService.FindOne(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "", found)
}

func (h *Handler) updateProduk(w http.ResponseWriter, r *http.Request) {
	id, err := produkIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateProdukRequest
	if err = readRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.ProdukService.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("produk_id", id).Msg("produk updated")
	writeSuccess(w, r, http.StatusOK, app.MsgProdukDiupdate, updated)
}

func (h *Handler) deleteProduk(w http.ResponseWriter, r *http.Request) {
	id, err := produkIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ProdukService.Remove(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("produk_id", id).Msg("produk deleted")
	writeSuccess(w, r, http.StatusOK, app.MsgProdukDihapus, nil)
}

func produkIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", service.ErrInvalidProdukID, raw)
	}

	return id, nil
}
