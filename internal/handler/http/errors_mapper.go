package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/backend-mobile/internal/app"
	"github.com/MKhiriev/backend-mobile/internal/service"
	"github.com/MKhiriev/backend-mobile/internal/store"
	"github.com/MKhiriev/backend-mobile/internal/validators"
)

var errorStatusMap = map[error]int{
	errInvalidJSON: http.StatusBadRequest,
	errInvalidGzip: http.StatusBadRequest,

	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrMissingRequiredFields: http.StatusBadRequest,
	service.ErrNoFieldsToUpdate:      http.StatusBadRequest,
	service.ErrInvalidHarga:          http.StatusBadRequest,
	service.ErrInvalidProdukID:       http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrInvalidToken:       http.StatusUnauthorized,

	service.ErrProdukNotFound: http.StatusNotFound,

	service.ErrEmailAlreadyRegistered: http.StatusConflict,

	service.ErrStoreUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// publicErrors lists, most specific first, the errors whose text may be
// shown to clients. The first match in the chain wins.
var publicErrors = []error{
	errInvalidJSON,
	errInvalidGzip,

	validators.ErrEmptyNama,
	validators.ErrEmptyEmail,
	validators.ErrInvalidEmail,
	validators.ErrEmptyPassword,
	validators.ErrPasswordTooShort,
	validators.ErrPasswordTooLong,
	validators.ErrMissingRequiredFields,
	validators.ErrEmptyKodeProduk,
	validators.ErrEmptyNamaProduk,
	validators.ErrNoFieldsToUpdate,

	service.ErrInvalidHarga,
	service.ErrInvalidProdukID,
	service.ErrInvalidCredentials,
	service.ErrInvalidToken,
	service.ErrProdukNotFound,
	service.ErrEmailAlreadyRegistered,
	service.ErrInvalidDataProvided,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err. Server-side
// failures always get a generic message.
func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		if status == http.StatusInternalServerError {
			return app.MsgInternalServerError
		}
		return http.StatusText(status)
	}

	for _, target := range publicErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return http.StatusText(status)
}
