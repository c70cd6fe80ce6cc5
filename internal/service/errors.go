package service

import (
	"errors"

	"github.com/MKhiriev/backend-mobile/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrMissingRequiredFields and ErrNoFieldsToUpdate are raised by the
	// validators and re-exported for callers of the service layer.
	ErrMissingRequiredFields = validators.ErrMissingRequiredFields
	ErrNoFieldsToUpdate      = validators.ErrNoFieldsToUpdate

	ErrInvalidHarga    = errors.New("Harga harus berupa angka yang valid")
	ErrInvalidProdukID = errors.New("ID produk tidak valid")

	ErrEmailAlreadyRegistered = errors.New("Email sudah terdaftar")
	ErrInvalidCredentials     = errors.New("Email atau password salah")
	ErrProdukNotFound         = errors.New("Produk tidak ditemukan")

	ErrPasswordHashingFailed = errors.New("password hashing failed")
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrInvalidToken          = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStoreUnavailable      = errors.New("store is unavailable")
)
