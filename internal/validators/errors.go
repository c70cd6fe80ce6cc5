package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyNama             = errors.New("nama should not be empty")
	ErrEmptyEmail            = errors.New("email should not be empty")
	ErrInvalidEmail          = errors.New("email must be an email")
	ErrEmptyPassword         = errors.New("password should not be empty")
	ErrPasswordTooShort      = errors.New("password must be longer than or equal to 6 characters")
	ErrPasswordTooLong       = errors.New("password must be at most 72 bytes long")
	ErrMissingRequiredFields = errors.New("Missing required fields")
	ErrEmptyKodeProduk       = errors.New("kode_produk should not be empty")
	ErrEmptyNamaProduk       = errors.New("nama_produk should not be empty")
	ErrNoFieldsToUpdate      = errors.New("at least one field must be provided for update")
	ErrInvalidID             = errors.New("id must be a positive integer")
)
