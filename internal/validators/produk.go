package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/backend-mobile/models"
)

// Field name constants for product requests.
const (
	FieldID         = "id"
	FieldKodeProduk = "kode_produk"
	FieldNamaProduk = "nama_produk"
	FieldHarga      = "harga"
)

// ProdukValidator checks product create and update requests and product ids.
// Harga is only checked for presence here; coercion belongs to the service.
type ProdukValidator struct {
}

func NewProdukValidator() Validator {
	return &ProdukValidator{}
}

func (v *ProdukValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateProdukRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateProdukRequest:
		return v.validateCreate(*value, fields...)

	case models.UpdateProdukRequest:
		return v.validateUpdate(value)
	case *models.UpdateProdukRequest:
		return v.validateUpdate(*value)

	case int64:
		if value <= 0 {
			return ErrInvalidID
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *ProdukValidator) validateCreate(req models.CreateProdukRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKodeProduk, FieldNamaProduk, FieldHarga}
	}

	for _, f := range fields {
		switch f {
		case FieldKodeProduk:
			if strings.TrimSpace(req.KodeProduk) == "" {
				return ErrMissingRequiredFields
			}
		case FieldNamaProduk:
			if strings.TrimSpace(req.NamaProduk) == "" {
				return ErrMissingRequiredFields
			}
		case FieldHarga:
			if req.Harga == nil || req.Harga.IsBlank() {
				return ErrMissingRequiredFields
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *ProdukValidator) validateUpdate(req models.UpdateProdukRequest) error {
	if req.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if req.KodeProduk != nil && strings.TrimSpace(*req.KodeProduk) == "" {
		return ErrEmptyKodeProduk
	}

	if req.NamaProduk != nil && strings.TrimSpace(*req.NamaProduk) == "" {
		return ErrEmptyNamaProduk
	}

	return nil
}
