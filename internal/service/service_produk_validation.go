package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/backend-mobile/internal/validators"
	"github.com/MKhiriev/backend-mobile/models"
)

// ProdukValidationService checks request bodies and ids before they reach
// the wrapped ProdukService.
type ProdukValidationService struct {
	inner     ProdukService
	validator validators.Validator
}

func NewProdukValidationService() ProdukServiceWrapper {
	return &ProdukValidationService{
		validator: validators.NewProdukValidator(),
	}
}

func (v *ProdukValidationService) Create(ctx context.Context, req models.CreateProdukRequest) (models.Produk, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Produk{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, req)
}

func (v *ProdukValidationService) FindAll(ctx context.Context) ([]models.Produk, error) {
	return v.inner.FindAll(ctx)
}

func (v *ProdukValidationService) FindOne(ctx context.Context, id int64) (models.Produk, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Produk{}, err
	}

	return v.inner.FindOne(ctx, id)
}

func (v *ProdukValidationService) Update(ctx context.Context, id int64, req models.UpdateProdukRequest) (models.Produk, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Produk{}, err
	}

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Produk{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, req)
}

func (v *ProdukValidationService) Remove(ctx context.Context, id int64) error {
	if err := v.validateID(ctx, id); err != nil {
		return err
	}

	return v.inner.Remove(ctx, id)
}

func (v *ProdukValidationService) validateID(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProdukID, err)
	}
	return nil
}

func (v *ProdukValidationService) Wrap(wrapped ProdukService) ProdukService {
	v.inner = wrapped
	return v
}
