package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/internal/store"
	"github.com/MKhiriev/backend-mobile/models"
)

// produkService implements ProdukService on top of a ProdukRepository.
// It coerces the flexible harga input to an integer and translates store
// errors to service errors.
type produkService struct {
	produkRepository store.ProdukRepository

	logger *logger.Logger
}

func NewProdukService(produkRepository store.ProdukRepository, logger *logger.Logger) ProdukService {
	return &produkService{
		produkRepository: produkRepository,
		logger:           logger,
	}
}

func (p *produkService) Create(ctx context.Context, req models.CreateProdukRequest) (models.Produk, error) {
	log := logger.FromContext(ctx)

	harga, err := coerceHarga(req.Harga)
	if err != nil {
		log.Info().Any("harga", req.Harga).Msg("invalid harga")
		return models.Produk{}, err
	}

	created, err := p.produkRepository.CreateProduk(ctx, models.Produk{
		KodeProduk: req.KodeProduk,
		NamaProduk: req.NamaProduk,
		Harga:      harga,
	})
	if err != nil {
		log.Err(err).Str("kode_produk", req.KodeProduk).Msg("produk creation ended with error")
		return models.Produk{}, fmt.Errorf("produk creation ended with error: %w", err)
	}

	return created, nil
}

func (p *produkService) FindAll(ctx context.Context) ([]models.Produk, error) {
	all, err := p.produkRepository.FindAllProduk(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing produk ended with error")
		return nil, fmt.Errorf("listing produk ended with error: %w", err)
	}

	if all == nil {
		all = []models.Produk{}
	}

	return all, nil
}

func (p *produkService) FindOne(ctx context.Context, id int64) (models.Produk, error) {
	found, err := p.produkRepository.FindProdukByID(ctx, id)
	if err != nil {
		return models.Produk{}, p.mapStoreError(ctx, err, id, "finding produk")
	}

	return found, nil
}

// Update writes only the supplied fields. A supplied harga goes through the
// same coercion as on create.
func (p *produkService) Update(ctx context.Context, id int64, req models.UpdateProdukRequest) (models.Produk, error) {
	update := models.ProdukUpdate{
		KodeProduk: req.KodeProduk,
		NamaProduk: req.NamaProduk,
	}

	if req.Harga != nil {
		harga, err := coerceHarga(req.Harga)
		if err != nil {
			logger.FromContext(ctx).Info().Any("harga", req.Harga).Msg("invalid harga")
			return models.Produk{}, err
		}
		update.Harga = &harga
	}

	updated, err := p.produkRepository.UpdateProduk(ctx, id, update)
	if err != nil {
		return models.Produk{}, p.mapStoreError(ctx, err, id, "updating produk")
	}

	return updated, nil
}

func (p *produkService) Remove(ctx context.Context, id int64) error {
	if err := p.produkRepository.DeleteProduk(ctx, id); err != nil {
		return p.mapStoreError(ctx, err, id, "deleting produk")
	}

	return nil
}

func (p *produkService) mapStoreError(ctx context.Context, err error, id int64, action string) error {
	log := logger.FromContext(ctx)

	switch {
	case errors.Is(err, store.ErrProdukNotFound):
		log.Info().Int64("id", id).Msg("produk not found")
		return ErrProdukNotFound
	case errors.Is(err, store.ErrEmptyUpdate):
		return ErrNoFieldsToUpdate
	default:
		log.Err(err).Int64("id", id).Msgf("%s ended with error", action)
		return fmt.Errorf("%s ended with error: %w", action, err)
	}
}

// coerceHarga converts the client-supplied price to a non-negative integer.
func coerceHarga(h *models.Harga) (int64, error) {
	if h == nil {
		return 0, ErrMissingRequiredFields
	}

	v, err := h.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidHarga, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative value %d", ErrInvalidHarga, v)
	}

	return v, nil
}
