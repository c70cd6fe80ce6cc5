package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/backend-mobile/internal/validators"
	"github.com/MKhiriev/backend-mobile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerProdukService struct {
	createFn  func(ctx context.Context, req models.CreateProdukRequest) (models.Produk, error)
	findAllFn func(ctx context.Context) ([]models.Produk, error)
	findOneFn func(ctx context.Context, id int64) (models.Produk, error)
	updateFn  func(ctx context.Context, id int64, req models.UpdateProdukRequest) (models.Produk, error)
	removeFn  func(ctx context.Context, id int64) error
}

func (m *mockInnerProdukService) Create(ctx context.Context, req models.CreateProdukRequest) (models.Produk, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.Produk{}, nil
}
func (m *mockInnerProdukService) FindAll(ctx context.Context) ([]models.Produk, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return []models.Produk{}, nil
}
func (m *mockInnerProdukService) FindOne(ctx context.Context, id int64) (models.Produk, error) {
	if m.findOneFn != nil {
		return m.findOneFn(ctx, id)
	}
	return models.Produk{}, nil
}
func (m *mockInnerProdukService) Update(ctx context.Context, id int64, req models.UpdateProdukRequest) (models.Produk, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return models.Produk{}, nil
}
func (m *mockInnerProdukService) Remove(ctx context.Context, id int64) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, id)
	}
	return nil
}

type mockValidator struct {
	validateFn func(ctx context.Context, i any, fields ...string) error
}

func (m *mockValidator) Validate(ctx context.Context, i any, fields ...string) error {
	if m.validateFn != nil {
		return m.validateFn(ctx, i, fields...)
	}
	return nil
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestProdukValidationService_Create_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateProdukRequest
	}{
		{name: "no kode_produk", req: models.CreateProdukRequest{NamaProduk: "Kopi", Harga: models.HargaFromInt(1)}},
		{name: "no nama_produk", req: models.CreateProdukRequest{KodeProduk: "P-1", Harga: models.HargaFromInt(1)}},
		{name: "no harga", req: models.CreateProdukRequest{KodeProduk: "P-1", NamaProduk: "Kopi"}},
		{name: "blank harga", req: models.CreateProdukRequest{KodeProduk: "P-1", NamaProduk: "Kopi", Harga: models.HargaFromString("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerProdukService{
				createFn: func(ctx context.Context, req models.CreateProdukRequest) (models.Produk, error) {
					t.Fatal("inner Create must not be called")
					return models.Produk{}, nil
				},
			}
			svc := NewProdukValidationService().Wrap(inner)

			_, err := svc.Create(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrMissingRequiredFields)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestProdukValidationService_Create_ZeroHargaIsPresent(t *testing.T) {
	called := false
	inner := &mockInnerProdukService{
		createFn: func(ctx context.Context, req models.CreateProdukRequest) (models.Produk, error) {
			called = true
			return models.Produk{ID: 1}, nil
		},
	}
	svc := NewProdukValidationService().Wrap(inner)

	_, err := svc.Create(context.Background(), models.CreateProdukRequest{KodeProduk: "P-1", NamaProduk: "Kopi", Harga: models.HargaFromInt(0)})
	require.NoError(t, err)
	assert.True(t, called)
}

// ─────────────────────────────────────────────
// ID handling
// ─────────────────────────────────────────────

func TestProdukValidationService_NonPositiveID(t *testing.T) {
	svc := NewProdukValidationService().Wrap(&mockInnerProdukService{
		findOneFn: func(ctx context.Context, id int64) (models.Produk, error) {
			t.Fatal("inner FindOne must not be called")
			return models.Produk{}, nil
		},
	})

	_, err := svc.FindOne(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidProdukID)
	require.ErrorIs(t, err, validators.ErrInvalidID)

	err = svc.Remove(context.Background(), -1)
	require.ErrorIs(t, err, ErrInvalidProdukID)

	_, err = svc.Update(context.Background(), -1, models.UpdateProdukRequest{NamaProduk: strPtr("Teh")})
	require.ErrorIs(t, err, ErrInvalidProdukID)
}

func TestProdukValidationService_Update_NoFields(t *testing.T) {
	svc := NewProdukValidationService().Wrap(&mockInnerProdukService{})

	_, err := svc.Update(context.Background(), 1, models.UpdateProdukRequest{})
	require.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestProdukValidationService_UsesInjectedValidator(t *testing.T) {
	var seen []any
	v := &ProdukValidationService{
		validator: &mockValidator{validateFn: func(ctx context.Context, i any, fields ...string) error {
			seen = append(seen, i)
			return nil
		}},
	}
	svc := v.Wrap(&mockInnerProdukService{})

	_, err := svc.Update(context.Background(), 2, models.UpdateProdukRequest{NamaProduk: strPtr("Teh")})
	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Equal(t, int64(2), seen[0])
}
