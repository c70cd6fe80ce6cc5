package store

import (
	"context"

	"github.com/MKhiriev/backend-mobile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MemberRepository persists member accounts.
type MemberRepository interface {
	// CreateMember inserts member and returns it with the generated ID.
	// Returns [ErrEmailAlreadyExists] if the email is already registered.
	CreateMember(ctx context.Context, member models.Member) (models.Member, error)

	// FindMemberByEmail returns the member with exactly this email.
	// Returns [ErrMemberNotFound] if there is none.
	FindMemberByEmail(ctx context.Context, email string) (models.Member, error)
}

// ProdukRepository persists products.
type ProdukRepository interface {
	// CreateProduk inserts produk and returns it with the generated ID.
	CreateProduk(ctx context.Context, produk models.Produk) (models.Produk, error)

	// FindAllProduk returns every product ordered by ID. An empty table
	// yields an empty, non-nil slice.
	FindAllProduk(ctx context.Context) ([]models.Produk, error)

	// FindProdukByID returns the product with the given ID or
	// [ErrProdukNotFound].
	FindProdukByID(ctx context.Context, id int64) (models.Produk, error)

	// UpdateProduk writes the non-nil fields of update and returns the
	// stored product. Returns [ErrProdukNotFound] if the ID does not exist.
	UpdateProduk(ctx context.Context, id int64, update models.ProdukUpdate) (models.Produk, error)

	// DeleteProduk removes the product. Returns [ErrProdukNotFound] if the
	// ID does not exist.
	DeleteProduk(ctx context.Context, id int64) error
}

// ErrorClassificator maps dialect-specific driver errors to an
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
