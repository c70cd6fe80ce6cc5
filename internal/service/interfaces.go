package service

import (
	"context"

	"github.com/MKhiriev/backend-mobile/models"
)

// AuthService registers members, checks their credentials and issues or
// verifies their tokens.
type AuthService interface {
	Registrasi(ctx context.Context, req models.RegistrasiRequest) (models.Member, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	CreateToken(ctx context.Context, member models.Member) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProdukService manages the product catalogue.
type ProdukService interface {
	Create(ctx context.Context, req models.CreateProdukRequest) (models.Produk, error)
	FindAll(ctx context.Context) ([]models.Produk, error)
	FindOne(ctx context.Context, id int64) (models.Produk, error)
	Update(ctx context.Context, id int64, req models.UpdateProdukRequest) (models.Produk, error)
	Remove(ctx context.Context, id int64) error
}

// AppInfoService exposes the version and build metadata of the server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService reports whether the backing store is reachable.
type HealthService interface {
	Check(ctx context.Context) error
}

// Pinger is anything that can check its connection, e.g. [store.Storages].
type Pinger interface {
	Ping(ctx context.Context) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// ProdukServiceWrapper defines middleware composition for ProdukService.
type ProdukServiceWrapper interface {
	Wrap(ProdukService) ProdukService
}
