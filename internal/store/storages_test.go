package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/backend-mobile/internal/config"
	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStorages opens a migrated SQLite database in a temp directory.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "backend.db"),
	}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "oracle"}, logger.Nop())
	require.True(t, errors.Is(err, ErrUnsupportedDriver))
}

func TestStorages_SQLite_MemberLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	created, err := s.MemberRepository.CreateMember(ctx, models.Member{Nama: "Budi", Email: "budi@mail.com", Password: "hash"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = s.MemberRepository.CreateMember(ctx, models.Member{Nama: "Other", Email: "budi@mail.com", Password: "hash2"})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := s.MemberRepository.FindMemberByEmail(ctx, "budi@mail.com")
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = s.MemberRepository.FindMemberByEmail(ctx, "BUDI@mail.com")
	require.ErrorIs(t, err, ErrMemberNotFound)
}

func TestStorages_SQLite_ProdukLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	repo := s.ProdukRepository

	all, err := repo.FindAllProduk(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	first, err := repo.CreateProduk(ctx, models.Produk{KodeProduk: "P-1", NamaProduk: "Kopi", Harga: 15000})
	require.NoError(t, err)
	second, err := repo.CreateProduk(ctx, models.Produk{KodeProduk: "P-2", NamaProduk: "Teh", Harga: 0})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	all, err = repo.FindAllProduk(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)

	nama := "Kopi Susu"
	updated, err := repo.UpdateProduk(ctx, first.ID, models.ProdukUpdate{NamaProduk: &nama})
	require.NoError(t, err)
	assert.Equal(t, "Kopi Susu", updated.NamaProduk)
	assert.Equal(t, "P-1", updated.KodeProduk)
	assert.Equal(t, int64(15000), updated.Harga)

	_, err = repo.UpdateProduk(ctx, 9999, models.ProdukUpdate{NamaProduk: &nama})
	require.ErrorIs(t, err, ErrProdukNotFound)

	require.NoError(t, repo.DeleteProduk(ctx, first.ID))
	require.ErrorIs(t, repo.DeleteProduk(ctx, first.ID), ErrProdukNotFound)

	_, err = repo.FindProdukByID(ctx, first.ID)
	require.ErrorIs(t, err, ErrProdukNotFound)

	require.NoError(t, s.Ping(ctx))
}
