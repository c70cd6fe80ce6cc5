package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/backend-mobile/internal/config"
	"github.com/MKhiriev/backend-mobile/internal/logger"
)

// Storages bundles every repository backed by one database connection.
type Storages struct {
	MemberRepository MemberRepository
	ProdukRepository ProdukRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations when
// enabled and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.ShouldMigrate() {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		log.Info().Str("func", "NewStorages").Str("driver", db.Driver()).Msg("migrations applied")
	}

	return NewStoragesFromDB(db), nil
}

// NewStoragesFromDB wires the repositories onto an already opened database.
func NewStoragesFromDB(db *DB) *Storages {
	return &Storages{
		MemberRepository: NewMemberRepository(db, db.logger),
		ProdukRepository: NewProdukRepository(db, db.logger),
		db:               db,
	}
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrExecutingQuery
	}
	return s.db.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
