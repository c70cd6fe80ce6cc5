package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/models"
)

// produkRepository is the SQL-backed implementation of [ProdukRepository]
// over the "produk" table.
type produkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProdukRepository constructs a [ProdukRepository] backed by db.
func NewProdukRepository(db *DB, logger *logger.Logger) ProdukRepository {
	logger.Debug().Msg("creating produk repository")
	return &produkRepository{
		db:     db,
		logger: logger,
	}
}

func (r *produkRepository) CreateProduk(ctx context.Context, produk models.Produk) (models.Produk, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProdukQuery(r.db.builder, produk)
	if err != nil {
		log.Err(err).Str("func", "*produkRepository.CreateProduk").Msg("error building query")
		return models.Produk{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanProduk(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*produkRepository.CreateProduk").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error inserting produk")
		return models.Produk{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *produkRepository) FindAllProduk(ctx context.Context) ([]models.Produk, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllProdukQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*produkRepository.FindAllProduk").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*produkRepository.FindAllProduk").Msg("error selecting produk")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.Produk, 0)
	for rows.Next() {
		var p models.Produk
		if err = rows.Scan(&p.ID, &p.KodeProduk, &p.NamaProduk, &p.Harga); err != nil {
			log.Err(err).Str("func", "*produkRepository.FindAllProduk").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, p)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*produkRepository.FindAllProduk").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *produkRepository) FindProdukByID(ctx context.Context, id int64) (models.Produk, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProdukByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*produkRepository.FindProdukByID").Msg("error building query")
		return models.Produk{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanProduk(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Produk{}, ErrProdukNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*produkRepository.FindProdukByID").Msg("error selecting produk")
		return models.Produk{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// UpdateProduk runs a single UPDATE ... RETURNING statement, so a missing
// row shows up as [sql.ErrNoRows] on scan.
func (r *produkRepository) UpdateProduk(ctx context.Context, id int64, update models.ProdukUpdate) (models.Produk, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProdukQuery(r.db.builder, id, update)
	if errors.Is(err, ErrEmptyUpdate) {
		return models.Produk{}, ErrEmptyUpdate
	}
	if err != nil {
		log.Err(err).Str("func", "*produkRepository.UpdateProduk").Msg("error building query")
		return models.Produk{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanProduk(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Produk{}, ErrProdukNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*produkRepository.UpdateProduk").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error updating produk")
		return models.Produk{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *produkRepository) DeleteProduk(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProdukQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*produkRepository.DeleteProduk").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*produkRepository.DeleteProduk").Msg("error deleting produk")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*produkRepository.DeleteProduk").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrProdukNotFound
	}

	return nil
}

func scanProduk(row *sql.Row) (models.Produk, error) {
	var p models.Produk
	err := row.Scan(&p.ID, &p.KodeProduk, &p.NamaProduk, &p.Harga)
	return p, err
}
