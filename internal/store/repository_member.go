package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/models"
)

// memberRepository is the SQL-backed implementation of [MemberRepository].
// It handles account creation and lookup against the "members" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type memberRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMemberRepository constructs a [MemberRepository] backed by the provided
// database connection and logger.
func NewMemberRepository(db *DB, logger *logger.Logger) MemberRepository {
	logger.Debug().Msg("creating member repository")
	return &memberRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMember persists a new member and returns it with the generated ID.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *memberRepository) CreateMember(ctx context.Context, member models.Member) (models.Member, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMemberQuery(r.db.builder, member)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.CreateMember").Msg("error building query")
		return models.Member{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Member
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Nama, &created.Email, &created.Password)
	if err != nil {
		classification := r.db.errorClassificator.Classify(err)
		log.Err(err).Str("func", "*memberRepository.CreateMember").
			Stringer("classification", classification).
			Msg("error inserting member")

		if classification == UniqueViolation {
			return models.Member{}, ErrEmailAlreadyExists
		}
		return models.Member{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindMemberByEmail returns the member registered with email.
// The comparison is exact; emails are not normalized.
func (r *memberRepository) FindMemberByEmail(ctx context.Context, email string) (models.Member, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMemberByEmailQuery(r.db.builder, email)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.FindMemberByEmail").Msg("error building query")
		return models.Member{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Member
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.ID, &found.Nama, &found.Email, &found.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Member{}, ErrMemberNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.FindMemberByEmail").Msg("error selecting member")
		return models.Member{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
