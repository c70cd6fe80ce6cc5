package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/backend-mobile/internal/config"
	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/models"
	"github.com/jackc/pgerrcode"
)

// newTestDB wraps a sqlmock connection in a postgres-flavoured [DB].
func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, config.DriverPostgres, logger.Nop()), mock
}

func newTestMemberRepo(t *testing.T) (MemberRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewMemberRepository(db, logger.Nop()), mock
}

// ── CreateMember ──

func TestCreateMember_Success(t *testing.T) {
	repo, mock := newTestMemberRepo(t)

	mock.ExpectQuery("INSERT INTO members").
		WithArgs("Budi", "budi@mail.com", "hash").
		WillReturnRows(sqlmock.NewRows(memberColumns).AddRow(int64(1), "Budi", "budi@mail.com", "hash"))

	got, err := repo.CreateMember(context.Background(), models.Member{Nama: "Budi", Email: "budi@mail.com", Password: "hash"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 1 || got.Email != "budi@mail.com" || got.Password != "hash" {
		t.Fatalf("unexpected member: %+v", got)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateMember_DuplicateEmail(t *testing.T) {
	repo, mock := newTestMemberRepo(t)

	mock.ExpectQuery("INSERT INTO members").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateMember(context.Background(), models.Member{Nama: "Budi", Email: "budi@mail.com", Password: "hash"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateMember_DBError(t *testing.T) {
	repo, mock := newTestMemberRepo(t)

	mock.ExpectQuery("INSERT INTO members").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateMember(context.Background(), models.Member{Email: "budi@mail.com"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatal("generic DB error must not be reported as a duplicate")
	}
}

// ── FindMemberByEmail ──

func TestFindMemberByEmail_Success(t *testing.T) {
	repo, mock := newTestMemberRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM members WHERE email = ").
		WithArgs("budi@mail.com").
		WillReturnRows(sqlmock.NewRows(memberColumns).AddRow(int64(5), "Budi", "budi@mail.com", "hash"))

	got, err := repo.FindMemberByEmail(context.Background(), "budi@mail.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 5 || got.Nama != "Budi" {
		t.Fatalf("unexpected member: %+v", got)
	}
}

func TestFindMemberByEmail_NotFound(t *testing.T) {
	repo, mock := newTestMemberRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM members").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindMemberByEmail(context.Background(), "nobody@mail.com")
	if !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestFindMemberByEmail_DBError(t *testing.T) {
	repo, mock := newTestMemberRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM members").
		WillReturnError(errors.New("timeout"))

	_, err := repo.FindMemberByEmail(context.Background(), "budi@mail.com")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
