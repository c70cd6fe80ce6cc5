package store

import (
	"strings"

	"github.com/MKhiriev/backend-mobile/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	membersTable = "members"
	produkTable  = "produk"
)

var (
	memberColumns = []string{"id", "nama", "email", "password"}
	produkColumns = []string{"id", "kode_produk", "nama_produk", "harga"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertMemberQuery(b sq.StatementBuilderType, member models.Member) (string, []any, error) {
	return b.Insert(membersTable).
		Columns("nama", "email", "password").
		Values(member.Nama, member.Email, member.Password).
		Suffix(returning(memberColumns)).
		ToSql()
}

func buildSelectMemberByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(memberColumns...).
		From(membersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildInsertProdukQuery(b sq.StatementBuilderType, produk models.Produk) (string, []any, error) {
	return b.Insert(produkTable).
		Columns("kode_produk", "nama_produk", "harga").
		Values(produk.KodeProduk, produk.NamaProduk, produk.Harga).
		Suffix(returning(produkColumns)).
		ToSql()
}

func buildSelectAllProdukQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(produkColumns...).
		From(produkTable).
		OrderBy("id").
		ToSql()
}

func buildSelectProdukByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(produkColumns...).
		From(produkTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateProdukQuery sets only the non-nil columns of update, in the
// order kode_produk, nama_produk, harga. The id argument always comes last.
func buildUpdateProdukQuery(b sq.StatementBuilderType, id int64, update models.ProdukUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrEmptyUpdate
	}

	query := b.Update(produkTable)
	if update.KodeProduk != nil {
		query = query.Set("kode_produk", *update.KodeProduk)
	}
	if update.NamaProduk != nil {
		query = query.Set("nama_produk", *update.NamaProduk)
	}
	if update.Harga != nil {
		query = query.Set("harga", *update.Harga)
	}

	return query.
		Where(sq.Eq{"id": id}).
		Suffix(returning(produkColumns)).
		ToSql()
}

func buildDeleteProdukQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(produkTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
