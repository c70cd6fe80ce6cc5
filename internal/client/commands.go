package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/backend-mobile/internal/app"
	"github.com/MKhiriev/backend-mobile/models"
)

func (a *App) registrasi(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: registrasi <nama> <email> <password>", ErrUsage)
	}

	req := models.RegistrasiRequest{Nama: args[0], Email: args[1], Password: args[2]}
	if err := a.adapter.Registrasi(ctx, req); err != nil {
		return err
	}

	return a.print(app.MsgRegistrasiBerhasil)
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: login <email> <password>", ErrUsage)
	}

	result, err := a.adapter.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}

	return a.print(result)
}

func (a *App) produk(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: produk <list|get|create|update|delete>", ErrUsage)
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		all, err := a.adapter.ListProduk(ctx)
		if err != nil {
			return err
		}
		return a.print(all)

	case "get":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		found, err := a.adapter.GetProduk(ctx, id)
		if err != nil {
			return err
		}
		return a.print(found)

	case "create":
		if len(rest) != 3 {
			return fmt.Errorf("%w: produk create <kode_produk> <nama_produk> <harga>", ErrUsage)
		}
		created, err := a.adapter.CreateProduk(ctx, models.CreateProdukRequest{
			KodeProduk: rest[0],
			NamaProduk: rest[1],
			Harga:      models.HargaFromString(rest[2]),
		})
		if err != nil {
			return err
		}
		return a.print(created)

	case "update":
		if len(rest) < 2 {
			return fmt.Errorf("%w: produk update <id> field=value...", ErrUsage)
		}
		id, err := parseID(rest[:1])
		if err != nil {
			return err
		}
		req, err := parseUpdate(rest[1:])
		if err != nil {
			return err
		}
		updated, err := a.adapter.UpdateProduk(ctx, id, req)
		if err != nil {
			return err
		}
		return a.print(updated)

	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if err = a.adapter.DeleteProduk(ctx, id); err != nil {
			return err
		}
		return a.print(app.MsgProdukDihapus)

	default:
		return fmt.Errorf("%w: produk %q", ErrUnknownCommand, sub)
	}
}

func (a *App) version(ctx context.Context) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}
	return a.print(v)
}

func (a *App) health(ctx context.Context) error {
	if err := a.adapter.Health(ctx); err != nil {
		return err
	}
	return a.print(app.MsgHealthy)
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one id", ErrUsage)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not a number", ErrUsage, args[0])
	}
	return id, nil
}

// parseUpdate turns field=value pairs into a partial update. Harga is sent
// as a string and coerced by the server.
func parseUpdate(pairs []string) (models.UpdateProdukRequest, error) {
	var req models.UpdateProdukRequest
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return req, fmt.Errorf("%w: %q is not field=value", ErrUsage, pair)
		}

		switch field {
		case "kode_produk":
			req.KodeProduk = &value
		case "nama_produk":
			req.NamaProduk = &value
		case "harga":
			req.Harga = models.HargaFromString(value)
		default:
			return req, fmt.Errorf("%w: unknown field %q", ErrUsage, field)
		}
	}
	return req, nil
}
