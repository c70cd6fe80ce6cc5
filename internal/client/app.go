package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/backend-mobile/internal/adapter"
	"github.com/MKhiriev/backend-mobile/internal/logger"
)

const usage = `usage: client [-s url] [-t token] <command>

commands:
  registrasi <nama> <email> <password>
  login <email> <password>
  produk list
  produk get <id>
  produk create <kode_produk> <nama_produk> <harga>
  produk update <id> [kode_produk=..] [nama_produk=..] [harga=..]
  produk delete <id>
  version
  health`

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: serverAdapter, out: out, logger: logger}
}

// Usage returns the command summary printed on wrong invocations.
func Usage() string {
	return usage
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Int("args", len(rest)).Msg("running command")

	switch command {
	case "registrasi":
		return a.registrasi(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "produk":
		return a.produk(ctx, rest)
	case "version":
		return a.version(ctx)
	case "health":
		return a.health(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error printing result: %w", err)
	}
	return nil
}
