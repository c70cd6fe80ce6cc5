// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the backend-mobile HTTP API on behalf of the
// command-line client.
//
// [ServerAdapter] hides the transport. Non-2xx responses are mapped by
// mapHTTPError to the sentinels in errors.go, wrapped with the message the
// server put in its envelope, so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/backend-mobile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client-side view of the API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every later request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none has been set.
	Token() string

	// Registrasi creates a member account.
	Registrasi(ctx context.Context, req models.RegistrasiRequest) error

	// Login checks the credentials and, on success, stores the returned
	// token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	CreateProduk(ctx context.Context, req models.CreateProdukRequest) (models.Produk, error)
	ListProduk(ctx context.Context) ([]models.Produk, error)
	GetProduk(ctx context.Context, id int64) (models.Produk, error)
	UpdateProduk(ctx context.Context, id int64, req models.UpdateProdukRequest) (models.Produk, error)
	DeleteProduk(ctx context.Context, id int64) error

	// Version returns the plain-text server version.
	Version(ctx context.Context) (string, error)

	// Health reports whether the server can reach its store.
	Health(ctx context.Context) error
}
