// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the HTTP
// handlers and the command-line client.
//
// The server writes them into the "message" field of the response envelope;
// the client prints the same wording so both sides read alike.
package app

const (
	// MsgRegistrasiBerhasil accompanies the created member on registration.
	MsgRegistrasiBerhasil = "Registrasi berhasil"

	MsgProdukDitambahkan = "Produk berhasil ditambahkan"
	MsgProdukDiupdate    = "Produk berhasil diupdate"
	MsgProdukDihapus     = "Produk berhasil dihapus"

	// MsgInternalServerError replaces driver and SQL details in 500 replies.
	MsgInternalServerError = "Internal Server Error"

	// MsgHealthy is the body of a passing health check.
	MsgHealthy = "ok"
)
