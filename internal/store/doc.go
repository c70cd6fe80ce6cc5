// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence gateway of the application. It owns the
// database connection ([DB]), translates member and produk operations into
// SQL built with squirrel, and maps driver errors of PostgreSQL (pgx) and
// SQLite (mattn/go-sqlite3) to the sentinel errors declared in errors.go.
package store
