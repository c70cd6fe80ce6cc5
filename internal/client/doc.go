// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the one-shot command-line client of the
// backend-mobile API.
//
// Each invocation runs a single command against the server through an
// [adapter.ServerAdapter] and prints the resulting data as indented JSON.
package client
