// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRouter registers a few static routes without Handler.Init so that no
// services are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/produk", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("list"))
	})
	router.Post("/produk", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Post("/member/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		method      string
		path        string
		wantStatus  int
		wantMessage string
	}{
		{http.MethodGet, "/produk", http.StatusOK, ""},
		{http.MethodPost, "/produk", http.StatusCreated, ""},
		{http.MethodPost, "/member/login", http.StatusOK, ""},

		{http.MethodDelete, "/produk", http.StatusNotFound, "Cannot DELETE /produk"},
		{http.MethodPatch, "/produk", http.StatusNotFound, "Cannot PATCH /produk"},
		{http.MethodGet, "/member/login", http.StatusNotFound, "Cannot GET /member/login"},
		{http.MethodPut, "/member/login", http.StatusNotFound, "Cannot PUT /member/login"},
		{http.MethodGet, "/member/logout", http.StatusNotFound, "Cannot GET /member/logout"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessage == "" {
				return
			}
			env := decodeEnvelope(t, rr)
			assert.False(t, env.Status)
			assert.Equal(t, tt.wantMessage, env.Message)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	rr := httptest.NewRecorder()
	buildRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/produk", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "list", rr.Body.String())
}

func TestCheckHTTPMethod_Never405(t *testing.T) {
	router := buildRouter()

	for _, method := range []string{http.MethodDelete, http.MethodPatch, http.MethodOptions, http.MethodHead} {
		t.Run(method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/produk", nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()

	const n = 50
	done := make(chan int, n)
	for i := range n {
		go func() {
			method := http.MethodGet
			if i%2 == 1 {
				method = http.MethodDelete
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/produk", nil))
			done <- rr.Code
		}()
	}

	for range n {
		code := <-done
		assert.True(t, code == http.StatusOK || code == http.StatusNotFound, "unexpected status %d", code)
	}
}
