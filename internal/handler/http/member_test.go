package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/backend-mobile/internal/service"
	"github.com/MKhiriev/backend-mobile/internal/validators"
	"github.com/MKhiriev/backend-mobile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// POST /member/registrasi
// ─────────────────────────────────────────────

func TestRegistrasi_Success(t *testing.T) {
	var got models.RegistrasiRequest
	svcs := newTestServices()
	svcs.AuthService = &mockAuthSvc{
		registrasiFn: func(_ context.Context, req models.RegistrasiRequest) (models.Member, error) {
			got = req
			return models.Member{ID: 5, Nama: req.Nama, Email: req.Email}, nil
		},
	}
	router := newTestRouter(t, svcs)

	rr := do(router, http.MethodPost, "/member/registrasi",
		`{"nama":"Budi","email":"budi@mail.com","password":"rahasia"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"code":201,"status":true,"data":"Registrasi berhasil"}`, rr.Body.String())
	assert.Equal(t, models.RegistrasiRequest{Nama: "Budi", Email: "budi@mail.com", Password: "rahasia"}, got)
}

func TestRegistrasi_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		svcErr      error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "malformed JSON",
			body:        `{"nama":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name:        "validation error",
			body:        `{"nama":"Budi","email":"not-an-email","password":"rahasia"}`,
			svcErr:      fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "email must be an email",
		},
		{
			name:        "short password",
			body:        `{"nama":"Budi","email":"budi@mail.com","password":"123"}`,
			svcErr:      fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrPasswordTooShort),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "password must be longer than or equal to 6 characters",
		},
		{
			name:        "password over 72 bytes",
			body:        `{"nama":"Budi","email":"budi@mail.com","password":"` + strings.Repeat("a", 73) + `"}`,
			svcErr:      fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrPasswordTooLong),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "password must be at most 72 bytes long",
		},
		{
			name:        "email already registered",
			body:        `{"nama":"Budi","email":"budi@mail.com","password":"rahasia"}`,
			svcErr:      service.ErrEmailAlreadyRegistered,
			wantStatus:  http.StatusConflict,
			wantMessage: "Email sudah terdaftar",
		},
		{
			name:        "unexpected failure is hidden",
			body:        `{"nama":"Budi","email":"budi@mail.com","password":"rahasia"}`,
			svcErr:      errors.New(`pq: relation "members" does not exist`),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.AuthService = &mockAuthSvc{
				registrasiFn: func(context.Context, models.RegistrasiRequest) (models.Member, error) {
					return models.Member{}, tt.svcErr
				},
			}
			router := newTestRouter(t, svcs)

			rr := do(router, http.MethodPost, "/member/registrasi", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.False(t, env.Status)
			assert.Equal(t, tt.wantMessage, env.Message)
			assert.Empty(t, env.Data)
		})
	}
}

func TestRegistrasi_EmptyBodyReachesValidation(t *testing.T) {
	called := false
	svcs := newTestServices()
	svcs.AuthService = &mockAuthSvc{
		registrasiFn: func(_ context.Context, req models.RegistrasiRequest) (models.Member, error) {
			called = true
			assert.Equal(t, models.RegistrasiRequest{}, req)
			return models.Member{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyNama)
		},
	}
	router := newTestRouter(t, svcs)

	rr := do(router, http.MethodPost, "/member/registrasi", "")

	assert.True(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "nama should not be empty", decodeEnvelope(t, rr).Message)
}

// ─────────────────────────────────────────────
// POST /member/login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	svcs := newTestServices()
	svcs.AuthService = &mockAuthSvc{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.LoginResult, error) {
			return models.LoginResult{
				Token: "signed.jwt.token",
				User:  models.MemberInfo{ID: 9, Email: req.Email},
			}, nil
		},
	}
	router := newTestRouter(t, svcs)

	rr := do(router, http.MethodPost, "/member/login", `{"email":"budi@mail.com","password":"rahasia"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.True(t, env.Status)
	assert.Empty(t, env.Message)

	var result models.LoginResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "signed.jwt.token", result.Token)
	assert.Equal(t, models.MemberInfo{ID: 9, Email: "budi@mail.com"}, result.User)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svcs := newTestServices()
	svcs.AuthService = &mockAuthSvc{
		loginFn: func(context.Context, models.LoginRequest) (models.LoginResult, error) {
			return models.LoginResult{}, service.ErrInvalidCredentials
		},
	}
	router := newTestRouter(t, svcs)

	rr := do(router, http.MethodPost, "/member/login", `{"email":"budi@mail.com","password":"salah!!"}`)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"code":401,"status":false,"message":"Email atau password salah"}`, rr.Body.String())
}

func TestLogin_MalformedJSON(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rr := do(router, http.MethodPost, "/member/login", `[1,2`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid JSON was passed", decodeEnvelope(t, rr).Message)
}
