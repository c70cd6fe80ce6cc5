package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/backend-mobile/internal/validators"
	"github.com/MKhiriev/backend-mobile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerAuthService struct {
	registrasiFn  func(ctx context.Context, req models.RegistrasiRequest) (models.Member, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	createTokenFn func(ctx context.Context, member models.Member) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockInnerAuthService) Registrasi(ctx context.Context, req models.RegistrasiRequest) (models.Member, error) {
	if m.registrasiFn != nil {
		return m.registrasiFn(ctx, req)
	}
	return models.Member{}, nil
}
func (m *mockInnerAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.LoginResult{}, nil
}
func (m *mockInnerAuthService) CreateToken(ctx context.Context, member models.Member) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, member)
	}
	return models.Token{}, nil
}
func (m *mockInnerAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

// ─────────────────────────────────────────────
// Registrasi
// ─────────────────────────────────────────────

func TestAuthValidationService_Registrasi(t *testing.T) {
	tests := []struct {
		name      string
		req       models.RegistrasiRequest
		wantErr   error
		wantInner bool
	}{
		{
			name:      "valid request reaches inner service",
			req:       models.RegistrasiRequest{Nama: "Budi", Email: "budi@mail.com", Password: "rahasia"},
			wantInner: true,
		},
		{
			name:    "empty nama",
			req:     models.RegistrasiRequest{Email: "budi@mail.com", Password: "rahasia"},
			wantErr: validators.ErrEmptyNama,
		},
		{
			name:    "invalid email",
			req:     models.RegistrasiRequest{Nama: "Budi", Email: "budi", Password: "rahasia"},
			wantErr: validators.ErrInvalidEmail,
		},
		{
			name:    "short password",
			req:     models.RegistrasiRequest{Nama: "Budi", Email: "budi@mail.com", Password: "12345"},
			wantErr: validators.ErrPasswordTooShort,
		},
		{
			name:    "password over the bcrypt limit",
			req:     models.RegistrasiRequest{Nama: "Budi", Email: "budi@mail.com", Password: strings.Repeat("a", 73)},
			wantErr: validators.ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			inner := &mockInnerAuthService{
				registrasiFn: func(ctx context.Context, req models.RegistrasiRequest) (models.Member, error) {
					called = true
					return models.Member{ID: 1, Email: req.Email}, nil
				},
			}
			svc := NewAuthValidationService().Wrap(inner)

			_, err := svc.Registrasi(context.Background(), tt.req)

			assert.Equal(t, tt.wantInner, called)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, ErrInvalidDataProvided)
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ─────────────────────────────────────────────
// Login / tokens
// ─────────────────────────────────────────────

func TestAuthValidationService_Login_EmptyFields(t *testing.T) {
	inner := &mockInnerAuthService{
		loginFn: func(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
			t.Fatal("inner Login must not be called")
			return models.LoginResult{}, nil
		},
	}
	svc := NewAuthValidationService().Wrap(inner)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "budi@mail.com"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrEmptyPassword)
}

func TestAuthValidationService_Login_PassesThrough(t *testing.T) {
	inner := &mockInnerAuthService{
		loginFn: func(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
			return models.LoginResult{Token: "tok"}, nil
		},
	}
	svc := NewAuthValidationService().Wrap(inner)

	got, err := svc.Login(context.Background(), models.LoginRequest{Email: "budi@mail.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
}

func TestAuthValidationService_ParseToken_Empty(t *testing.T) {
	svc := NewAuthValidationService().Wrap(&mockInnerAuthService{})

	_, err := svc.ParseToken(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidToken)
}
