package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/internal/service"
	"github.com/MKhiriev/backend-mobile/internal/utils"
	"github.com/MKhiriev/backend-mobile/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger:   logger.Nop(),
		services: &service.Services{AuthService: authSvc},
	}
}

// runIdentity passes a request with the given Authorization header through
// withIdentity and returns the request seen by the next handler.
func runIdentity(t *testing.T, h *Handler, authHeader string) *http.Request {
	t.Helper()

	var seen *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/produk", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.withIdentity(next).ServeHTTP(rr, req)

	require.NotNil(t, seen, "identity middleware must never block a request")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	return seen
}

func TestWithIdentity_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		parseErr     error
		wantParsed   string
		wantMemberID int64
		wantFound    bool
	}{
		{
			name:         "valid bearer token",
			header:       "Bearer good-token",
			wantParsed:   "good-token",
			wantMemberID: 42,
			wantFound:    true,
		},
		{
			name:         "scheme is case insensitive",
			header:       "bearer good-token",
			wantParsed:   "good-token",
			wantMemberID: 42,
			wantFound:    true,
		},
		{
			name:       "expired or forged token",
			header:     "Bearer bad-token",
			parseErr:   service.ErrInvalidToken,
			wantParsed: "bad-token",
		},
		{name: "no header"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "scheme without token", header: "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var parsed string
			h := newHandlerWithAuthService(&mockAuthSvc{
				parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
					parsed = tokenString
					if tt.parseErr != nil {
						return models.Token{}, tt.parseErr
					}
					return models.Token{MemberID: 42}, nil
				},
			})

			seen := runIdentity(t, h, tt.header)

			assert.Equal(t, tt.wantParsed, parsed)
			memberID, ok := utils.GetMemberIDFromContext(seen.Context())
			assert.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.wantMemberID, memberID)
		})
	}
}

func TestWithIdentity_AddsMemberIDToLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newHandlerWithAuthService(&mockAuthSvc{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{MemberID: 7}, nil
		},
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/produk", nil)
	req.Header.Set("Authorization", "Bearer t")
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	h.withIdentity(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"member_id":7`)
}

func TestWithIdentity_DoesNotMutateOriginalRequest(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthSvc{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{MemberID: 1}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/produk", nil)
	req.Header.Set("Authorization", "Bearer t")
	originalCtx := req.Context()

	h.withIdentity(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
}
