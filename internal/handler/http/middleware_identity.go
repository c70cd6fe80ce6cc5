package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/internal/utils"
)

// withIdentity is an HTTP middleware that recognises, but never requires,
// a member token.
//
// If the request carries "Authorization: Bearer <token>" and the token is
// valid according to [service.AuthService.ParseToken], the member ID is
// stored in the request context under [utils.MemberIDCtxKey] and added to the
// request-scoped logger as "member_id". Missing, malformed or invalid tokens
// are logged at debug level and the request continues anonymously.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(ErrInvalidAuthorizationHeader).Msg("ignoring authorization header")
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("ignoring invalid token")
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.MemberIDCtxKey, token.MemberID)
		memberLog := log.With().Int64("member_id", token.MemberID).Logger()
		ctx = memberLog.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
