package middleware

import (
	"context"
	"net/http"

	"github.com/Beingstupid4me/tmto-backend/internal/api/respond"
	"github.com/Beingstupid4me/tmto-backend/internal/auth"
)

type contextKeyClaims struct{}

// RequireToken gates a handler behind a valid session token. A request
// without an Authorization header is refused with 403; a token that fails
// verification (bad signature or expired) with 401. Decoded claims are
// attached to the request context for downstream handlers.
func RequireToken(manager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respond.Message(w, r, http.StatusForbidden, "Unauthorised, JWT Token is required")
				return
			}

			token, err := auth.TokenFromHeader(header)
			if err != nil {
				respond.Message(w, r, http.StatusForbidden, "Unauthorised, JWT Token is required")
				return
			}

			claims, err := manager.Validate(token)
			if err != nil {
				respond.Message(w, r, http.StatusUnauthorized, "Unauthorised, JWT Token is expired or invalid")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyClaims{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Claims returns the token claims attached by RequireToken, or nil on an
// unguarded request.
func Claims(r *http.Request) *auth.Claims {
	if r == nil {
		return nil
	}
	if claims, ok := r.Context().Value(contextKeyClaims{}).(*auth.Claims); ok {
		return claims
	}
	return nil
}
