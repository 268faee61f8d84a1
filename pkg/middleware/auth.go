package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/forkful/forkful/pkg/acl"
	"github.com/forkful/forkful/pkg/response"
	"github.com/forkful/forkful/pkg/token"
)

// Authenticate is the bearer-token gate. A missing Authorization header is
// rejected outright; there is no anonymous fallthrough. On success the
// decoded principal is stored in the request context for the access guard
// and handlers.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			response.Error(w, http.StatusUnauthorized, "Missing token")
			return
		}

		claims, err := token.Verify(raw)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				response.Error(w, http.StatusUnauthorized, "Token expired")
				return
			}
			response.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		p := acl.Principal{
			AccountID: claims.AccountID,
			Email:     claims.Email,
			Role:      claims.Role,
		}
		next.ServeHTTP(w, r.WithContext(acl.WithPrincipal(r.Context(), p)))
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
