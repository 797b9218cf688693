package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/api/apierr"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
)

type contextKey string

const identityContextKey contextKey = "identity"

// IdentityHeader carries the caller's opaque identity token.
const IdentityHeader = "X-Identity"

// Identity creates middleware that requires a caller identity on every
// request. The identity is the stable opaque token issued by the identity
// endpoint; the core treats it as the caller's primary key.
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := extractIdentity(r)
			if id == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, model.Identity(id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractIdentity pulls the identity token from the request
func extractIdentity(r *http.Request) string {
	if id := r.Header.Get(IdentityHeader); id != "" {
		return id
	}

	// Fall back to a bearer token
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// GetIdentity returns the caller identity from the request context
func GetIdentity(ctx context.Context) model.Identity {
	id, _ := ctx.Value(identityContextKey).(model.Identity)
	return id
}

// MustGetIdentity returns the caller identity or panics
func MustGetIdentity(ctx context.Context) model.Identity {
	id := GetIdentity(ctx)
	if id == "" {
		panic("no identity in context - identity middleware not applied?")
	}
	return id
}
