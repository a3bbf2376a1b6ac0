package auth

import (
	"context"
	"net/http"
	"strings"

	"parcelservice/internal/entities"
	"parcelservice/pkg/logger"
)

type identityKey struct{}

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	Email string
	Role  entities.UserRoleType
}

// IdentityFromContext returns the caller identity set by Middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// ContextWithIdentity returns ctx carrying the caller identity.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// Middleware authenticates the bearer token, resolves the caller role
// and rejects requests whose role is not in the allowed set. The role
// is looked up per request so role changes take effect immediately.
func Middleware(log handlerLogger, verifier TokenVerifier, roles RoleSource, allowed ...entities.UserRoleType) func(http.Handler) http.Handler {
	allowedSet := make(map[entities.UserRoleType]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			email, err := verifier.VerifyToken(token)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("token verification failed")
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			role, err := roles.GetRole(r.Context(), email)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("email", email),
				).Warn("role lookup failed")
				http.Error(w, "unknown user", http.StatusUnauthorized)
				return
			}

			if _, ok := allowedSet[role]; !ok {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			ctx := ContextWithIdentity(r.Context(), Identity{Email: email, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}
	return token, true
}
