package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-boarding-client/internal/errors"
	"github.com/jrsteele09/go-boarding-client/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyIdentity stores the session.Identity of the logged in user
const ContextKeyIdentity ContextKey = "identity"

// RequireIdentity only lets users with the given role through.
// Anonymous users go to the login page, users with another role go to their own dashboard.
// The check is advisory: it shapes navigation, the API enforces access.
func (s *Server) RequireIdentity(role session.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			identity, ok := s.session.CurrentIdentity()
			if !ok {
				redirectWithError(w, r, RouteLogin, msgLoginRequired)
				return
			}

			if identity.Role != role {
				destination, err := destinationFor(identity.Role)
				if err != nil {
					redirectWithError(w, r, RouteLogin, msgUnknownRole)
					return
				}
				redirectSuccess(w, r, destination)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyIdentity, identity)
			next(w, r.WithContext(ctx))
		}
	}
}

// IdentityFromContext returns the identity set by RequireIdentity, or ErrNotAuthenticated
// when the request did not pass through it
func IdentityFromContext(ctx context.Context) (session.Identity, error) {
	identity, ok := ctx.Value(ContextKeyIdentity).(session.Identity)
	if !ok {
		return session.Identity{}, errors.ErrNotAuthenticated
	}
	return identity, nil
}
