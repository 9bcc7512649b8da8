package session

import (
	"time"

	"github.com/jrsteele09/go-boarding-client/internal/errors"
	"github.com/jrsteele09/go-boarding-client/token/jwt"
)

// Role classifies a user. Only the roles below are recognised.
type Role string

const (
	RoleManager Role = "boarding_managers" // Manages rooms, renters and payments for a realm
	RoleTenant  Role = "boarding_tenants"  // Renter within a realm
)

// IsKnown reports whether r is one of the recognised roles
func (r Role) IsKnown() bool {
	switch r {
	case RoleManager, RoleTenant:
		return true
	}
	return false
}

// ParseRole returns the role for s, or ErrUnknownRole
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsKnown() {
		return "", errors.Wrapf(errors.ErrUnknownRole, "role %q", s)
	}
	return r, nil
}

// Identity is the locally derived view of who is logged in.
// It is built from an unverified token payload and is advisory only: fit for choosing what to
// render, never for deciding what the user may do.
type Identity struct {
	Subject   string    // sub claim, the username including its realm suffix
	Role      Role      // role claim, may be outside the recognised set
	Realm     string    // realm claim, "" when the user has none
	ExpiresAt time.Time // exp claim, zero when absent. Not enforced.
	Token     string    // The raw token the identity was decoded from
}

func identityFromClaims(rawToken string, claims *jwt.Claims) Identity {
	return Identity{
		Subject:   claims.Subject,
		Role:      Role(claims.Role),
		Realm:     claims.Realm,
		ExpiresAt: claims.Expiry(),
		Token:     rawToken,
	}
}
