package jwt

import (
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-boarding-client/internal/errors"
)

// ErrMalformed is returned when a token's payload cannot be decoded into Claims
var ErrMalformed = errors.Wrapf(errors.ErrInvalidToken, "malformed")

// Claims is the fixed-shape payload the boarding house API puts in its access tokens.
type Claims struct {
	Role  string `json:"role"`  // Role classifier, e.g. boarding_managers
	Realm string `json:"realm"` // Realm the user belongs to, "" when the service sends null
	jwtlib.RegisteredClaims
}

// Expiry returns the exp claim, or the zero time when the token has none
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Decode extracts the claims from the middle segment of a compact token.
//
// Decode does NOT verify the signature or the expiry. The result is advisory and may only be
// used to shape the UI; the remote service re-checks the token on every API call. Use a
// Verifier when authenticity matters.
func Decode(rawToken string) (*Claims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, fmt.Errorf("%w: empty token", ErrMalformed)
	}

	// ParseUnverified fills the claims before it looks up the signing method, so an alg
	// this process does not know is no reason to reject the payload.
	claims := &Claims{}
	_, _, err := jwtlib.NewParser().ParseUnverified(rawToken, claims)
	if err != nil && !errors.Is(err, jwtlib.ErrTokenUnverifiable) {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrMalformed)
	}
	if claims.Role == "" {
		return nil, fmt.Errorf("%w: missing role claim", ErrMalformed)
	}

	return claims, nil
}
