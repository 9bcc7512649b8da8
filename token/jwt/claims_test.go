package jwt_test

import (
	"encoding/base64"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-boarding-client/internal/errors"
	"github.com/jrsteele09/go-boarding-client/token/jwt"
	"github.com/stretchr/testify/require"
)

const secretStr = "1234"

func signHS256(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secretStr))
	require.NoError(t, err)
	return raw
}

func segment(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func TestDecode(t *testing.T) {
	t.Run("valid manager token", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		raw := signHS256(t, jwtlib.MapClaims{
			"sub":   "alice@riverside",
			"role":  "boarding_managers",
			"realm": "riverside",
			"exp":   exp.Unix(),
		})

		claims, err := jwt.Decode(raw)
		require.NoError(t, err)
		require.Equal(t, "alice@riverside", claims.Subject)
		require.Equal(t, "boarding_managers", claims.Role)
		require.Equal(t, "riverside", claims.Realm)
		require.True(t, exp.Equal(claims.Expiry()))
	})

	t.Run("null realm decodes to empty", func(t *testing.T) {
		raw := signHS256(t, jwtlib.MapClaims{"sub": "bob", "role": "boarding_tenants", "realm": nil})
		claims, err := jwt.Decode(raw)
		require.NoError(t, err)
		require.Empty(t, claims.Realm)
		require.True(t, claims.Expiry().IsZero())
	})

	t.Run("signature and expiry are not checked", func(t *testing.T) {
		raw := signHS256(t, jwtlib.MapClaims{
			"sub":  "carol@riverside",
			"role": "boarding_tenants",
			"exp":  time.Now().Add(-time.Hour).Unix(),
		})
		tampered := raw[:len(raw)-4] + "AAAA"

		claims, err := jwt.Decode(tampered)
		require.NoError(t, err)
		require.Equal(t, "carol@riverside", claims.Subject)
	})

	t.Run("unknown or missing alg still decodes", func(t *testing.T) {
		payload := segment(`{"sub":"dave@riverside","role":"boarding_tenants","realm":"riverside"}`)
		for _, header := range []string{`{"alg":"XS999","typ":"JWT"}`, `{"typ":"JWT"}`} {
			claims, err := jwt.Decode(segment(header) + "." + payload + ".c2ln")
			require.NoError(t, err)
			require.Equal(t, "dave@riverside", claims.Subject)
			require.Equal(t, "boarding_tenants", claims.Role)
		}
	})

	header := segment(`{"alg":"HS256","typ":"JWT"}`)
	malformed := map[string]string{
		"empty":              "",
		"single segment":     "not-a-token",
		"two segments":       header + "." + segment(`{"sub":"x","role":"y"}`),
		"payload not base64": header + ".%%%.sig",
		"payload not json":   header + "." + segment("hello") + ".sig",
		"header not json":    segment("hello") + "." + segment(`{"sub":"x","role":"y"}`) + ".sig",
		"missing sub":        signHS256(t, jwtlib.MapClaims{"role": "boarding_managers"}),
		"missing role":       signHS256(t, jwtlib.MapClaims{"sub": "alice"}),
		"role not a string":  signHS256(t, jwtlib.MapClaims{"sub": "alice", "role": 7}),
	}
	for name, raw := range malformed {
		t.Run(name, func(t *testing.T) {
			claims, err := jwt.Decode(raw)
			require.Nil(t, claims)
			require.ErrorIs(t, err, jwt.ErrMalformed)
			require.True(t, errors.Is(err, errors.ErrInvalidToken))
		})
	}
}
